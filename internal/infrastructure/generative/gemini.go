package generative

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-1.5-flash"
	DefaultTimeout = 8 * time.Second
)

// ErrGeneration covers every way a generation attempt can fail: transport,
// timeout, quota, or an empty answer.
var ErrGeneration = errors.New("generation failed")

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint. Empty means the public endpoint.
	BaseURL string
}

type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewGemini(ctx context.Context, cfg Config, logger *zap.Logger) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{client: client, model: cfg.Model, timeout: cfg.Timeout, logger: logger}, nil
}

func (g *Gemini) Model() string {
	return g.model
}

// Generate answers question using only profileContext as source material.
func (g *Gemini) Generate(ctx context.Context, question, profileContext string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(BuildPrompt(question, profileContext)), nil)
	if err != nil {
		g.logger.Warn("gemini request failed",
			zap.String("model", g.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}

	g.logger.Debug("gemini response received",
		zap.String("model", g.model),
		zap.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}

// BuildPrompt constrains the model to the supplied context and asks it to
// decline questions outside of it.
func BuildPrompt(question, profileContext string) string {
	var b strings.Builder
	b.WriteString("You are a professional assistant on a personal portfolio website. ")
	b.WriteString("Answer only from the context below. ")
	b.WriteString("If the question is unrelated to it or the context does not contain the answer, ")
	b.WriteString("politely say you can only answer questions about the portfolio owner's education, experience, skills and projects.\n\n")
	b.WriteString("Context:\n")
	b.WriteString(profileContext)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\nGive a concise, relevant answer based only on the context above.")
	return b.String()
}
