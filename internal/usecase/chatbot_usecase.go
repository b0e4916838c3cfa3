package usecase

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"portfolio-api/internal/domain/intent"
	"portfolio-api/internal/domain/knowledge"

	"go.uber.org/zap"
)

type Generator interface {
	Generate(ctx context.Context, question, profileContext string) (string, error)
	Model() string
}

type AnswerCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type ChatSource string

const (
	ChatSourceGenerative ChatSource = "generative"
	ChatSourceCache      ChatSource = "cache"
	ChatSourceRules      ChatSource = "rules"
)

type ChatReply struct {
	Response string
	Source   ChatSource
	// Intent is set only when the reply came from the rule matcher.
	Intent intent.Intent
}

type ChatbotUsecase interface {
	Chat(ctx context.Context, message string) (ChatReply, error)
}

type ChatbotOptions struct {
	// GenerativeEnabled is decided once at startup. A nil Generator disables
	// generation regardless.
	GenerativeEnabled bool
	// MaxMessageRunes truncates incoming messages; zero disables the cap.
	MaxMessageRunes int
	CacheTTL        time.Duration
}

type Chatbot struct {
	source    KnowledgeSource
	matcher   *intent.Matcher
	generator Generator
	cache     AnswerCache
	opts      ChatbotOptions
	logger    *zap.Logger

	ctxMu       sync.Mutex
	ctxDoc      *knowledge.Document
	ctxRendered string
}

func NewChatbotUsecase(source KnowledgeSource, matcher *intent.Matcher, generator Generator, cache AnswerCache, opts ChatbotOptions, logger *zap.Logger) *Chatbot {
	if matcher == nil {
		matcher = intent.NewMatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if generator == nil {
		opts.GenerativeEnabled = false
	}
	return &Chatbot{
		source:    source,
		matcher:   matcher,
		generator: generator,
		cache:     cache,
		opts:      opts,
		logger:    logger,
	}
}

type cachedAnswer struct {
	Response string `json:"response"`
}

func (u *Chatbot) Chat(ctx context.Context, message string) (ChatReply, error) {
	message = truncateRunes(message, u.opts.MaxMessageRunes)

	doc, err := u.source.Snapshot(ctx)
	if err != nil {
		u.logger.Error("knowledge snapshot unavailable", zap.Error(err))
		return ChatReply{}, ErrInternal
	}

	if u.opts.GenerativeEnabled && strings.TrimSpace(message) != "" {
		if reply, ok := u.generate(ctx, message, doc); ok {
			return reply, nil
		}
	}

	in, response := u.matcher.Classify(message, doc)
	u.logger.Debug("chat answered by rules", zap.String("intent", string(in)))
	return ChatReply{Response: response, Source: ChatSourceRules, Intent: in}, nil
}

func (u *Chatbot) generate(ctx context.Context, message string, doc *knowledge.Document) (ChatReply, bool) {
	key := ChatbotAnswerCacheKey(u.generator.Model(), message)

	if u.cache != nil {
		var hit cachedAnswer
		ok, err := u.cache.GetJSON(ctx, key, &hit)
		if err != nil {
			u.logger.Debug("answer cache read failed", zap.Error(err))
		}
		if ok && hit.Response != "" {
			return ChatReply{Response: hit.Response, Source: ChatSourceCache}, true
		}
		if ok {
			// blank entries never satisfy a reply
			if err := u.cache.Delete(ctx, key); err != nil {
				u.logger.Debug("answer cache evict failed", zap.Error(err))
			}
		}
	}

	answer, err := u.generator.Generate(ctx, message, u.profileContext(doc))
	if err != nil {
		u.logger.Warn("generative answer failed, using rule matcher", zap.Error(err))
		return ChatReply{}, false
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, cachedAnswer{Response: answer}, u.opts.CacheTTL); err != nil {
			u.logger.Debug("answer cache write failed", zap.Error(err))
		}
	}
	return ChatReply{Response: answer, Source: ChatSourceGenerative}, true
}

// profileContext renders doc once and reuses the text while the snapshot is
// unchanged.
func (u *Chatbot) profileContext(doc *knowledge.Document) string {
	u.ctxMu.Lock()
	defer u.ctxMu.Unlock()
	if u.ctxDoc != doc {
		u.ctxDoc = doc
		u.ctxRendered = doc.ProfileContext()
	}
	return u.ctxRendered
}

func truncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	i := 0
	for n := 0; n < max; n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
