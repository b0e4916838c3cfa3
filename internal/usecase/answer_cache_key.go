package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type answerCacheKeyInput struct {
	Model    string `json:"model"`
	Question string `json:"question"`
}

func normalizeQuestion(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// ChatbotAnswerCacheKey identifies a generated answer by model and question,
// ignoring case and whitespace differences in the question.
func ChatbotAnswerCacheKey(model, question string) string {
	in := answerCacheKeyInput{
		Model:    strings.TrimSpace(model),
		Question: normalizeQuestion(question),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "chatbot:answer:" + hex.EncodeToString(sum[:])
}
