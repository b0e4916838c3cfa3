package usecase

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"portfolio-api/internal/domain/intent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbot_DisabledUsesRules(t *testing.T) {
	gen := &fakeGenerator{answer: "should not be used"}
	uc := NewChatbotUsecase(defaultSource(), nil, gen, nil, ChatbotOptions{GenerativeEnabled: false}, nil)

	reply, err := uc.Chat(context.Background(), "What are your skills?")
	require.NoError(t, err)
	assert.Equal(t, ChatSourceRules, reply.Source)
	assert.Equal(t, intent.IntentSkills, reply.Intent)
	assert.True(t, strings.HasPrefix(reply.Response, "Onkar's key skills include:"))
	assert.Zero(t, gen.calls)
}

func TestChatbot_GenerativeAnswer(t *testing.T) {
	gen := &fakeGenerator{answer: "Onkar studies at Northeastern."}
	uc := NewChatbotUsecase(defaultSource(), nil, gen, nil, ChatbotOptions{GenerativeEnabled: true}, nil)

	reply, err := uc.Chat(context.Background(), "Where does Onkar study?")
	require.NoError(t, err)
	assert.Equal(t, ChatSourceGenerative, reply.Source)
	assert.Equal(t, "Onkar studies at Northeastern.", reply.Response)
	require.Len(t, gen.contexts, 1)
	assert.Contains(t, gen.contexts[0], "Northeastern University")
}

func TestChatbot_GeneratorFailureFallsBackToRules(t *testing.T) {
	gen := &fakeGenerator{err: errBoom}
	uc := NewChatbotUsecase(defaultSource(), nil, gen, newMemoryCache(), ChatbotOptions{GenerativeEnabled: true}, nil)

	reply, err := uc.Chat(context.Background(), "xyzzy plugh")
	require.NoError(t, err)
	assert.Equal(t, ChatSourceRules, reply.Source)
	assert.Equal(t, intent.IntentDefault, reply.Intent)
	assert.NotEmpty(t, reply.Response)
	assert.Equal(t, 1, gen.calls)
}

func TestChatbot_CacheHitSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{answer: "first answer"}
	cache := newMemoryCache()
	uc := NewChatbotUsecase(defaultSource(), nil, gen, cache, ChatbotOptions{GenerativeEnabled: true}, nil)
	ctx := context.Background()

	first, err := uc.Chat(ctx, "Tell me about Onkar")
	require.NoError(t, err)
	assert.Equal(t, ChatSourceGenerative, first.Source)

	gen.answer = "second answer"
	second, err := uc.Chat(ctx, "  tell me ABOUT onkar ")
	require.NoError(t, err)
	assert.Equal(t, ChatSourceCache, second.Source)
	assert.Equal(t, "first answer", second.Response)
	assert.Equal(t, 1, gen.calls)
}

func TestChatbot_BlankCacheEntryIsEvicted(t *testing.T) {
	gen := &fakeGenerator{answer: "regenerated"}
	cache := newMemoryCache()
	key := ChatbotAnswerCacheKey(gen.Model(), "Tell me about Onkar")
	cache.data[key] = cachedAnswer{}
	uc := NewChatbotUsecase(defaultSource(), nil, gen, cache, ChatbotOptions{GenerativeEnabled: true}, nil)

	reply, err := uc.Chat(context.Background(), "Tell me about Onkar")
	require.NoError(t, err)
	assert.Equal(t, ChatSourceGenerative, reply.Source)
	assert.Equal(t, "regenerated", reply.Response)
	assert.Equal(t, []string{key}, cache.deleted)
	assert.Equal(t, cachedAnswer{Response: "regenerated"}, cache.data[key])
}

func TestChatbot_CacheErrorsAreIgnored(t *testing.T) {
	gen := &fakeGenerator{answer: "fresh"}
	cache := newMemoryCache()
	cache.err = errBoom
	uc := NewChatbotUsecase(defaultSource(), nil, gen, cache, ChatbotOptions{GenerativeEnabled: true}, nil)

	reply, err := uc.Chat(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, "fresh", reply.Response)
}

func TestChatbot_NilGeneratorIsDisabled(t *testing.T) {
	uc := NewChatbotUsecase(defaultSource(), nil, nil, nil, ChatbotOptions{GenerativeEnabled: true}, nil)

	reply, err := uc.Chat(context.Background(), "thanks")
	require.NoError(t, err)
	assert.Equal(t, ChatSourceRules, reply.Source)
}

func TestChatbot_BlankMessageSkipsGenerator(t *testing.T) {
	gen := &fakeGenerator{answer: "x"}
	uc := NewChatbotUsecase(defaultSource(), nil, gen, nil, ChatbotOptions{GenerativeEnabled: true}, nil)

	reply, err := uc.Chat(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Response)
	assert.Zero(t, gen.calls)
}

func TestChatbot_SourceFailureIsInternal(t *testing.T) {
	uc := NewChatbotUsecase(staticSource{err: errBoom}, nil, nil, nil, ChatbotOptions{}, nil)

	_, err := uc.Chat(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestChatbot_ProfileContextRenderedOncePerSnapshot(t *testing.T) {
	gen := &fakeGenerator{answer: "ok"}
	uc := NewChatbotUsecase(defaultSource(), nil, gen, nil, ChatbotOptions{GenerativeEnabled: true}, nil)

	for _, q := range []string{"a question", "another question"} {
		_, err := uc.Chat(context.Background(), q)
		require.NoError(t, err)
	}
	require.Len(t, gen.contexts, 2)
	assert.Equal(t, gen.contexts[0], gen.contexts[1])
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo wörld", 5))
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "unbounded", truncateRunes("unbounded", 0))

	long := strings.Repeat("ü", 5000)
	assert.Equal(t, 2000, utf8.RuneCountInString(truncateRunes(long, 2000)))
}
