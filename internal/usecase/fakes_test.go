package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"portfolio-api/internal/domain/contact"
	"portfolio-api/internal/domain/knowledge"
)

type staticSource struct {
	doc *knowledge.Document
	err error
}

func (s staticSource) Snapshot(context.Context) (*knowledge.Document, error) {
	return s.doc, s.err
}

func defaultSource() staticSource {
	doc := knowledge.Default()
	doc.Normalize()
	return staticSource{doc: &doc}
}

type fakeGenerator struct {
	mu       sync.Mutex
	answer   string
	err      error
	calls    int
	contexts []string
}

func (g *fakeGenerator) Generate(_ context.Context, _ string, profileContext string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.contexts = append(g.contexts, profileContext)
	return g.answer, g.err
}

func (g *fakeGenerator) Model() string { return "test-model" }

type memoryCache struct {
	mu      sync.Mutex
	data    map[string]cachedAnswer
	err     error
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]cachedAnswer{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	v, ok := c.data[key]
	if !ok {
		return false, nil
	}
	*(out.(*cachedAnswer)) = v
	return true, nil
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.data[key] = value.(cachedAnswer)
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
	return nil
}

type recordingSink struct {
	mu       sync.Mutex
	received []contact.Submission
	err      error
	deadline bool
}

func (s *recordingSink) Append(ctx context.Context, sub contact.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, s.deadline = ctx.Deadline()
	if s.err != nil {
		return s.err
	}
	s.received = append(s.received, sub)
	return nil
}

var errBoom = errors.New("boom")
