package ws

import (
	"sync"

	"go.uber.org/zap"
)

// Hub tracks open chat sessions so they can be counted and closed together
// on shutdown.
type Hub struct {
	mu       sync.Mutex
	sessions map[*Session]struct{}
	closed   bool
	logger   *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{sessions: make(map[*Session]struct{}), logger: logger}
}

// Register adds s and reports false when the hub is already shut down.
func (h *Hub) Register(s *Session) bool {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.sessions[s] = struct{}{}
	total := len(h.sessions)
	h.mu.Unlock()

	h.logger.Debug("ws session opened", zap.Int("total_sessions", total))
	return true
}

func (h *Hub) Unregister(s *Session) {
	h.mu.Lock()
	_, ok := h.sessions[s]
	delete(h.sessions, s)
	total := len(h.sessions)
	h.mu.Unlock()

	if ok {
		h.logger.Debug("ws session closed", zap.Int("total_sessions", total))
	}
}

func (h *Hub) SessionCount() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// CloseAll closes every session and rejects new ones.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	h.closed = true
	open := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		open = append(open, s)
	}
	h.mu.Unlock()

	for _, s := range open {
		s.Close()
	}
}
