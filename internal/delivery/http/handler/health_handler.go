package handler

import (
	"context"
	"time"

	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

const healthPingTimeout = 2 * time.Second

// Pinger is an optional dependency whose reachability is reported by /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	AppName           string
	GenerativeEnabled bool
	ContactSink       string
	// AnswerCache is nil when no answer cache is configured.
	AnswerCache Pinger
}

type HealthHandler struct {
	status HealthStatus
	hub    *ws.Hub
}

func NewHealthHandler(status HealthStatus, hub *ws.Hub) *HealthHandler {
	return &HealthHandler{status: status, hub: hub}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Root(c fiber.Ctx) error {
	return response.Message(c, fiber.StatusOK, response.MessageWelcome)
}

// Health always answers 200; the answer cache is optional and only reported.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, fiber.Map{
		"status":             response.MessageOK,
		"app":                h.status.AppName,
		"generative_enabled": h.status.GenerativeEnabled,
		"contact_sink":       h.status.ContactSink,
		"answer_cache":       h.answerCacheState(c.Context()),
		"ws_sessions":        h.hub.SessionCount(),
	})
}

func (h *HealthHandler) answerCacheState(ctx context.Context) string {
	if h.status.AnswerCache == nil {
		return "disabled"
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := h.status.AnswerCache.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
