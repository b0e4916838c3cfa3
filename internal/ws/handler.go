package ws

import (
	"context"
	"net/http"

	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	hub      *Hub
	chatbot  usecase.ChatbotUsecase
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewHandler serves chat over websocket. checkOrigin may be nil to accept
// any origin.
func NewHandler(hub *Hub, chatbot usecase.ChatbotUsecase, checkOrigin func(origin string) bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{hub: hub, chatbot: chatbot, logger: logger}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || checkOrigin == nil {
				return true
			}
			return checkOrigin(origin)
		},
	}
	return h
}

func (h *Handler) HandleChatWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.chatbot == nil {
		return fiber.ErrServiceUnavailable
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws upgrade failed", zap.Error(err))
			return
		}

		s := newSession(h.hub, conn, h.chatbot, h.logger)
		if !h.hub.Register(s) {
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			_ = conn.Close()
			return
		}
		go s.writePump()
		go s.readPump(context.Background())
	})

	return fiberHandler(c)
}
