package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type ChatbotHandler struct {
	uc usecase.ChatbotUsecase
	ws *ws.Handler
}

func NewChatbotHandler(uc usecase.ChatbotUsecase, wsHandler *ws.Handler) *ChatbotHandler {
	return &ChatbotHandler{uc: uc, ws: wsHandler}
}

func (h *ChatbotHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/chatbot", h.Chat)
	grp := r.Group("/chatbot")
	grp.Post("/chat", h.Chat)
	if h.ws != nil {
		grp.Get("/ws", h.ws.HandleChatWS)
	}
}

func (h *ChatbotHandler) Chat(c fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid request body", nil, err)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	reply, err := h.uc.Chat(c.Context(), *req.Message)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.ChatResponse{Response: reply.Response})
}
