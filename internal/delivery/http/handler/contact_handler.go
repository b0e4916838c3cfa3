package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Group("/contact").Post("/submit", h.Submit)
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid request body", nil, err)
	}

	_, err := h.uc.Submit(c.Context(), usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Message(c, fiber.StatusOK, response.MessageContactSent)
}
