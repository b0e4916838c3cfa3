package handler

import (
	"portfolio-api/internal/delivery/http/dto"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	// Registered before "/:id" so it is not captured as an id.
	grp.Get("/featured", h.ListFeatured)
	grp.Get("/:id", h.Get)
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListProjects(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewProjectListResponse(items))
}

func (h *ProjectHandler) ListFeatured(c fiber.Ctx) error {
	items, err := h.uc.ListFeaturedProjects(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewProjectListResponse(items))
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.GetProject(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.NewProjectResponse(p))
}
