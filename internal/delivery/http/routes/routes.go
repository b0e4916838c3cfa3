package routes

import (
	"portfolio-api/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health  *handler.HealthHandler
	Project *handler.ProjectHandler
	Skill   *handler.SkillHandler
	Contact *handler.ContactHandler
	Chatbot *handler.ChatbotHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.Project.RegisterRoutes(api)
	r.Skill.RegisterRoutes(api)
	r.Contact.RegisterRoutes(api)
	r.Chatbot.RegisterRoutes(api)
}
