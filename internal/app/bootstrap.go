package app

import (
	"context"
	"fmt"
	"strings"

	"portfolio-api/internal/config"
	"portfolio-api/internal/delivery/http/handler"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/delivery/http/routes"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New assembles the HTTP application around an already built container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c.Config, c.Logger)

	wsHandler := ws.NewHandler(
		c.Hub,
		c.Chatbot,
		middleware.OriginMatcher(c.Config.App.CORSAllowedOrigins),
		c.Logger.Named("ws"),
	)

	health := handler.HealthStatus{
		AppName:           c.Config.App.AppName,
		GenerativeEnabled: c.GenerativeEnabled,
		ContactSink:       c.Config.Contact.Sink,
	}
	if c.AnswerCache != nil {
		health.AnswerCache = c.AnswerCache
	}

	reg := routes.Registry{
		Health:  handler.NewHealthHandler(health, c.Hub),
		Project: handler.NewProjectHandler(c.Projects),
		Skill:   handler.NewSkillHandler(c.Skills),
		Contact: handler.NewContactHandler(c.Contact),
		Chatbot: handler.NewChatbotHandler(c.Chatbot, wsHandler),
	}
	reg.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger.Named("http")).Middleware())
	app.Use(middleware.NewCORS(cfg.App.CORSAllowedOrigins))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
