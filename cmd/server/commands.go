package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"portfolio-api/internal/app"
	"portfolio-api/internal/infrastructure/knowledgestore"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	a, cleanup, err := app.Bootstrap(startCtx, cfg, appLogger)
	cancel()
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			appLogger.Warn("cleanup error", zap.Error(err))
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	appLogger.Info("http server listening",
		zap.String("addr", addr),
		zap.String("env", cfg.App.Environment),
		zap.Bool("generative_enabled", a.Container.GenerativeEnabled),
		zap.String("contact_sink", cfg.Contact.Sink),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("shutting down")
	a.Container.Hub.CloseAll()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := a.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Manage the chatbot knowledge document",
}

var knowledgeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default knowledge document if none exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := knowledgePath(cmd)
		created, err := knowledgestore.Initialize(path)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, left unchanged\n", path)
		}
		return nil
	},
}

var knowledgeValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the knowledge document",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := knowledgePath(cmd)
		doc, err := knowledgestore.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d skill categories, %d skills, %d projects, %d faqs)\n",
			path, len(doc.Skills), len(doc.CatalogSkills()), len(doc.Projects), len(doc.FAQs))
		return nil
	},
}

func knowledgePath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("path"); strings.TrimSpace(p) != "" {
		return p
	}
	return cfg.Knowledge.Path
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the chatbot a question from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		c, err := app.NewChatbotContainer(ctx, cfg, appLogger)
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		reply, err := c.Chatbot.Chat(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), reply.Response)
		return nil
	},
}
