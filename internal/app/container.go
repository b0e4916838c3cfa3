package app

import (
	"context"
	"errors"
	"fmt"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database"
	"portfolio-api/internal/database/migration"
	dbpostgres "portfolio-api/internal/database/postgres"
	dbsqlite "portfolio-api/internal/database/sqlite"
	"portfolio-api/internal/domain/contact"
	"portfolio-api/internal/domain/intent"
	"portfolio-api/internal/infrastructure/cache"
	"portfolio-api/internal/infrastructure/generative"
	"portfolio-api/internal/infrastructure/knowledgestore"
	"portfolio-api/internal/infrastructure/sheets"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger

	Knowledge   *knowledgestore.Provider
	DB          database.DB
	Sink        contact.Sink
	Hub         *ws.Hub
	AnswerCache *cache.Redis

	GenerativeEnabled bool

	Projects usecase.ProjectUsecase
	Skills   usecase.SkillUsecase
	Chatbot  usecase.ChatbotUsecase
	Contact  usecase.ContactUsecase

	closers []func() error
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Container{
		Config:    cfg,
		Logger:    logger,
		Knowledge: knowledgestore.NewProvider(cfg.Knowledge.Path, logger.Named("knowledge")),
		Hub:       ws.NewHub(logger.Named("ws")),
	}

	// Fail fast on a broken knowledge file instead of on the first request.
	if _, err := c.Knowledge.Snapshot(ctx); err != nil {
		return nil, fmt.Errorf("load knowledge: %w", err)
	}

	c.buildChatbot(ctx)

	sink, err := c.buildSink(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Sink = sink

	c.Projects = usecase.NewProjectUsecase(c.Knowledge)
	c.Skills = usecase.NewSkillUsecase(c.Knowledge)
	c.Contact = usecase.NewContactUsecase(sink, cfg.Contact.SinkTimeout, logger.Named("contact"))

	return c, nil
}

// NewChatbotContainer wires only what the chatbot needs.
func NewChatbotContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Container{
		Config:    cfg,
		Logger:    logger,
		Knowledge: knowledgestore.NewProvider(cfg.Knowledge.Path, logger.Named("knowledge")),
	}
	c.buildChatbot(ctx)
	return c, nil
}

func (c *Container) buildChatbot(ctx context.Context) {
	cfg := c.Config.Chatbot

	var gen usecase.Generator
	if cfg.GenerativeEnabled() {
		g, err := generative.NewGemini(ctx, generative.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.GenerativeTimeout,
		}, c.Logger.Named("gemini"))
		if err != nil {
			c.Logger.Warn("gemini unavailable, answering with rules only", zap.Error(err))
		} else {
			gen = g
		}
	}
	c.GenerativeEnabled = gen != nil

	var answers usecase.AnswerCache
	if c.GenerativeEnabled && c.Config.Redis.Enabled {
		r := cache.NewRedis(cache.Config{
			Host:     c.Config.Redis.Host,
			Port:     c.Config.Redis.Port,
			Password: c.Config.Redis.Password,
			TTL:      c.Config.Redis.TTL,
		}, c.Logger.Named("cache"))
		if r.Available() {
			answers = r
			c.AnswerCache = r
			c.closers = append(c.closers, r.Close)
		}
	}

	c.Logger.Info("chatbot configured",
		zap.Bool("generative_enabled", c.GenerativeEnabled),
		zap.Bool("answer_cache", answers != nil),
		zap.Int("max_message_runes", cfg.MaxMessageRunes),
	)

	c.Chatbot = usecase.NewChatbotUsecase(
		c.Knowledge,
		intent.NewMatcher(),
		gen,
		answers,
		usecase.ChatbotOptions{
			GenerativeEnabled: c.GenerativeEnabled,
			MaxMessageRunes:   cfg.MaxMessageRunes,
			CacheTTL:          c.Config.Redis.TTL,
		},
		c.Logger.Named("chatbot"),
	)
}

func (c *Container) buildSink(ctx context.Context) (contact.Sink, error) {
	cfg := c.Config
	logger := c.Logger.Named("sink")

	switch cfg.Contact.Sink {
	case config.SinkSheets:
		s, err := sheets.NewFromServiceAccount(ctx, sheets.Config{
			SpreadsheetID:   cfg.Contact.SheetID,
			Range:           cfg.Contact.SheetRange,
			CredentialsJSON: cfg.Contact.GoogleCredentialsJSON,
		}, logger)
		if err != nil {
			if errors.Is(err, contact.ErrSinkNotConfigured) {
				// Serve everything else; submissions report the sink as unavailable.
				logger.Warn("google sheets sink not configured", zap.Error(err))
				return unavailableSink{cause: err}, nil
			}
			return nil, err
		}
		return s, nil

	case config.SinkPostgres:
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return c.sqlSink(ctx, db, logger)

	case config.SinkSQLite:
		db, err := dbsqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return c.sqlSink(ctx, db, logger)

	default:
		return nil, fmt.Errorf("unknown contact sink %q", cfg.Contact.Sink)
	}
}

func (c *Container) sqlSink(ctx context.Context, db database.DB, logger *zap.Logger) (contact.Sink, error) {
	c.DB = db
	c.closers = append(c.closers, db.Close)

	r := migration.Runner{Dialect: db.Dialect(), Logger: logger}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", db.Dialect(), err)
	}
	logger.Info("contact submissions stored in database", zap.String("dialect", string(db.Dialect())))
	return repository.NewSQLContactSubmissionRepository(db), nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Hub != nil {
		c.Hub.CloseAll()
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

type unavailableSink struct {
	cause error
}

func (s unavailableSink) Append(context.Context, contact.Submission) error {
	return fmt.Errorf("%w: %v", contact.ErrSinkNotConfigured, s.cause)
}
