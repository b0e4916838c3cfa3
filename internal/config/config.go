package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	SinkSheets   = "sheets"
	SinkPostgres = "postgres"
	SinkSQLite   = "sqlite"
)

type Config struct {
	App       AppConfig
	Knowledge KnowledgeConfig
	Chatbot   ChatbotConfig
	Contact   ContactConfig
	Database  DatabaseConfig
	SQLite    SQLiteConfig
	Redis     RedisConfig
}

type AppConfig struct {
	AppName            string `validate:"required"`
	Environment        string `validate:"required"`
	HTTPPort           string `validate:"required,numeric"`
	CORSAllowedOrigins []string
}

func (a AppConfig) IsDevelopment() bool {
	return strings.EqualFold(a.Environment, "development")
}

type KnowledgeConfig struct {
	Path string `validate:"required"`
}

type ChatbotConfig struct {
	GeminiAPIKey      string
	GeminiModel       string        `validate:"required"`
	GenerativeTimeout time.Duration `validate:"gt=0"`
	// MaxMessageRunes truncates chat input; zero disables the cap.
	MaxMessageRunes int `validate:"gte=0"`
}

// GenerativeEnabled reports whether a Gemini key was supplied.
func (c ChatbotConfig) GenerativeEnabled() bool {
	return c.GeminiAPIKey != ""
}

type ContactConfig struct {
	Sink                  string `validate:"oneof=sheets postgres sqlite"`
	SheetID               string
	SheetRange            string `validate:"required"`
	GoogleCredentialsJSON string
	SinkTimeout           time.Duration `validate:"gt=0"`
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	TTL      time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

var validate = validator.New()

// Load reads configuration from the environment. Values from the given
// dotenv files are applied first without overriding variables already set;
// with no files, a .env in the working directory is used when present.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			envFiles = []string{".env"}
		}
	}
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	}

	var missing, invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return def
	}
	optInt := func(key string, def int) int {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optSeconds := func(key string, def time.Duration) time.Duration {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return time.Duration(v * float64(time.Second))
	}
	optBool := func(key string, def bool) bool {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}

	cfg := Config{}
	cfg.App = AppConfig{
		AppName:            opt("APP_NAME", "Portfolio API"),
		Environment:        opt("APP_ENV", "development"),
		HTTPPort:           opt("HTTP_PORT", "8000"),
		CORSAllowedOrigins: splitList(opt("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://*.netlify.app")),
	}

	cfg.Knowledge = KnowledgeConfig{
		Path: opt("KNOWLEDGE_PATH", "data/chatbot_knowledge.json"),
	}

	cfg.Chatbot = ChatbotConfig{
		GeminiAPIKey:      opt("GEMINI_API_KEY", ""),
		GeminiModel:       opt("GEMINI_MODEL", "gemini-1.5-flash"),
		GenerativeTimeout: optSeconds("GENERATIVE_TIMEOUT", 8*time.Second),
		MaxMessageRunes:   optInt("CHATBOT_MAX_MESSAGE_RUNES", 2000),
	}

	cfg.Contact = ContactConfig{
		Sink:                  strings.ToLower(opt("CONTACT_SINK", SinkSheets)),
		SheetID:               opt("GOOGLE_SHEET_ID", ""),
		SheetRange:            opt("GOOGLE_SHEET_RANGE", "Sheet1!A:E"),
		GoogleCredentialsJSON: opt("GOOGLE_APPLICATION_CREDENTIALS_JSON", ""),
		SinkTimeout:           optSeconds("CONTACT_SINK_TIMEOUT", 8*time.Second),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST", "localhost"),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         opt("DB_NAME", ""),
		DBUser:         opt("DB_USER", ""),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: optSeconds("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 4)),
	}
	if cfg.Contact.Sink == SinkPostgres {
		cfg.Database.DBName = req("DB_NAME")
		cfg.Database.DBUser = req("DB_USER")
	}

	cfg.SQLite = SQLiteConfig{
		Path: opt("SQLITE_PATH", "data/contact.db"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  optBool("REDIS_ENABLED", false),
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     optInt("REDIS_PORT", 6379),
		Password: os.Getenv("REDIS_PASSWORD"),
		TTL:      optSeconds("REDIS_TTL", 600*time.Second),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errInvalidEnv, err)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
