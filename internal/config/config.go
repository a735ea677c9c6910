package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the application
type Config struct {
	PostgreSQL     PostgreSQLConfig
	Server         ServerConfig
	Logging        LoggingConfig
	OpenAI         OpenAIConfig
	FAQ            FAQConfig
	ContextStore   ContextStoreConfig
	InteractionLog InteractionLogConfig
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string // full connection string, takes precedence over the fields below
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or text
}

// OpenAIConfig holds the OpenAI-compatible sentiment backend configuration
type OpenAIConfig struct {
	APIKey          string
	APIBase         string
	ChatModel       string
	ChatTemperature float64
	ChatMaxTokens   int
	Timeout         int // seconds
	Enabled         bool
}

// FAQConfig selects where the FAQ corpus comes from and how it is matched
type FAQConfig struct {
	Source      string // csv or postgres
	Path        string
	MatchMode   string // token_set or ratio
	FrequentMin int
}

// ContextStoreConfig selects the per-guest context backend
type ContextStoreConfig struct {
	Driver        string // memory or redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// InteractionLogConfig selects the interaction/feedback sink
type InteractionLogConfig struct {
	Sink string // file, postgres or none
	Dir  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("POSTGRESQL_URI", getEnv("PG_DSN", ""))),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "voiceorder"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 5000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization,X-Request-ID"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		OpenAI: OpenAIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			APIBase:         getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:       getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),
			ChatTemperature: getEnvAsFloat("OPENAI_CHAT_TEMPERATURE", 0),
			ChatMaxTokens:   getEnvAsInt("OPENAI_CHAT_MAX_TOKENS", 64),
			Timeout:         getEnvAsInt("OPENAI_TIMEOUT", 10),
			Enabled:         getEnv("OPENAI_API_KEY", "") != "",
		},
		FAQ: FAQConfig{
			Source:      getEnv("FAQ_SOURCE", "csv"),
			Path:        getEnv("FAQ_PATH", "data/inquiries.csv"),
			MatchMode:   getEnv("FAQ_MATCH_MODE", "token_set"),
			FrequentMin: getEnvAsInt("FAQ_FREQUENT_MIN", 5),
		},
		ContextStore: ContextStoreConfig{
			Driver:        getEnv("CONTEXT_STORE", "memory"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			KeyPrefix:     getEnv("CONTEXT_KEY_PREFIX", "voiceorder:context:"),
		},
		InteractionLog: InteractionLogConfig{
			Sink: getEnv("INTERACTION_SINK", "file"),
			Dir:  getEnv("INTERACTION_LOG_DIR", "logs"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and numeric ranges
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port))
	}
	if !oneOf(c.Logging.Format, "json", "text") {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Logging.Format))
	}
	if !oneOf(c.FAQ.Source, "csv", "postgres") {
		errs = append(errs, fmt.Errorf("FAQ_SOURCE must be csv or postgres, got %q", c.FAQ.Source))
	}
	if !oneOf(c.FAQ.MatchMode, "token_set", "ratio") {
		errs = append(errs, fmt.Errorf("FAQ_MATCH_MODE must be token_set or ratio, got %q", c.FAQ.MatchMode))
	}
	if c.FAQ.FrequentMin < 1 {
		errs = append(errs, fmt.Errorf("FAQ_FREQUENT_MIN must be positive, got %d", c.FAQ.FrequentMin))
	}
	if !oneOf(c.ContextStore.Driver, "memory", "redis") {
		errs = append(errs, fmt.Errorf("CONTEXT_STORE must be memory or redis, got %q", c.ContextStore.Driver))
	}
	if !oneOf(c.InteractionLog.Sink, "file", "postgres", "none") {
		errs = append(errs, fmt.Errorf("INTERACTION_SINK must be file, postgres or none, got %q", c.InteractionLog.Sink))
	}
	if c.OpenAI.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("OPENAI_TIMEOUT must be positive, got %d", c.OpenAI.Timeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// NeedsPostgreSQL reports whether any component is backed by PostgreSQL
func (c *Config) NeedsPostgreSQL() bool {
	return c.FAQ.Source == "postgres" || c.InteractionLog.Sink == "postgres"
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// SplitList splits a comma separated setting such as CORS_ALLOWED_METHODS
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper functions

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Warnf("Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		logrus.Warnf("Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
