package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"

	ModeTUI   = "tui"
	ModePlain = "plain"
)

type Config struct {
	WorldFile   string `env:"WORLD_FILE"   envDefault:"data/worlds/default.json" validate:"required"`
	SaveBackend string `env:"SAVE_BACKEND" envDefault:"file"                     validate:"oneof=file redis"`
	SavePath    string `env:"SAVE_PATH"    envDefault:"savegame.json"`
	RedisURL    string `env:"REDIS_URL"    envDefault:"redis://localhost:6379/0"`
	SaveKey     string `env:"SAVE_KEY"     envDefault:"savegame"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	LogLevelRaw string `env:"LOG_LEVEL"    envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	ConsoleMode string `env:"CONSOLE_MODE" envDefault:"tui"                      validate:"oneof=tui plain"`
	WrapWidth   int    `env:"WRAP_WIDTH"   envDefault:"80"                       validate:"gte=0"`

	LogLevel slog.Level
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.SaveBackend = strings.ToLower(strings.TrimSpace(cfg.SaveBackend))
	cfg.ConsoleMode = strings.ToLower(strings.TrimSpace(cfg.ConsoleMode))
	cfg.LogLevel = parseLogLevel(cfg.LogLevelRaw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings and the fields the chosen save
// backend depends on.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.SaveBackend {
	case BackendFile:
		if strings.TrimSpace(c.SavePath) == "" {
			return fmt.Errorf("invalid config: SAVE_PATH is required for the file backend")
		}
	case BackendRedis:
		if strings.TrimSpace(c.RedisURL) == "" || strings.TrimSpace(c.SaveKey) == "" {
			return fmt.Errorf("invalid config: REDIS_URL and SAVE_KEY are required for the redis backend")
		}
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
