package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPPort             string        `env:"HTTP_PORT" envDefault:"8080"`
	DBDriver             string        `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseURL          string        `env:"DATABASE_URL,required"`
	DBMaxOpenConns       int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns       int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxIdle        time.Duration `env:"DB_CONN_MAX_IDLE" envDefault:"5m"`
	DBConnMaxLife        time.Duration `env:"DB_CONN_MAX_LIFE" envDefault:"30m"`
	RedisURL             string        `env:"REDIS_URL"`
	JWTSecret            string        `env:"JWT_SECRET,required"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	RequestTimeout       time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	OTELEndpoint         string        `env:"OTEL_ENDPOINT"`
	PlanSeedFile         string        `env:"PLAN_SEED_FILE"`
	ApplyRateLimitPerMin int           `env:"APPLY_RATE_LIMIT_PER_MIN" envDefault:"3"`
	WriteRateLimitPerMin int           `env:"WRITE_RATE_LIMIT_PER_MIN" envDefault:"60"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDriver = normalizeDriver(cfg.DBDriver)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []string
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
		problems = append(problems, "DB_DRIVER must be postgres or sqlite")
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		problems = append(problems, "DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		problems = append(problems, "JWT_SECRET is required")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}
	if c.ApplyRateLimitPerMin <= 0 {
		problems = append(problems, "APPLY_RATE_LIMIT_PER_MIN must be positive")
	}
	if c.WriteRateLimitPerMin <= 0 {
		problems = append(problems, "WRITE_RATE_LIMIT_PER_MIN must be positive")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func normalizeDriver(driver string) string {
	driver = strings.ToLower(strings.TrimSpace(driver))
	switch driver {
	case "pq", "postgresql", "pgx":
		return "postgres"
	case "sqlite3":
		return "sqlite"
	default:
		return driver
	}
}
