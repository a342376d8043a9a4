package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config is the process configuration, read from the environment once at
// startup. AdminKeyHash is a bcrypt hash of the admin API key; the plain key
// never lives in config.
type Config struct {
	DBDSN        string `validate:"required"`
	HTTPAddr     string `validate:"required,hostname_port"`
	AdminKeyHash string `validate:"required"`
	SyncSchedule string `validate:"required"`
}

func Load() (Config, error) {
	cfg := Config{
		DBDSN:        os.Getenv("DB_DSN"),
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		AdminKeyHash: os.Getenv("ADMIN_KEY_HASH"),
		SyncSchedule: envOr("SYNC_SCHEDULE", "@every 5m"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
