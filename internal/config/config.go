package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ethanwang/hookpulse/internal/validate"
)

type Config struct {
	Port string `validate:"required,numeric"`
	// WebhookSecret is optional: when empty, signature verification is
	// skipped and the server warns about it at startup.
	WebhookSecret string
	// DatabaseURL is optional: when empty, delivery recording and the
	// deliveries API are disabled.
	DatabaseURL string `validate:"omitempty,uri"`
}

func Load() (*Config, error) {
	// Best-effort: load .env from the working directory.
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:          getEnv("PORT", "6666"),
		WebhookSecret: getEnv("GITHUB_WEBHOOK_SECRET", ""),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
