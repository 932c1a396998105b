package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "6666", cfg.Port)
	assert.Empty(t, cfg.WebhookSecret)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("GITHUB_WEBHOOK_SECRET", "topsecret")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/hookpulse?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "topsecret", cfg.WebhookSecret)
	assert.Equal(t, "postgres://localhost:5432/hookpulse?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
