package config

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"ADDR", "LLM_PROVIDER", "LLM_BASE_URL", "SECRETS_FILE", "FRONTEND_URL", "GIN_MODE"} {
		t.Setenv(name, "")
	}

	cfg := Load()

	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "", cfg.BaseURL)
	assert.Equal(t, "secrets.json", cfg.SecretsFile)
	assert.Equal(t, []string{"http://127.0.0.1:5500"}, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", "127.0.0.1:8080")
	t.Setenv("LLM_PROVIDER", "Anthropic")
	t.Setenv("LLM_BASE_URL", " http://localhost:9999 ")
	t.Setenv("SECRETS_FILE", "/run/secrets/sentisounds.json")
	t.Setenv("FRONTEND_URL", "https://sentisounds.app/, http://127.0.0.1:5500,,http://localhost:3000")
	t.Setenv("GIN_MODE", "release")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, "/run/secrets/sentisounds.json", cfg.SecretsFile)
	assert.Equal(t, []string{"http://127.0.0.1:5500", "https://sentisounds.app", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "release", cfg.GinMode)
}
