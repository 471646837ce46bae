package config

import (
	"os"
	"strings"
)

const (
	defaultAddr        = ":5000"
	defaultProvider    = "openai"
	defaultSecretsFile = "secrets.json"
	defaultOrigin      = "http://127.0.0.1:5500"
)

type Config struct {
	Addr           string
	Provider       string
	BaseURL        string
	SecretsFile    string
	AllowedOrigins []string
	GinMode        string
}

// Load reads settings from the environment. Call godotenv.Load first to
// pick up a .env file.
func Load() Config {
	cfg := Config{
		Addr:           getEnv("ADDR", defaultAddr),
		Provider:       strings.ToLower(getEnv("LLM_PROVIDER", defaultProvider)),
		BaseURL:        strings.TrimSpace(os.Getenv("LLM_BASE_URL")),
		SecretsFile:    getEnv("SECRETS_FILE", defaultSecretsFile),
		AllowedOrigins: []string{defaultOrigin},
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
	}

	for _, origin := range strings.Split(os.Getenv("FRONTEND_URL"), ",") {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" && origin != defaultOrigin {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	return cfg
}

func getEnv(name, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}
	return fallback
}
