package llm

import (
	"errors"
	"fmt"
	"strings"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaioption "github.com/openai/openai-go/v3/option"

	"github.com/AlecUrbany/CS-4800/pkg/secrets"
)

type Config struct {
	Provider string
	// BaseURL overrides the vendor endpoint, mainly for tests and proxies.
	BaseURL string
}

// NewGenreClient loads the credential and prompt and builds the client for
// cfg.Provider. It runs once at startup; any failure is a *ConfigError.
func NewGenreClient(cfg Config, sp secrets.Provider) (GenreClient, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderOpenAI
	}

	var secretKey string
	switch provider {
	case ProviderOpenAI:
		secretKey = secrets.ProviderOpenAI
	case ProviderAnthropic:
		secretKey = secrets.ProviderAnthropic
	default:
		return nil, &ConfigError{Setting: "provider", Err: fmt.Errorf("unknown provider %q", cfg.Provider)}
	}

	if sp == nil {
		return nil, &ConfigError{Setting: "secrets", Err: errors.New("no secrets provider")}
	}

	apiKey, err := sp.APIKey(secretKey)
	if err != nil {
		return nil, &ConfigError{Setting: "api key", Err: err}
	}

	prompt, err := sp.Prompt()
	if err != nil {
		return nil, &ConfigError{Setting: "prompt", Err: err}
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, &ConfigError{Setting: "prompt", Err: errors.New("prompt is empty")}
	}

	switch provider {
	case ProviderAnthropic:
		var opts []anthropicoption.RequestOption
		if cfg.BaseURL != "" {
			opts = append(opts, anthropicoption.WithBaseURL(cfg.BaseURL))
		}
		return NewAnthropicClient(apiKey, prompt, opts...), nil
	default:
		var opts []openaioption.RequestOption
		if cfg.BaseURL != "" {
			opts = append(opts, openaioption.WithBaseURL(cfg.BaseURL))
		}
		return NewOpenAIClient(apiKey, prompt, opts...), nil
	}
}
