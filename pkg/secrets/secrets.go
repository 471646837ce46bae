package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	ProviderOpenAI    = "open-ai"
	ProviderAnthropic = "anthropic"

	DefaultFile = "secrets.json"
)

var ErrMissing = errors.New("secret not available")

// MissingError names the secret that could not be loaded.
type MissingError struct {
	Key string
	Err error
}

func (e *MissingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("secret %q not available", e.Key)
	}
	return fmt.Sprintf("secret %q not available: %v", e.Key, e.Err)
}

func (e *MissingError) Unwrap() error {
	return e.Err
}

func (e *MissingError) Is(target error) bool {
	return target == ErrMissing
}

type Provider interface {
	APIKey(provider string) (string, error)
	Prompt() (string, error)
}

// FileProvider reads secrets from a JSON document of the form
// {"open-ai": {"api-key": "...", "prompt": "..."}}.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	if path == "" {
		path = DefaultFile
	}
	return &FileProvider{path: path}
}

func (p *FileProvider) APIKey(provider string) (string, error) {
	key, err := p.value(provider, "api-key")
	return strings.TrimSpace(key), err
}

// Prompt returns the stored prompt verbatim.
func (p *FileProvider) Prompt() (string, error) {
	return p.value(ProviderOpenAI, "prompt")
}

// value decodes only the requested key/sub-key, so unrelated sections may
// hold any JSON type.
func (p *FileProvider) value(key, subKey string) (string, error) {
	name := key + "." + subKey

	data, err := os.ReadFile(p.path)
	if err != nil {
		return "", &MissingError{Key: name, Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", &MissingError{Key: name, Err: fmt.Errorf("parse %s: %w", p.path, err)}
	}

	rawSection, ok := doc[key]
	if !ok {
		return "", &MissingError{Key: name}
	}

	var section map[string]json.RawMessage
	if err := json.Unmarshal(rawSection, &section); err != nil {
		return "", &MissingError{Key: name, Err: fmt.Errorf("section %q: %w", key, err)}
	}

	rawValue, ok := section[subKey]
	if !ok {
		return "", &MissingError{Key: name}
	}

	var value string
	if err := json.Unmarshal(rawValue, &value); err != nil {
		return "", &MissingError{Key: name, Err: err}
	}
	if strings.TrimSpace(value) == "" {
		return "", &MissingError{Key: name}
	}
	return value, nil
}

// EnvProvider reads secrets from the process environment.
type EnvProvider struct{}

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

var apiKeyEnv = map[string]string{
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
}

func (p *EnvProvider) APIKey(provider string) (string, error) {
	name, ok := apiKeyEnv[provider]
	if !ok {
		return "", &MissingError{Key: provider + ".api-key", Err: fmt.Errorf("unknown provider %q", provider)}
	}
	key, err := lookupEnv(name)
	return strings.TrimSpace(key), err
}

func (p *EnvProvider) Prompt() (string, error) {
	return lookupEnv("GENRE_PROMPT")
}

func lookupEnv(name string) (string, error) {
	value := os.Getenv(name)
	if strings.TrimSpace(value) == "" {
		return "", &MissingError{Key: name}
	}
	return value, nil
}

// Chain returns the first value any of its providers can supply.
type Chain []Provider

func (c Chain) APIKey(provider string) (string, error) {
	return c.first(func(p Provider) (string, error) { return p.APIKey(provider) })
}

func (c Chain) Prompt() (string, error) {
	return c.first(func(p Provider) (string, error) { return p.Prompt() })
}

func (c Chain) first(get func(Provider) (string, error)) (string, error) {
	err := error(&MissingError{Key: "chain", Err: errors.New("no providers configured")})
	for _, p := range c {
		value, perr := get(p)
		if perr == nil {
			return value, nil
		}
		err = perr
	}
	return "", err
}
