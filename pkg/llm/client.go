package llm

import "context"

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// GenreClient turns sanitized free text into a list of music genres.
// Input is passed to the model verbatim; callers sanitize it first.
type GenreClient interface {
	GetGenres(ctx context.Context, sanitizedInput string) ([]string, error)
	Name() string
}
