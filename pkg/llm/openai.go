package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	openAIModel = openai.ChatModelGPT3_5Turbo

	// genreSeed biases the model toward repeatable output. OpenAI treats
	// it as best effort only.
	genreSeed int64 = 69
)

type OpenAIClient struct {
	client *openai.Client
	prompt string
}

// NewOpenAIClient builds the SDK handle once. SDK retries are disabled so a
// failed call surfaces immediately; opts are applied after the defaults.
func NewOpenAIClient(apiKey, prompt string, opts ...option.RequestOption) *OpenAIClient {
	reqOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	client := openai.NewClient(reqOpts...)
	return &OpenAIClient{
		client: &client,
		prompt: prompt,
	}
}

func (c *OpenAIClient) Name() string {
	return ProviderOpenAI
}

// Client returns the shared SDK handle.
func (c *OpenAIClient) Client() *openai.Client {
	return c.client
}

func (c *OpenAIClient) GetGenres(ctx context.Context, sanitizedInput string) ([]string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, c.params(sanitizedInput))
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %w", ErrCompletionFailed, err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyReply
	}

	return parseGenres(resp.Choices[0].Message.Content)
}

func (c *OpenAIClient) params(sanitizedInput string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openAIModel,
		Seed:  openai.Int(genreSeed),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.prompt),
			openai.UserMessage(sanitizedInput),
		},
	}
}
