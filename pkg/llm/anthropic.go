package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 256

// AnthropicClient asks Claude for genres. The Messages API takes no seed or
// response format, so JSON output depends on the prompt alone.
type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
	prompt string
}

func NewAnthropicClient(apiKey, prompt string, opts ...option.RequestOption) *AnthropicClient {
	reqOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	client := anthropic.NewClient(reqOpts...)
	return &AnthropicClient{
		client: &client,
		model:  anthropic.ModelClaudeHaiku4_5,
		prompt: prompt,
	}
}

func (c *AnthropicClient) Name() string {
	return ProviderAnthropic
}

func (c *AnthropicClient) Client() *anthropic.Client {
	return c.client
}

func (c *AnthropicClient) GetGenres(ctx context.Context, sanitizedInput string) ([]string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: anthropicMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: c.prompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(sanitizedInput)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: anthropic: %w", ErrCompletionFailed, err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		sb.WriteString(block.Text)
	}

	content := sb.String()
	if content == "" {
		return nil, ErrEmptyReply
	}

	cleaned := cleanJSONResponse(content)
	if cleaned == "" {
		cleaned = content
	}
	return parseGenres(cleaned)
}
