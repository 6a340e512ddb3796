package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
)

// DefaultModel is used when no cleanup model is configured
const DefaultModel = "claude-3-5-haiku-latest"

const (
	providerName     = "anthropic"
	defaultMaxTokens = 4096
)

// Cleaner rewrites transcripts through the Messages API
type Cleaner struct {
	client anthropic.Client
	model  string
}

// NewCleaner creates a Cleaner. SDK retries are disabled so the caller's
// deadline bounds the whole exchange.
func NewCleaner(apiKey, baseURL, model string) *Cleaner {
	if model == "" {
		model = DefaultModel
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Cleaner{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Clean sends the transcript as the single user turn and concatenates the text blocks of the reply
func (c *Cleaner) Clean(ctx context.Context, text string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: defaultMaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: api.CleanupInstruction},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
		Temperature: anthropic.Float(0),
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", &provider.CleanupError{
			Code:     "request_failed",
			Message:  "messages request failed",
			Provider: providerName,
			Err:      err,
		}
	}

	var content strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}
	if content.Len() == 0 {
		return "", &provider.CleanupError{
			Code:     "empty_response",
			Message:  "response contained no text",
			Provider: providerName,
		}
	}
	return content.String(), nil
}
