package chat

import (
	"context"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"
	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
)

// DefaultModel is used when no cleanup model is configured
const DefaultModel = "gpt-4o-mini"

const providerName = "openai"

// Cleaner rewrites transcripts through the chat completions endpoint
type Cleaner struct {
	client *openai.Client
	model  string
}

// NewCleaner creates a Cleaner for the given client and model
func NewCleaner(client *openai.Client, model string) *Cleaner {
	if model == "" {
		model = DefaultModel
	}
	return &Cleaner{client: client, model: model}
}

// Clean sends the transcript with the fixed cleanup instruction and returns
// the content of the first choice verbatim. A choice without content is a failure.
func (c *Cleaner) Clean(ctx context.Context, text string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: c.model,
		// temperature is omitempty, so 0 would fall back to the server default
		Temperature: math.SmallestNonzeroFloat32,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: api.CleanupInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", &provider.CleanupError{
			Code:     "request_failed",
			Message:  "chat completion failed",
			Provider: providerName,
			Err:      err,
		}
	}
	if len(resp.Choices) == 0 {
		return "", &provider.CleanupError{
			Code:     "empty_response",
			Message:  "chat completion returned no choices",
			Provider: providerName,
		}
	}

	content := messageContent(resp.Choices[0].Message)
	if content == "" {
		return "", &provider.CleanupError{
			Code:     "empty_response",
			Message:  "first choice has no message content",
			Provider: providerName,
		}
	}
	return content, nil
}

// messageContent returns the plain content, or the joined text parts when the
// endpoint answered with a content array.
func messageContent(msg openai.ChatCompletionMessage) string {
	if msg.Content != "" {
		return msg.Content
	}
	var parts strings.Builder
	for _, part := range msg.MultiContent {
		if part.Type == openai.ChatMessagePartTypeText {
			parts.WriteString(part.Text)
		}
	}
	return parts.String()
}
