package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
)

// DefaultModel is used when no cleanup model is configured
const DefaultModel = "gemini-2.0-flash"

const providerName = "gemini"

// Cleaner rewrites transcripts through the Gemini generateContent endpoint
type Cleaner struct {
	client *genai.Client
	model  string
}

// NewCleaner creates a Cleaner backed by the Gemini Developer API
func NewCleaner(ctx context.Context, apiKey, baseURL, model string) (*Cleaner, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Cleaner{client: client, model: model}, nil
}

// Clean sends the transcript with the cleanup instruction as system instruction
func (c *Cleaner) Clean(ctx context.Context, text string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(api.CleanupInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(text), config)
	if err != nil {
		return "", &provider.CleanupError{
			Code:     "request_failed",
			Message:  "generate content failed",
			Provider: providerName,
			Err:      err,
		}
	}
	if len(resp.Candidates) == 0 {
		return "", &provider.CleanupError{
			Code:     "empty_response",
			Message:  "response contained no candidates",
			Provider: providerName,
		}
	}

	candidate := resp.Candidates[0]
	cleaned := candidateText(candidate)
	if cleaned == "" {
		return "", &provider.CleanupError{
			Code:     "empty_response",
			Message:  fmt.Sprintf("first candidate has no text (finish reason %q)", candidate.FinishReason),
			Provider: providerName,
		}
	}
	return cleaned, nil
}

// candidateText joins the non-thought text parts of a candidate. Blocked
// candidates (SAFETY, RECITATION) carry no content.
func candidateText(candidate *genai.Candidate) string {
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil && !part.Thought {
			text.WriteString(part.Text)
		}
	}
	return text.String()
}
