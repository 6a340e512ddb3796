package whisper

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
	"transcript-cleaner/internal/app/api/provider"
	"transcript-cleaner/internal/app/audio"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client   *openai.Client
	model    string
	language string
	prompt   string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, model, language, prompt string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{
		client:   client,
		model:    model,
		language: language,
		prompt:   prompt,
	}
}

// Transcript uses the OpenAI API for remote transcription. Files whose
// extension the API does not accept are converted to 16kHz WAV first.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	if provider.GetAudioFormatFromFilename(inputFilePath) == "" {
		workDir, err := os.MkdirTemp("", "openai-whisper-")
		if err != nil {
			return "", fmt.Errorf("create work dir: %w", err)
		}
		defer os.RemoveAll(workDir)

		converted, err := audio.ConvertTo16kHzWav(ctx, inputFilePath, workDir)
		if err != nil {
			return "", &provider.TranscriptionError{
				Code:     "conversion_failed",
				Message:  fmt.Sprintf("convert %s: %v", inputFilePath, err),
				Provider: "openai",
				Err:      err,
			}
		}
		inputFilePath = converted
	}

	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
		Language: rt.language,
		Prompt:   rt.prompt,
		Format:   openai.AudioResponseFormatJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", &provider.TranscriptionError{
			Code:      "request_failed",
			Message:   fmt.Sprintf("createTranscription failed: %v", err),
			Provider:  "openai",
			Retryable: true,
			Err:       err,
		}
	}

	return strings.TrimSpace(resp.Text), nil
}
