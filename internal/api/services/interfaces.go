package services

import (
	"context"
)

// TranscriptionService turns an uploaded audio blob into text
type TranscriptionService interface {
	Transcribe(ctx context.Context, upload Upload) TranscriptionResult
}

// CleanupService rewrites a raw transcript, falling back to the input on failure
type CleanupService interface {
	Clean(ctx context.Context, text string) CleanupResult
}
