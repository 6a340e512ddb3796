package services

import (
	"errors"

	"transcript-cleaner/internal/app/api/provider"
)

// Outcome classifies a transcription request. The values double as metric labels.
type Outcome string

const (
	OutcomeTranscribed Outcome = provider.OutcomeTranscribed
	OutcomeRejected    Outcome = provider.OutcomeRejected
	OutcomeFailed      Outcome = provider.OutcomeFailed
)

// ErrFileTooLarge is the Err of a rejected TranscriptionResult
var ErrFileTooLarge = errors.New("upload exceeds size limit")

// TranscriptionResult is the explicit outcome of one upload. Text is only
// meaningful for OutcomeTranscribed; Err is set for the other two.
type TranscriptionResult struct {
	Outcome Outcome
	Text    string
	Err     error
}

// CleanupResult is the outcome of one cleanup call. When Degraded is true the
// remote call failed, Err holds the reason and Text is the original input.
type CleanupResult struct {
	Text     string
	Degraded bool
	Err      error
}
