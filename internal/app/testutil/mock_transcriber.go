package testutil

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a mock implementation of the api.Transcriber interface.
// When no testify expectations are registered it answers with its defaults.
type MockTranscriber struct {
	mock.Mock
	mu sync.RWMutex

	DefaultLatency  time.Duration
	DefaultError    error
	DefaultResponse string

	CallHistory []TranscriptionCall
}

// TranscriptionCall represents a single transcription call for tracking
type TranscriptionCall struct {
	InputFilePath string
	// Content is the file as it was on disk when the model was invoked
	Content   []byte
	FileFound bool
	Timestamp time.Time
}

// NewMockTranscriber creates a new MockTranscriber with sensible defaults
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
	}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	content, err := os.ReadFile(inputFilePath)
	call := TranscriptionCall{
		InputFilePath: inputFilePath,
		Content:       content,
		FileFound:     err == nil,
		Timestamp:     time.Now(),
	}

	m.mu.Lock()
	m.CallHistory = append(m.CallHistory, call)
	latency, defaultErr, response := m.DefaultLatency, m.DefaultError, m.DefaultResponse
	hasExpectations := len(m.ExpectedCalls) > 0
	m.mu.Unlock()

	if hasExpectations {
		args := m.Called(ctx, inputFilePath)
		return args.String(0), args.Error(1)
	}

	if latency > 0 {
		select {
		case <-time.After(latency):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if defaultErr != nil {
		return "", defaultErr
	}
	return response, nil
}

// WithDefaultLatency sets the default processing latency
func (m *MockTranscriber) WithDefaultLatency(latency time.Duration) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultLatency = latency
	return m
}

// WithDefaultError sets the default error to return
func (m *MockTranscriber) WithDefaultError(err error) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultError = err
	return m
}

// WithDefaultResponse sets the default response text
func (m *MockTranscriber) WithDefaultResponse(response string) *MockTranscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DefaultResponse = response
	return m
}

// Calls returns a copy of the call history
func (m *MockTranscriber) Calls() []TranscriptionCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]TranscriptionCall(nil), m.CallHistory...)
}

// CallCount returns the number of Transcript invocations
func (m *MockTranscriber) CallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.CallHistory)
}
