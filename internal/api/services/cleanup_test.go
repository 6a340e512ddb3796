package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"transcript-cleaner/internal/app/api/provider"
	"transcript-cleaner/internal/app/testutil"
)

func TestClean_Success(t *testing.T) {
	cleaner := new(testutil.MockCleaner)
	cleaner.On("Clean", mock.Anything, "um so like the the meeting is at uh 3pm").
		Return("The meeting is at 3pm.", nil)

	svc := NewCleanupService(cleaner, CleanupConfig{Backend: "mock", Timeout: time.Second}, nil, zaptest.NewLogger(t))
	result := svc.Clean(context.Background(), "um so like the the meeting is at uh 3pm")

	assert.Equal(t, "The meeting is at 3pm.", result.Text)
	assert.False(t, result.Degraded)
	assert.NoError(t, result.Err)
	cleaner.AssertExpectations(t)
}

func TestClean_VerbatimContent(t *testing.T) {
	cleaner := new(testutil.MockCleaner)
	cleaner.On("Clean", mock.Anything, "x").Return("  spaced \n", nil)

	result := NewCleanupService(cleaner, CleanupConfig{Backend: "mock"}, nil, nil).Clean(context.Background(), "x")
	assert.Equal(t, "  spaced \n", result.Text)
}

func TestClean_FallbackOnFailure(t *testing.T) {
	failures := []error{
		errors.New("dial tcp: connection refused"),
		&provider.CleanupError{Code: "request_failed", Message: "status 500", Provider: "openai"},
		&provider.CleanupError{Code: "empty_response", Message: "no choices", Provider: "openai"},
	}
	for _, failure := range failures {
		t.Run(failure.Error(), func(t *testing.T) {
			cleaner := &testutil.MockCleaner{DefaultError: failure}
			svc := NewCleanupService(cleaner, CleanupConfig{Backend: "mock", Timeout: time.Second}, nil, zaptest.NewLogger(t))

			result := svc.Clean(context.Background(), "um hello")
			assert.Equal(t, "um hello", result.Text)
			assert.True(t, result.Degraded)
			assert.ErrorIs(t, result.Err, failure)
		})
	}
}

func TestClean_Timeout(t *testing.T) {
	cleaner := &testutil.MockCleaner{Block: true}
	svc := NewCleanupService(cleaner, CleanupConfig{Backend: "mock", Timeout: 50 * time.Millisecond}, nil, zaptest.NewLogger(t))

	start := time.Now()
	result := svc.Clean(context.Background(), "slow input")

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, "slow input", result.Text)
	assert.True(t, result.Degraded)
	assert.ErrorIs(t, result.Err, context.DeadlineExceeded)
}

func TestClean_EmptyText(t *testing.T) {
	cleaner := &testutil.MockCleaner{}
	result := NewCleanupService(cleaner, CleanupConfig{Backend: "mock"}, nil, nil).Clean(context.Background(), "")

	assert.Equal(t, "", result.Text)
	assert.False(t, result.Degraded)
	assert.Equal(t, []string{""}, cleaner.Inputs())
}

func TestClean_DefaultTimeout(t *testing.T) {
	svc := NewCleanupService(&testutil.MockCleaner{}, CleanupConfig{Backend: "mock"}, nil, nil)
	assert.Equal(t, 30*time.Second, svc.(*cleanupService).config.Timeout)
}

func TestClean_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := provider.NewMetrics(reg)

	ok := NewCleanupService(&testutil.MockCleaner{}, CleanupConfig{Backend: "openai"}, metrics, nil)
	failing := NewCleanupService(&testutil.MockCleaner{DefaultError: errors.New("boom")}, CleanupConfig{Backend: "openai"}, metrics, nil)

	ok.Clean(context.Background(), "a")
	ok.Clean(context.Background(), "b")
	failing.Clean(context.Background(), "c")

	expected := `
# HELP transcript_cleaner_cleanups_total Cleanup requests by backend and outcome.
# TYPE transcript_cleaner_cleanups_total counter
transcript_cleaner_cleanups_total{backend="openai",outcome="cleaned"} 2
transcript_cleaner_cleanups_total{backend="openai",outcome="degraded"} 1
`
	require.NoError(t, promtestutil.GatherAndCompare(reg, strings.NewReader(expected), "transcript_cleaner_cleanups_total"))
}
