package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
)

// CleanupConfig holds the cleanup call settings
type CleanupConfig struct {
	Backend string
	Timeout time.Duration
}

type cleanupService struct {
	cleaner api.Cleaner
	config  CleanupConfig
	metrics *provider.Metrics
	logger  *zap.Logger
}

// NewCleanupService creates a service around a remote cleanup backend
func NewCleanupService(cleaner api.Cleaner, config CleanupConfig, metrics *provider.Metrics, logger *zap.Logger) CleanupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &cleanupService{
		cleaner: cleaner,
		config:  config,
		metrics: metrics,
		logger:  logger.With(zap.String("backend", config.Backend)),
	}
}

// Clean makes a single attempt bounded by the configured timeout. Any failure
// degrades to returning the input unchanged.
func (s *cleanupService) Clean(ctx context.Context, text string) CleanupResult {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	cleaned, err := s.cleaner.Clean(ctx, text)
	latency := time.Since(start)

	if err != nil {
		s.logger.Warn("Cleanup failed, returning original text",
			zap.Duration("latency", latency),
			zap.Error(err))
		s.metrics.RecordCleanup(s.config.Backend, provider.OutcomeDegraded, latency)
		return CleanupResult{Text: text, Degraded: true, Err: err}
	}

	s.metrics.RecordCleanup(s.config.Backend, provider.OutcomeCleaned, latency)
	return CleanupResult{Text: cleaned}
}
