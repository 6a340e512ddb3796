package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
	"transcript-cleaner/internal/app/util/files"
)

// TranscriptionConfig holds the upload limits of the transcription service
type TranscriptionConfig struct {
	Backend    string
	ScratchDir string
	MaxBytes   int64
}

type transcriptionService struct {
	model   api.Transcriber
	config  TranscriptionConfig
	metrics *provider.Metrics
	logger  *zap.Logger
}

// NewTranscriptionService creates a service around the shared model
func NewTranscriptionService(model api.Transcriber, config TranscriptionConfig, metrics *provider.Metrics, logger *zap.Logger) TranscriptionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &transcriptionService{
		model:   model,
		config:  config,
		metrics: metrics,
		logger:  logger.With(zap.String("backend", config.Backend)),
	}
}

// Transcribe rejects oversized uploads before touching the disk. Otherwise it
// copies the upload to a scratch file, runs the model once and removes the
// scratch file whatever the outcome.
func (s *transcriptionService) Transcribe(ctx context.Context, upload Upload) TranscriptionResult {
	if upload.Size > s.config.MaxBytes {
		s.logger.Info("Upload rejected",
			zap.String("filename", upload.Filename),
			zap.Int64("size", upload.Size),
			zap.Int64("limit", s.config.MaxBytes))
		s.metrics.RecordTranscription(s.config.Backend, provider.OutcomeRejected, 0)
		return TranscriptionResult{Outcome: OutcomeRejected, Err: ErrFileTooLarge}
	}

	start := time.Now()
	text, err := s.transcribe(ctx, upload)
	latency := time.Since(start)

	if err != nil {
		s.logger.Error("Transcription failed",
			zap.String("filename", upload.Filename),
			zap.Duration("latency", latency),
			zap.Error(err))
		s.metrics.RecordTranscription(s.config.Backend, provider.OutcomeFailed, latency)
		return TranscriptionResult{Outcome: OutcomeFailed, Err: err}
	}

	s.logger.Info("Transcription completed",
		zap.String("filename", upload.Filename),
		zap.Int("chars", len(text)),
		zap.Duration("latency", latency))
	s.metrics.RecordTranscription(s.config.Backend, provider.OutcomeTranscribed, latency)
	return TranscriptionResult{Outcome: OutcomeTranscribed, Text: text}
}

func (s *transcriptionService) transcribe(ctx context.Context, upload Upload) (string, error) {
	src, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	scratch, err := files.WriteScratchFile(s.config.ScratchDir, upload.Filename, src)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := scratch.Remove(); err != nil {
			s.logger.Warn("Failed to remove scratch file", zap.String("path", scratch.Path()), zap.Error(err))
		}
	}()

	return s.model.Transcript(ctx, scratch.Path())
}
