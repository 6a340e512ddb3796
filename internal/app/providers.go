package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"transcript-cleaner/internal/api/routes"
	"transcript-cleaner/internal/api/server"
	"transcript-cleaner/internal/api/services"
	"transcript-cleaner/internal/app/api"
	"transcript-cleaner/internal/app/api/provider"
	"transcript-cleaner/internal/config"
)

// App holds the wired components of the process
type App struct {
	Config        *config.Config
	Logger        *zap.Logger
	Model         *provider.SharedModel
	Transcription services.TranscriptionService
	Cleanup       services.CleanupService
	Server        *server.Server
}

// provideRegistry creates a dedicated registry with the runtime collectors
func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg *prometheus.Registry) *provider.Metrics {
	return provider.NewMetrics(reg)
}

// provideSharedModel prepares the speech model; it is loaded by the command before serving
func provideSharedModel(cfg *config.Config) *provider.SharedModel {
	return provider.NewSharedModel(cfg.Transcriber.Backend, cfg.Transcriber.Settings)
}

func provideCleaner(cfg *config.Config) (api.Cleaner, error) {
	return provider.NewCleaner(cfg.Cleanup.Backend, provider.CleanerSettings{
		APIKey:  cfg.Cleanup.APIKey,
		BaseURL: cfg.Cleanup.BaseURL,
		Model:   cfg.Cleanup.Model,
	})
}

func provideTranscriptionService(model *provider.SharedModel, cfg *config.Config, metrics *provider.Metrics, logger *zap.Logger) services.TranscriptionService {
	return services.NewTranscriptionService(model, services.TranscriptionConfig{
		Backend:    cfg.Transcriber.Backend,
		ScratchDir: cfg.Upload.ScratchDir,
		MaxBytes:   config.MaxUploadBytes,
	}, metrics, logger)
}

func provideCleanupService(cleaner api.Cleaner, cfg *config.Config, metrics *provider.Metrics, logger *zap.Logger) services.CleanupService {
	return services.NewCleanupService(cleaner, services.CleanupConfig{
		Backend: cfg.Cleanup.Backend,
		Timeout: cfg.Cleanup.Timeout,
	}, metrics, logger)
}

func provideServiceContainer(transcription services.TranscriptionService, cleanup services.CleanupService) *routes.ServiceContainer {
	return &routes.ServiceContainer{
		TranscriptionService: transcription,
		CleanupService:       cleanup,
	}
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        cfg.Server.ReadTimeout,
		WriteTimeout:       cfg.Server.WriteTimeout,
		IdleTimeout:        cfg.Server.IdleTimeout,
		Environment:        cfg.Server.Environment,
		CORSOrigin:         cfg.Server.CORSOrigin,
		TranscriberBackend: cfg.Transcriber.Backend,
		CleanupBackend:     cfg.Cleanup.Backend,
	}
}
