//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"transcript-cleaner/internal/api/server"
	"transcript-cleaner/internal/config"
)

var providerSet = wire.NewSet(
	provideRegistry,
	provideMetrics,
	provideSharedModel,
	provideCleaner,
	provideTranscriptionService,
	provideCleanupService,
	provideServiceContainer,
	provideServerConfig,
	server.NewServer,
	wire.Struct(new(App), "*"),
)

// InitializeApp wires the services and the HTTP server from configuration.
// The shared model is created but not loaded.
func InitializeApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	wire.Build(providerSet)
	return &App{}, nil
}
