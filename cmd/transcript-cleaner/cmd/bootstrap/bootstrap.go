// Package bootstrap turns the global flags into a wired application.
package bootstrap

import (
	"fmt"

	"transcript-cleaner/internal/app"
	"transcript-cleaner/internal/app/logging"
	"transcript-cleaner/internal/config"
)

var (
	ConfigPath string
	Verbose    bool
)

// Initialize loads configuration, installs the global logger and wires the
// application. A missing cleanup credential is returned as an error here, so
// no command runs without it. The returned function flushes the logger.
func Initialize() (*app.App, func(), error) {
	cfg, err := config.InitializeConfig(ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("configuration: %w", err)
	}

	logger, flush, err := logging.Install(Verbose || !cfg.IsProduction())
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}

	a, err := app.InitializeApp(cfg, logger)
	if err != nil {
		flush()
		return nil, nil, err
	}
	return a, flush, nil
}
