package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"transcript-cleaner/cmd/transcript-cleaner/cmd/bootstrap"
	"transcript-cleaner/internal/app/api/provider"
)

var shutdownTimeout time.Duration

func init() {
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second,
		"how long in-flight requests may run after SIGINT or SIGTERM")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the speech model and run the HTTP API",
	Long: `Load the speech model and run the HTTP API

- The model is loaded once before the listener is opened
- POST /api/transcribe and POST /api/clean share that model and cleanup backend
- SIGINT or SIGTERM drains in-flight requests before exiting`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, flush, err := bootstrap.Initialize()
		if err != nil {
			return err
		}
		defer flush()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a.Logger.Info("Loading speech model",
			zap.String("backend", a.Config.Transcriber.Backend),
			zap.String("cleanup_backend", a.Config.Cleanup.Backend),
			zap.Strings("registered_transcribers", provider.ListRegisteredProviders()),
			zap.Strings("registered_cleaners", provider.ListRegisteredCleaners()),
		)
		if err := a.Model.Load(ctx); err != nil {
			return fmt.Errorf("load speech model: %w", err)
		}

		errCh, err := a.Server.Start()
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	},
}
