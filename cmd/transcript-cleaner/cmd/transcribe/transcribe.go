package transcribe

import (
	"fmt"

	"github.com/spf13/cobra"
	"transcript-cleaner/cmd/transcript-cleaner/cmd/bootstrap"
	"transcript-cleaner/internal/api/services"
)

var cleanAfter bool

func init() {
	Cmd.Flags().BoolVar(&cleanAfter, "clean", false, "also run the transcript through the cleanup backend")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe one audio file with the configured speech model",
	Long: `Transcribe one audio file with the configured speech model

- The file goes through the same size limit and scratch copy as an upload
- The transcript is printed to stdout`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, flush, err := bootstrap.Initialize()
		if err != nil {
			return err
		}
		defer flush()

		upload, err := services.NewFileUpload(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := a.Model.Load(ctx); err != nil {
			return fmt.Errorf("load speech model: %w", err)
		}

		result := a.Transcription.Transcribe(ctx, upload)
		if result.Outcome != services.OutcomeTranscribed {
			return fmt.Errorf("%s: %w", result.Outcome, result.Err)
		}

		text := result.Text
		if cleanAfter {
			text = a.Cleanup.Clean(ctx, text).Text
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}
