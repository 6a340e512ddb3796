package clean

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"transcript-cleaner/cmd/transcript-cleaner/cmd/bootstrap"
)

// Cmd represents the clean command
var Cmd = &cobra.Command{
	Use:   "clean <text|->",
	Short: "Clean up a raw transcript with the configured chat backend",
	Long: `Clean up a raw transcript with the configured chat backend

- Pass the transcript as the argument, or - to read it from stdin
- When the backend fails the original text is printed unchanged`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := args[0]
		if text == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(data)
		}

		a, flush, err := bootstrap.Initialize()
		if err != nil {
			return err
		}
		defer flush()

		result := a.Cleanup.Clean(cmd.Context(), text)
		if result.Degraded {
			a.Logger.Warn("Cleanup backend failed, printing original text", zap.Error(result.Err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return nil
	},
}
