package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"transcript-cleaner/cmd/transcript-cleaner/cmd/bootstrap"
	"transcript-cleaner/cmd/transcript-cleaner/cmd/clean"
	"transcript-cleaner/cmd/transcript-cleaner/cmd/serve"
	"transcript-cleaner/cmd/transcript-cleaner/cmd/transcribe"
	"transcript-cleaner/cmd/transcript-cleaner/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcript-cleaner",
	Short: "Speech to text backend with transcript cleanup",
	Long: `Speech to text backend with transcript cleanup.
- serve runs the HTTP API used by the web frontend
- transcribe and clean run a single request from the command line`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(clean.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&bootstrap.ConfigPath, "config", "c", "", "YAML config file (defaults and environment only when empty)")
	rootCmd.PersistentFlags().BoolVarP(&bootstrap.Verbose, "verbose", "V", false, "verbose output")
}
