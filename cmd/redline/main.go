// Command redline compares two versions of a paginated document and reports
// what changed.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "redline",
	Short: "Compare versions of paginated documents",
	Long: `redline compares two versions of a paginated document, classifies every
paragraph as matched, removed or added, highlights the differences, and
renders a comparison report.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(level).With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
