// Package cli implements the puzzlebox command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"puzzlebox/pkg/rng"
)

var verbose bool

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "puzzlebox",
		Short:         "Generate, solve, score, and render cylindrical puzzle-box mazes",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newBatchCmd())
	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func randomSeed() int64 {
	return rng.NewRandom().Int64()
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
