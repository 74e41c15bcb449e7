// Package cli wires the redisql command-line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "redisql",
		Short:         "Translate SQL statements into Redis commands",
		Long:          "redisql parses SQL statements and rewrites them as Redis commands\nusing an ordered pattern registry with a direct-generation fallback.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newTransformCommand(),
		newPatternsCommand(),
		newAnalyzeCommand(),
		newLintCommand(),
		newExecCommand(),
	)
	return cmd
}
