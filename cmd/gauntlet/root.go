package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/gauntlet/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "gauntlet",
	Short: "Gauntlet runs trace-based test suites against LLM applications",
	Long: `Gauntlet records interactions with a system under test into an immutable
trace and validates it with composable checks, including LLM-judge checks.
Suites are declared in YAML and executed fail-fast (scenarios) or in batch
(test cases).`,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
}

// newLogger builds the logger from the persistent flags.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("log-json")

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return logging.New(level, jsonLogs), nil
}
