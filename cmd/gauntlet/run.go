package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/gauntlet"
	"github.com/aretw0/gauntlet/internal/report"
	redisStore "github.com/aretw0/gauntlet/pkg/adapters/redis"
	"github.com/aretw0/gauntlet/pkg/suite"
)

var runCmd = &cobra.Command{
	Use:   "run <suite.yaml>",
	Short: "Run a suite file and report the results",
	Long: `Loads a declarative suite file, executes every scenario and test case,
and prints a report. The exit code is 0 when everything passed and 1
otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		jsonOut, _ := cmd.Flags().GetBool("json")
		redisAddr, _ := cmd.Flags().GetString("redis")

		s, err := suite.Load(args[0])
		if err != nil {
			return err
		}

		// Ctrl-C aborts the run; committed results stay reportable.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		results := s.Run(ctx, gauntlet.WithLogger(logger))

		if redisAddr != "" {
			if err := persistResults(ctx, redisAddr, results); err != nil {
				logger.Error("failed to persist results", "err", err)
			}
		}

		if jsonOut {
			data, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		} else {
			printReport(report.Markdown(results))
		}

		if !results.Passed {
			// Silence cobra's error echo; the report already says why.
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			os.Exit(1)
		}
		return nil
	},
}

// printReport renders markdown for terminals and falls back to the raw text
// when piped or when the terminal has no color support.
func printReport(markdown string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) || termenv.EnvColorProfile() == termenv.Ascii {
		fmt.Print(markdown)
		return
	}

	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

func persistResults(ctx context.Context, redisAddr string, results suite.Results) error {
	store := redisStore.New(redisAddr, "", 0)
	defer store.Close()

	for _, r := range results.Scenarios {
		if err := store.SaveScenario(ctx, r); err != nil {
			return err
		}
	}
	for _, r := range results.TestCases {
		if err := store.SaveTestCase(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Print results as JSON instead of a report")
	runCmd.Flags().String("redis", "", "Redis address to persist results to (host:port)")
}
