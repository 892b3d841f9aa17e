// Package report renders suite results as markdown for the CLI.
package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/suite"
)

// Markdown renders the results of one suite run.
func Markdown(results suite.Results) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s — %s\n\n", results.Suite, verdict(results.Passed))

	for _, r := range results.Scenarios {
		fmt.Fprintf(&b, "## Scenario: %s — %s\n\n", r.Name, verdict(r.Passed))
		if r.Error != "" {
			fmt.Fprintf(&b, "**Aborted**: %s\n\n", r.Error)
		}
		writeChecks(&b, r.Results)
		fmt.Fprintf(&b, "Interactions recorded: %d. Duration: %s.\n\n", r.Trace.Len(), r.Duration)
	}

	for _, r := range results.TestCases {
		fmt.Fprintf(&b, "## Test case: %s — %s\n\n", r.Name, verdict(r.Passed))
		if r.Error != "" {
			fmt.Fprintf(&b, "**Aborted**: %s\n\n", r.Error)
		}
		writeChecks(&b, r.Results)
		fmt.Fprintf(&b, "Duration: %s.\n\n", r.Duration)
	}

	return b.String()
}

func writeChecks(b *strings.Builder, results []domain.CheckResult) {
	if len(results) == 0 {
		b.WriteString("_No checks recorded._\n\n")
		return
	}

	b.WriteString("| # | Status | Message |\n|---|--------|--------|\n")
	for i, cr := range results {
		fmt.Fprintf(b, "| %d | %s | %s |\n", i+1, statusCell(cr.Status), escapePipes(cr.Message))
	}
	b.WriteString("\n")
}

func verdict(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}

func statusCell(s domain.Status) string {
	switch s {
	case domain.StatusPassed:
		return "✅ passed"
	case domain.StatusFailed:
		return "❌ failed"
	default:
		return "⚠️ error"
	}
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
