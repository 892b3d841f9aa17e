package gauntlet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/gauntlet/pkg/check"
	"github.com/aretw0/gauntlet/pkg/domain"
)

// TestCase resolves a single interaction spec and then evaluates every
// configured check against the resulting one-interaction trace. Unlike a
// Scenario it batch-evaluates: every check runs and records its result
// regardless of earlier outcomes, unless WithStopOnFailure(true) is given.
type TestCase struct {
	Name   string
	Spec   InteractionSpec
	Checks []check.Check
}

// NewTestCase creates a test case over one spec.
func NewTestCase(name string, spec InteractionSpec, checks ...check.Check) *TestCase {
	return &TestCase{Name: name, Spec: spec, Checks: checks}
}

// Run executes the test case. A resolution failure is fatal exactly as in
// a scenario run; check outcomes only decide the final verdict.
func (tc *TestCase) Run(ctx context.Context, opts ...RunOption) domain.TestCaseResult {
	cfg := newRunConfig(false, opts)
	logger := cfg.logger.With("testcase", tc.Name)
	start := time.Now()

	result := domain.TestCaseResult{
		ID:   uuid.NewString(),
		Name: tc.Name,
	}

	interaction, err := tc.Spec.resolve(ctx, domain.EmptyTrace(), 0)
	if err != nil {
		result.Error = err.Error()
		result.Duration = time.Since(start)
		logger.Error("spec resolution failed", "err", err)
		if cfg.recorder != nil {
			cfg.recorder.RecordRun(tc.Name, false, result.Duration)
		}
		return result
	}
	trace := domain.EmptyTrace().Append(interaction)

	for _, c := range tc.Checks {
		if err := ctx.Err(); err != nil {
			result.Error = "run cancelled: " + err.Error()
			break
		}

		cr := c.Run(ctx, trace)
		result.Results = append(result.Results, cr)
		if cfg.recorder != nil {
			cfg.recorder.RecordCheck(c.Kind(), cr.Status)
		}
		logger.Debug("check recorded", "check", c.Name(), "status", string(cr.Status))
		if cr.Status != domain.StatusPassed && cfg.stopOnFailure {
			break
		}
	}

	result.Duration = time.Since(start)
	result.Passed = result.Error == "" && allPassed(result.Results)

	if cfg.recorder != nil {
		cfg.recorder.RecordRun(tc.Name, result.Passed, result.Duration)
	}
	logger.Info("testcase finished",
		"passed", result.Passed, "checks", len(result.Results), "duration", result.Duration)
	return result
}
