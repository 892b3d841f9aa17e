package gauntlet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/gauntlet/pkg/check"
	"github.com/aretw0/gauntlet/pkg/domain"
)

// Step is one element of a scenario sequence: exactly one of Spec or Check
// is set.
type Step struct {
	Spec  *InteractionSpec
	Check check.Check
}

// Scenario is a named ordered sequence of interaction specs and checks
// sharing one evolving trace. Execution is sequential and, by default,
// fail-fast: the first check that does not pass stops the run.
type Scenario struct {
	Name  string
	Steps []Step
}

// NewScenario creates an empty scenario.
func NewScenario(name string) *Scenario {
	return &Scenario{Name: name}
}

// AddSpec appends an interaction spec to the sequence.
func (s *Scenario) AddSpec(spec InteractionSpec) *Scenario {
	s.Steps = append(s.Steps, Step{Spec: &spec})
	return s
}

// AddCheck appends a check to the sequence.
func (s *Scenario) AddCheck(c check.Check) *Scenario {
	s.Steps = append(s.Steps, Step{Check: c})
	return s
}

// Run executes the sequence in order against an initially empty trace.
//
// Each spec resolves against the trace committed so far; a check at
// position k therefore sees exactly the interactions resolved before it.
// A resolution failure aborts the run with the error recorded on the
// result; a non-passed check stops it under the fail-fast policy. Run
// never returns an error: every outcome is observable on the result.
func (s *Scenario) Run(ctx context.Context, opts ...RunOption) domain.ScenarioResult {
	cfg := newRunConfig(true, opts)
	logger := cfg.logger.With("scenario", s.Name)
	start := time.Now()

	result := domain.ScenarioResult{
		ID:    uuid.NewString(),
		Name:  s.Name,
		Trace: domain.EmptyTrace(),
	}

	trace := domain.EmptyTrace()

steps:
	for i, step := range s.Steps {
		// Cancellation between steps discards nothing already committed.
		if err := ctx.Err(); err != nil {
			result.Error = "run cancelled: " + err.Error()
			logger.Warn("run cancelled", "position", i, "err", err)
			break
		}

		switch {
		case step.Spec != nil:
			interaction, err := step.Spec.resolve(ctx, trace, i)
			if err != nil {
				result.Error = err.Error()
				logger.Error("spec resolution failed", "position", i, "err", err)
				break steps
			}
			trace = trace.Append(interaction)
			logger.Debug("interaction committed", "position", i, "trace_len", trace.Len())

		case step.Check != nil:
			cr := step.Check.Run(ctx, trace)
			result.Results = append(result.Results, cr)
			if cfg.recorder != nil {
				cfg.recorder.RecordCheck(step.Check.Kind(), cr.Status)
			}
			logger.Debug("check recorded",
				"position", i, "check", step.Check.Name(), "status", string(cr.Status))
			if cr.Status != domain.StatusPassed && cfg.stopOnFailure {
				break steps
			}

		default:
			result.Error = "empty step in sequence"
			logger.Error("empty step", "position", i)
			break steps
		}
	}

	result.Trace = trace
	result.Duration = time.Since(start)
	result.Passed = result.Error == "" && allPassed(result.Results)

	if cfg.recorder != nil {
		cfg.recorder.RecordRun(s.Name, result.Passed, result.Duration)
	}
	logger.Info("scenario finished",
		"passed", result.Passed, "checks", len(result.Results), "duration", result.Duration)
	return result
}

func allPassed(results []domain.CheckResult) bool {
	for _, r := range results {
		if r.Status != domain.StatusPassed {
			return false
		}
	}
	return true
}
