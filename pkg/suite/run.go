package suite

import (
	"context"

	"github.com/aretw0/gauntlet"
	"github.com/aretw0/gauntlet/pkg/domain"
)

// Results aggregates one full suite run.
type Results struct {
	Suite     string                  `json:"suite"`
	Passed    bool                    `json:"passed"`
	Scenarios []domain.ScenarioResult `json:"scenarios,omitempty"`
	TestCases []domain.TestCaseResult `json:"testcases,omitempty"`
}

// Run executes every scenario and test case in order. Units are independent:
// one failing scenario does not stop the next. The run options are shared by
// every unit.
func (s *Suite) Run(ctx context.Context, opts ...gauntlet.RunOption) Results {
	results := Results{Suite: s.Name, Passed: true}

	for _, scenario := range s.Scenarios {
		r := scenario.Run(ctx, opts...)
		results.Scenarios = append(results.Scenarios, r)
		if !r.Passed {
			results.Passed = false
		}
	}
	for _, tc := range s.TestCases {
		r := tc.Run(ctx, opts...)
		results.TestCases = append(results.TestCases, r)
		if !r.Passed {
			results.Passed = false
		}
	}
	return results
}
