package ports

import (
	"context"

	"github.com/aretw0/gauntlet/pkg/domain"
)

// ResultStore persists run results. The contract is one-way: stored results
// are reporting data, and nothing guarantees a restored result can be
// turned back into a runnable scenario.
type ResultStore interface {
	// SaveScenario persists one scenario result under its ID.
	SaveScenario(ctx context.Context, result domain.ScenarioResult) error

	// SaveTestCase persists one test case result under its ID.
	SaveTestCase(ctx context.Context, result domain.TestCaseResult) error

	// GetScenario loads a stored scenario result.
	// Returns domain.ErrResultNotFound when the ID is unknown.
	GetScenario(ctx context.Context, id string) (domain.ScenarioResult, error)

	// ListScenarios returns the IDs of every stored scenario result.
	ListScenarios(ctx context.Context) ([]string, error)
}
