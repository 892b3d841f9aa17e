// Package memory keeps run results in process memory. It backs tests and
// CLI runs that want result lookup without a Redis instance.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/ports"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	scenarios map[string]domain.ScenarioResult
	testcases map[string]domain.TestCaseResult
	mu        sync.RWMutex
}

var _ ports.ResultStore = (*Store)(nil)

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		scenarios: make(map[string]domain.ScenarioResult),
		testcases: make(map[string]domain.TestCaseResult),
	}
}

// SaveScenario implements ports.ResultStore.
func (s *Store) SaveScenario(_ context.Context, result domain.ScenarioResult) error {
	// Copy the results slice so callers can't mutate stored entries.
	result.Results = append([]domain.CheckResult(nil), result.Results...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios[result.ID] = result
	return nil
}

// SaveTestCase implements ports.ResultStore.
func (s *Store) SaveTestCase(_ context.Context, result domain.TestCaseResult) error {
	result.Results = append([]domain.CheckResult(nil), result.Results...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.testcases[result.ID] = result
	return nil
}

// GetScenario implements ports.ResultStore.
func (s *Store) GetScenario(_ context.Context, id string) (domain.ScenarioResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.scenarios[id]
	if !ok {
		return domain.ScenarioResult{}, domain.ErrResultNotFound
	}
	result.Results = append([]domain.CheckResult(nil), result.Results...)
	return result, nil
}

// ListScenarios implements ports.ResultStore.
func (s *Store) ListScenarios(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.scenarios))
	for id := range s.scenarios {
		ids = append(ids, id)
	}
	return ids, nil
}
