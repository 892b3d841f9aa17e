package gen

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/gauntlet/pkg/schema"
)

// Static replays a fixed sequence of responses, one per Generate call.
// It is meant for tests and offline runs where no provider is available.
type Static struct {
	mu        sync.Mutex
	responses []map[string]any
	next      int
}

// NewStatic builds a playback generator over the given responses.
func NewStatic(responses ...map[string]any) *Static {
	return &Static{responses: responses}
}

// Generate returns the next recorded response. It fails once the recording
// is exhausted, which usually means the run issued more judge calls than the
// test anticipated.
func (s *Static) Generate(ctx context.Context, prompt string, _ schema.Schema) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.responses) {
		return nil, fmt.Errorf("static generator exhausted after %d responses", len(s.responses))
	}
	resp := s.responses[s.next]
	s.next++
	return resp, nil
}

// Calls returns how many responses have been consumed.
func (s *Static) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
