// Package gen defines the contract with the generation collaborator that
// LLM-judge checks evaluate traces with. The engine knows nothing about the
// provider behind it: only that it takes a prompt plus a required output
// schema and may block on I/O.
package gen

import (
	"context"
	"sync"

	"github.com/aretw0/gauntlet/pkg/schema"
)

// Generator produces a structured response for a prompt. The returned map
// must conform to the given schema; callers validate it and wrap any
// non-conformance as a domain.GenerationError.
type Generator interface {
	Generate(ctx context.Context, prompt string, s schema.Schema) (map[string]any, error)
}

// Func adapts a plain function to the Generator interface.
type Func func(ctx context.Context, prompt string, s schema.Schema) (map[string]any, error)

// Generate implements Generator.
func (f Func) Generate(ctx context.Context, prompt string, s schema.Schema) (map[string]any, error) {
	return f(ctx, prompt, s)
}

var (
	defaultMu  sync.RWMutex
	defaultGen Generator
)

// SetDefault installs the process-wide default generator. It must be called
// before concurrent runs begin; judge checks without an explicit generator
// read it on every run.
func SetDefault(g Generator) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultGen = g
}

// Default returns the configured process-wide generator, or nil when unset.
func Default() Generator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultGen
}
