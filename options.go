package gauntlet

import (
	"io"
	"log/slog"

	"github.com/aretw0/gauntlet/pkg/ports"
)

// RunOption configures a single run.
type RunOption func(*runConfig)

type runConfig struct {
	logger        *slog.Logger
	recorder      ports.Recorder
	stopOnFailure bool
}

func newRunConfig(stopOnFailure bool, opts []RunOption) runConfig {
	cfg := runConfig{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		stopOnFailure: stopOnFailure,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets a structured logger for the run. The default discards
// everything.
func WithLogger(logger *slog.Logger) RunOption {
	return func(cfg *runConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRecorder attaches an execution telemetry sink (e.g. the prometheus
// recorder in pkg/observability).
func WithRecorder(r ports.Recorder) RunOption {
	return func(cfg *runConfig) {
		cfg.recorder = r
	}
}

// WithStopOnFailure overrides the early-stop policy. Scenarios default to
// true (fail-fast), test cases to false (batch evaluation).
func WithStopOnFailure(stop bool) RunOption {
	return func(cfg *runConfig) {
		cfg.stopOnFailure = stop
	}
}
