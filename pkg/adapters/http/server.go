// Package http serves suite runs over HTTP: POST a suite definition, get
// the run results back as JSON. Stored results and prometheus metrics are
// exposed alongside.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/gauntlet"
	"github.com/aretw0/gauntlet/pkg/check"
	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/ports"
	"github.com/aretw0/gauntlet/pkg/suite"
)

// Server runs suites posted by clients.
type Server struct {
	store    ports.ResultStore
	recorder ports.Recorder
	registry *check.Registry
	logger   *slog.Logger
	maxBody  int64
}

// Option configures the server.
type Option func(*Server)

// WithStore persists every run result after responding.
func WithStore(store ports.ResultStore) Option {
	return func(s *Server) { s.store = store }
}

// WithRecorder attaches run telemetry.
func WithRecorder(r ports.Recorder) Option {
	return func(s *Server) { s.recorder = r }
}

// WithRegistry overrides the check registry used to decode suites.
func WithRegistry(registry *check.Registry) Option {
	return func(s *Server) { s.registry = registry }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewHandler builds the HTTP handler.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		registry: check.DefaultRegistry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBody:  1 << 20,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Post("/run", s.handleRun)
	r.Get("/results/{id}", s.handleGetResult)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRun parses the posted suite (YAML, which also covers JSON bodies)
// and executes it synchronously. The request context governs cancellation.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.maxBody))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	parsed, err := suite.ParseWithRegistry(body, s.registry)
	if err != nil {
		s.logger.Warn("suite rejected", "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	var runOpts []gauntlet.RunOption
	if s.recorder != nil {
		runOpts = append(runOpts, gauntlet.WithRecorder(s.recorder))
	}

	results := parsed.Run(r.Context(), runOpts...)
	s.logger.Info("suite executed", "suite", parsed.Name, "passed", results.Passed)

	if s.store != nil {
		for _, res := range results.Scenarios {
			if err := s.store.SaveScenario(r.Context(), res); err != nil {
				s.logger.Error("failed to persist scenario result", "id", res.ID, "err", err)
			}
		}
		for _, res := range results.TestCases {
			if err := s.store.SaveTestCase(r.Context(), res); err != nil {
				s.logger.Error("failed to persist testcase result", "id", res.ID, "err", err)
			}
		}
	}

	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "no result store configured", http.StatusNotFound)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := s.store.GetScenario(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrResultNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.logger.Error("failed to load result", "id", id, "err", err)
		http.Error(w, "failed to load result", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
