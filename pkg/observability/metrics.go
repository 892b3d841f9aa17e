// Package observability exposes run telemetry as prometheus metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/ports"
)

// Metrics implements ports.Recorder on prometheus collectors.
type Metrics struct {
	runs     *prometheus.CounterVec
	checks   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ ports.Recorder = (*Metrics)(nil)

// New creates and registers the collectors. Pass nil to use the default
// registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gauntlet",
			Name:      "runs_total",
			Help:      "Completed scenario and testcase runs by outcome.",
		}, []string{"outcome"}),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gauntlet",
			Name:      "checks_total",
			Help:      "Recorded check results by kind and status.",
		}, []string{"kind", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gauntlet",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of runs by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.runs, m.checks, m.duration)
	return m
}

// RecordRun implements ports.Recorder.
func (m *Metrics) RecordRun(_ string, passed bool, duration time.Duration) {
	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordCheck implements ports.Recorder.
func (m *Metrics) RecordCheck(kind string, status domain.Status) {
	m.checks.WithLabelValues(kind, string(status)).Inc()
}
