package observability_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gauntlet"
	"github.com/aretw0/gauntlet/pkg/check"
	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/observability"
)

func TestRecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.New(reg)

	m.RecordRun("a", true, 10*time.Millisecond)
	m.RecordRun("b", true, 20*time.Millisecond)
	m.RecordRun("c", false, 30*time.Millisecond)

	expected := `
		# HELP gauntlet_runs_total Completed scenario and testcase runs by outcome.
		# TYPE gauntlet_runs_total counter
		gauntlet_runs_total{outcome="failed"} 1
		gauntlet_runs_total{outcome="passed"} 2
	`
	require.NoError(t,
		testutil.GatherAndCompare(reg, strings.NewReader(expected), "gauntlet_runs_total"))
}

func TestRecordCheck(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.New(reg)

	m.RecordCheck("equality", domain.StatusPassed)
	m.RecordCheck("equality", domain.StatusPassed)
	m.RecordCheck("equality", domain.StatusFailed)
	m.RecordCheck("llm_judge", domain.StatusError)

	expected := `
		# HELP gauntlet_checks_total Recorded check results by kind and status.
		# TYPE gauntlet_checks_total counter
		gauntlet_checks_total{kind="equality",status="failed"} 1
		gauntlet_checks_total{kind="equality",status="passed"} 2
		gauntlet_checks_total{kind="llm_judge",status="error"} 1
	`
	require.NoError(t,
		testutil.GatherAndCompare(reg, strings.NewReader(expected), "gauntlet_checks_total"))
}

func TestRecorderWiredIntoScenarioRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.New(reg)

	s := gauntlet.NewScenario("observed").
		AddSpec(gauntlet.Exchange("Hello", "Hi!")).
		AddCheck(&check.Equality{Path: "interactions[-1].outputs", Expected: "Hi!"})

	result := s.Run(context.Background(), gauntlet.WithRecorder(m))
	require.True(t, result.Passed)

	expected := `
		# HELP gauntlet_runs_total Completed scenario and testcase runs by outcome.
		# TYPE gauntlet_runs_total counter
		gauntlet_runs_total{outcome="passed"} 1
	`
	require.NoError(t,
		testutil.GatherAndCompare(reg, strings.NewReader(expected), "gauntlet_runs_total"))

	count, err := testutil.GatherAndCount(reg, "gauntlet_checks_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one check series recorded")
}
