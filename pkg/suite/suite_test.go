package suite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gauntlet/pkg/check"
	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/suite"
)

const sampleSuite = `
name: support-bot
scenarios:
  - name: greeting
    steps:
      - interaction:
          inputs: "Hello"
          outputs: "Hi! How can I help?"
          metadata:
            model: test-1
      - check:
          kind: equality
          path: interactions[-1].outputs
          expected: "Hi! How can I help?"
      - check:
          kind: contains
          path: interactions[-1].outputs
          needle: "help"
testcases:
  - name: capital
    interaction:
      inputs: "Capital of France?"
      outputs: "Paris"
    checks:
      - kind: contains
        path: interactions[0].outputs
        needle: paris
        ignore_case: true
      - kind: equality
        path: interactions[0].inputs
        expected: "Capital of France?"
`

func TestParse(t *testing.T) {
	s, err := suite.Parse([]byte(sampleSuite))
	require.NoError(t, err)

	assert.Equal(t, "support-bot", s.Name)
	require.Len(t, s.Scenarios, 1)
	assert.Equal(t, "greeting", s.Scenarios[0].Name)
	assert.Len(t, s.Scenarios[0].Steps, 3)

	require.Len(t, s.TestCases, 1)
	assert.Equal(t, "capital", s.TestCases[0].Name)
	assert.Len(t, s.TestCases[0].Checks, 2)
}

func TestParseAndRun(t *testing.T) {
	s, err := suite.Parse([]byte(sampleSuite))
	require.NoError(t, err)

	results := s.Run(context.Background())

	assert.True(t, results.Passed)
	assert.Equal(t, "support-bot", results.Suite)
	require.Len(t, results.Scenarios, 1)
	assert.True(t, results.Scenarios[0].Passed)
	require.Len(t, results.TestCases, 1)
	assert.True(t, results.TestCases[0].Passed)
	assert.Len(t, results.TestCases[0].Results, 2)
}

func TestRun_OneFailingUnitFailsTheSuite(t *testing.T) {
	src := `
name: mixed
scenarios:
  - name: passes
    steps:
      - interaction:
          inputs: q
          outputs: a
      - check:
          kind: equality
          path: interactions[-1].outputs
          expected: a
  - name: fails
    steps:
      - interaction:
          inputs: q
          outputs: a
      - check:
          kind: equality
          path: interactions[-1].outputs
          expected: b
`
	s, err := suite.Parse([]byte(src))
	require.NoError(t, err)

	results := s.Run(context.Background())

	assert.False(t, results.Passed)
	require.Len(t, results.Scenarios, 2, "units run independently")
	assert.True(t, results.Scenarios[0].Passed)
	assert.False(t, results.Scenarios[1].Passed)
	assert.Equal(t, domain.StatusFailed, results.Scenarios[1].Results[0].Status)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "missing suite name",
			src:  "scenarios: []",
			want: "suite requires a name",
		},
		{
			name: "scenario without name",
			src:  "name: s\nscenarios:\n  - steps: []",
			want: "requires a name",
		},
		{
			name: "empty step",
			src:  "name: s\nscenarios:\n  - name: sc\n    steps:\n      - {}",
			want: "needs an interaction or a check",
		},
		{
			name: "check without kind",
			src:  "name: s\nscenarios:\n  - name: sc\n    steps:\n      - check:\n          path: interactions[0].outputs",
			want: "check requires a kind",
		},
		{
			name: "unknown check kind",
			src:  "name: s\nscenarios:\n  - name: sc\n    steps:\n      - check:\n          kind: sentiment",
			want: "unknown check kind",
		},
		{
			name: "testcase without interaction",
			src:  "name: s\ntestcases:\n  - name: tc\n    checks: []",
			want: "requires an interaction",
		},
		{
			name: "not yaml",
			src:  "{{{",
			want: "parse suite",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := suite.Parse([]byte(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseWithRegistry_CustomKind(t *testing.T) {
	reg := check.NewRegistry()
	reg.MustRegister("always", func(cfg map[string]any) (check.Check, error) {
		return check.NewFunc("always", func(context.Context, domain.Trace) (bool, error) {
			return true, nil
		}, "ok", "not ok"), nil
	})

	src := `
name: custom
scenarios:
  - name: sc
    steps:
      - interaction:
          inputs: q
          outputs: a
      - check:
          kind: always
`
	s, err := suite.ParseWithRegistry([]byte(src), reg)
	require.NoError(t, err)

	results := s.Run(context.Background())
	assert.True(t, results.Passed)
}
