// Package suite loads declarative test suites from YAML and runs them.
//
// A suite file holds scenarios (mixed sequences of literal interactions and
// checks) and test cases (one interaction, many checks). Checks are decoded
// polymorphically through the check registry using their "kind" field:
//
//	name: support-bot
//	scenarios:
//	  - name: greeting
//	    steps:
//	      - interaction:
//	          inputs: "Hello"
//	          outputs: "Hi!"
//	      - check:
//	          kind: equality
//	          path: interactions[-1].outputs
//	          expected: "Hi!"
//
// Suite files can only express literal interactions; specs that call into
// a live system under test are built in code with gauntlet.FromTrace and
// gauntlet.FromInputs.
package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/gauntlet"
	"github.com/aretw0/gauntlet/pkg/check"
)

// Suite is a named collection of runnable scenarios and test cases.
type Suite struct {
	Name      string
	Scenarios []*gauntlet.Scenario
	TestCases []*gauntlet.TestCase
}

type fileSuite struct {
	Name      string         `yaml:"name"`
	Scenarios []fileScenario `yaml:"scenarios"`
	TestCases []fileTestCase `yaml:"testcases"`
}

type fileScenario struct {
	Name  string     `yaml:"name"`
	Steps []fileStep `yaml:"steps"`
}

type fileStep struct {
	Interaction *fileInteraction `yaml:"interaction"`
	Check       map[string]any   `yaml:"check"`
}

type fileInteraction struct {
	Inputs   any            `yaml:"inputs"`
	Outputs  any            `yaml:"outputs"`
	Metadata map[string]any `yaml:"metadata"`
}

type fileTestCase struct {
	Name        string           `yaml:"name"`
	Interaction *fileInteraction `yaml:"interaction"`
	Checks      []map[string]any `yaml:"checks"`
}

// Load reads and parses a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	return Parse(data)
}

// Parse builds a suite from YAML, decoding checks through the default
// registry.
func Parse(data []byte) (*Suite, error) {
	return ParseWithRegistry(data, check.DefaultRegistry)
}

// ParseWithRegistry builds a suite from YAML using a caller-supplied check
// registry.
func ParseWithRegistry(data []byte, registry *check.Registry) (*Suite, error) {
	var raw fileSuite
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("suite requires a name")
	}

	s := &Suite{Name: raw.Name}

	for i, fs := range raw.Scenarios {
		if fs.Name == "" {
			return nil, fmt.Errorf("scenario %d requires a name", i)
		}
		scenario := gauntlet.NewScenario(fs.Name)
		for j, step := range fs.Steps {
			switch {
			case step.Interaction != nil && step.Check != nil:
				return nil, fmt.Errorf("scenario %q step %d: interaction and check are mutually exclusive", fs.Name, j)
			case step.Interaction != nil:
				scenario.AddSpec(step.Interaction.spec())
			case step.Check != nil:
				c, err := buildCheck(step.Check, registry)
				if err != nil {
					return nil, fmt.Errorf("scenario %q step %d: %w", fs.Name, j, err)
				}
				scenario.AddCheck(c)
			default:
				return nil, fmt.Errorf("scenario %q step %d: needs an interaction or a check", fs.Name, j)
			}
		}
		s.Scenarios = append(s.Scenarios, scenario)
	}

	for i, ft := range raw.TestCases {
		if ft.Name == "" {
			return nil, fmt.Errorf("testcase %d requires a name", i)
		}
		if ft.Interaction == nil {
			return nil, fmt.Errorf("testcase %q requires an interaction", ft.Name)
		}
		tc := gauntlet.NewTestCase(ft.Name, ft.Interaction.spec())
		for j, rawCheck := range ft.Checks {
			c, err := buildCheck(rawCheck, registry)
			if err != nil {
				return nil, fmt.Errorf("testcase %q check %d: %w", ft.Name, j, err)
			}
			tc.Checks = append(tc.Checks, c)
		}
		s.TestCases = append(s.TestCases, tc)
	}

	return s, nil
}

func (fi *fileInteraction) spec() gauntlet.InteractionSpec {
	return gauntlet.InteractionSpec{
		Inputs:   gauntlet.Literal(fi.Inputs),
		Outputs:  gauntlet.Literal(fi.Outputs),
		Metadata: fi.Metadata,
	}
}

func buildCheck(raw map[string]any, registry *check.Registry) (check.Check, error) {
	kind, ok := raw["kind"].(string)
	if !ok || kind == "" {
		return nil, fmt.Errorf("check requires a kind")
	}
	return registry.Decode(kind, raw)
}
