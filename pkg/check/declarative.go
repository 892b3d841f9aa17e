package check

import (
	"context"
	"reflect"
	"strings"

	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/extract"
)

// Kinds of the built-in declarative checks.
const (
	KindEquality = "equality"
	KindContains = "contains"
)

// Equality asserts that the value addressed by Path deep-equals Expected.
// Numeric values are compared by magnitude, so an expected 3 matches a 3.0
// decoded from JSON.
type Equality struct {
	Label    string `json:"name,omitempty" mapstructure:"name"`
	Path     string `json:"path" mapstructure:"path"`
	Expected any    `json:"expected" mapstructure:"expected"`
}

// Name implements Check.
func (c *Equality) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return KindEquality
}

// Kind implements Check.
func (c *Equality) Kind() string { return KindEquality }

// Run implements Check.
func (c *Equality) Run(_ context.Context, trace domain.Trace) domain.CheckResult {
	got, err := extract.Extract(trace, c.Path)
	if err != nil {
		return domain.Errored("%v", err)
	}
	if !equalValues(got, c.Expected) {
		return domain.Fail("expected %v at %s, got %v", c.Expected, c.Path, got)
	}
	return domain.Pass("value at %s equals %v", c.Path, c.Expected)
}

// Contains asserts that the string addressed by Path contains Needle.
type Contains struct {
	Label      string `json:"name,omitempty" mapstructure:"name"`
	Path       string `json:"path" mapstructure:"path"`
	Needle     string `json:"needle" mapstructure:"needle"`
	IgnoreCase bool   `json:"ignore_case,omitempty" mapstructure:"ignore_case"`
}

// Name implements Check.
func (c *Contains) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return KindContains
}

// Kind implements Check.
func (c *Contains) Kind() string { return KindContains }

// Run implements Check.
func (c *Contains) Run(_ context.Context, trace domain.Trace) domain.CheckResult {
	got, err := extract.Extract(trace, c.Path)
	if err != nil {
		return domain.Errored("%v", err)
	}
	text, ok := got.(string)
	if !ok {
		return domain.Errored("value at %s is %T, not a string", c.Path, got)
	}

	haystack, needle := text, c.Needle
	if c.IgnoreCase {
		haystack = strings.ToLower(haystack)
		needle = strings.ToLower(needle)
	}
	if !strings.Contains(haystack, needle) {
		return domain.Fail("value at %s does not contain %q: %q", c.Path, c.Needle, text)
	}
	return domain.Pass("value at %s contains %q", c.Path, c.Needle)
}

// equalValues is reflect.DeepEqual with numeric coercion: YAML and JSON
// decoding disagree on int versus float64, and that difference should not
// fail a check.
func equalValues(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return aok && bok && af == bf
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
