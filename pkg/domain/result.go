package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status classifies the outcome of a single check.
type Status string

const (
	// StatusPassed means the system under test met the check's criterion.
	StatusPassed Status = "passed"
	// StatusFailed means the criterion was evaluated and not met.
	StatusFailed Status = "failed"
	// StatusError means the checking machinery itself broke (bad path,
	// generation failure); it says nothing about the system under test.
	StatusError Status = "error"
)

// CheckResult is the immutable outcome of one check execution.
type CheckResult struct {
	Status  Status             `json:"status"`
	Message string             `json:"message,omitempty"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
	Details map[string]any     `json:"details,omitempty"`
}

// Pass builds a passed result with a formatted message.
func Pass(format string, args ...any) CheckResult {
	return CheckResult{Status: StatusPassed, Message: fmt.Sprintf(format, args...)}
}

// Fail builds a failed result with a formatted message.
func Fail(format string, args ...any) CheckResult {
	return CheckResult{Status: StatusFailed, Message: fmt.Sprintf(format, args...)}
}

// Errored builds an error-status result with a formatted message.
func Errored(format string, args ...any) CheckResult {
	return CheckResult{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// ScenarioResult aggregates one scenario run: the final trace, every
// recorded check result, and the overall verdict.
type ScenarioResult struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Trace    Trace         `json:"trace"`
	Results  []CheckResult `json:"results"`
	Duration time.Duration `json:"-"`
	// Error is set only on fatal aborts (spec resolution or cancellation).
	Error string `json:"error,omitempty"`
}

// MarshalJSON flattens Duration into milliseconds so the serialized tree is
// JSON-native rather than nanosecond counts.
func (r ScenarioResult) MarshalJSON() ([]byte, error) {
	type alias ScenarioResult
	return json.Marshal(struct {
		alias
		DurationMS int64 `json:"duration_ms"`
	}{alias(r), r.Duration.Milliseconds()})
}

// UnmarshalJSON restores a serialized scenario result, mapping duration_ms
// back to Duration. Restored results are reporting data only.
func (r *ScenarioResult) UnmarshalJSON(data []byte) error {
	type alias ScenarioResult
	aux := struct {
		*alias
		DurationMS int64 `json:"duration_ms"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Duration = time.Duration(aux.DurationMS) * time.Millisecond
	return nil
}

// TestCaseResult aggregates one test case run. Unlike ScenarioResult it
// carries no trace: a test case resolves exactly one interaction and the
// per-check messages are the interesting part.
type TestCaseResult struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Results  []CheckResult `json:"results"`
	Duration time.Duration `json:"-"`
	Error    string        `json:"error,omitempty"`
}

// MarshalJSON flattens Duration into milliseconds.
func (r TestCaseResult) MarshalJSON() ([]byte, error) {
	type alias TestCaseResult
	return json.Marshal(struct {
		alias
		DurationMS int64 `json:"duration_ms"`
	}{alias(r), r.Duration.Milliseconds()})
}

// UnmarshalJSON restores a serialized test case result, mapping duration_ms
// back to Duration.
func (r *TestCaseResult) UnmarshalJSON(data []byte) error {
	type alias TestCaseResult
	aux := struct {
		*alias
		DurationMS int64 `json:"duration_ms"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Duration = time.Duration(aux.DurationMS) * time.Millisecond
	return nil
}
