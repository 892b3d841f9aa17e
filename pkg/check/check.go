// Package check defines the validators that inspect a trace and report a
// CheckResult, together with the kind registry used to decode declarative
// check definitions.
//
// A check is read-only over the trace. Machinery failures (bad addressing
// paths, generation transport errors) never escape Run: they are folded
// into an Error-status result so one malfunctioning check cannot crash the
// run it belongs to.
package check

import (
	"context"

	"github.com/aretw0/gauntlet/pkg/domain"
)

// Check validates a trace and yields one result.
type Check interface {
	// Name identifies this check instance in reports.
	Name() string
	// Kind identifies the check type for serialization; see Registry.
	Kind() string
	// Run evaluates the trace. It may block on I/O and must honor ctx.
	Run(ctx context.Context, trace domain.Trace) domain.CheckResult
}

// KindFunc is the kind reported by function-wrapped checks. They hold live
// closures and are not serializable, so the kind is informational only.
const KindFunc = "func"

// Predicate is a boolean condition over a trace.
type Predicate func(ctx context.Context, trace domain.Trace) (bool, error)

// ResultFunc produces a full CheckResult, bypassing the message templates.
type ResultFunc func(ctx context.Context, trace domain.Trace) domain.CheckResult

// FuncCheck wraps a caller-supplied predicate with static pass/fail
// messages, or passes a caller-built CheckResult through unchanged.
type FuncCheck struct {
	name      string
	predicate Predicate
	result    ResultFunc
	passMsg   string
	failMsg   string
}

// NewFunc wraps a boolean predicate. A true return maps to the pass
// message, false to the fail message, and a predicate error to an
// Error-status result.
func NewFunc(name string, predicate Predicate, passMsg, failMsg string) *FuncCheck {
	return &FuncCheck{name: name, predicate: predicate, passMsg: passMsg, failMsg: failMsg}
}

// NewResultFunc wraps a function that already produces a CheckResult.
func NewResultFunc(name string, fn ResultFunc) *FuncCheck {
	return &FuncCheck{name: name, result: fn}
}

// Name implements Check.
func (c *FuncCheck) Name() string { return c.name }

// Kind implements Check.
func (c *FuncCheck) Kind() string { return KindFunc }

// Run implements Check.
func (c *FuncCheck) Run(ctx context.Context, trace domain.Trace) domain.CheckResult {
	if c.result != nil {
		return c.result(ctx, trace)
	}

	ok, err := c.predicate(ctx, trace)
	if err != nil {
		return domain.Errored("check %q: %v", c.name, err)
	}
	if ok {
		return domain.CheckResult{Status: domain.StatusPassed, Message: c.passMsg}
	}
	return domain.CheckResult{Status: domain.StatusFailed, Message: c.failMsg}
}
