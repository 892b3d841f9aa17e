package gauntlet

import (
	"context"
	"fmt"

	"github.com/aretw0/gauntlet/pkg/domain"
)

// TraceFunc produces a value from the current trace. It runs before the
// interaction is appended, so it sees only prior exchanges. It may block on
// I/O (calling the system under test) and must honor ctx.
type TraceFunc func(ctx context.Context, trace domain.Trace) (any, error)

// InputsFunc produces an output value from the already-resolved inputs of
// the same interaction. It may block on I/O.
type InputsFunc func(ctx context.Context, inputs any) (any, error)

type sourceKind int

const (
	sourceUnset sourceKind = iota
	sourceLiteral
	sourceFromTrace
	sourceFromInputs
)

// ValueSource describes how one side of an interaction is produced. The
// strategy is fixed at construction time; the engine never infers behavior
// from a function's shape.
type ValueSource struct {
	kind       sourceKind
	literal    any
	fromTrace  TraceFunc
	fromInputs InputsFunc
}

// Literal uses a fixed value.
func Literal(v any) ValueSource {
	return ValueSource{kind: sourceLiteral, literal: v}
}

// FromTrace computes the value from the current trace.
func FromTrace(fn TraceFunc) ValueSource {
	return ValueSource{kind: sourceFromTrace, fromTrace: fn}
}

// FromInputs computes an output value from the resolved inputs. Only valid
// as an outputs source.
func FromInputs(fn InputsFunc) ValueSource {
	return ValueSource{kind: sourceFromInputs, fromInputs: fn}
}

// InteractionSpec is a declarative recipe for producing one interaction.
// Inputs resolve first (Literal or FromTrace), then outputs (Literal,
// FromInputs over the resolved inputs, or FromTrace over the current
// trace), then the interaction is built with the literal metadata.
type InteractionSpec struct {
	Inputs   ValueSource
	Outputs  ValueSource
	Metadata map[string]any
}

// Exchange is shorthand for a fully literal spec.
func Exchange(inputs, outputs any) InteractionSpec {
	return InteractionSpec{Inputs: Literal(inputs), Outputs: Literal(outputs)}
}

// resolve turns the spec into a concrete interaction against trace.
// index is the spec's position in the run sequence; any failure is wrapped
// as a *domain.ResolutionError carrying it.
func (s InteractionSpec) resolve(ctx context.Context, trace domain.Trace, index int) (domain.Interaction, error) {
	inputs, err := s.resolveInputs(ctx, trace)
	if err != nil {
		return domain.Interaction{}, &domain.ResolutionError{Index: index, Stage: "inputs", Err: err}
	}

	outputs, err := s.resolveOutputs(ctx, trace, inputs)
	if err != nil {
		return domain.Interaction{}, &domain.ResolutionError{Index: index, Stage: "outputs", Err: err}
	}

	return domain.NewInteraction(inputs, outputs, s.Metadata), nil
}

func (s InteractionSpec) resolveInputs(ctx context.Context, trace domain.Trace) (any, error) {
	switch s.Inputs.kind {
	case sourceLiteral:
		return s.Inputs.literal, nil
	case sourceFromTrace:
		return s.Inputs.fromTrace(ctx, trace)
	case sourceFromInputs:
		return nil, fmt.Errorf("FromInputs cannot produce the inputs side")
	default:
		// An unset inputs source resolves to nil, like an empty literal.
		return nil, nil
	}
}

func (s InteractionSpec) resolveOutputs(ctx context.Context, trace domain.Trace, inputs any) (any, error) {
	switch s.Outputs.kind {
	case sourceLiteral:
		return s.Outputs.literal, nil
	case sourceFromInputs:
		return s.Outputs.fromInputs(ctx, inputs)
	case sourceFromTrace:
		return s.Outputs.fromTrace(ctx, trace)
	default:
		return nil, nil
	}
}
