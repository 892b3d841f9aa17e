package domain

import "encoding/json"

// Interaction records one resolved exchange with the system under test.
// It is a value: constructed once during a run and never mutated afterwards.
type Interaction struct {
	Inputs   any            `json:"inputs"`
	Outputs  any            `json:"outputs"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewInteraction builds an interaction, copying metadata so later edits to
// the caller's map cannot leak into the recorded value.
func NewInteraction(inputs, outputs any, metadata map[string]any) Interaction {
	var meta map[string]any
	if len(metadata) > 0 {
		meta = make(map[string]any, len(metadata))
		for k, v := range metadata {
			meta[k] = v
		}
	}
	return Interaction{Inputs: inputs, Outputs: outputs, Metadata: meta}
}

// Trace is an immutable ordered history of interactions. The zero value is
// a valid empty trace. Append returns a new Trace and never modifies the
// receiver, so a Trace can be shared across goroutines without locking.
type Trace struct {
	interactions []Interaction
}

// EmptyTrace returns a trace with no interactions.
func EmptyTrace() Trace {
	return Trace{}
}

// NewTrace builds a trace from a fixed set of interactions.
func NewTrace(interactions ...Interaction) Trace {
	t := Trace{}
	for _, i := range interactions {
		t = t.Append(i)
	}
	return t
}

// Append returns a new trace extended with interaction.
// The backing storage is copied so the receiver stays untouched even if the
// caller keeps appending to both values.
func (t Trace) Append(i Interaction) Trace {
	next := make([]Interaction, len(t.interactions)+1)
	copy(next, t.interactions)
	next[len(t.interactions)] = i
	return Trace{interactions: next}
}

// Len returns the number of recorded interactions.
func (t Trace) Len() int {
	return len(t.interactions)
}

// Last returns the most recent interaction.
// Returns ErrEmptyTrace when nothing has been recorded yet.
func (t Trace) Last() (Interaction, error) {
	if len(t.interactions) == 0 {
		return Interaction{}, ErrEmptyTrace
	}
	return t.interactions[len(t.interactions)-1], nil
}

// Interactions returns the recorded history as a fresh slice.
// Mutating the returned slice does not affect the trace.
func (t Trace) Interactions() []Interaction {
	out := make([]Interaction, len(t.interactions))
	copy(out, t.interactions)
	return out
}

// MarshalJSON serializes the trace as a plain array of interactions.
func (t Trace) MarshalJSON() ([]byte, error) {
	if t.interactions == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.interactions)
}

// UnmarshalJSON restores a trace from its array form. The result is data
// only: it carries no resolution logic and cannot be re-run.
func (t *Trace) UnmarshalJSON(data []byte) error {
	var interactions []Interaction
	if err := json.Unmarshal(data, &interactions); err != nil {
		return err
	}
	t.interactions = interactions
	return nil
}
