package domain

import (
	"errors"
	"testing"
)

func TestTrace_AppendDoesNotMutate(t *testing.T) {
	base := EmptyTrace().Append(Interaction{Inputs: "a", Outputs: "b"})

	t1 := base.Append(Interaction{Inputs: "x1"})
	t2 := base.Append(Interaction{Inputs: "x2"})

	if base.Len() != 1 {
		t.Fatalf("base trace mutated: len = %d, want 1", base.Len())
	}
	if t1.Len() != 2 || t2.Len() != 2 {
		t.Fatalf("appended traces have len %d and %d, want 2", t1.Len(), t2.Len())
	}

	last1, _ := t1.Last()
	last2, _ := t2.Last()
	if last1.Inputs != "x1" || last2.Inputs != "x2" {
		t.Errorf("sibling traces interfere: got %v and %v", last1.Inputs, last2.Inputs)
	}
}

func TestTrace_SharedPrefixPreserved(t *testing.T) {
	t.Run("prefix values equal after divergence", func(t *testing.T) {
		base := NewTrace(
			Interaction{Inputs: "one"},
			Interaction{Inputs: "two"},
		)
		branch := base.Append(Interaction{Inputs: "three"})

		for i, got := range base.Interactions() {
			want := branch.Interactions()[i]
			if got.Inputs != want.Inputs {
				t.Errorf("prefix diverged at %d: %v != %v", i, got.Inputs, want.Inputs)
			}
		}
	})
}

func TestTrace_LastEmpty(t *testing.T) {
	_, err := EmptyTrace().Last()
	if !errors.Is(err, ErrEmptyTrace) {
		t.Fatalf("Last() on empty trace: err = %v, want ErrEmptyTrace", err)
	}
}

func TestTrace_InteractionsIsACopy(t *testing.T) {
	trace := NewTrace(Interaction{Inputs: "a"})

	view := trace.Interactions()
	view[0].Inputs = "tampered"

	last, _ := trace.Last()
	if last.Inputs != "a" {
		t.Errorf("mutating the view leaked into the trace: %v", last.Inputs)
	}
}

func TestNewInteraction_CopiesMetadata(t *testing.T) {
	meta := map[string]any{"channel": "web"}
	i := NewInteraction("in", "out", meta)

	meta["channel"] = "tampered"

	if i.Metadata["channel"] != "web" {
		t.Errorf("metadata not copied: %v", i.Metadata["channel"])
	}
}
