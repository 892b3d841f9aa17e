package check_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/gauntlet/pkg/check"
	"github.com/aretw0/gauntlet/pkg/domain"
)

func replyTrace() domain.Trace {
	return domain.NewTrace(domain.Interaction{
		Inputs:  "Hello",
		Outputs: map[string]any{"text": "Hi there!", "confidence": 0.95},
	})
}

func TestEquality(t *testing.T) {
	t.Run("passes on equal value", func(t *testing.T) {
		c := &check.Equality{Path: "interactions[-1].outputs.text", Expected: "Hi there!"}
		result := c.Run(context.Background(), replyTrace())
		assert.Equal(t, domain.StatusPassed, result.Status)
	})

	t.Run("fails on different value", func(t *testing.T) {
		c := &check.Equality{Path: "interactions[-1].outputs.text", Expected: "Goodbye"}
		result := c.Run(context.Background(), replyTrace())
		assert.Equal(t, domain.StatusFailed, result.Status)
		assert.Contains(t, result.Message, "Goodbye")
	})

	t.Run("numeric values compare across int and float", func(t *testing.T) {
		trace := domain.NewTrace(domain.Interaction{Outputs: map[string]any{"count": 3}})
		c := &check.Equality{Path: "interactions[0].outputs.count", Expected: 3.0}
		result := c.Run(context.Background(), trace)
		assert.Equal(t, domain.StatusPassed, result.Status)
	})

	t.Run("bad path is a machinery error, not a failure", func(t *testing.T) {
		c := &check.Equality{Path: "interactions[7].outputs", Expected: "x"}
		result := c.Run(context.Background(), replyTrace())
		assert.Equal(t, domain.StatusError, result.Status)
	})

	t.Run("label overrides name", func(t *testing.T) {
		c := &check.Equality{Label: "greets-back", Path: "p", Expected: "x"}
		assert.Equal(t, "greets-back", c.Name())
		assert.Equal(t, check.KindEquality, (&check.Equality{}).Name())
	})
}

func TestContains(t *testing.T) {
	t.Run("substring match", func(t *testing.T) {
		c := &check.Contains{Path: "interactions[-1].outputs.text", Needle: "there"}
		result := c.Run(context.Background(), replyTrace())
		assert.Equal(t, domain.StatusPassed, result.Status)
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		c := &check.Contains{Path: "interactions[-1].outputs.text", Needle: "HI THERE", IgnoreCase: true}
		result := c.Run(context.Background(), replyTrace())
		assert.Equal(t, domain.StatusPassed, result.Status)
	})

	t.Run("missing substring fails", func(t *testing.T) {
		c := &check.Contains{Path: "interactions[-1].outputs.text", Needle: "refund"}
		result := c.Run(context.Background(), replyTrace())
		assert.Equal(t, domain.StatusFailed, result.Status)
	})

	t.Run("non-string value is a machinery error", func(t *testing.T) {
		c := &check.Contains{Path: "interactions[-1].outputs.confidence", Needle: "9"}
		result := c.Run(context.Background(), replyTrace())
		assert.Equal(t, domain.StatusError, result.Status)
	})
}
