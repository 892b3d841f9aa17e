package check_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gauntlet/pkg/check"
	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/gen"
	"github.com/aretw0/gauntlet/pkg/schema"
)

func judgeTrace() domain.Trace {
	return domain.NewTrace(domain.Interaction{
		Inputs:  "What is your refund policy?",
		Outputs: "You can return items within 30 days.",
	})
}

func TestJudge_PassVerdict(t *testing.T) {
	var seenPrompt string
	j := &check.Judge{
		Label:  "politeness",
		Prompt: "Question: {{.inputs}}\nAnswer: {{.outputs}}\nIs the answer polite?",
		Generator: gen.Func(func(_ context.Context, prompt string, _ schema.Schema) (map[string]any, error) {
			seenPrompt = prompt
			return map[string]any{"pass": true, "reason": "courteous and direct"}, nil
		}),
	}

	result := j.Run(context.Background(), judgeTrace())

	assert.Equal(t, domain.StatusPassed, result.Status)
	assert.Equal(t, "courteous and direct", result.Message)
	assert.Contains(t, seenPrompt, "refund policy")
	assert.Contains(t, seenPrompt, "30 days")
}

func TestJudge_FailVerdictIsNotAnError(t *testing.T) {
	j := &check.Judge{
		Prompt: "Judge: {{.outputs}}",
		Generator: gen.NewStatic(map[string]any{
			"pass":   false,
			"reason": "answer is off-topic",
		}),
	}

	result := j.Run(context.Background(), judgeTrace())

	assert.Equal(t, domain.StatusFailed, result.Status,
		"a conforming negative verdict is a failure of the system under test")
	assert.Equal(t, "answer is off-topic", result.Message)
}

func TestJudge_TransportFailureIsAnError(t *testing.T) {
	j := &check.Judge{
		Prompt: "Judge: {{.outputs}}",
		Generator: gen.Func(func(context.Context, string, schema.Schema) (map[string]any, error) {
			return nil, fmt.Errorf("connection refused")
		}),
	}

	result := j.Run(context.Background(), judgeTrace())

	assert.Equal(t, domain.StatusError, result.Status)
	assert.Contains(t, result.Message, "transport")
}

func TestJudge_NonConformingResponseIsAnError(t *testing.T) {
	j := &check.Judge{
		Prompt: "Judge: {{.outputs}}",
		// "pass" is a string, not the required bool.
		Generator: gen.NewStatic(map[string]any{"pass": "yes", "reason": "ok"}),
	}

	result := j.Run(context.Background(), judgeTrace())

	assert.Equal(t, domain.StatusError, result.Status)
	assert.Contains(t, result.Message, "schema")
}

func TestJudge_ExtractedPathsAndMetrics(t *testing.T) {
	trace := domain.NewTrace(
		domain.Interaction{Inputs: "q1", Outputs: "a1"},
		domain.Interaction{Inputs: "q2", Outputs: "a2"},
	)

	j := &check.Judge{
		Prompt: "First answer was: {{.first}}",
		Paths:  map[string]string{"first": "interactions[0].outputs"},
		Schema: schema.Schema{
			"pass":   schema.Bool(),
			"reason": schema.String(),
			"score":  schema.Float(),
		},
		Generator: gen.NewStatic(map[string]any{
			"pass":   true,
			"reason": "good",
			"score":  0.87,
		}),
	}

	result := j.Run(context.Background(), trace)

	require.Equal(t, domain.StatusPassed, result.Status)
	assert.Equal(t, 0.87, result.Metrics["score"])
	assert.Equal(t, "good", result.Details["reason"])
}

func TestJudge_BadExtractionPathIsAnError(t *testing.T) {
	j := &check.Judge{
		Prompt:    "{{.missing}}",
		Paths:     map[string]string{"missing": "interactions[9].outputs"},
		Generator: gen.NewStatic(map[string]any{"pass": true, "reason": "unreachable"}),
	}

	result := j.Run(context.Background(), judgeTrace())
	assert.Equal(t, domain.StatusError, result.Status)
}

func TestJudge_NoGeneratorConfigured(t *testing.T) {
	t.Cleanup(func() { gen.SetDefault(nil) })
	gen.SetDefault(nil)

	j := &check.Judge{Prompt: "Judge: {{.outputs}}"}
	result := j.Run(context.Background(), judgeTrace())

	assert.Equal(t, domain.StatusError, result.Status)
	assert.Contains(t, result.Message, "no generator configured")
}

func TestJudge_FallsBackToDefaultGenerator(t *testing.T) {
	t.Cleanup(func() { gen.SetDefault(nil) })
	gen.SetDefault(gen.NewStatic(map[string]any{"pass": true, "reason": "default cell works"}))

	j := &check.Judge{Prompt: "Judge: {{.outputs}}"}
	result := j.Run(context.Background(), judgeTrace())

	assert.Equal(t, domain.StatusPassed, result.Status)
}

func TestJudge_CustomHandler(t *testing.T) {
	j := &check.Judge{
		Prompt: "Score: {{.outputs}}",
		Schema: schema.Schema{"score": schema.Float()},
		Generator: gen.NewStatic(map[string]any{
			"score": 0.4,
		}),
		Handle: func(response map[string]any) domain.CheckResult {
			score, _ := response["score"].(float64)
			if score >= 0.7 {
				return domain.Pass("score %.2f above threshold", score)
			}
			return domain.Fail("score %.2f below threshold", score)
		},
	}

	result := j.Run(context.Background(), judgeTrace())
	assert.Equal(t, domain.StatusFailed, result.Status)
	assert.Contains(t, result.Message, "0.40")
}
