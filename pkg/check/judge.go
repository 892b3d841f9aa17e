package check

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/aretw0/gauntlet/pkg/domain"
	"github.com/aretw0/gauntlet/pkg/extract"
	"github.com/aretw0/gauntlet/pkg/gen"
	"github.com/aretw0/gauntlet/pkg/schema"
)

// KindJudge is the kind of LLM-judge checks.
const KindJudge = "llm_judge"

// Judge evaluates a trace with the generation collaborator. Execution runs
// through four phases: build the prompt from values extracted out of the
// trace, call the generator, validate the response against Schema, then map
// the validated response to a CheckResult.
//
// A transport or schema failure yields status=error (the judging machinery
// broke); only a conforming response that says the criterion was not met
// yields status=failed.
type Judge struct {
	// Label names this judge instance in reports.
	Label string `json:"name,omitempty" mapstructure:"name"`

	// Prompt is a text/template body. It can reference {{.inputs}},
	// {{.outputs}} and {{.metadata}} of the last interaction, plus one
	// variable per Paths entry.
	Prompt string `json:"prompt" mapstructure:"prompt"`

	// Paths maps template variable names to extraction paths evaluated
	// against the trace before rendering.
	Paths map[string]string `json:"paths,omitempty" mapstructure:"paths"`

	// Schema is the required shape of the generator response. When nil,
	// DefaultJudgeSchema applies.
	Schema schema.Schema `json:"schema,omitempty" mapstructure:"-"`

	// Generator overrides the process-wide default from gen.SetDefault.
	Generator gen.Generator `json:"-" mapstructure:"-"`

	// Handle maps the validated response to a result. When nil, the
	// default handler interprets the pass/reason/score convention.
	Handle func(response map[string]any) domain.CheckResult `json:"-" mapstructure:"-"`
}

// DefaultJudgeSchema is the response shape used when a judge declares none:
// a boolean verdict plus a free-form justification.
func DefaultJudgeSchema() schema.Schema {
	return schema.Schema{
		"pass":   schema.Bool(),
		"reason": schema.String(),
	}
}

// Name implements Check.
func (j *Judge) Name() string {
	if j.Label != "" {
		return j.Label
	}
	return KindJudge
}

// Kind implements Check.
func (j *Judge) Kind() string { return KindJudge }

// Run implements Check.
func (j *Judge) Run(ctx context.Context, trace domain.Trace) domain.CheckResult {
	prompt, err := j.buildPrompt(trace)
	if err != nil {
		return domain.Errored("judge %q: %v", j.Name(), err)
	}

	generator := j.Generator
	if generator == nil {
		generator = gen.Default()
	}
	if generator == nil {
		return domain.Errored("judge %q: no generator configured (set one explicitly or call gen.SetDefault)", j.Name())
	}

	required := j.Schema
	if required == nil {
		required = DefaultJudgeSchema()
	}

	response, err := generator.Generate(ctx, prompt, required)
	if err != nil {
		genErr := &domain.GenerationError{Op: "transport", Err: err}
		return domain.Errored("judge %q: %v", j.Name(), genErr)
	}

	if err := schema.Validate(required, response); err != nil {
		genErr := &domain.GenerationError{Op: "schema", Err: err}
		return domain.Errored("judge %q: %v", j.Name(), genErr)
	}

	if j.Handle != nil {
		return j.Handle(response)
	}
	return handleVerdict(response)
}

// buildPrompt renders the prompt template against values extracted from the
// trace. Extraction failures surface as machinery errors, not verdicts.
func (j *Judge) buildPrompt(trace domain.Trace) (string, error) {
	data := make(map[string]any, len(j.Paths)+3)

	if last, err := trace.Last(); err == nil {
		data["inputs"] = last.Inputs
		data["outputs"] = last.Outputs
		data["metadata"] = last.Metadata
	}

	for name, path := range j.Paths {
		value, err := extract.Extract(trace, path)
		if err != nil {
			return "", err
		}
		data[name] = value
	}

	tmpl, err := template.New("prompt").Option("missingkey=error").Parse(j.Prompt)
	if err != nil {
		return "", fmt.Errorf("parse prompt template: %w", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render prompt template: %w", err)
	}
	return b.String(), nil
}

// handleVerdict is the default HANDLE_OUTPUT mapping: a "pass" boolean
// decides the status, "reason" becomes the message, any numeric fields
// become metrics, and the full response is attached as details.
func handleVerdict(response map[string]any) domain.CheckResult {
	passed, _ := response["pass"].(bool)
	reason, _ := response["reason"].(string)

	status := domain.StatusFailed
	if passed {
		status = domain.StatusPassed
	}
	if reason == "" {
		reason = fmt.Sprintf("judge verdict: pass=%t", passed)
	}

	var metrics map[string]float64
	for key, value := range response {
		if n, ok := toFloat(value); ok {
			if metrics == nil {
				metrics = make(map[string]float64)
			}
			metrics[key] = n
		}
	}

	return domain.CheckResult{
		Status:  status,
		Message: reason,
		Metrics: metrics,
		Details: response,
	}
}

// decodeJudge builds a Judge from declarative configuration. The schema
// arrives as a field-name to type-name mapping; the generator is left unset
// so the process-wide default applies at run time.
func decodeJudge(config map[string]any) (Check, error) {
	var raw struct {
		Name   string            `mapstructure:"name"`
		Prompt string            `mapstructure:"prompt"`
		Paths  map[string]string `mapstructure:"paths"`
		Schema map[string]string `mapstructure:"schema"`
	}
	if err := decodeConfig(config, &raw); err != nil {
		return nil, err
	}
	if raw.Prompt == "" {
		return nil, fmt.Errorf("judge check requires a prompt")
	}

	j := &Judge{Label: raw.Name, Prompt: raw.Prompt, Paths: raw.Paths}
	if len(raw.Schema) > 0 {
		s, err := schema.ParseTypeMap(raw.Schema)
		if err != nil {
			return nil, err
		}
		j.Schema = s
	}
	return j, nil
}
