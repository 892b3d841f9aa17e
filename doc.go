// Package gauntlet tests non-deterministic, LLM-backed applications by
// recording their exchanges into an immutable trace and validating that
// trace with composable checks.
//
// A Scenario is an ordered sequence of interaction specs and checks sharing
// one evolving trace, executed fail-fast:
//
//	s := gauntlet.NewScenario("greeting").
//	    AddSpec(gauntlet.InteractionSpec{
//	        Inputs:  gauntlet.Literal("Hello"),
//	        Outputs: gauntlet.FromInputs(callBot),
//	    }).
//	    AddCheck(&check.Contains{Path: "interactions[-1].outputs", Needle: "Hi"})
//
//	result := s.Run(ctx)
//
// A TestCase is the single-interaction convenience shape: one spec, then
// every configured check runs against the resulting trace regardless of
// individual outcomes.
//
// Run never returns an error: fatal resolution failures, failed checks and
// broken checking machinery are all observable on the result value.
package gauntlet
