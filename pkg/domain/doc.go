// Package domain holds the value types of the engine: interactions and
// traces, check and run results, and the error taxonomy that separates
// fatal resolution failures from per-check machinery breakage.
//
// Everything here is immutable by convention. Traces copy on append,
// results are built once by a run and only read afterwards.
package domain
