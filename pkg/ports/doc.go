// Package ports declares the driven-side interfaces of the engine: where
// run results go and who observes execution. Adapters under pkg/adapters
// and pkg/observability implement them.
package ports
