// Package forces implements spec.md §4.4's force evaluator: the per-step
// entry point that fills in every body's accumulated force, selecting
// among a naive, cache-blocked, Morton-ordered, or Barnes-Hut kernel
// depending on population size and configuration.
package forces
