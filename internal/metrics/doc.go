// Package metrics implements the conserved-quantity probe of spec.md
// §4.7: kinetic, potential, and total energy over a body population.
// It is a diagnostic; the physics step itself never reads it.
package metrics
