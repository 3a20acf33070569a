// Package integrators advances body positions and velocities given the
// accumulated forces computed by internal/forces (spec.md §4.5). Leapfrog
// (kick-drift-kick) is the default; Euler and position-Verlet are offered
// as alternates for comparison and testing. Every integrator honors fixed
// bodies (no displacement, velocity forced to zero), the damping factor, and the
// MaxSpeed clamp.
package integrators
