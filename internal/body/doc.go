// Package body holds the simulation's owned state: point masses, their
// position trails, and the structure-of-arrays mirror the force kernels
// iterate over.
//
// A [Store] is the sole owner of every [Body]. Collaborators outside this
// package (force evaluators, the integrator, the collision resolver) are
// handed a *Store for the duration of one physics step and must not retain
// indices across steps — use a [Handle] for anything that needs to survive
// a remove.
package body
