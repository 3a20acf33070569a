// Package engine is the physics engine facade of spec.md §4.8: it holds
// the body arrays scratch buffer, sequences force evaluation, collision
// resolution, and integration for one Step call, and reports Stats and
// Energy to external collaborators. It is the only package that owns the
// Idle/Stepping state machine spec.md describes.
package engine
