// Package collision implements the all-pairs broad/narrow-phase collision
// resolver of spec.md §4.6: positional separation followed by an
// impulse-based elastic response, with fixed/dragged bodies treated as
// infinite mass.
package collision
