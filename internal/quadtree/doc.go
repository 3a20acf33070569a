// Package quadtree implements a Barnes-Hut spatial partition over a 2D
// body population: an axis-aligned recursive subdivision used to
// approximate far-field gravitational forces in O(N log N) instead of the
// O(N^2) a direct pairwise sum costs.
//
// A Tree is rebuilt every physics step from the current body positions
// (see [Build]) and is read-only during force traversal; it holds indices
// into the caller's body slice, never pointers, so its lifetime never
// needs to track a body being removed from the store mid-step.
package quadtree
