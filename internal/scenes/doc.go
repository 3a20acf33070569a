// Package scenes seeds a body.Store with named starting configurations
// (solar system, binary pair, galaxy disc, loose cluster). These builders
// are the thin, non-core collaborator spec.md §1 explicitly carves out of
// the physics core: each one only calls Store.Add/AddWithDensity.
package scenes
