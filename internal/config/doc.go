// Package config defines the physics engine's configuration record
// (spec.md §6): the tunable knobs for gravity, integration, and collision
// response, loadable from and savable to YAML, plus a small named-preset
// catalogue for common starting scenarios.
package config
