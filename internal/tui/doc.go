// Package tui is the live Bubble Tea viewer for the N-body engine: a
// braille canvas (internal/viz.Canvas) redrawn every tick from the
// current body store, with a lipgloss status bar reporting engine.Stats.
// Adapted from the teacher's internal/tui/interactive.go tick/keybinding
// loop, collapsed from a multi-model menu onto the single N-body domain.
package tui
