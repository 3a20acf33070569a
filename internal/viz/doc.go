// Package viz renders the live N-body viewer's terminal surface: a
// braille sub-pixel [Canvas] for trails and mass-scaled body marks, plus
// the lipgloss styles and color themes the status bar and canvas render
// with.
package viz
