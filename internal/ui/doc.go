// Package ui holds the colour themes shared by the plain CLI output and the
// dashboard. The CLI reads escape codes through the Color accessors; the
// dashboard builds its lipgloss styles from the TUI palette of the same
// theme, so -theme and -no-color affect both the same way.
package ui
