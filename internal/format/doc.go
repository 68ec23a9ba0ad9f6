// Package format holds the pure formatting helpers shared by the CLI and the
// TUI: durations, progress bars, ETA estimation and grouped numbers.
package format
