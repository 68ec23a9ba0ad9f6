// Package metrics collects runtime memory readings and throughput
// indicators for display in the CLI and the TUI.
package metrics
