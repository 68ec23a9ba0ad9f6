// Package progress carries per-chunk progress out of a running scan. A
// Subject fans chunk statistics out to registered observers: a channel
// feeding the CLI or TUI, the metrics exporter, a throttled logger.
package progress
