// Package logging provides a unified logging interface for the a079777 scanner.
// The driver, the orchestration layer and the metrics server log through the
// Logger interface. The only backend is zerolog, used through a console
// writer on stderr so that stdout stays reserved for results.
package logging
