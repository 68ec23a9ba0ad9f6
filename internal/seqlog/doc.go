// Package seqlog writes the two text logs produced by a scan: the sequence
// log (periodic checkpoints and the final two values) and the zero log (one
// line per zero, numbered from 1).
//
// Both logs are buffered and flushed at every chunk boundary, so a
// long-running scan can be followed with tail -f.
package seqlog
