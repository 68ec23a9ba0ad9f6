// Package sequence computes the recurrence a(n) = (a(n-1) + a(n-2)) mod n
// (OEIS A079777) over arbitrary index ranges and records every index where
// the sequence value is zero.
//
// The package is organised in three layers:
//
//   - Engines advance a State across a contiguous run of indices. FastEngine
//     replaces the per-step modulo with a single conditional subtraction;
//     ReferenceEngine applies the definition literally and serves as an oracle.
//   - The Driver partitions a Range into chunks aligned on absolute multiples
//     of the chunk size, calls the engine once per chunk and emits periodic
//     checkpoints.
//   - The ZeroRecorder counts zero occurrences and forwards each one to a
//     ZeroSink in increasing index order.
//
// Nothing in the hot loop allocates; the only work per index is an addition,
// a comparison, an optional subtraction and a zero test.
package sequence
