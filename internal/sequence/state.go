package sequence

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultChunkSize is the number of indices processed per engine call.
	// Chunk boundaries are absolute multiples of this value.
	DefaultChunkSize uint64 = 1_000_000_000

	// DefaultCheckpointEvery is the number of chunks between two checkpoints.
	// With the default chunk size a checkpoint is emitted every 50 billion
	// indices.
	DefaultCheckpointEvery uint64 = 50

	// MinIndex is the smallest valid lower bound: seeds a(X-2) and a(X-1)
	// must exist.
	MinIndex uint64 = 2

	// MaxIndex is the largest valid upper bound. Keeping indices below 2^63
	// guarantees a(n-1) + a(n-2) never wraps around once both terms are
	// reduced.
	MaxIndex uint64 = math.MaxInt64
)

// ErrInvalidRange is returned when a Range violates 2 <= From <= To <= MaxIndex.
var ErrInvalidRange = errors.New("invalid index range")

// State is the working set of the recurrence. A holds the most recently
// computed term a(n) and B the term before it, a(n-1).
type State struct {
	A uint64
	B uint64
}

// Range is the closed interval [From, To] of indices to compute.
type Range struct {
	From uint64
	To   uint64
}

// Validate checks the range bounds.
func (r Range) Validate() error {
	switch {
	case r.From < MinIndex:
		return fmt.Errorf("%w: lower bound %d is below %d", ErrInvalidRange, r.From, MinIndex)
	case r.To < r.From:
		return fmt.Errorf("%w: upper bound %d is below lower bound %d", ErrInvalidRange, r.To, r.From)
	case r.To > MaxIndex:
		return fmt.Errorf("%w: upper bound %d exceeds %d", ErrInvalidRange, r.To, MaxIndex)
	}
	return nil
}

// Len returns the number of indices in the range.
func (r Range) Len() uint64 {
	if r.To < r.From {
		return 0
	}
	return r.To - r.From + 1
}

// Seeds holds the two values preceding the range: Prev2 = a(From-2) and
// Prev1 = a(From-1).
type Seeds struct {
	Prev2 uint64
	Prev1 uint64
}

// State returns the initial state built from the seeds.
func (s Seeds) State() State {
	return State{A: s.Prev1, B: s.Prev2}
}

// Checkpoint is a progress snapshot taken at a chunk boundary.
type Checkpoint struct {
	// Chunk is the chunk counter, i.e. the boundary expressed in chunk units
	// ("billions" with the default chunk size).
	Chunk uint64
	// Index is the last index computed before the snapshot.
	Index uint64
	// State holds a(Index) in A and a(Index-1) in B.
	State State
}

// ChunkStats describes one completed chunk. It is handed to
// Options.OnChunk after the engine returns.
type ChunkStats struct {
	Chunk        uint64
	From         uint64
	To           uint64
	Processed    uint64 // indices computed so far, seeds excluded
	Total        uint64 // indices in the whole range
	Zeros        uint64 // zero occurrences so far, seeds included
	NewZeros     uint64 // zero occurrences found in this chunk
	Checkpointed bool
	State        State
}

// Fraction returns the completed share of the range in [0, 1].
func (s ChunkStats) Fraction() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Processed) / float64(s.Total)
}

// Result is the outcome of a complete driver run.
type Result struct {
	Range     Range
	State     State
	Zeros     uint64
	LastZero  uint64
	Processed uint64
	Chunks    uint64
}
