//go:generate mockgen -source=sinks.go -destination=mocks/mock_sinks.go -package=mocks

package sequence

// ZeroSink receives one record per zero occurrence, in increasing index order.
type ZeroSink interface {
	WriteZero(ordinal, index uint64) error
}

// CheckpointSink receives the periodic checkpoints and the final report of a
// run.
type CheckpointSink interface {
	// WriteCheckpoint records a progress snapshot taken at a chunk boundary.
	WriteCheckpoint(cp Checkpoint) error
	// WriteFinal records the last two values, a(To-1) in st.B and a(To) in
	// st.A, once the whole range has been computed.
	WriteFinal(r Range, st State) error
}

// Flusher is implemented by sinks that buffer output. The driver flushes
// every sink that implements it at each chunk boundary.
type Flusher interface {
	Flush() error
}

// ZeroRecord is a single zero occurrence.
type ZeroRecord struct {
	Ordinal uint64
	Index   uint64
}

// ZeroCollector is an in-memory ZeroSink. The zero value is ready to use.
type ZeroCollector struct {
	Records []ZeroRecord
}

// WriteZero appends the record.
func (c *ZeroCollector) WriteZero(ordinal, index uint64) error {
	c.Records = append(c.Records, ZeroRecord{Ordinal: ordinal, Index: index})
	return nil
}

// Indices returns the recorded indices in order.
func (c *ZeroCollector) Indices() []uint64 {
	out := make([]uint64, len(c.Records))
	for i, r := range c.Records {
		out[i] = r.Index
	}
	return out
}

// CheckpointCollector is an in-memory CheckpointSink.
type CheckpointCollector struct {
	Checkpoints []Checkpoint
	Final       *State
	FinalRange  Range
}

// WriteCheckpoint appends the checkpoint.
func (c *CheckpointCollector) WriteCheckpoint(cp Checkpoint) error {
	c.Checkpoints = append(c.Checkpoints, cp)
	return nil
}

// WriteFinal stores the final state.
func (c *CheckpointCollector) WriteFinal(r Range, st State) error {
	c.Final = &st
	c.FinalRange = r
	return nil
}

type discard struct{}

func (discard) WriteZero(uint64, uint64) error   { return nil }
func (discard) WriteCheckpoint(Checkpoint) error { return nil }
func (discard) WriteFinal(Range, State) error    { return nil }

// Discard is a ZeroSink and CheckpointSink that drops everything.
var Discard interface {
	ZeroSink
	CheckpointSink
} = discard{}
