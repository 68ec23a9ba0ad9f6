package sequence

// ZeroRecorder counts zero occurrences and forwards each one to its sink.
// The first write error is kept and later writes are skipped, but counting
// continues so ordinals stay consistent with the sequence.
//
// Engines never look at the error. A failing sink therefore only stops a
// scan when the driver calls Flush at the end of the current chunk, so up
// to one full chunk of indices may be computed after the first failure.
// Use a smaller chunk size when sink failures must be noticed sooner.
type ZeroRecorder struct {
	sink  ZeroSink
	count uint64
	last  uint64
	err   error
}

// NewZeroRecorder creates a recorder writing to sink. A nil sink discards
// records.
func NewZeroRecorder(sink ZeroSink) *ZeroRecorder {
	if sink == nil {
		sink = Discard
	}
	return &ZeroRecorder{sink: sink}
}

// Check records index if value is zero.
func (r *ZeroRecorder) Check(value, index uint64) {
	if value == 0 {
		r.Record(index)
	}
}

// Record registers a zero occurrence at index.
func (r *ZeroRecorder) Record(index uint64) {
	r.count++
	r.last = index
	if r.err != nil {
		return
	}
	r.err = r.sink.WriteZero(r.count, index)
}

// Count returns the number of zeros recorded so far.
func (r *ZeroRecorder) Count() uint64 { return r.count }

// Last returns the index of the most recent zero, or 0 if none was found.
func (r *ZeroRecorder) Last() uint64 { return r.last }

// Err returns the first sink error, if any.
func (r *ZeroRecorder) Err() error { return r.err }

// Flush flushes the sink if it buffers output.
func (r *ZeroRecorder) Flush() error {
	if r.err != nil {
		return r.err
	}
	if f, ok := r.sink.(Flusher); ok {
		r.err = f.Flush()
	}
	return r.err
}
