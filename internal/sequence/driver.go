package sequence

import (
	"context"
	"fmt"
	"math/bits"
)

// Options tunes the Driver. Zero values select the defaults.
type Options struct {
	// ChunkSize is the alignment of chunk boundaries. Defaults to
	// DefaultChunkSize.
	ChunkSize uint64
	// CheckpointEvery is the checkpoint period in chunks. Defaults to
	// DefaultCheckpointEvery.
	CheckpointEvery uint64
	// OnChunk, if set, is called synchronously after every chunk.
	OnChunk func(ChunkStats)
}

func (o Options) chunkSize() uint64 {
	if o.ChunkSize == 0 {
		return DefaultChunkSize
	}
	return o.ChunkSize
}

func (o Options) checkpointEvery() uint64 {
	if o.CheckpointEvery == 0 {
		return DefaultCheckpointEvery
	}
	return o.CheckpointEvery
}

// Driver runs an Engine across a full Range.
type Driver struct {
	Engine      Engine
	Recorder    *ZeroRecorder
	Checkpoints CheckpointSink
	Options     Options
}

// NewDriver creates a driver. Nil sinks discard their output.
func NewDriver(engine Engine, zeros ZeroSink, checkpoints CheckpointSink, opts Options) *Driver {
	if checkpoints == nil {
		checkpoints = Discard
	}
	return &Driver{
		Engine:      engine,
		Recorder:    NewZeroRecorder(zeros),
		Checkpoints: checkpoints,
		Options:     opts,
	}
}

// Run computes a(r.From) .. a(r.To) starting from seeds.
//
// The seeds are zero-checked at indices From-2 and From-1 before anything
// else. Chunks end on absolute multiples of the chunk size (or at r.To);
// when the chunk counter is a multiple of CheckpointEvery and r.To spans at
// least CheckpointEvery chunks, a checkpoint is written. The final report
// is written once r.To has been reached.
//
// ctx is only consulted between chunks. A cancelled run returns the
// partial result together with the cancellation cause.
func (d *Driver) Run(ctx context.Context, r Range, seeds Seeds) (Result, error) {
	res := Result{Range: r}
	if err := r.Validate(); err != nil {
		return res, err
	}

	chunk := d.Options.chunkSize()
	every := d.Options.checkpointEvery()
	hi, span := bits.Mul64(every, chunk)
	checkpointing := hi == 0 && r.To >= span

	rec := d.Recorder
	st := seeds.State()
	rec.Check(seeds.Prev2, r.From-2)
	rec.Check(seeds.Prev1, r.From-1)

	count := 1 + (r.From-1)/chunk
	limit := nextLimit((count-1)*chunk, chunk, r.To)
	total := r.Len()

	for x := r.From; x <= r.To; {
		if ctx.Err() != nil {
			res.State, res.Zeros, res.LastZero = st, rec.Count(), rec.Last()
			return res, fmt.Errorf("run stopped before index %d: %w", x, context.Cause(ctx))
		}

		before := rec.Count()
		d.Engine.Advance(&st, x, limit, rec)
		res.Processed += limit - x + 1
		res.Chunks++

		cp := checkpointing && count%every == 0
		if cp {
			if err := d.Checkpoints.WriteCheckpoint(Checkpoint{Chunk: count, Index: limit, State: st}); err != nil {
				res.State, res.Zeros, res.LastZero = st, rec.Count(), rec.Last()
				return res, fmt.Errorf("checkpoint at index %d: %w", limit, err)
			}
		}
		if err := rec.Flush(); err != nil {
			res.State, res.Zeros, res.LastZero = st, rec.Count(), rec.Last()
			return res, fmt.Errorf("zero sink at index %d: %w", limit, err)
		}
		if err := flush(d.Checkpoints); err != nil {
			res.State, res.Zeros, res.LastZero = st, rec.Count(), rec.Last()
			return res, fmt.Errorf("checkpoint sink at index %d: %w", limit, err)
		}

		if d.Options.OnChunk != nil {
			d.Options.OnChunk(ChunkStats{
				Chunk:        count,
				From:         x,
				To:           limit,
				Processed:    res.Processed,
				Total:        total,
				Zeros:        rec.Count(),
				NewZeros:     rec.Count() - before,
				Checkpointed: cp,
				State:        st,
			})
		}

		x = limit + 1
		limit = nextLimit(limit, chunk, r.To)
		count++
	}

	res.State, res.Zeros, res.LastZero = st, rec.Count(), rec.Last()
	if err := d.Checkpoints.WriteFinal(r, st); err != nil {
		return res, fmt.Errorf("final report: %w", err)
	}
	if err := flush(d.Checkpoints); err != nil {
		return res, fmt.Errorf("final report: %w", err)
	}
	return res, nil
}

// nextLimit returns min(prev+chunk, to) without overflowing.
func nextLimit(prev, chunk, to uint64) uint64 {
	if to-prev > chunk {
		return prev + chunk
	}
	return to
}

func flush(sink CheckpointSink) error {
	if f, ok := sink.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
