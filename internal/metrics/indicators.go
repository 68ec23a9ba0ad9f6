package metrics

import (
	"math"
	"time"
)

// Indicators summarizes the throughput of a run at a point in time.
type Indicators struct {
	// Processed is the number of indices computed.
	Processed uint64
	// Zeros is the number of zeros found.
	Zeros uint64
	// Elapsed is the wall time spent.
	Elapsed time.Duration
	// IndicesPerSecond is the average throughput.
	IndicesPerSecond float64
	// ZerosPerBillion is the zero density, normalised to 1e9 indices.
	ZerosPerBillion float64
}

// ComputeIndicators derives throughput figures. A zero elapsed time gives a
// zero rate.
func ComputeIndicators(processed, zeros uint64, elapsed time.Duration) *Indicators {
	ind := &Indicators{Processed: processed, Zeros: zeros, Elapsed: elapsed}
	if elapsed > 0 {
		ind.IndicesPerSecond = float64(processed) / elapsed.Seconds()
	}
	if processed > 0 {
		ind.ZerosPerBillion = float64(zeros) / float64(processed) * 1e9
	}
	return ind
}

// Remaining estimates the time needed to compute total indices at the
// current rate. It returns 0 when the rate is unknown or the work is done.
func (i *Indicators) Remaining(total uint64) time.Duration {
	if i.IndicesPerSecond <= 0 || total <= i.Processed {
		return 0
	}
	secs := float64(total-i.Processed) / i.IndicesPerSecond
	if secs >= math.MaxInt64/float64(time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(secs * float64(time.Second))
}
