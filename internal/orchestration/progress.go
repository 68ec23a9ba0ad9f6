package orchestration

import (
	"time"

	"github.com/agbru/a079777/internal/format"
	"github.com/agbru/a079777/internal/progress"
)

// ProgressAggregator manages multi-run progress aggregation.
// It wraps format.ProgressWithETA and provides a higher-level API
// for consuming progress updates from a channel. Both CLI and TUI
// use this to avoid duplicating the aggregation setup and update logic.
type ProgressAggregator struct {
	state   *format.ProgressWithETA
	numRuns int
	zeros   []uint64
	indices []uint64
}

// NewProgressAggregator creates a new aggregator for the given number
// of runs. Returns nil if numRuns <= 0.
func NewProgressAggregator(numRuns int) *ProgressAggregator {
	if numRuns <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:   format.NewProgressWithETA(numRuns),
		numRuns: numRuns,
		zeros:   make([]uint64, numRuns),
		indices: make([]uint64, numRuns),
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// RunIndex is the index of the run that sent the update.
	RunIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all runs.
	AverageProgress float64
	// ETA is the estimated time remaining based on smoothed progress rate.
	ETA time.Duration
	// Index is the last index computed by the run that sent the update.
	Index uint64
	// Zeros is the zero count of the primary run (index 0).
	Zeros uint64
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.RunIndex, update.Value)
	if update.RunIndex >= 0 && update.RunIndex < a.numRuns {
		a.zeros[update.RunIndex] = update.Zeros
		a.indices[update.RunIndex] = update.Index
	}
	return AggregatedProgress{
		RunIndex:        update.RunIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
		Index:           update.Index,
		Zeros:           a.zeros[0],
	}
}

// CalculateAverage returns the current average progress without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// Zeros returns the latest zero count reported by the primary run.
func (a *ProgressAggregator) Zeros() uint64 {
	return a.zeros[0]
}

// LastIndex returns the latest index reported by the primary run.
func (a *ProgressAggregator) LastIndex() uint64 {
	return a.indices[0]
}

// NumRuns returns the number of runs being tracked.
func (a *ProgressAggregator) NumRuns() int {
	return a.numRuns
}

// IsMultiRun returns true if tracking more than one run.
func (a *ProgressAggregator) IsMultiRun() bool {
	return a.numRuns > 1
}

// DrainChannel reads all updates from the channel without processing.
// Use this when numRuns <= 0 and updates should be discarded.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
