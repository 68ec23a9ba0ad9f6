package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/a079777/internal/progress"
	"github.com/agbru/a079777/internal/sequence"
)

// RunResult encapsulates the outcome of a single engine run.
// It serves as the shared domain type between orchestration and presentation layers.
type RunResult struct {
	// Key is the registry name of the engine (e.g., "fast").
	Key string
	// Name is the display name of the engine.
	Name string
	// Result holds the final state and zero statistics. It is partial when
	// Err is set.
	Result sequence.Result
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err contains any error that stopped the run.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Range        sequence.Range
	SequenceFile string
	ZeroFile     string
	Verbose      bool
	Quiet        bool
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation layer,
// following Clean Architecture principles where business logic should not
// depend on UI concerns.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from the runs.
	//   - numRuns: The number of concurrent runs being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer) {
	f(wg, progressChan, numRuns, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting run results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []RunResult, out io.Writer)

	// PresentResult displays the outcome of the scan.
	PresentResult(result RunResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
