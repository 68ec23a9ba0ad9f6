package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/a079777/internal/errors"
	"github.com/agbru/a079777/internal/progress"
	"github.com/agbru/a079777/internal/sequence"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of dropping updates when the
// UI is slow to consume them.
const ProgressBufferMultiplier = 5

// Job is one engine run together with the sinks receiving its output.
// Nil sinks discard.
type Job struct {
	Key         string
	Engine      sequence.Engine
	Zeros       sequence.ZeroSink
	Checkpoints sequence.CheckpointSink
}

// RunSpec is the input shared by every job of an execution.
type RunSpec struct {
	Range   sequence.Range
	Seeds   sequence.Seeds
	Options sequence.Options
}

// ExecuteRuns runs every job concurrently over the same range and seeds.
//
// Each job gets its own driver and its own goroutine; a range is never
// split between goroutines. Per-chunk statistics are forwarded to the
// progress reporter through a buffered channel and to every observer.
// Observers implementing progress.RunLifecycle are told when each run
// starts and ends.
//
// A failing run does not cancel the others; its error is reported in its
// RunResult.
func ExecuteRuns(ctx context.Context, jobs []Job, spec RunSpec, progressReporter ProgressReporter, out io.Writer, observers ...progress.ProgressObserver) []RunResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]RunResult, len(jobs))
	progressChan := make(chan progress.ProgressUpdate, len(jobs)*ProgressBufferMultiplier)

	subject := progress.NewProgressSubject()
	subject.Register(progress.NewChannelObserver(progressChan))
	var lifecycles []progress.RunLifecycle
	for _, o := range observers {
		subject.Register(o)
		if l, ok := o.(progress.RunLifecycle); ok {
			lifecycles = append(lifecycles, l)
		}
	}

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(jobs), out)

	for i, job := range jobs {
		idx := i
		g.Go(func() error {
			results[idx] = runJob(ctx, idx, job, spec, subject, lifecycles)
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runJob(ctx context.Context, idx int, job Job, spec RunSpec, subject *progress.ProgressSubject, lifecycles []progress.RunLifecycle) RunResult {
	ctx, span := startRunSpan(ctx, job.Key, spec)

	opts := spec.Options
	notify := subject.AsChunkCallback(idx)
	opts.OnChunk = func(stats sequence.ChunkStats) {
		if stats.Checkpointed {
			checkpointEvent(span, stats)
		}
		notify(stats)
	}

	for _, l := range lifecycles {
		l.RunStarted(idx, job.Key)
	}
	startTime := time.Now()
	driver := sequence.NewDriver(job.Engine, job.Zeros, job.Checkpoints, opts)
	res, err := driver.Run(ctx, spec.Range, spec.Seeds)
	duration := time.Since(startTime)
	if err != nil {
		err = apperrors.RunError{Engine: job.Engine.Name(), Cause: err}
	}
	for _, l := range lifecycles {
		l.RunFinished(idx, job.Key, err)
	}
	endRunSpan(span, res, err)

	return RunResult{
		Key:      job.Key,
		Name:     job.Engine.Name(),
		Result:   res,
		Duration: duration,
		Err:      err,
	}
}

// CompareResults checks that every successful run produced the same final
// state and zero statistics. It returns a MismatchError naming the first
// disagreeing pair, or nil.
func CompareResults(results []RunResult) error {
	var ref *RunResult
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			continue
		}
		if ref == nil {
			ref = r
			continue
		}
		if detail := diff(ref.Result, r.Result); detail != "" {
			return apperrors.MismatchError{Reference: ref.Key, Other: r.Key, Detail: detail}
		}
	}
	return nil
}

func diff(a, b sequence.Result) string {
	switch {
	case a.State != b.State:
		return fmt.Sprintf("final values (a(Y-1), a(Y)) = (%d, %d) vs (%d, %d)", a.State.B, a.State.A, b.State.B, b.State.A)
	case a.Zeros != b.Zeros:
		return fmt.Sprintf("zero count %d vs %d", a.Zeros, b.Zeros)
	case a.LastZero != b.LastZero:
		return fmt.Sprintf("last zero at %d vs %d", a.LastZero, b.LastZero)
	}
	return ""
}

// AnalyzeComparisonResults processes the results of one or more runs and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful runs, and displays a comparative table when several engines
// ran. It handles the logic for determining global success or failure
// based on the individual outcomes.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []RunResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *RunResult
	var firstError error
	var failedDuration time.Duration
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
				failedDuration = results[i].Duration
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	if len(results) > 1 {
		presenter.PresentComparisonTable(results, out)
	}

	// Output files are written by one run only; losing them fails the
	// execution even when another engine completed.
	for _, r := range results {
		var sinkErr apperrors.SinkError
		if errors.As(r.Err, &sinkErr) {
			return errHandler.HandleError(r.Err, r.Duration, out)
		}
	}

	if successCount == 0 {
		if len(results) > 1 {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No engine could complete the scan.\n")
		}
		return errHandler.HandleError(firstError, failedDuration, out)
	}

	if err := CompareResults(results); err != nil {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %v\n", err)
		return apperrors.ExitErrorMismatch
	}

	if len(results) > 1 {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
