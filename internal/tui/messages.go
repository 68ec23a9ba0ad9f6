package tui

import (
	"time"

	"github.com/agbru/a079777/internal/metrics"
	"github.com/agbru/a079777/internal/orchestration"
	"github.com/agbru/a079777/internal/sysmon"
)

// ProgressMsg carries one aggregated chunk update.
type ProgressMsg struct {
	RunIndex        int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
	Index           uint64
	Zeros           uint64
	Chunk           uint64
	Checkpoint      bool
}

// ProgressDoneMsg is sent when the progress channel is closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the per-engine outcome of a cross-check.
type ComparisonResultsMsg struct {
	Results []orchestration.RunResult
}

// FinalResultMsg carries the result that is presented to the user.
type FinalResultMsg struct {
	Result  orchestration.RunResult
	Options orchestration.PresentationOptions
}

// IndicatorsMsg carries the throughput figures of the finished run.
type IndicatorsMsg struct {
	Indicators *metrics.Indicators
}

// ErrorMsg reports a failed run.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample and the host load.
type MemStatsMsg struct {
	Snapshot     metrics.MemorySnapshot
	NumGoroutine int
	System       sysmon.Stats
}

// RunCompleteMsg is sent when the scan command returns.
type RunCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg is sent when the run context is done.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
