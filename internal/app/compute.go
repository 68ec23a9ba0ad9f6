package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/agbru/a079777/internal/cli"
	apperrors "github.com/agbru/a079777/internal/errors"
	"github.com/agbru/a079777/internal/logging"
	"github.com/agbru/a079777/internal/metrics"
	"github.com/agbru/a079777/internal/orchestration"
	"github.com/agbru/a079777/internal/progress"
	"github.com/agbru/a079777/internal/seqlog"
	"github.com/agbru/a079777/internal/sequence"
	"github.com/agbru/a079777/internal/server"
	"github.com/agbru/a079777/internal/tui"
)

// progressLogInterval throttles the debug log of completed chunks.
const progressLogInterval = 10 * time.Second

// runCompute orchestrates a scan for the command-line interface.
func (a *Application) runCompute(ctx context.Context, out io.Writer) int {
	engines := a.engines()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(engines, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	sampler := metrics.NewPeakSampler()
	presenter := cli.CLIResultPresenter{}
	exitCode := a.execute(ctx, engines, reporter, presenter, presenter, progressOut, out, sampler)

	if a.Config.Verbose && !a.Config.Quiet {
		sampler.Sample()
		cli.DisplayMemoryStats(sampler.Peak(), out)
	}
	return exitCode
}

// runFunc adapts execute to the dashboard, which supplies its own bridge.
func (a *Application) runFunc(engines []orchestration.EngineChoice) tui.RunFunc {
	return func(ctx context.Context, reporter orchestration.ProgressReporter, presenter orchestration.ResultPresenter, handler orchestration.ErrorHandler) int {
		return a.execute(ctx, engines, reporter, presenter, handler, io.Discard, io.Discard)
	}
}

// engines resolves the configured engine selection.
func (a *Application) engines() []orchestration.EngineChoice {
	return orchestration.GetEnginesToRun(a.Config.Algo, a.Factory)
}

// buildJobs attaches the output logs to the first engine. The other engines
// of a cross-check only contribute their results to the comparison.
func buildJobs(engines []orchestration.EngineChoice, seq *seqlog.SequenceLog, zeros *seqlog.ZeroLog) []orchestration.Job {
	jobs := make([]orchestration.Job, len(engines))
	for i, e := range engines {
		jobs[i] = orchestration.Job{
			Key:         e.Key,
			Engine:      e.Engine,
			Zeros:       sequence.Discard,
			Checkpoints: sequence.Discard,
		}
	}
	if len(jobs) > 0 {
		jobs[0].Zeros = zeros
		jobs[0].Checkpoints = seq
	}
	return jobs
}

// execute opens the output logs, runs every engine and reports the outcome.
// It returns the process exit code.
func (a *Application) execute(ctx context.Context, engines []orchestration.EngineChoice, reporter orchestration.ProgressReporter, presenter orchestration.ResultPresenter, handler orchestration.ErrorHandler, progressOut, out io.Writer, observers ...progress.ProgressObserver) (exitCode int) {
	cfg := a.Config
	log := a.Logger

	if len(engines) == 0 {
		err := apperrors.NewConfigError("no engine matches %q", cfg.Algo)
		return handler.HandleError(err, 0, out)
	}

	seq, zeros, err := seqlog.Create(cfg.SequenceFile, cfg.ZeroFile)
	if err != nil {
		log.Error("cannot create output logs", err)
		return handler.HandleError(err, 0, out)
	}
	defer func() {
		if err := errors.Join(seq.Close(), zeros.Close()); err != nil {
			log.Error("cannot close output logs", err)
			if exitCode == apperrors.ExitSuccess {
				exitCode = handler.HandleError(err, 0, out)
			}
		}
	}()

	observers = append(observers, progress.NewLoggingObserver(log, progressLogInterval))
	if cfg.MetricsAddr != "" {
		m := server.NewMetrics()
		srv := server.New(cfg.MetricsAddr, m, log)
		if err := srv.Start(); err != nil {
			log.Error("cannot start metrics server", err)
			return handler.HandleError(apperrors.ConfigError{Message: err.Error()}, 0, out)
		}
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				log.Error("metrics server shutdown", err)
			}
		}()
		observers = append(observers, m)
	}

	spec := orchestration.RunSpec{
		Range:   cfg.Range(),
		Seeds:   cfg.Seeds(),
		Options: cfg.DriverOptions(),
	}
	log.Info("scan started",
		logging.Uint64("from", spec.Range.From),
		logging.Uint64("to", spec.Range.To),
		logging.String("algo", cfg.Algo),
		logging.Int("engines", len(engines)))

	start := time.Now()
	results := orchestration.ExecuteRuns(ctx, buildJobs(engines, seq, zeros), spec, reporter, progressOut, observers...)

	opts := orchestration.PresentationOptions{
		Range:        spec.Range,
		SequenceFile: cfg.SequenceFile,
		ZeroFile:     cfg.ZeroFile,
		Verbose:      cfg.Verbose,
		Quiet:        cfg.Quiet,
	}
	exitCode = orchestration.AnalyzeComparisonResults(results, opts, presenter, handler, out)

	log.Info("scan finished",
		logging.Int("exit_code", exitCode),
		logging.String("elapsed", time.Since(start).Round(time.Millisecond).String()))
	return exitCode
}
