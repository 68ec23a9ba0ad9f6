package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/a079777/internal/errors"
	"github.com/agbru/a079777/internal/logging"
	"github.com/agbru/a079777/internal/orchestration"
	"github.com/agbru/a079777/internal/sequence"
)

// quietLogger discards everything.
type quietLogger struct{}

func (quietLogger) Info(string, ...logging.Field)        {}
func (quietLogger) Error(string, error, ...logging.Field) {}
func (quietLogger) Debug(string, ...logging.Field)       {}
func (quietLogger) Printf(string, ...any)                {}
func (quietLogger) Println(...any)                       {}

func newTestApp(t *testing.T, args ...string) (*Application, string) {
	t.Helper()
	dir := t.TempDir()
	base := []string{
		"a079777",
		"-no-color",
		"-seq-out", filepath.Join(dir, "sequence.txt"),
		"-zero-out", filepath.Join(dir, "zeros.txt"),
	}
	app, err := New(append(base, args...), io.Discard, WithLogger(quietLogger{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return app, dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(b)
}

func TestNew(t *testing.T) {
	app, _ := newTestApp(t, "-from", "2", "-to", "1K", "-algo", "reference")

	if app.Config.To != 1000 {
		t.Errorf("To = %d, want 1000", app.Config.To)
	}
	if app.Config.Algo != "reference" {
		t.Errorf("Algo = %q, want reference", app.Config.Algo)
	}
	if app.Factory != sequence.GlobalFactory() {
		t.Error("default factory should be the process-wide factory")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing upper bound", []string{"a079777"}, apperrors.ExitErrorConfig},
		{"lower bound below 2", []string{"a079777", "-from", "1", "-to", "10"}, apperrors.ExitErrorConfig},
		{"inverted range", []string{"a079777", "-from", "10", "-to", "5"}, apperrors.ExitErrorConfig},
		{"unknown engine", []string{"a079777", "-to", "10", "-algo", "magic"}, apperrors.ExitErrorConfig},
		{"unknown flag", []string{"a079777", "-to", "10", "-bogus"}, apperrors.ExitErrorConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.args, io.Discard)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := apperrors.ExitCodeFor(err); code != tt.code {
				t.Errorf("exit code = %d, want %d (err: %v)", code, tt.code, err)
			}
		})
	}
}

func TestNew_Help(t *testing.T) {
	_, err := New([]string{"a079777", "-h"}, io.Discard)
	if !IsHelpError(err) {
		t.Errorf("expected help error, got %v", err)
	}
}

func TestNew_WithFactory(t *testing.T) {
	f := sequence.NewDefaultFactory()
	f.Register("custom", sequence.ReferenceEngine{})
	app, err := New([]string{"a079777", "-to", "10", "-algo", "custom"}, io.Discard, WithFactory(f))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.Factory != f {
		t.Error("custom factory should be kept")
	}
}

func TestRun_Quiet(t *testing.T) {
	app, dir := newTestApp(t, "-from", "2", "-to", "20", "-chunk", "10", "-checkpoint-every", "1", "-q")

	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, output:\n%s", code, out.String())
	}
	if got := out.String(); got != "11 7 4 12\n" {
		t.Errorf("quiet output = %q, want %q", got, "11 7 4 12\n")
	}

	zeros := readFile(t, filepath.Join(dir, "zeros.txt"))
	if !strings.Contains(zeros, "1:\t0\n2:\t5\n3:\t9\n4:\t12\n") {
		t.Errorf("unexpected zero log:\n%s", zeros)
	}
	seq := readFile(t, filepath.Join(dir, "sequence.txt"))
	for _, want := range []string{"At n = 10", "At n = 20"} {
		if !strings.Contains(seq, want) {
			t.Errorf("sequence log missing %q:\n%s", want, seq)
		}
	}
}

func TestRun_Summary(t *testing.T) {
	app, _ := newTestApp(t, "-to", "20", "-chunk", "10", "-v")

	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, output:\n%s", code, out.String())
	}
	output := out.String()
	for _, want := range []string{
		"Execution Configuration",
		"Single scan",
		"Zeros found: 4 (last at n = 12)",
		"a(20) = 7",
		"Memory Stats",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRun_CrossCheck(t *testing.T) {
	app, dir := newTestApp(t, "-from", "5", "-to", "5K", "-a0", "3", "-a1", "2", "-chunk", "333", "-checkpoint-every", "2", "-algo", "all")

	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, output:\n%s", code, out.String())
	}
	output := out.String()
	if !strings.Contains(output, "Comparison Summary") || !strings.Contains(output, "consistent") {
		t.Errorf("expected a consistent comparison:\n%s", output)
	}

	// Only one engine writes the zero log.
	zeros := strings.Split(strings.TrimSpace(readFile(t, filepath.Join(dir, "zeros.txt"))), "\n")
	seen := make(map[string]bool)
	for _, line := range zeros {
		if seen[line] {
			t.Fatalf("duplicate zero line %q", line)
		}
		seen[line] = true
	}
}

func TestRun_SinkFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	app, err := New([]string{
		"a079777", "-no-color", "-to", "20",
		"-seq-out", filepath.Join(blocker, "sequence.txt"),
		"-zero-out", filepath.Join(dir, "zeros.txt"),
	}, io.Discard, WithLogger(quietLogger{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitErrorSink {
		t.Errorf("exit code = %d, want %d\n%s", code, apperrors.ExitErrorSink, out.String())
	}
}

func TestRun_Canceled(t *testing.T) {
	app, _ := newTestApp(t, "-to", "1M", "-q")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := app.Run(ctx, io.Discard); code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestRun_Timeout(t *testing.T) {
	app, _ := newTestApp(t, "-to", "100G", "-chunk", "1K", "-timeout", "1ms")

	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitErrorTimeout {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if !strings.Contains(out.String(), "exceeded its deadline") {
		t.Errorf("expected a timeout message:\n%s", out.String())
	}
}

func TestRun_MetricsServer(t *testing.T) {
	app, _ := newTestApp(t, "-to", "100", "-chunk", "10", "-q", "-metrics-addr", "127.0.0.1:0")

	if code := app.Run(context.Background(), io.Discard); code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want success", code)
	}
}

func TestRunFunc(t *testing.T) {
	app, _ := newTestApp(t, "-to", "20", "-chunk", "10")
	run := app.runFunc(app.engines())

	var presented *orchestration.RunResult
	presenter := &recordingPresenter{onResult: func(r orchestration.RunResult) { presented = &r }}
	code := run(context.Background(), orchestration.NullProgressReporter{}, presenter, presenter)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if presented == nil || presented.Result.Zeros != 4 {
		t.Errorf("unexpected presented result %+v", presented)
	}
}

func TestBuildJobs(t *testing.T) {
	engines := orchestration.GetEnginesToRun("all", sequence.NewDefaultFactory())
	jobs := buildJobs(engines, nil, nil)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[1].Zeros != sequence.Discard || jobs[1].Checkpoints != sequence.Discard {
		t.Error("secondary engines should discard their output")
	}
}

func TestExecute_NoEngines(t *testing.T) {
	app, _ := newTestApp(t, "-to", "20")
	p := &recordingPresenter{}
	code := app.execute(context.Background(), nil, orchestration.NullProgressReporter{}, p, p, io.Discard, io.Discard)
	if code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !errors.As(p.err, new(apperrors.ConfigError)) {
		t.Errorf("expected a ConfigError, got %v", p.err)
	}
}

type recordingPresenter struct {
	onResult func(orchestration.RunResult)
	err      error
}

func (p *recordingPresenter) PresentComparisonTable([]orchestration.RunResult, io.Writer) {}

func (p *recordingPresenter) PresentResult(r orchestration.RunResult, _ orchestration.PresentationOptions, _ io.Writer) {
	if p.onResult != nil {
		p.onResult(r)
	}
}

func (p *recordingPresenter) HandleError(err error, _ time.Duration, _ io.Writer) int {
	p.err = err
	return apperrors.ExitCodeFor(err)
}
