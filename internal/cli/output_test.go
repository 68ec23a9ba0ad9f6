package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/a079777/internal/errors"
	"github.com/agbru/a079777/internal/metrics"
	"github.com/agbru/a079777/internal/orchestration"
	"github.com/agbru/a079777/internal/sequence"
	"github.com/agbru/a079777/internal/ui"
)

// sampleRun is the scan of [2, 20] from a(0) = a(1) = 1.
func sampleRun() orchestration.RunResult {
	return orchestration.RunResult{
		Key:  "fast",
		Name: "Fast (branchless unrolled)",
		Result: sequence.Result{
			Range:     sequence.Range{From: 2, To: 20},
			State:     sequence.State{A: 7, B: 11},
			Zeros:     4,
			LastZero:  12,
			Processed: 19,
			Chunks:    2,
		},
		Duration: 2 * time.Millisecond,
	}
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()
	got := FormatQuietResult(sampleRun())
	if got != "11 7 4 12" {
		t.Errorf("FormatQuietResult = %q, want %q", got, "11 7 4 12")
	}
}

func TestDisplayQuietResult(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayQuietResult(&buf, sampleRun())
	if buf.String() != "11 7 4 12\n" {
		t.Errorf("unexpected quiet output %q", buf.String())
	}
}

func TestDisplayResult(t *testing.T) {
	ui.InitTheme("", true)

	tests := []struct {
		name     string
		mutate   func(*orchestration.RunResult)
		opts     orchestration.PresentationOptions
		contains []string
		excludes []string
	}{
		{
			name: "Summary",
			opts: orchestration.PresentationOptions{
				Range:        sequence.Range{From: 2, To: 20},
				SequenceFile: "out/seq.txt",
				ZeroFile:     "out/zeros.txt",
			},
			contains: []string{
				"Fast (branchless unrolled)",
				"Indices computed: 19 in 2 chunks",
				"Zeros found: 4 (last at n = 12)",
				"a(19) = 11",
				"a(20) = 7",
				"Sequence log: out/seq.txt",
				"Zero log:     out/zeros.txt",
			},
			excludes: []string{"Zero density"},
		},
		{
			name:     "Verbose density",
			opts:     orchestration.PresentationOptions{Range: sequence.Range{From: 2, To: 20}, Verbose: true},
			contains: []string{"Zero density:"},
			excludes: []string{"Sequence log"},
		},
		{
			name: "No zeros",
			mutate: func(r *orchestration.RunResult) {
				r.Result.Zeros = 0
				r.Result.LastZero = 0
			},
			contains: []string{"Zeros found: none"},
		},
		{
			name:     "Quiet",
			opts:     orchestration.PresentationOptions{Quiet: true},
			contains: []string{"11 7 4 12"},
			excludes: []string{"Results"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := sampleRun()
			if tt.mutate != nil {
				tt.mutate(&res)
			}
			var buf bytes.Buffer
			DisplayResult(res, tt.opts, &buf)
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("Expected output to contain %q, but got:\n%s", s, output)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(output, s) {
					t.Errorf("Expected output not to contain %q, but got:\n%s", s, output)
				}
			}
		})
	}
}

func TestPresentComparisonTable(t *testing.T) {
	ui.InitTheme("", true)
	ok := sampleRun()
	failed := sampleRun()
	failed.Key = "reference"
	failed.Name = "Reference (true modulo)"
	failed.Err = errors.New("boom")

	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable([]orchestration.RunResult{ok, failed}, &buf)

	output := buf.String()
	for _, want := range []string{"Comparison Summary", "Engine", "Duration", "Zeros", "Success", "Failure (boom)"} {
		if !strings.Contains(output, want) {
			t.Errorf("table missing %q:\n%s", want, output)
		}
	}
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	ui.InitTheme("", true)
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(apperrors.SinkError{Path: "zeros.txt", Op: "write", Cause: errors.New("disk full")}, time.Second, &buf)
	if code != apperrors.ExitErrorSink {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorSink)
	}
	if (CLIResultPresenter{}).HandleError(nil, 0, &buf) != apperrors.ExitSuccess {
		t.Error("nil error should map to success")
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemorySnapshot{HeapAlloc: 2048, TotalAlloc: 3 << 20, NumGC: 4, PauseTotalNs: 1_500_000}, &buf)
	output := buf.String()
	for _, want := range []string{"2.0 KB", "3.0 MB", "GC cycles:       4", "1.50ms"} {
		if !strings.Contains(output, want) {
			t.Errorf("memory stats missing %q:\n%s", want, output)
		}
	}
}
