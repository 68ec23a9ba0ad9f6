package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/a079777/internal/config"
	"github.com/agbru/a079777/internal/orchestration"
	"github.com/agbru/a079777/internal/sequence"
	"github.com/agbru/a079777/internal/ui"
)

// TestPrintExecutionConfig tests the PrintExecutionConfig function.
func TestPrintExecutionConfig(t *testing.T) {
	ui.InitTheme("", true)
	var buf bytes.Buffer
	cfg := config.AppConfig{
		From:            2,
		To:              5_000_000_000,
		A0:              1,
		A1:              1,
		ChunkSize:       sequence.DefaultChunkSize,
		CheckpointEvery: sequence.DefaultCheckpointEvery,
		SequenceFile:    "output/sequence.txt",
		ZeroFile:        "output/zeros.txt",
		Timeout:         time.Minute,
	}

	PrintExecutionConfig(cfg, &buf)

	output := buf.String()
	for _, want := range []string{
		"n in [2, 5,000,000,000]",
		"a(0) = 1, a(1) = 1",
		"Chunks of 1G indices, checkpoint every 50 chunks",
		"output/sequence.txt",
		"output/zeros.txt",
		"Timeout: 1m0s",
		"logical processors",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestPrintExecutionConfig_NoTimeout(t *testing.T) {
	ui.InitTheme("", true)
	var buf bytes.Buffer
	cfg := config.AppConfig{From: 2, To: 100, ChunkSize: 10, CheckpointEvery: 1}

	PrintExecutionConfig(cfg, &buf)

	if !strings.Contains(buf.String(), "Timeout: none") {
		t.Errorf("expected 'Timeout: none', got:\n%s", buf.String())
	}
}

// TestPrintExecutionMode tests the PrintExecutionMode function.
func TestPrintExecutionMode(t *testing.T) {
	ui.InitTheme("", true)
	factory := sequence.NewDefaultFactory()

	t.Run("Single engine mode", func(t *testing.T) {
		var buf bytes.Buffer
		engines := orchestration.GetEnginesToRun("fast", factory)

		PrintExecutionMode(engines, &buf)

		output := buf.String()
		if !strings.Contains(output, "Single scan") {
			t.Errorf("expected single scan mode, got:\n%s", output)
		}
		if !strings.Contains(output, "Starting Execution") {
			t.Error("PrintExecutionMode should announce the start of execution")
		}
	})

	t.Run("Cross-check mode", func(t *testing.T) {
		var buf bytes.Buffer
		engines := orchestration.GetEnginesToRun(config.AlgoAll, factory)

		PrintExecutionMode(engines, &buf)

		output := buf.String()
		if !strings.Contains(output, "Cross-check of 2 engines") {
			t.Errorf("expected cross-check mode, got:\n%s", output)
		}
		if !strings.Contains(output, engines[0].Engine.Name()+" writes the output files") {
			t.Errorf("expected primary engine to be named, got:\n%s", output)
		}
	})
}
