package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/a079777/internal/errors"
	"github.com/agbru/a079777/internal/sequence"
	"github.com/agbru/a079777/internal/ui"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "A079777_"

// Default output file names, kept from the historical scanner so that
// existing tooling reading these files keeps working.
const (
	DefaultSequenceFile = "sequence_fast.txt"
	DefaultZeroFile     = "zeros_fast.txt"
)

// AlgoAll selects every registered engine for a cross-check run.
const AlgoAll = "all"

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// From is the first index X of the scanned range.
	From uint64
	// To is the last index Y of the scanned range.
	To uint64
	// A0 and A1 are the seeds a(X-2) and a(X-1).
	A0, A1 uint64
	// SequenceFile receives the checkpoint and final blocks.
	SequenceFile string
	// ZeroFile receives one line per zero.
	ZeroFile string
	// Algo is the engine name, or AlgoAll.
	Algo string
	// ChunkSize is the distance between chunk boundaries.
	ChunkSize uint64
	// CheckpointEvery is the checkpoint period, counted in chunks.
	CheckpointEvery uint64
	// Timeout bounds the whole run. Zero means no deadline.
	Timeout time.Duration
	// MetricsAddr, when non-empty, serves Prometheus metrics during the run.
	MetricsAddr string
	// Theme names the colour scheme (see ui.ThemeNames).
	Theme   string
	TUI     bool
	Quiet   bool
	Verbose bool
	NoColor bool
}

// Range returns the configured index range.
func (c AppConfig) Range() sequence.Range {
	return sequence.Range{From: c.From, To: c.To}
}

// Seeds returns the configured seeds.
func (c AppConfig) Seeds() sequence.Seeds {
	return sequence.Seeds{Prev2: c.A0, Prev1: c.A1}
}

// DriverOptions returns the chunking options for the driver.
func (c AppConfig) DriverOptions() sequence.Options {
	return sequence.Options{ChunkSize: c.ChunkSize, CheckpointEvery: c.CheckpointEvery}
}

// ParseConfig parses the command-line arguments (without the program name)
// and applies environment overrides for flags that were not set explicitly.
//
// Parsing errors are reported as ConfigError. flag.ErrHelp is returned
// unchanged when -h or -help is given.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{
		From:            sequence.MinIndex,
		A1:              1,
		ChunkSize:       sequence.DefaultChunkSize,
		CheckpointEvery: sequence.DefaultCheckpointEvery,
	}

	fromValue := (*indexValue)(&config.From)
	fs.Var(fromValue, "from", "First index X of the range (accepts 1_000, 5G, 2T).")
	fs.Var(fromValue, "x", "Shorthand for -from.")
	toValue := (*indexValue)(&config.To)
	fs.Var(toValue, "to", "Last index Y of the range (required).")
	fs.Var(toValue, "y", "Shorthand for -to.")
	fs.Var((*indexValue)(&config.A0), "a0", "Seed a(X-2).")
	fs.Var((*indexValue)(&config.A1), "a1", "Seed a(X-1).")
	fs.StringVar(&config.SequenceFile, "seq-out", DefaultSequenceFile, "Sequence log path (checkpoints and final values).")
	fs.StringVar(&config.ZeroFile, "zero-out", DefaultZeroFile, "Zero log path.")
	fs.StringVar(&config.Algo, "algo", "fast", fmt.Sprintf("Engine to use: %s, or %q to cross-check.", strings.Join(availableAlgos, ", "), AlgoAll))
	fs.Var((*indexValue)(&config.ChunkSize), "chunk", "Chunk size; boundaries are absolute multiples of it.")
	fs.Var((*indexValue)(&config.CheckpointEvery), "checkpoint-every", "Checkpoint period in chunks.")
	fs.DurationVar(&config.Timeout, "timeout", 0, "Maximum run time (e.g. 30m, 12h). 0 disables the deadline.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&config.Theme, "theme", ui.DefaultThemeName, fmt.Sprintf("Colour theme: %s.", strings.Join(ui.ThemeNames(), ", ")))
	fs.BoolVar(&config.TUI, "tui", false, "Show the interactive dashboard.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Minimal output.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Debug logging and memory statistics.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable coloured output (also honours NO_COLOR).")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return config, err
		}
		return config, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return config, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := applyEnvOverrides(&config, fs); err != nil {
		return config, err
	}
	if !isFlagSet(fs, "no-color") && os.Getenv("NO_COLOR") != "" {
		config.NoColor = true
	}
	if !isFlagSetAny(fs, "to", "y") && getEnvString("TO", "") == "" {
		return config, apperrors.ValidationError{Field: "to", Message: "the last index Y is required (-to)"}
	}

	return config, config.Validate(availableAlgos)
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate(availableAlgos []string) error {
	if err := c.Range().Validate(); err != nil {
		return apperrors.ValidationError{Field: "range", Message: err.Error()}
	}
	if c.ChunkSize == 0 {
		return apperrors.ValidationError{Field: "chunk", Message: "must be at least 1"}
	}
	if c.CheckpointEvery == 0 {
		return apperrors.ValidationError{Field: "checkpoint-every", Message: "must be at least 1"}
	}
	if c.Timeout < 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must not be negative"}
	}
	if c.SequenceFile == "" || c.ZeroFile == "" {
		return apperrors.ValidationError{Field: "output", Message: "output paths must not be empty"}
	}
	if c.SequenceFile == c.ZeroFile {
		return apperrors.ValidationError{Field: "output", Message: "sequence and zero logs must be different files"}
	}
	if _, ok := ui.LookupTheme(c.Theme); !ok {
		return apperrors.ValidationError{
			Field:   "theme",
			Message: fmt.Sprintf("unknown theme %q (available: %s)", c.Theme, strings.Join(ui.ThemeNames(), ", ")),
		}
	}
	if c.Algo != AlgoAll && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.ValidationError{
			Field:   "algo",
			Message: fmt.Sprintf("unknown engine %q (available: %s, %s)", c.Algo, strings.Join(availableAlgos, ", "), AlgoAll),
		}
	}
	return nil
}
