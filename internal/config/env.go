// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strings"
	"time"

	apperrors "github.com/agbru/a079777/internal/errors"
)

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// Aliased flags may be given in either form.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the A079777_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string) error
}

func indexOverride(dst func(*AppConfig) *uint64) func(*AppConfig, string) error {
	return func(c *AppConfig, v string) error {
		n, err := ParseIndex(v)
		if err != nil {
			return err
		}
		*dst(c) = n
		return nil
	}
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Index overrides
	{"FROM", []string{"from", "x"}, indexOverride(func(c *AppConfig) *uint64 { return &c.From })},
	{"TO", []string{"to", "y"}, indexOverride(func(c *AppConfig) *uint64 { return &c.To })},
	{"A0", []string{"a0"}, indexOverride(func(c *AppConfig) *uint64 { return &c.A0 })},
	{"A1", []string{"a1"}, indexOverride(func(c *AppConfig) *uint64 { return &c.A1 })},
	{"CHUNK", []string{"chunk"}, indexOverride(func(c *AppConfig) *uint64 { return &c.ChunkSize })},
	{"CHECKPOINT_EVERY", []string{"checkpoint-every"}, indexOverride(func(c *AppConfig) *uint64 { return &c.CheckpointEvery })},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) error {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Timeout = parsed
		return nil
	}},

	// String overrides
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) error {
		c.Algo = v
		return nil
	}},
	{"SEQ_OUT", []string{"seq-out"}, func(c *AppConfig, v string) error {
		c.SequenceFile = v
		return nil
	}},
	{"ZERO_OUT", []string{"zero-out"}, func(c *AppConfig, v string) error {
		c.ZeroFile = v
		return nil
	}},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) error {
		c.Theme = v
		return nil
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) error {
		c.MetricsAddr = v
		return nil
	}},

	// Boolean overrides
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) error {
		c.Verbose = parseBoolEnv(v, c.Verbose)
		return nil
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) error {
		c.Quiet = parseBoolEnv(v, c.Quiet)
		return nil
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) error {
		c.TUI = parseBoolEnv(v, c.TUI)
		return nil
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) error {
		c.NoColor = parseBoolEnv(v, c.NoColor)
		return nil
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
// A malformed index or duration value is a ConfigError; an unrecognised
// boolean keeps its current value.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			if err := o.apply(config, val); err != nil {
				return apperrors.NewConfigError("invalid %s%s: %v", EnvPrefix, o.envKey, err)
			}
		}
	}
	return nil
}
