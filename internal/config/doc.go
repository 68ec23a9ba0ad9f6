// Package config defines the command-line configuration of the a079777
// scanner: flag parsing, environment variable overrides, index literal
// parsing and validation.
package config
