// Package config holds the run-time configuration for a filtering pass:
// adapter table location, mismatch budget, auxiliary filter thresholds,
// and I/O layout. It is populated from CLI flags in cmd/cookiecutter and
// validated here before a run starts.
package config

import (
	"fmt"

	"github.com/komissarov/cookiecutter/internal/cookerr"
)

// Config holds all configuration for one filtering run.
type Config struct {
	AdapterFile string
	Errors      int // 0, 1, or 2 mismatches tolerated per partitioned seed scan

	MinLength   int
	MeanQuality float64
	DustK       int
	DustCutoff  float64
	PolyG       int

	SingleLine bool // two-line records (id, sequence) with no quality string

	Workers        int
	ProgressEvery  int
	Recursive      bool
	Hidden         bool
	NoIgnore       bool

	Paths []string
}

// Validate checks that the config is self-consistent and returns an error
// describing the first problem found.
func (c *Config) Validate() error {
	if c.AdapterFile == "" {
		return cookerr.Configf("Validate", c.AdapterFile, fmt.Errorf("no adapter file specified"))
	}
	if c.Errors < 0 || c.Errors > 2 {
		return cookerr.Configf("Validate", c.AdapterFile, fmt.Errorf("errors must be 0, 1, or 2, got %d", c.Errors))
	}
	if c.MinLength < 0 {
		return cookerr.Configf("Validate", c.AdapterFile, fmt.Errorf("invalid min length: %d", c.MinLength))
	}
	if c.MeanQuality < 0 {
		return cookerr.Configf("Validate", c.AdapterFile, fmt.Errorf("invalid mean quality threshold: %v", c.MeanQuality))
	}
	if c.DustCutoff > 0 && c.DustK < 1 {
		return cookerr.Configf("Validate", c.AdapterFile, fmt.Errorf("dust-k must be >= 1 when a dust cutoff is set, got %d", c.DustK))
	}
	if c.PolyG < 0 {
		return cookerr.Configf("Validate", c.AdapterFile, fmt.Errorf("invalid polyG run length: %d", c.PolyG))
	}
	if c.SingleLine && c.MeanQuality > 0 {
		return cookerr.Configf("Validate", c.AdapterFile, fmt.Errorf("cannot apply a mean quality threshold to single-line (quality-free) input"))
	}
	if len(c.Paths) == 0 {
		return cookerr.Configf("Validate", c.AdapterFile, fmt.Errorf("no input paths specified"))
	}
	return nil
}
