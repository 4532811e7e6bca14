package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/komissarov/cookiecutter/internal/config"
)

// registerFilterFlags attaches the thresholds and pipeline flags shared by
// every subcommand that runs the classifier.
func registerFilterFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("adapters", "", "adapter pattern file (required)")
	flags.Int("errors", 0, "mismatches tolerated per adapter seed scan (0, 1, or 2)")
	flags.Int("min-length", 0, "reject reads shorter than this (0 disables)")
	flags.Float64("mean-quality", 0, "reject reads with mean raw quality below this (0 disables)")
	flags.Int("dust-k", 4, "DUST k-mer width")
	flags.Float64("dust-cutoff", 0, "reject reads with DUST score above this (0 disables)")
	flags.Int("polyg", 0, "length of the added polyG/polyC homopolymer patterns (0 disables)")
	flags.Bool("single-line", false, "input is two-line id/sequence records with no quality")
	flags.Int("workers", 0, "pipeline worker goroutines (0 means runtime.NumCPU())")
	flags.Int("progress-every", 1_000_000, "when > 0, log one summary line per input file after it is processed (0 disables); no per-record progress lines are logged")
	flags.BoolP("verbose", "v", false, "enable debug-level logging")
}

// configFromFlags builds a config.Config from the flags registered by
// registerFilterFlags plus the given input paths.
func configFromFlags(cmd *cobra.Command, paths []string) (config.Config, error) {
	flags := cmd.Flags()
	adapters, _ := flags.GetString("adapters")
	errorsN, _ := flags.GetInt("errors")
	minLength, _ := flags.GetInt("min-length")
	meanQuality, _ := flags.GetFloat64("mean-quality")
	dustK, _ := flags.GetInt("dust-k")
	dustCutoff, _ := flags.GetFloat64("dust-cutoff")
	polyG, _ := flags.GetInt("polyg")
	singleLine, _ := flags.GetBool("single-line")
	workers, _ := flags.GetInt("workers")
	progressEvery, _ := flags.GetInt("progress-every")

	cfg := config.Config{
		AdapterFile:   adapters,
		Errors:        errorsN,
		MinLength:     minLength,
		MeanQuality:   meanQuality,
		DustK:         dustK,
		DustCutoff:    dustCutoff,
		PolyG:         polyG,
		SingleLine:    singleLine,
		Workers:       workers,
		ProgressEvery: progressEvery,
		Paths:         paths,
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func logLevel(cmd *cobra.Command) log.Level {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}
