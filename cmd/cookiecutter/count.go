package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/komissarov/cookiecutter/internal/applog"
	"github.com/komissarov/cookiecutter/internal/config"
	"github.com/komissarov/cookiecutter/internal/cookerr"
	"github.com/komissarov/cookiecutter/internal/pipeline"
	"github.com/komissarov/cookiecutter/internal/verdictio"
)

func newCountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <reads.fastq>",
		Short: "Classify a FASTQ stream and report verdict counts without writing output files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd, args)
			if err != nil {
				return err
			}
			logger := applog.New(cmd.ErrOrStderr(), logLevel(cmd))
			counters, err := runCount(cfg, logger, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return emitSummary(cmd.ErrOrStderr(), namesFromConfig(cfg), counters)
		},
	}
	registerFilterFlags(cmd)
	return cmd
}

// runCount is the stats-only dry run: it classifies every read but writes
// no FASTQ output, useful for tuning thresholds without paying for I/O.
func runCount(cfg config.Config, logger *applog.Logger, report io.Writer) (*verdictio.Counters, error) {
	path := cfg.Paths[0]
	in, err := os.Open(path)
	if err != nil {
		return nil, cookerr.IOf("runCount", path, err)
	}
	defer in.Close()

	a, err := buildAutomaton(cfg)
	if err != nil {
		return nil, err
	}
	newC := classifierFactory(a, cfg.Errors, thresholdsFromConfig(cfg))

	reader := newFastqReader(in, path, cfg.SingleLine)
	var readErr error
	jobs := pipeline.Feed(reader, &readErr)
	results := pipeline.New(cfg.Workers, newC).Run(jobs)

	counters := verdictio.NewCounters()
	pipeline.NewOrderedSink().Drain(results, func(r pipeline.Result) {
		counters.Add(r.Verdict)
	})
	if readErr != nil {
		return counters, readErr
	}

	if cfg.ProgressEvery > 0 {
		logger.Infof("counted %d reads from %s (%d ok)", counters.Complete, path, counters.Passed())
	}
	if err := verdictio.Write(report, path, counters, namesFromConfig(cfg)); err != nil {
		return counters, err
	}
	return counters, nil
}
