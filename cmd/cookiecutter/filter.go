package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/komissarov/cookiecutter/internal/applog"
	"github.com/komissarov/cookiecutter/internal/config"
	"github.com/komissarov/cookiecutter/internal/cookerr"
	"github.com/komissarov/cookiecutter/internal/fastqio"
	"github.com/komissarov/cookiecutter/internal/pipeline"
	"github.com/komissarov/cookiecutter/internal/verdict"
	"github.com/komissarov/cookiecutter/internal/verdictio"
)

func newFilterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter <reads.fastq>",
		Short: "Filter a single-end FASTQ file into ok/filtered streams",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd, args)
			if err != nil {
				return err
			}
			logger := applog.New(cmd.ErrOrStderr(), logLevel(cmd))
			counters, err := runFilter(cfg, cfg.Paths[0], logger, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return emitSummary(cmd.ErrOrStderr(), namesFromConfig(cfg), counters)
		},
	}
	registerFilterFlags(cmd)
	return cmd
}

// runFilter classifies every read in cfg.Paths[0], writing the ok/filtered
// FASTQ streams next to outBase (ordinarily the input path itself; batch
// mode passes a mirrored path under its output directory instead) and the
// verdict report to report. It returns the accumulated counters; the
// filter subcommand passes them to emitSummary, while batch mode does not
// use them.
func runFilter(cfg config.Config, outBase string, logger *applog.Logger, report io.Writer) (*verdictio.Counters, error) {
	path := cfg.Paths[0]
	in, err := os.Open(path)
	if err != nil {
		return nil, cookerr.IOf("runFilter", path, err)
	}
	defer in.Close()

	a, err := buildAutomaton(cfg)
	if err != nil {
		return nil, err
	}
	newC := classifierFactory(a, cfg.Errors, thresholdsFromConfig(cfg))

	okFile, err := os.Create(outputPath(outBase, ".ok.fastq"))
	if err != nil {
		return nil, cookerr.IOf("runFilter", outputPath(outBase, ".ok.fastq"), err)
	}
	defer okFile.Close()
	filteredFile, err := os.Create(outputPath(outBase, ".filtered.fastq"))
	if err != nil {
		return nil, cookerr.IOf("runFilter", outputPath(outBase, ".filtered.fastq"), err)
	}
	defer filteredFile.Close()

	okWriter := fastqio.NewWriter(int(okFile.Fd()))
	filteredWriter := fastqio.NewWriter(int(filteredFile.Fd()))

	reader := newFastqReader(in, path, cfg.SingleLine)

	var readErr error
	jobs := pipeline.Feed(reader, &readErr)
	results := pipeline.New(cfg.Workers, newC).Run(jobs)

	counters := verdictio.NewCounters()
	var writeErr error
	pipeline.NewOrderedSink().Drain(results, func(r pipeline.Result) {
		counters.Add(r.Verdict)
		if writeErr != nil {
			return
		}
		if r.Verdict == verdict.OK {
			writeErr = okWriter.WriteRecord(r.Record)
		} else {
			writeErr = filteredWriter.WriteRecord(r.Record)
		}
	})
	if writeErr != nil {
		return counters, writeErr
	}
	if err := okWriter.Flush(); err != nil {
		return counters, err
	}
	if err := filteredWriter.Flush(); err != nil {
		return counters, err
	}
	if readErr != nil {
		return counters, readErr
	}

	if cfg.ProgressEvery > 0 {
		logger.Infof("filtered %d reads from %s (%d ok)", counters.Complete, path, counters.Passed())
	}

	if err := verdictio.Write(report, path, counters, namesFromConfig(cfg)); err != nil {
		return counters, err
	}
	return counters, nil
}
