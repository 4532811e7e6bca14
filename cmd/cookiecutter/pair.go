package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/komissarov/cookiecutter/internal/applog"
	"github.com/komissarov/cookiecutter/internal/classify"
	"github.com/komissarov/cookiecutter/internal/config"
	"github.com/komissarov/cookiecutter/internal/cookerr"
	"github.com/komissarov/cookiecutter/internal/fastqio"
	"github.com/komissarov/cookiecutter/internal/scan"
	"github.com/komissarov/cookiecutter/internal/verdict"
	"github.com/komissarov/cookiecutter/internal/verdictio"
)

func newPairCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair <r1.fastq> <r2.fastq>",
		Short: "Filter a paired-end FASTQ pair, salvaging single-end survivors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd, args[:1])
			if err != nil {
				return err
			}
			logger := applog.New(cmd.ErrOrStderr(), logLevel(cmd))
			c1, c2, err := runPair(cfg, args[0], args[1], logger, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return emitSummary(cmd.ErrOrStderr(), namesFromConfig(cfg), c1, c2)
		},
	}
	registerFilterFlags(cmd)
	return cmd
}

// runPair classifies mates from path1/path2 in lockstep and places each
// pair per the §4.6 disposition: both OK go to the ok streams, one OK goes
// to that side's single-end salvage stream (the other mate is filtered),
// and neither OK means both are filtered.
func runPair(cfg config.Config, path1, path2 string, logger *applog.Logger, report io.Writer) (*verdictio.Counters, *verdictio.Counters, error) {
	in1, err := os.Open(path1)
	if err != nil {
		return nil, nil, cookerr.IOf("runPair", path1, err)
	}
	defer in1.Close()
	in2, err := os.Open(path2)
	if err != nil {
		return nil, nil, cookerr.IOf("runPair", path2, err)
	}
	defer in2.Close()

	a, err := buildAutomaton(cfg)
	if err != nil {
		return nil, nil, err
	}
	th := thresholdsFromConfig(cfg)
	// Paired mode classifies every pair sequentially in this goroutine,
	// keeping the two files in lockstep, rather than going through the
	// worker pool; each side gets its own Classifier.
	c1 := classify.New(scan.New(a), cfg.Errors, th)
	c2 := classify.New(scan.New(a), cfg.Errors, th)

	streams, err := openPairStreams(path1, path2)
	if err != nil {
		return nil, nil, err
	}
	defer streams.closeAll()

	r1 := newFastqReader(in1, path1, cfg.SingleLine)
	r2 := newFastqReader(in2, path2, cfg.SingleLine)

	counters1, counters2 := verdictio.NewCounters(), verdictio.NewCounters()
	for {
		rec1, err1 := r1.Next()
		rec2, err2 := r2.Next()
		if err1 != nil || err2 != nil {
			if !isCleanEOF(err1) {
				return counters1, counters2, err1
			}
			if !isCleanEOF(err2) {
				return counters1, counters2, err2
			}
			if err1 != err2 {
				return counters1, counters2, cookerr.Protocolf("runPair", path1, errMateCountMismatch)
			}
			break
		}

		v1 := c1.Classify(rec1.Seq, rec1.Qual)
		v2 := c2.Classify(rec2.Seq, rec2.Qual)
		counters1.Add(v1)
		counters2.Add(v2)

		switch {
		case v1 == verdict.OK && v2 == verdict.OK:
			counters1.PE++
			counters2.PE++
			if err := streams.ok1.WriteRecord(rec1); err != nil {
				return counters1, counters2, err
			}
			if err := streams.ok2.WriteRecord(rec2); err != nil {
				return counters1, counters2, err
			}
		case v1 == verdict.OK:
			counters1.SE++
			if err := streams.se1.WriteRecord(rec1); err != nil {
				return counters1, counters2, err
			}
			if err := streams.filtered2.WriteRecord(rec2); err != nil {
				return counters1, counters2, err
			}
		case v2 == verdict.OK:
			counters2.SE++
			if err := streams.se2.WriteRecord(rec2); err != nil {
				return counters1, counters2, err
			}
			if err := streams.filtered1.WriteRecord(rec1); err != nil {
				return counters1, counters2, err
			}
		default:
			if err := streams.filtered1.WriteRecord(rec1); err != nil {
				return counters1, counters2, err
			}
			if err := streams.filtered2.WriteRecord(rec2); err != nil {
				return counters1, counters2, err
			}
		}
	}

	if err := streams.flushAll(); err != nil {
		return counters1, counters2, err
	}

	if cfg.ProgressEvery > 0 {
		logger.Infof("paired %d reads from %s/%s (%d complete pairs)", counters1.Complete, path1, path2, counters1.PE)
	}

	if err := verdictio.Write(report, path1, counters1, namesFromConfig(cfg)); err != nil {
		return counters1, counters2, err
	}
	if err := verdictio.Write(report, path2, counters2, namesFromConfig(cfg)); err != nil {
		return counters1, counters2, err
	}
	return counters1, counters2, nil
}

type pairStreams struct {
	ok1, ok2             *fastqio.Writer
	filtered1, filtered2 *fastqio.Writer
	se1, se2             *fastqio.Writer
	files                []*os.File
}

func openPairStreams(path1, path2 string) (*pairStreams, error) {
	s := &pairStreams{}
	open := func(path, suffix string) (*fastqio.Writer, error) {
		f, err := os.Create(outputPath(path, suffix))
		if err != nil {
			return nil, cookerr.IOf("openPairStreams", outputPath(path, suffix), err)
		}
		s.files = append(s.files, f)
		return fastqio.NewWriter(int(f.Fd())), nil
	}

	var err error
	if s.ok1, err = open(path1, ".ok.fastq"); err != nil {
		return nil, err
	}
	if s.ok2, err = open(path2, ".ok.fastq"); err != nil {
		return nil, err
	}
	if s.filtered1, err = open(path1, ".filtered.fastq"); err != nil {
		return nil, err
	}
	if s.filtered2, err = open(path2, ".filtered.fastq"); err != nil {
		return nil, err
	}
	if s.se1, err = open(path1, ".se.fastq"); err != nil {
		return nil, err
	}
	if s.se2, err = open(path2, ".se.fastq"); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *pairStreams) flushAll() error {
	for _, w := range []*fastqio.Writer{s.ok1, s.ok2, s.filtered1, s.filtered2, s.se1, s.se2} {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func (s *pairStreams) closeAll() {
	for _, f := range s.files {
		f.Close()
	}
}
