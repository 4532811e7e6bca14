// Package classify combines the auxiliary filters and the automaton
// scanners into the single ordered verdict pipeline of §4.5: length,
// then mean quality, then DUST, then the adapter/homopolymer scan —
// returning the first non-OK reason.
package classify

import (
	"github.com/komissarov/cookiecutter/internal/filters"
	"github.com/komissarov/cookiecutter/internal/scan"
	"github.com/komissarov/cookiecutter/internal/verdict"
)

// Thresholds holds the configured cutoffs a Classifier applies. A
// zero/negative value disables the corresponding check, per §6.
type Thresholds struct {
	MinLength   int
	MeanQuality float64
	DustK       int
	DustCutoff  float64
}

// Classifier orders the filter checks over one Scanner (and therefore one
// Automaton). It is not safe for concurrent use by multiple goroutines —
// each worker owns its own Classifier, built over its own Scanner, the
// same way the teacher's scheduler gives each worker goroutine its own
// traversal state.
type Classifier struct {
	scanner    *scan.Scanner
	thresholds Thresholds
	errors     int
}

// New creates a Classifier driving the given Scanner with the given
// thresholds. errors selects exact (0) or approximate (1, 2) scanning.
func New(s *scan.Scanner, errors int, t Thresholds) *Classifier {
	return &Classifier{scanner: s, thresholds: t, errors: errors}
}

// Classify applies the filters in §4.5 order to one read and returns the
// first non-OK verdict. qual may be empty when quality is unavailable
// (the single-line FASTQ variant), in which case the mean-quality check
// is skipped regardless of threshold.
func (c *Classifier) Classify(seq, qual string) verdict.Verdict {
	if filters.TooShort(seq, c.thresholds.MinLength) {
		return verdict.TooShort
	}
	if qual != "" && filters.LowQuality(qual, c.thresholds.MeanQuality) {
		return verdict.LowQuality
	}
	if c.thresholds.DustCutoff > 0 && filters.LowComplexity(seq, c.thresholds.DustK, c.thresholds.DustCutoff) {
		return verdict.LowComplexity
	}

	var kind verdict.Kind
	if c.errors == 0 {
		kind = c.scanner.SearchAny(seq)
	} else {
		kind = c.scanner.SearchInexact(seq)
	}
	return verdict.FromKind(kind)
}
