package classify

import (
	"strings"
	"testing"

	"github.com/komissarov/cookiecutter/internal/automaton"
	"github.com/komissarov/cookiecutter/internal/pattern"
	"github.com/komissarov/cookiecutter/internal/scan"
	"github.com/komissarov/cookiecutter/internal/verdict"
)

func newClassifier(t *testing.T, errors int, th Thresholds) *Classifier {
	t.Helper()
	tbl, err := pattern.Load(strings.NewReader("AGATCGGAAGAGC\n"), pattern.Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a := automaton.Build(tbl, errors)
	s := scan.New(a)
	return New(s, errors, th)
}

func TestLengthFilterPrecedesAdapterScan(t *testing.T) {
	c := newClassifier(t, 0, Thresholds{MinLength: 50})
	// Short read that also fully contains the adapter: length must win.
	got := c.Classify("AGATCGGAAGAGC", "")
	if got != verdict.TooShort {
		t.Errorf("got %v, want TooShort", got)
	}
}

func TestQualityFilterPrecedesAdapterScan(t *testing.T) {
	c := newClassifier(t, 0, Thresholds{MeanQuality: 30})
	seq := "CCCCAGATCGGAAGAGCTTTT"
	qual := strings.Repeat(string([]byte{10}), len(seq))
	if got := c.Classify(seq, qual); got != verdict.LowQuality {
		t.Errorf("got %v, want LowQuality", got)
	}
}

func TestQualitySkippedWhenEmpty(t *testing.T) {
	c := newClassifier(t, 0, Thresholds{MeanQuality: 30})
	got := c.Classify("CCCCAGATCGGAAGAGCTTTT", "")
	if got != verdict.VAdapter {
		t.Errorf("got %v, want VAdapter when qual is empty", got)
	}
}

func TestDustFilterPrecedesAdapterScan(t *testing.T) {
	c := newClassifier(t, 0, Thresholds{DustK: 3, DustCutoff: 1})
	seq := strings.Repeat("A", 40) + "AGATCGGAAGAGC"
	if got := c.Classify(seq, ""); got != verdict.LowComplexity {
		t.Errorf("got %v, want LowComplexity", got)
	}
}

func TestCleanReadPassesThrough(t *testing.T) {
	c := newClassifier(t, 0, Thresholds{MinLength: 4, MeanQuality: 20, DustK: 3, DustCutoff: 50})
	seq := "ACGTGCATGCACGTAGCTAGCATGCATCGATCGATGCATCGATGCATGCATGCGATCGA"
	qual := strings.Repeat(string([]byte{40}), len(seq))
	if got := c.Classify(seq, qual); got != verdict.OK {
		t.Errorf("got %v, want OK", got)
	}
}

func TestApproximateScanFeedsClassifier(t *testing.T) {
	c := newClassifier(t, 1, Thresholds{})
	seq := "CCCCAGATCGGAAGTGCTTTT" // one substitution vs the adapter
	if got := c.Classify(seq, ""); got != verdict.VAdapter {
		t.Errorf("got %v, want VAdapter", got)
	}
}
