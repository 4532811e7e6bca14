// Package verdictio aggregates per-read verdicts into run counters and
// renders the final per-file summary report.
package verdictio

import "github.com/komissarov/cookiecutter/internal/verdict"

// Names parameterizes the verdict names reported to a verdict-counter
// sink by the thresholds that produced them, so a downstream tool can
// recover the filter configuration from the report alone.
type Names struct {
	MinLength   int
	MeanQuality float64
	DustK       int
	DustCutoff  float64
	PolyG       int
}

// For returns the reported name for v under these Names.
func (n Names) For(v verdict.Verdict) string {
	switch v {
	case verdict.VAdapter:
		return "match"
	case verdict.VNGap:
		return "n"
	case verdict.VPolyG:
		return polyName("polyG", n.PolyG)
	case verdict.VPolyC:
		return polyName("polyC", n.PolyG)
	case verdict.TooShort:
		return intParam("length", n.MinLength)
	case verdict.LowComplexity:
		return dustParam(n.DustK, n.DustCutoff)
	case verdict.LowQuality:
		return floatParam("mean_quality", n.MeanQuality)
	default:
		return v.String()
	}
}

// Counters tallies how many reads received each Verdict during a run,
// plus the paired-end bookkeeping (Complete, PE, SE) that is only
// meaningful when reads are classified in mate pairs.
type Counters struct {
	byVerdict map[verdict.Verdict]int
	Complete  int
	PE        int
	SE        int
}

// NewCounters returns an empty Counters ready to accumulate.
func NewCounters() *Counters {
	return &Counters{byVerdict: make(map[verdict.Verdict]int)}
}

// Add records one read's verdict.
func (c *Counters) Add(v verdict.Verdict) {
	c.Complete++
	c.byVerdict[v]++
}

// Count returns how many reads were assigned the given verdict.
func (c *Counters) Count(v verdict.Verdict) int {
	return c.byVerdict[v]
}

// Passed returns how many reads received verdict.OK.
func (c *Counters) Passed() int {
	return c.byVerdict[verdict.OK]
}

// Merge folds other's tallies into c, for combining per-worker counters
// into one run total.
func (c *Counters) Merge(other *Counters) {
	c.Complete += other.Complete
	c.PE += other.PE
	c.SE += other.SE
	for v, n := range other.byVerdict {
		c.byVerdict[v] += n
	}
}
