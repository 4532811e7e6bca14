// Package scan drives the automaton built by package automaton over a
// read's sequence, implementing the exact scanner (SearchAny, §4.3) and
// the two-phase approximate scanner (SearchInexact, §4.3) that tolerates
// up to k substitutions against an adapter pattern.
package scan

import (
	"sort"

	"github.com/komissarov/cookiecutter/internal/automaton"
	"github.com/komissarov/cookiecutter/internal/pattern"
	"github.com/komissarov/cookiecutter/internal/verdict"
)

// seedMatch is one observed seed hit: the text position the seed's last
// character landed on, and the seed's absolute end offset within the
// pattern (used to recover the implied placement's start: begin = textPos
// - seedEnd).
type seedMatch struct {
	textPos int
	seedEnd int
}

// Scanner holds the traversal state for one goroutine's worth of scanning
// against a shared, read-only Automaton: a transient per-read seed-hit
// table that is cleared and reused rather than reallocated (§5).
type Scanner struct {
	a       *automaton.Automaton
	matches map[int][]seedMatch
}

// New creates a Scanner bound to a (shared, immutable) Automaton. Callers
// needing concurrent scanning create one Scanner per goroutine over the
// same Automaton.
func New(a *automaton.Automaton) *Scanner {
	s := &Scanner{a: a, matches: make(map[int][]seedMatch)}
	if a.Errors > 0 {
		for pid, p := range a.Patterns.Patterns {
			if p.Kind == verdict.Adapter {
				s.matches[pid] = nil
			}
		}
	}
	return s
}

func (s *Scanner) reset() {
	for pid := range s.matches {
		s.matches[pid] = s.matches[pid][:0]
	}
}

// SearchAny consumes seq left to right and returns the first terminal
// kind reached by the automaton, or verdict.NoMatch if none is. It never
// considers approximate (seed-based) matches: every pattern in the table
// is treated as requiring an exact occurrence.
func (s *Scanner) SearchAny(seq string) verdict.Kind {
	curr := automaton.Root
	for i := 0; i < len(seq); i++ {
		curr = s.a.Step(curr, seq[i])
		if k := s.findMatch(curr); k != verdict.NoMatch {
			return k
		}
	}
	return verdict.NoMatch
}

// findMatch walks the suffix (failure) chain from node, returning the
// first terminal kind encountered, or NoMatch if the chain runs out
// (reaches the root's self-loop) without one.
func (s *Scanner) findMatch(n automaton.NodeID) verdict.Kind {
	curr := n
	for {
		if k := s.a.TerminalKind(curr); k != verdict.NoMatch {
			return k
		}
		next := s.a.Fail(curr)
		if next == curr {
			return verdict.NoMatch
		}
		curr = next
	}
}

// SearchInexact implements the two-phase approximate scan of §4.3: seed
// collection (with early exit on a full set of aligned seeds, and
// immediate return on any non-adapter terminal), followed by bounded
// Hamming verification of partially-seeded candidates.
func (s *Scanner) SearchInexact(seq string) verdict.Kind {
	s.reset()
	errors := s.a.Errors

	curr := automaton.Root
	for i := 0; i < len(seq); i++ {
		curr = s.a.Step(curr, seq[i])
		if k, hit := s.collectAt(curr, i, errors); hit {
			return k
		}
	}

	return s.verifyPartials(seq, errors)
}

// collectAt walks the suffix chain from node curr (reached after
// consuming position i), recording seed hits and checking for the
// non-adapter-precedence rule and the early-exit condition. The bool
// return reports whether scanning should stop immediately; when true,
// the Kind is the result to return.
func (s *Scanner) collectAt(curr automaton.NodeID, i, errors int) (verdict.Kind, bool) {
	n := curr
	for {
		if k := s.a.TerminalKind(n); k != verdict.NoMatch && k != verdict.Adapter {
			return k, true
		}
		for _, hit := range s.a.SeedHits(n) {
			s.matches[hit.PID] = insertSeedMatch(s.matches[hit.PID], seedMatch{textPos: i, seedEnd: hit.SeedEnd})
			if s.earlyExit(hit.PID, i, hit.SeedEnd, errors) {
				return verdict.Adapter, true
			}
		}
		next := s.a.Fail(n)
		if next == n {
			return verdict.NoMatch, false
		}
		n = next
	}
}

// earlyExit tests whether the seed hits collected so far for pid, taken
// together with the seed just recorded, already imply a fully aligned
// placement (every partition boundary present at the consistent begin).
func (s *Scanner) earlyExit(pid, textPos, seedEnd, errors int) bool {
	begin := textPos - seedEnd
	boundaries := pattern.SeedBoundaries(s.a.PatternLen(pid), errors)
	for _, b := range boundaries {
		if !hasSeed(s.matches[pid], begin+b, b) {
			return false
		}
	}
	return true
}

// insertSeedMatch inserts m into an ordered-by-(textPos,seedEnd) list,
// preserving the invariant needed by hasSeed's binary search even in the
// rare case where two distinct seeds of the same pattern land on the same
// text position in a single scan step.
func insertSeedMatch(list []seedMatch, m seedMatch) []seedMatch {
	i := sort.Search(len(list), func(i int) bool {
		if list[i].textPos != m.textPos {
			return list[i].textPos >= m.textPos
		}
		return list[i].seedEnd >= m.seedEnd
	})
	list = append(list, seedMatch{})
	copy(list[i+1:], list[i:])
	list[i] = m
	return list
}

// hasSeed reports whether (textPos, seedEnd) is present in an ordered
// (by textPos, then seedEnd) seed-hit list, via binary search.
func hasSeed(list []seedMatch, textPos, seedEnd int) bool {
	i := sort.Search(len(list), func(i int) bool {
		if list[i].textPos != textPos {
			return list[i].textPos >= textPos
		}
		return list[i].seedEnd >= seedEnd
	})
	return i < len(list) && list[i].textPos == textPos && list[i].seedEnd == seedEnd
}

// verifyPartials implements Phase 2: for every pattern with at least one
// observed seed hit, try each hit's implied placement, verifying the
// segments not already confirmed exact by another seed hit at the same
// begin, by exact (case-insensitive) Hamming counting short-circuited at
// errors+1. See SPEC_FULL.md §9 for the resolution of the legacy
// verification-budget asymmetry this replaces.
func (s *Scanner) verifyPartials(seq string, errors int) verdict.Kind {
	for pid, hits := range s.matches {
		if len(hits) == 0 {
			continue
		}
		length := s.a.PatternLen(pid)
		boundaries := pattern.SeedBoundaries(length, errors)
		text := s.a.PatternText(pid)

		for _, hit := range hits {
			begin := hit.textPos - hit.seedEnd
			if begin < 0 || begin+length > len(seq) {
				continue
			}
			matchedIdx := boundaryIndex(boundaries, hit.seedEnd)
			matched := make([]bool, len(boundaries))
			matched[matchedIdx] = true
			for idx, b := range boundaries {
				if idx == matchedIdx {
					continue
				}
				if hasSeed(hits, begin+b, b) {
					matched[idx] = true
				}
			}

			total := 0
			budget := errors + 1
			ok := true
			segStart := 0
			for idx, b := range boundaries {
				segEnd := b // inclusive
				if !matched[idx] {
					total += countMismatches(seq, begin+segStart, text, segStart, segEnd-segStart+1, budget-total)
					if total > errors {
						ok = false
						break
					}
				}
				segStart = segEnd + 1
			}
			if ok && total <= errors {
				return verdict.Adapter
			}
		}
	}
	return verdict.NoMatch
}

func boundaryIndex(boundaries []int, seedEnd int) int {
	for i, b := range boundaries {
		if b == seedEnd {
			return i
		}
	}
	return 0
}

// countMismatches counts case-insensitive byte mismatches between
// seq[textStart:textStart+length] and pat[patStart:patStart+length],
// stopping as soon as the count reaches budget (returns budget in that
// case rather than continuing the scan).
func countMismatches(seq string, textStart int, pat string, patStart, length, budget int) int {
	if budget <= 0 {
		return 0
	}
	count := 0
	for i := 0; i < length; i++ {
		if automaton.Upper(seq[textStart+i]) != automaton.Upper(pat[patStart+i]) {
			count++
			if count >= budget {
				return count
			}
		}
	}
	return count
}
