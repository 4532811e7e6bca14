package automaton

import (
	"sort"

	"github.com/komissarov/cookiecutter/internal/pattern"
	"github.com/komissarov/cookiecutter/internal/verdict"
)

// NodeID is the public handle type for automaton nodes, used by scanners
// to hold "current position" state. The zero value is the root.
type NodeID = nodeID

// Root is the handle of the trie root.
const Root NodeID = 0

// Automaton is an immutable, arena-backed Aho-Corasick trie with
// partitioned-seed annotations. Once built it holds no ownership cycles
// and may be read concurrently by any number of scanners without
// synchronization.
type Automaton struct {
	nodes    []node
	Patterns *pattern.Table
	Errors   int
}

// TerminalKind reports the Kind a node terminates, or verdict.NoMatch.
func (a *Automaton) TerminalKind(id NodeID) verdict.Kind {
	return a.nodes[id].terminalKind
}

// SeedHits returns the seed-hit records at a node, sorted by (PID, SeedEnd).
func (a *Automaton) SeedHits(id NodeID) []SeedHit {
	return a.nodes[id].seedHits
}

// Fail returns the failure link of a node. Root's fail is Root itself.
func (a *Automaton) Fail(id NodeID) NodeID {
	return a.nodes[id].fail
}

// Step performs the combined "follow fail links until a transition on c
// exists, then take it" operation central to Aho-Corasick traversal.
// Amortized O(1) per call across a full scan.
func (a *Automaton) Step(curr NodeID, c byte) NodeID {
	sym := Symbol(Upper(c))
	if sym < 0 {
		// Bytes outside the DNA alphabet can never continue any pattern;
		// treat them as an automatic reset to root.
		return Root
	}
	for curr != Root && a.nodes[curr].children[sym] == noNode {
		curr = a.nodes[curr].fail
	}
	if next := a.nodes[curr].children[sym]; next != noNode {
		return next
	}
	return Root
}

// PatternLen returns the length of patterns[pid], used by scanners to
// reconstruct full-pattern placements from seed offsets.
func (a *Automaton) PatternLen(pid int) int {
	return a.Patterns.Patterns[pid].Len()
}

// PatternText returns the canonical text of patterns[pid].
func (a *Automaton) PatternText(pid int) string {
	return a.Patterns.Patterns[pid].Text
}

// Build constructs an Automaton from a frozen pattern table: it runs the
// goto-function insertion (with partitioned-seed recording for adapter
// patterns when errors > 0), then computes failure links by BFS, exactly
// as original_source/src/search.cpp's build_trie + add_failures.
func Build(t *pattern.Table, errors int) *Automaton {
	a := &Automaton{Patterns: t, Errors: errors}
	a.nodes = append(a.nodes, newNode()) // root, id 0

	for pid, p := range t.Patterns {
		a.insert(pid, p, errors)
	}
	a.addFailures()
	return a
}

// insert walks/extends the trie for one pattern, assigning its terminal
// kind at the last character. For adapter patterns with errors > 0, it
// additionally records a seed hit at each partition boundary and resets
// the walk to root after each seed but the last, so every seed is
// represented as an independent root-rooted path (§4.2).
func (a *Automaton) insert(pid int, p pattern.Pattern, errors int) {
	for j := 0; j < p.Len(); j++ {
		if Symbol(p.Text[j]) < 0 {
			// A byte outside {A,C,G,T,N} has no child slot, so the pattern
			// is left out of the trie and never matches.
			return
		}
	}

	boundaries := map[int]bool{}
	if p.Kind == verdict.Adapter && errors != 0 {
		for _, b := range pattern.SeedBoundaries(p.Len(), errors) {
			boundaries[b] = true
		}
	}
	lastBoundary := p.Len() - 1

	curr := Root
	for j := 0; j < p.Len(); j++ {
		sym := Symbol(p.Text[j])
		curr = a.child(curr, sym)
		if j == p.Len()-1 {
			a.nodes[curr].terminalKind = p.Kind
		}
		if boundaries[j] {
			a.recordSeed(curr, pid, j)
			if j != lastBoundary {
				curr = Root
			}
		}
	}
}

// child returns the child of curr on sym, creating it if absent.
func (a *Automaton) child(curr NodeID, sym int) NodeID {
	if next := a.nodes[curr].children[sym]; next != noNode {
		return next
	}
	a.nodes = append(a.nodes, newNode())
	next := NodeID(len(a.nodes) - 1)
	a.nodes[curr].children[sym] = next
	return next
}

// recordSeed appends a seed hit at node id, keeping the node's seed-hit
// slice sorted by (PID, SeedEnd) as patterns §3 requires (patterns are
// inserted in pid order and seeds within a pattern in increasing offset
// order, so a plain append already preserves the invariant; Insert is
// used defensively in case that assumption is ever violated).
func (a *Automaton) recordSeed(id NodeID, pid, seedEnd int) {
	hits := a.nodes[id].seedHits
	hit := SeedHit{PID: pid, SeedEnd: seedEnd}
	i := sort.Search(len(hits), func(i int) bool {
		if hits[i].PID != hit.PID {
			return hits[i].PID > hit.PID
		}
		return hits[i].SeedEnd >= hit.SeedEnd
	})
	hits = append(hits, SeedHit{})
	copy(hits[i+1:], hits[i:])
	hits[i] = hit
	a.nodes[id].seedHits = hits
}

// addFailures computes Aho-Corasick failure links by breadth-first
// traversal from the root, per §4.2.
func (a *Automaton) addFailures() {
	a.nodes[Root].fail = Root

	queue := make([]NodeID, 0, len(a.nodes))
	for sym := 0; sym < symbolCount; sym++ {
		if child := a.nodes[Root].children[sym]; child != noNode {
			a.nodes[child].fail = Root
			queue = append(queue, child)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for sym := 0; sym < symbolCount; sym++ {
			child := a.nodes[curr].children[sym]
			if child == noNode {
				continue
			}
			queue = append(queue, child)

			parent := a.nodes[curr].fail
			for parent != Root && a.nodes[parent].children[sym] == noNode {
				parent = a.nodes[parent].fail
			}
			if next := a.nodes[parent].children[sym]; next != noNode {
				a.nodes[child].fail = next
			} else {
				a.nodes[child].fail = Root
			}
		}
	}
}
