// Package automaton implements the Aho-Corasick trie over the DNA
// alphabet {A,C,G,T,N}, augmented with the partitioned-seed records the
// approximate scanner needs. Nodes live in a flat arena (a []node slice)
// addressed by integer nodeID rather than as a graph of pointers: failure
// links are ids, not ownership, which makes the built automaton trivially
// shareable (read-only) across goroutines, mirroring the teacher's own
// "[256]*acNode fixed fan-out, BFS-computed fail links" shape narrowed to
// the 5-symbol nucleotide alphabet.
package automaton

import "github.com/komissarov/cookiecutter/internal/verdict"

// nodeID is an arena index. The root is always id 0.
type nodeID int32

const noNode nodeID = -1

// symbolCount is the fixed fan-out of every node: A, C, G, T, N.
const symbolCount = 5

// Symbol maps an upper-cased DNA base to its child-array index, or -1 for
// any byte outside {A,C,G,T,N}. Loaded pattern text and reads may both
// contain such bytes, so callers must handle -1 rather than index with it.
func Symbol(c byte) int {
	switch c {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	case 'N':
		return 4
	default:
		return -1
	}
}

// Upper upper-cases an ASCII byte the same way the original tool does:
// only a-z are folded, nothing else is touched.
func Upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 32
	}
	return c
}

// SeedHit records that reaching a node completes a seed fragment of
// Patterns[PID] whose last character sits at offset SeedEnd within the
// pattern. A node's seed hits are kept sorted by (PID, SeedEnd) so the
// approximate scanner can binary-search them.
type SeedHit struct {
	PID     int
	SeedEnd int
}

type node struct {
	children     [symbolCount]nodeID
	fail         nodeID
	terminalKind verdict.Kind
	seedHits     []SeedHit
}

func newNode() node {
	n := node{fail: noNode, terminalKind: verdict.NoMatch}
	for i := range n.children {
		n.children[i] = noNode
	}
	return n
}
