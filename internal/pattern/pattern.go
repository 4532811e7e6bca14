// Package pattern holds the canonical store of adapter/contaminant
// patterns used to build the automaton: a frozen, insertion-ordered list
// of uppercase DNA strings tagged with a verdict.Kind, plus the derived
// seed-boundary metadata the automaton builder needs for partitioned
// (approximate) matching.
package pattern

import (
	"bufio"
	"io"
	"strings"

	"github.com/komissarov/cookiecutter/internal/cookerr"
	"github.com/komissarov/cookiecutter/internal/verdict"
)

// Pattern is a single canonicalized pattern: an uppercase DNA string and
// the kind of terminal it produces when matched in full.
type Pattern struct {
	Text string
	Kind verdict.Kind
}

// Len returns the pattern's length in bytes (DNA patterns are ASCII, so
// byte length and rune length coincide).
func (p Pattern) Len() int { return len(p.Text) }

// Table is the frozen, insertion-ordered set of patterns. Index into
// Patterns is the stable pid used throughout the automaton and scanners.
type Table struct {
	Patterns []Pattern
}

// Options configures the extra homopolymer/gap patterns Load appends
// after the adapters read from the pattern file.
type Options struct {
	// PolyG, when > 0, adds a "G"*PolyG pattern (kind PolyG) and a
	// "C"*PolyG pattern (kind PolyC).
	PolyG int
}

// Load reads one pattern per line from source: leading whitespace is
// preserved, any characters from the first tab onward are discarded,
// the remainder is upper-cased, and empty lines are skipped. It then
// appends the fixed "NN" gap pattern and, if opts.PolyG > 0, the two
// homopolymer patterns. Load fails with a cookerr.Config error if the
// resulting table would be empty.
func Load(source io.Reader, opts Options) (*Table, error) {
	t := &Table{}

	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		line := scanner.Text()
		if tab := strings.IndexByte(line, '\t'); tab >= 0 {
			line = line[:tab]
		}
		line = strings.ToUpper(line)
		if line == "" {
			continue
		}
		t.Patterns = append(t.Patterns, Pattern{Text: line, Kind: verdict.Adapter})
	}
	if err := scanner.Err(); err != nil {
		return nil, cookerr.IOf("read patterns", "", err)
	}

	t.Patterns = append(t.Patterns, Pattern{Text: "NN", Kind: verdict.NGap})
	if opts.PolyG > 0 {
		t.Patterns = append(t.Patterns,
			Pattern{Text: strings.Repeat("G", opts.PolyG), Kind: verdict.PolyG},
			Pattern{Text: strings.Repeat("C", opts.PolyG), Kind: verdict.PolyC},
		)
	}

	if len(t.Patterns) == 0 {
		return nil, cookerr.Configf("load patterns", "", errEmptyTable)
	}
	return t, nil
}

var errEmptyTable = emptyTableErr{}

type emptyTableErr struct{}

func (emptyTableErr) Error() string { return "pattern table is empty" }

// SeedBoundaries returns the end offsets (0-based, inclusive) of the
// errors+1 contiguous seeds a pattern of the given length is partitioned
// into under the pigeonhole scheme of §4.2. errors must be 1 or 2; for
// errors == 0 there are no seeds (the pattern is matched exactly).
func SeedBoundaries(length, errors int) []int {
	switch errors {
	case 1:
		return []int{length / 2, length - 1}
	case 2:
		return []int{length / 3, (length * 2) / 3, length - 1}
	default:
		return nil
	}
}
