package pattern

import (
	"strings"
	"testing"

	"github.com/komissarov/cookiecutter/internal/verdict"
)

func TestLoadCanonicalizesAndSkipsEmpty(t *testing.T) {
	src := "agatcggaagagc\n\n  leadingspace\nfoo\tbar\n"
	tbl, err := Load(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"AGATCGGAAGAGC", "  LEADINGSPACE", "FOO", "NN"}
	if len(tbl.Patterns) != len(want) {
		t.Fatalf("got %d patterns, want %d: %+v", len(tbl.Patterns), len(want), tbl.Patterns)
	}
	for i, w := range want {
		if tbl.Patterns[i].Text != w {
			t.Errorf("pattern %d = %q, want %q", i, tbl.Patterns[i].Text, w)
		}
	}
	if tbl.Patterns[len(want)-1].Kind != verdict.NGap {
		t.Errorf("NN pattern kind = %v, want NGap", tbl.Patterns[len(want)-1].Kind)
	}
}

func TestLoadPolyG(t *testing.T) {
	tbl, err := Load(strings.NewReader("ACGT\n"), Options{PolyG: 4})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	last3 := tbl.Patterns[len(tbl.Patterns)-3:]
	if last3[0].Text != "NN" || last3[0].Kind != verdict.NGap {
		t.Errorf("expected NN gap pattern, got %+v", last3[0])
	}
	if last3[1].Text != "GGGG" || last3[1].Kind != verdict.PolyG {
		t.Errorf("expected GGGG polyG pattern, got %+v", last3[1])
	}
	if last3[2].Text != "CCCC" || last3[2].Kind != verdict.PolyC {
		t.Errorf("expected CCCC polyC pattern, got %+v", last3[2])
	}
}

func TestLoadEmptySourceYieldsOnlyNGap(t *testing.T) {
	// Even an "empty" pattern file still yields the NN gap pattern, so
	// the table is never actually empty through Load; this test
	// documents that invariant rather than exercising the ConfigError
	// path (which Load cannot reach given it always appends NN).
	tbl, err := Load(strings.NewReader(""), Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tbl.Patterns) != 1 {
		t.Fatalf("expected exactly the NN gap pattern, got %+v", tbl.Patterns)
	}
}

func TestSeedBoundaries(t *testing.T) {
	if got := SeedBoundaries(13, 1); len(got) != 2 || got[0] != 6 || got[1] != 12 {
		t.Errorf("SeedBoundaries(13,1) = %v, want [6 12]", got)
	}
	if got := SeedBoundaries(13, 2); len(got) != 3 || got[0] != 4 || got[1] != 8 || got[2] != 12 {
		t.Errorf("SeedBoundaries(13,2) = %v, want [4 8 12]", got)
	}
	if got := SeedBoundaries(13, 0); got != nil {
		t.Errorf("SeedBoundaries(13,0) = %v, want nil", got)
	}
}
