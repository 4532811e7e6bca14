package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/komissarov/cookiecutter/internal/applog"
	"github.com/komissarov/cookiecutter/internal/config"
)

func TestRunPairSalvagesSingleEndSurvivor(t *testing.T) {
	dir := t.TempDir()
	adapters := filepath.Join(dir, "adapters.txt")
	writeFile(t, adapters, "AGATCGGAAGAGC\n")

	r1 := filepath.Join(dir, "r1.fastq")
	r2 := filepath.Join(dir, "r2.fastq")
	clean := "ACGTGCATGCACGTAGCTAGCATGCATCGATCGATGCATCGATGCATGCATGCGATCGA"
	adapter := "CCCCAGATCGGAAGAGCTTTT"

	writeFile(t, r1, strings.Join([]string{"@p1", clean, "+", strings.Repeat("I", len(clean)), ""}, "\n"))
	writeFile(t, r2, strings.Join([]string{"@p1", adapter, "+", strings.Repeat("I", len(adapter)), ""}, "\n"))

	cfg := config.Config{AdapterFile: adapters, Errors: 0, Paths: []string{r1}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	logger := applog.New(nil, log.InfoLevel)
	var report bytes.Buffer
	c1, c2, err := runPair(cfg, r1, r2, logger, &report)
	if err != nil {
		t.Fatalf("runPair: %v", err)
	}
	if c1.Passed() != 1 || c2.Passed() != 0 {
		t.Errorf("c1.Passed()=%d c2.Passed()=%d, want 1/0", c1.Passed(), c2.Passed())
	}
	if c1.SE != 1 {
		t.Errorf("c1.SE = %d, want 1", c1.SE)
	}

	se1, err := os.ReadFile(r1 + ".se.fastq")
	if err != nil {
		t.Fatalf("ReadFile se1: %v", err)
	}
	if !strings.Contains(string(se1), "@p1") {
		t.Errorf("se1 missing salvaged mate: %s", se1)
	}

	filtered2, err := os.ReadFile(r2 + ".filtered.fastq")
	if err != nil {
		t.Fatalf("ReadFile filtered2: %v", err)
	}
	if !strings.Contains(string(filtered2), "@p1") {
		t.Errorf("filtered2 missing its mate: %s", filtered2)
	}
}
