package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/komissarov/cookiecutter/internal/applog"
	"github.com/komissarov/cookiecutter/internal/batch"
	"github.com/komissarov/cookiecutter/internal/config"
)

func TestRunBatchDiscoversAndMirrorsOutputs(t *testing.T) {
	root := t.TempDir()
	adapters := filepath.Join(root, "adapters.txt")
	writeFile(t, adapters, "AGATCGGAAGAGC\n")

	sub := filepath.Join(root, "lane1")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	reads := filepath.Join(sub, "reads.fastq")
	writeFile(t, reads, strings.Join([]string{
		"@clean", "ACGTGCATGCACGTAGCTAGCATGCATCGATCGATGCATCGATGCATGCATGCGATCGAT", "+", strings.Repeat("I", 60),
		"",
	}, "\n"))

	outDir := filepath.Join(root, "out")
	cfg := config.Config{AdapterFile: adapters, Errors: 0}
	logger := applog.New(nil, log.InfoLevel)
	var report bytes.Buffer

	err := runBatch(cfg, root, outDir, batch.Options{Recursive: true}, logger, &report)
	if err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	mirrored := filepath.Join(outDir, "lane1", "reads.fastq")
	okData, err := os.ReadFile(mirrored + ".ok.fastq")
	if err != nil {
		t.Fatalf("ReadFile mirrored ok: %v", err)
	}
	if !strings.Contains(string(okData), "@clean") {
		t.Errorf("mirrored ok file missing the clean read: %s", okData)
	}
}

func TestRunBatchContinuesAfterPerFileError(t *testing.T) {
	root := t.TempDir()
	adapters := filepath.Join(root, "adapters.txt")
	writeFile(t, adapters, "AGATCGGAAGAGC\n")

	good := filepath.Join(root, "good.fastq")
	writeFile(t, good, strings.Join([]string{
		"@clean", "ACGTGCATGCACGTAGCTAGCATGCATCGATCGATGCATCGATGCATGCATGCGATCGAT", "+", strings.Repeat("I", 60),
		"",
	}, "\n"))
	bad := filepath.Join(root, "bad.fastq")
	writeFile(t, bad, "@truncated\nACGT\n")

	cfg := config.Config{AdapterFile: adapters, Errors: 0}
	logger := applog.New(nil, log.InfoLevel)
	var report bytes.Buffer

	if err := runBatch(cfg, root, "", batch.Options{}, logger, &report); err != nil {
		t.Fatalf("runBatch: %v", err)
	}

	if _, err := os.ReadFile(good + ".ok.fastq"); err != nil {
		t.Errorf("good.fastq should still have been filtered despite bad.fastq's error: %v", err)
	}
}
