package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestDiscoverFindsFastqFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.fastq"), "")
	mustWrite(t, filepath.Join(dir, "b.fq"), "")
	mustWrite(t, filepath.Join(dir, "notes.txt"), "")

	got, err := Discover([]string{dir}, Options{})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 entries", got)
	}
}

func TestDiscoverRecursesOnlyWhenAsked(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "sub", "nested.fastq"), "")

	flat, err := Discover([]string{dir}, Options{})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(flat) != 0 {
		t.Fatalf("non-recursive Discover found %v, want none", flat)
	}

	deep, err := Discover([]string{dir}, Options{Recursive: true})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(deep) != 1 {
		t.Fatalf("recursive Discover found %v, want 1 entry", deep)
	}
}

func TestDiscoverHonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, ".gitignore"), "skip.fastq\n")
	mustWrite(t, filepath.Join(dir, "skip.fastq"), "")
	mustWrite(t, filepath.Join(dir, "keep.fastq"), "")

	got, err := Discover([]string{dir}, Options{})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "keep.fastq" {
		t.Fatalf("got %v, want only keep.fastq", got)
	}
}

func TestDiscoverSkipsHiddenByDefault(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, ".hidden.fastq"), "")
	mustWrite(t, filepath.Join(dir, "visible.fastq"), "")

	got, err := Discover([]string{dir}, Options{})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "visible.fastq" {
		t.Fatalf("got %v, want only visible.fastq", got)
	}
}
