// Package batch discovers FASTQ input files under one or more root
// directories, honoring .gitignore-style exclusion rules the same way a
// project-wide tool would skip generated or vendored content.
package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/komissarov/cookiecutter/internal/cookerr"
)

// Options configures directory discovery.
type Options struct {
	Recursive bool
	NoIgnore  bool // skip .gitignore processing
	Hidden    bool // include dotfiles and dot-directories
}

// fastqExt are the recognized FASTQ file suffixes; anything else found
// during a walk is skipped.
var fastqExt = map[string]bool{
	".fastq": true,
	".fq":    true,
}

// ignoreLayer pairs a directory with the compiled .gitignore found there,
// if any.
type ignoreLayer struct {
	dir    string
	parser *ignore.GitIgnore
}

func loadIgnoreLayer(dir string) ignoreLayer {
	parser, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return ignoreLayer{dir: dir}
	}
	return ignoreLayer{dir: dir, parser: parser}
}

func isIgnored(layers []ignoreLayer, fullPath string, isDir bool) bool {
	for _, l := range layers {
		if l.parser == nil {
			continue
		}
		rel, err := filepath.Rel(l.dir, fullPath)
		if err != nil {
			continue
		}
		if isDir {
			rel += "/"
		}
		if l.parser.MatchesPath(rel) {
			return true
		}
	}
	return false
}

// Discover walks roots and returns the FASTQ files found, sorted by path
// for deterministic batch ordering.
func Discover(roots []string, opts Options) ([]string, error) {
	var files []string
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, cookerr.IOf("batch.Discover", root, err)
		}
		if !info.IsDir() {
			if isFastqPath(root) {
				files = append(files, root)
			}
			continue
		}

		var layers []ignoreLayer
		if !opts.NoIgnore {
			layers = []ignoreLayer{loadIgnoreLayer(root)}
		}
		found, err := walkDir(root, layers, opts)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	sort.Strings(files)
	return files, nil
}

func walkDir(dir string, layers []ignoreLayer, opts Options) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, cookerr.IOf("batch.Discover", dir, err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		fullPath := filepath.Join(dir, name)

		if e.IsDir() {
			if skipDir(name, opts.Hidden) {
				continue
			}
			if isIgnored(layers, fullPath, true) {
				continue
			}
			if !opts.Recursive {
				continue
			}
			childLayers := layers
			if !opts.NoIgnore {
				childLayers = append(append([]ignoreLayer{}, layers...), loadIgnoreLayer(fullPath))
			}
			sub, err := walkDir(fullPath, childLayers, opts)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}

		if !opts.Hidden && strings.HasPrefix(name, ".") {
			continue
		}
		if isIgnored(layers, fullPath, false) {
			continue
		}
		if isFastqPath(name) {
			files = append(files, fullPath)
		}
	}
	return files, nil
}

func isFastqPath(name string) bool {
	return fastqExt[strings.ToLower(filepath.Ext(name))]
}

func skipDir(name string, hidden bool) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	}
	return !hidden && strings.HasPrefix(name, ".")
}
