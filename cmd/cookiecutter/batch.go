package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/komissarov/cookiecutter/internal/applog"
	"github.com/komissarov/cookiecutter/internal/batch"
	"github.com/komissarov/cookiecutter/internal/config"
	"github.com/komissarov/cookiecutter/internal/cookerr"
)

func newBatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Discover FASTQ files under a directory and filter each one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlagsWithoutPathCheck(cmd)
			if err != nil {
				return err
			}
			recursive, _ := cmd.Flags().GetBool("recursive")
			hidden, _ := cmd.Flags().GetBool("hidden")
			noIgnore, _ := cmd.Flags().GetBool("no-ignore")
			outDir, _ := cmd.Flags().GetString("output-dir")

			logger := applog.New(cmd.ErrOrStderr(), logLevel(cmd))
			opts := batch.Options{Recursive: recursive, Hidden: hidden, NoIgnore: noIgnore}
			return runBatch(cfg, args[0], outDir, opts, logger, cmd.OutOrStdout())
		},
	}
	registerFilterFlags(cmd)
	cmd.Flags().Bool("recursive", false, "descend into subdirectories")
	cmd.Flags().Bool("hidden", false, "include dotfiles and dot-directories")
	cmd.Flags().Bool("no-ignore", false, "do not apply .gitignore exclusions")
	cmd.Flags().StringP("output-dir", "o", "", "mirror discovered files' outputs under this directory instead of alongside the input")
	return cmd
}

// configFromFlagsWithoutPathCheck builds a config.Config from the shared
// filter flags without validating Paths, since batch mode fills Paths in
// per discovered file rather than from argv.
func configFromFlagsWithoutPathCheck(cmd *cobra.Command) (config.Config, error) {
	cfg, err := configFromFlags(cmd, []string{"placeholder"})
	cfg.Paths = nil
	return cfg, err
}

// runBatch discovers FASTQ files under root and runs the single-end
// filter over each, optionally mirroring outputs into outDir instead of
// writing them alongside each input file.
func runBatch(cfg config.Config, root, outDir string, opts batch.Options, logger *applog.Logger, report io.Writer) error {
	files, err := batch.Discover([]string{root}, opts)
	if err != nil {
		return err
	}
	logger.Infof("discovered %d FASTQ files under %s", len(files), root)

	for _, path := range files {
		outBase, err := mirroredOutputBase(root, path, outDir)
		if err != nil {
			return err
		}
		perFile := cfg
		perFile.Paths = []string{path}
		if _, err := runFilter(perFile, outBase, logger, report); err != nil {
			logger.Errorf("%s: %v", path, err)
		}
	}
	return nil
}

// mirroredOutputBase returns the path outputs for a discovered file
// should be written alongside: path itself when outDir is empty, or
// path's position relative to root re-rooted under outDir.
func mirroredOutputBase(root, path, outDir string) (string, error) {
	if outDir == "" {
		return path, nil
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	dest := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", cookerr.IOf("mirroredOutputBase", dest, err)
	}
	return dest, nil
}
