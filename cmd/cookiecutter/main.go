// Command cookiecutter filters sequencing reads against a table of
// adapter and contamination patterns, reporting per-file verdict counts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/komissarov/cookiecutter/internal/config"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cookiecutter",
		Short:         "Filter sequencing reads for adapters, low complexity, and quality",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetArgs(withDotfileArgs(os.Args[1:]))

	root.AddCommand(newFilterCommand())
	root.AddCommand(newPairCommand())
	root.AddCommand(newBatchCommand())
	root.AddCommand(newCountCommand())
	return root
}

// withDotfileArgs prepends any dotfile-sourced flags ahead of the real
// command-line arguments so that explicit flags still win pflag's
// last-flag-wins conflict resolution.
func withDotfileArgs(args []string) []string {
	dotArgs := config.LoadDotfileArgs()
	if len(dotArgs) == 0 {
		return args
	}
	return append(dotArgs, args...)
}
