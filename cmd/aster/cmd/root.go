package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "aster",
	Short: "Aster step-granular evaluator",
	Long: `aster is a command-line driver for the Aster evaluator: a
step-granular tree-walking virtual machine for a small ML/Motoko-family
expression language.

This CLI parses an Aster program from a file or inline source and runs it to completion,
to a step budget, or to a source breakpoint, exposing the same Core, Step,
and Run primitives a debugger or test harness would embed directly.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
