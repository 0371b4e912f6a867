// Command pegr is a driver for the grammar engine in package peg: it loads a
// PEG grammar from a file, and either matches it against an input file or
// dumps the grammar's resolved matcher graph for inspection.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/peggy-rt/peggy/internal/diagnostics"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pegr",
		Short: "pegr loads and runs PEG grammars",
	}
	registerGlobalFlags(root.PersistentFlags())
	root.AddCommand(newMatchCmd(), newDumpCmd(), newLangDemoCmd())
	return root
}

// registerGlobalFlags takes the pflag.FlagSet directly (rather than going
// through cobra's BoolVarP convenience wrapper) so callers embedding pegr's
// root command into a larger pflag-based flag set can register these same
// flags on it.
func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&verbose, "verbose", "v", false, "log grammar construction and resolution detail")
}

func loadGrammarFile(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pegr: reading grammar: %w", err)
	}
	return src, nil
}

// newLogger returns the diagnostics logger for the current invocation,
// raised to Debug level when --verbose was given.
func newLogger() hclog.Logger {
	l := diagnostics.New()
	if verbose {
		diagnostics.SetVerbose(l)
	}
	return l
}
