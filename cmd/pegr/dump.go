package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peggy-rt/peggy/peg"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <grammar-file>",
		Short: "compile a grammar and print its resolved matcher graph",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	grammarSrc, err := loadGrammarFile(args[0])
	if err != nil {
		return err
	}

	g, err := peg.NewGrammar(string(grammarSrc), peg.WithLogger(newLogger()))
	if err != nil {
		return fmt.Errorf("pegr: compiling grammar: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), g.Matcher().Dump())
	return nil
}
