package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/peggy-rt/peggy/peg"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <grammar-file> <input-file>",
		Short: "parse an input file against a grammar and print the parse tree",
		Args:  cobra.ExactArgs(2),
		RunE:  runMatch,
	}
	return cmd
}

func runMatch(cmd *cobra.Command, args []string) error {
	grammarPath, inputPath := args[0], args[1]

	grammarSrc, err := loadGrammarFile(grammarPath)
	if err != nil {
		return err
	}
	input, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("pegr: reading input: %w", err)
	}

	g, err := peg.NewGrammar(string(grammarSrc), peg.WithLogger(newLogger()))
	if err != nil {
		return fmt.Errorf("pegr: compiling grammar: %w", err)
	}

	node, err := g.Parse(string(input))
	if err != nil {
		return fmt.Errorf("pegr: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), peg.Pretty(node))
	return nil
}
