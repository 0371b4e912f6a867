package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/peggy-rt/peggy/peg"
)

func newLangDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lang-demo <expr>",
		Short: "evaluate an integer sum expression through a peg.Language, e.g. pegr lang-demo '1+2+3'",
		Args:  cobra.ExactArgs(1),
		RunE:  runLangDemo,
	}
}

func runLangDemo(cmd *cobra.Command, args []string) error {
	lang := peg.NewLanguage(peg.WithLogger(newLogger()))

	if err := lang.Rule(`expr <- num ("+" num)*`, peg.FoldAction(sumExpr)); err != nil {
		return err
	}
	if err := lang.Rule(`num <- [0-9]+`, peg.RawAction(parseNum)); err != nil {
		return err
	}

	v, err := lang.Eval(args[0])
	if err != nil {
		return fmt.Errorf("pegr: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func sumExpr(_ *peg.Node, kids []interface{}) interface{} {
	sum := kids[0].(int)
	for _, rep := range kids[1].([]interface{}) {
		pair := rep.([]interface{})
		sum += pair[1].(int)
	}
	return sum
}

func parseNum(n *peg.Node) interface{} {
	v, err := strconv.Atoi(n.Text)
	if err != nil {
		panic(err)
	}
	return v
}
