// Command listrec builds the right-recursive list grammar
// list <- "a" ("," list)? and folds a match into a Go slice instead of
// leaving it as a raw parse tree.
package main

import (
	"fmt"
	"os"

	"github.com/peggy-rt/peggy/peg"
)

func newListLanguage() *peg.Language {
	lang := peg.NewLanguage()
	err := lang.Rule(`list <- "a" ("," list)?`, peg.FoldAction(func(_ *peg.Node, kids []interface{}) interface{} {
		items := []string{"a"}
		// kids[1] is the folded ("," list)? group: empty when absent,
		// or a one-element slice holding [",", tail] when present.
		tail := kids[1].([]interface{})
		if len(tail) == 0 {
			return items
		}
		pair := tail[0].([]interface{})
		return append(items, pair[1].([]string)...)
	}))
	if err != nil {
		panic(err)
	}
	return lang
}

func main() {
	input := "a,a,a"
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	lang := newListLanguage()
	v, err := lang.Eval(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%v\n", v)
}
