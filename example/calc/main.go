// Command calc is a line-at-a-time integer calculator built on peg.Language:
// num <- [0-9]+ evaluates to an int, expr <- num ("+" num)* sums them.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/peggy-rt/peggy/peg"
)

func newCalculator() *peg.Language {
	lang := peg.NewLanguage()

	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	// expr is registered first: Language.Eval parses against the first
	// rule registered, and that must be the grammar's root.
	// kids[0] is num's folded value; kids[1] is the folded ("+" num)*
	// repetition, a slice of one two-element slice ["+", num] per match.
	must(lang.Rule(`expr <- num ("+" num)*`, peg.FoldAction(func(_ *peg.Node, kids []interface{}) interface{} {
		sum := kids[0].(int)
		for _, rep := range kids[1].([]interface{}) {
			pair := rep.([]interface{})
			sum += pair[1].(int)
		}
		return sum
	})))

	must(lang.Rule(`num <- [0-9]+`, peg.RawAction(func(n *peg.Node) interface{} {
		v, err := strconv.Atoi(n.Text)
		if err != nil {
			panic(err)
		}
		return v
	})))

	return lang
}

func main() {
	lang := newCalculator()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := lang.Eval(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(v)
	}
}
