package peg

import "fmt"

// previewLen is the maximum number of characters from the first
// unconsumed region of input that a SyntaxError quotes.
const previewLen = 50

// A SyntaxError reports that input text did not match a grammar: either
// the root matcher failed outright, or it matched but left input
// unconsumed. Its message quotes a preview of the first unconsumed byte
// onward, up to previewLen runes.
type SyntaxError struct {
	FilePath string
	Loc      Loc
	Preview  string
}

func (e *SyntaxError) Error() string {
	path := e.FilePath
	if path == "" {
		path = "<input>"
	}
	return fmt.Sprintf("%s:%d.%d: syntax error near %q", path, e.Loc.Line, e.Loc.Column, e.Preview)
}

// newSyntaxError builds a SyntaxError for text at the given byte offset
// (the first unconsumed position), quoting up to previewLen runes from
// there.
func newSyntaxError(text string, offset int) *SyntaxError {
	preview := []rune(text[offset:])
	if len(preview) > previewLen {
		preview = preview[:previewLen]
	}
	return &SyntaxError{Loc: Location(text, offset), Preview: string(preview)}
}

// An ActionDispatchError reports that a rule's registered callback has a
// signature Language does not support: neither func(*Node) interface{} nor
// func(*Node, []interface{}) interface{}.
type ActionDispatchError struct {
	Rule string
	Type string
}

func (e *ActionDispatchError) Error() string {
	return fmt.Sprintf("peg: rule %q: unsupported action type %s; want func(*peg.Node) interface{} or func(*peg.Node, []interface{}) interface{}", e.Rule, e.Type)
}

// A NoRootRuleError is a programmer error: Language.Eval was called before
// any rule was registered.
type NoRootRuleError struct{}

func (NoRootRuleError) Error() string { return "peg: Language.Eval: no root rule registered" }
