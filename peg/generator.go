package peg

import "fmt"

// GrammarErrors collects every semantic error found while folding a
// meta-parse tree into a grammar: bad literal escapes and invalid
// character classes. Unlike a SyntaxError, these are discovered after the
// meta-grammar has already accepted the input's shape; they report what
// about that shape is unusable.
type GrammarErrors struct {
	Errs []error
}

func (e *GrammarErrors) add(format string, args ...interface{}) {
	e.Errs = append(e.Errs, fmt.Errorf(format, args...))
}

func (e *GrammarErrors) ret() error {
	if len(e.Errs) == 0 {
		return nil
	}
	return e
}

func (e *GrammarErrors) Error() string {
	s := ""
	for i, err := range e.Errs {
		if i > 0 {
			s += "\n"
		}
		s += err.Error()
	}
	return s
}

// A GrammarGenerator is the visitor that folds a Node tree produced by
// MetaGrammar matching grammar source text into an ordered list of named
// top-level Matchers, with unresolved Reference matchers standing in for
// cross-rule calls. It dispatches purely on Node.Name through an explicit
// handler table; a node with no handler registered for its name (which
// includes every unnamed node) passes through as itself, unfolded.
type GrammarGenerator struct {
	errs GrammarErrors
}

// Generate folds root — the Node produced by MetaGrammar().Parse(source) —
// into the grammar's ordered list of named rule matchers, the first being
// the root rule. It returns an error aggregating every literal-escape or
// character-class problem found along the way.
func (g *GrammarGenerator) Generate(root *Node) ([]*Matcher, error) {
	folded := g.fold(root)
	rules, ok := folded.([]*Matcher)
	if !ok {
		g.errs.add("grammar: expected a list of rule definitions, got %T", folded)
		return nil, g.errs.ret()
	}
	return rules, g.errs.ret()
}

func (g *GrammarGenerator) fold(node *Node) interface{} {
	kids := make([]interface{}, len(node.Kids))
	for i, k := range node.Kids {
		kids[i] = g.fold(k)
	}
	if h, ok := generatorHandlers[node.Name]; ok {
		return h(g, node, kids)
	}
	// Unnamed nodes pass through unchanged, per the visitor design note.
	// A named node with no registered handler (auxiliary meta-grammar
	// tokens like "spacing" or "left_arrow") is generalized to the same
	// behavior: its folded value is simply never consumed by a handler
	// that cares about it.
	return node
}

type generatorHandler func(g *GrammarGenerator, node *Node, kids []interface{}) interface{}

var generatorHandlers = map[string]generatorHandler{
	"identifier__regex":      handleIdentifierRegex,
	"identifier":             handleIdentifier,
	"literal":                handleLiteral,
	"class":                  handleClass,
	"dot":                    handleDot,
	"definition":             handleDefinition,
	"expression":             handleExpression,
	"expression__zeroormore": handleMatcherList,
	"expression__sequence":   handleExpressionSequence,
	"primary__sequence":      handlePrimarySequence,
	"primary__parens":        handlePrimaryParens,
	"primary":                handlePrimary,
	"prefix__optional":       handleGlyphOptional,
	"suffix__optional":       handleGlyphOptional,
	"prefix":                 handlePrefix,
	"suffix":                 handleSuffix,
	"sequence":               handleSequence,
	"grammar__oneormore":     handleMatcherList,
	"grammar":                handleGrammar,
}

func handleIdentifierRegex(_ *GrammarGenerator, node *Node, _ []interface{}) interface{} {
	return node.Text
}

func handleIdentifier(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	return NewReference(kids[0].(string))
}

func handleLiteral(g *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	raw := kids[0].(*Node).Text
	if len(raw) < 2 {
		g.errs.add("literal: malformed quoted literal %q", raw)
		return NewLiteral("")
	}
	quote := raw[0]
	body := raw[1 : len(raw)-1]
	s, err := unescapeLiteral(quote, body)
	if err != nil {
		g.errs.add("literal %q: %v", raw, err)
		return NewLiteral("")
	}
	return NewLiteral(s)
}

func handleClass(g *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	bracket := kids[0].(*Node).Text
	m, err := compileRegex(bracket)
	if err != nil {
		g.errs.add("class %q: %v", bracket, err)
		return NewRegex(".")
	}
	return m
}

func handleDot(_ *GrammarGenerator, _ *Node, _ []interface{}) interface{} {
	return dotMatcher()
}

func handleDefinition(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	name := kids[0].(*Matcher).Ref
	expr := kids[2].(*Matcher)
	if expr.Kind == KindReference {
		// A bare Reference is replaced by its target during resolution,
		// which would drop this rule's name; wrap it so the rule's own
		// nodes carry name.
		expr = NewSequence(expr)
	}
	expr.Name = name
	return expr
}

func handleExpression(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	head := kids[0].(*Matcher)
	tail := kids[1].([]*Matcher)
	if len(tail) == 0 {
		return head
	}
	return NewOr(append([]*Matcher{head}, tail...)...)
}

func handleMatcherList(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	ms := make([]*Matcher, len(kids))
	for i, k := range kids {
		ms[i] = k.(*Matcher)
	}
	return ms
}

func handleExpressionSequence(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	return kids[1].(*Matcher)
}

func handlePrimarySequence(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	return kids[0].(*Matcher)
}

func handlePrimaryParens(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	return kids[1].(*Matcher)
}

func handlePrimary(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	return kids[0].(*Matcher)
}

// handleGlyphOptional implements both prefix__optional and
// suffix__optional: per the design notes, it reads the raw matched text of
// the optional node directly rather than folding its child, since the only
// thing that matters is which single-character operator glyph (if any)
// appeared — &, !, ?, *, or +.
func handleGlyphOptional(_ *GrammarGenerator, node *Node, _ []interface{}) interface{} {
	if node.Text == "" {
		return ""
	}
	return string(node.Text[0])
}

func handlePrefix(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	suffix := kids[1].(*Matcher)
	switch kids[0].(string) {
	case "":
		return suffix
	case "&":
		return NewAnd(suffix)
	case "!":
		return NewNot(suffix)
	default:
		panic("peg: unreachable prefix glyph")
	}
}

func handleSuffix(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	primary := kids[0].(*Matcher)
	switch kids[1].(string) {
	case "":
		return primary
	case "?":
		return NewOptional(primary)
	case "*":
		return NewZeroOrMore(primary)
	case "+":
		return NewOneOrMore(primary)
	default:
		panic("peg: unreachable suffix glyph")
	}
}

func handleSequence(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	switch len(kids) {
	case 0:
		return NewLiteral("")
	case 1:
		return kids[0].(*Matcher)
	default:
		ms := make([]*Matcher, len(kids))
		for i, k := range kids {
			ms[i] = k.(*Matcher)
		}
		return NewSequence(ms...)
	}
}

func handleGrammar(_ *GrammarGenerator, _ *Node, kids []interface{}) interface{} {
	return kids[1].([]*Matcher)
}
