package peg

import "regexp"

// Kind identifies which of the ten matcher variants a Matcher is.
// The set is closed: every Matcher in the engine is exactly one of these.
type Kind int8

const (
	KindLiteral Kind = iota
	KindRegex
	KindSequence
	KindOr
	KindNot
	KindAnd
	KindOneOrMore
	KindZeroOrMore
	KindOptional
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindRegex:
		return "Regex"
	case KindSequence:
		return "Sequence"
	case KindOr:
		return "Or"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOneOrMore:
		return "OneOrMore"
	case KindZeroOrMore:
		return "ZeroOrMore"
	case KindOptional:
		return "Optional"
	case KindReference:
		return "Reference"
	default:
		return "Kind(?)"
	}
}

// A Matcher is one parsing expression: a tagged variant over the ten kinds
// in Kind. Every Matcher carries an ordered list of child matchers (possibly
// empty) and an optional Name. Literal additionally carries a string,
// Regex a compiled pattern, and Reference a target rule name.
//
// Matchers form a directed graph that may contain cycles once resolved (see
// ReferenceResolver). The graph is mutated only during construction and
// resolution; after resolution it is read-only and safe to share across
// goroutines, each driving its own Match/Parse call.
type Matcher struct {
	Kind     Kind
	Name     string
	Children []*Matcher

	// Literal is the exact string matched by a KindLiteral matcher.
	Literal string

	// Pattern is the compiled, start-anchored regular expression
	// matched by a KindRegex matcher. Source is its original,
	// unanchored text, kept for Dump and error messages.
	Pattern *regexp.Regexp
	Source  string

	// Ref is the target rule name of a KindReference matcher.
	// A Reference has no children; it is resolved away by
	// ReferenceResolver before the graph is matched.
	Ref string

	// lower and upper bound how many times a quantifier matcher's
	// single child may match: [1,-1] for OneOrMore ([1,inf)), [0,-1]
	// for ZeroOrMore, [0,1] for Optional. -1 means unbounded.
	lower, upper int
}

// Named sets m's Name and returns m, for constructing matchers fluently.
func (m *Matcher) Named(name string) *Matcher {
	m.Name = name
	return m
}

// Match attempts to consume a prefix of text. It returns the Node covering
// the consumed prefix on success, or nil on failure. Match never panics on
// ill-formed input; failure is always communicated via a nil return.
func (m *Matcher) Match(text string) *Node {
	switch m.Kind {
	case KindLiteral:
		return m.matchLiteral(text)
	case KindRegex:
		return m.matchRegex(text)
	case KindSequence:
		return m.matchSequence(text)
	case KindOr:
		return m.matchOr(text)
	case KindNot:
		return m.matchNot(text)
	case KindAnd:
		return m.matchAnd(text)
	case KindOneOrMore, KindZeroOrMore, KindOptional:
		return m.matchRepeat(text)
	case KindReference:
		// A Reference reaching Match means resolution never ran, or
		// ran over a graph containing an unknown rule; treat it as
		// the programmer error it is rather than matching anything.
		panic("peg: unresolved Reference " + m.Ref + " reached Match")
	default:
		panic("peg: unknown matcher kind")
	}
}

func (m *Matcher) matchLiteral(text string) *Node {
	if len(text) < len(m.Literal) || text[:len(m.Literal)] != m.Literal {
		return nil
	}
	return newNode(m.Name, m.Literal, nil)
}

func (m *Matcher) matchRegex(text string) *Node {
	loc := m.Pattern.FindStringIndex(text)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	return newNode(m.Name, text[:loc[1]], nil)
}

func (m *Matcher) matchSequence(text string) *Node {
	var kids []*Node
	rest := text
	var consumed int
	for _, child := range m.Children {
		node := child.Match(rest)
		if node == nil {
			return nil
		}
		kids = append(kids, node)
		rest = rest[len(node.Text):]
		consumed += len(node.Text)
	}
	return newNode(m.Name, text[:consumed], kids)
}

func (m *Matcher) matchOr(text string) *Node {
	for _, child := range m.Children {
		if node := child.Match(text); node != nil {
			return newNode(m.Name, node.Text, []*Node{node})
		}
	}
	return nil
}

func (m *Matcher) matchNot(text string) *Node {
	if m.Children[0].Match(text) != nil {
		return nil
	}
	return newNode(m.Name, "", nil)
}

func (m *Matcher) matchAnd(text string) *Node {
	if m.Children[0].Match(text) == nil {
		return nil
	}
	return newNode(m.Name, "", nil)
}

// matchRepeat implements OneOrMore, ZeroOrMore, and Optional: the same loop
// parameterized by m.lower/m.upper. It stops when the child fails or when it
// succeeds while consuming no input, guarding against infinite loops on
// patterns that can match empty.
func (m *Matcher) matchRepeat(text string) *Node {
	child := m.Children[0]
	var kids []*Node
	rest := text
	var consumed int
	for m.upper < 0 || len(kids) < m.upper {
		node := child.Match(rest)
		if node == nil {
			break
		}
		kids = append(kids, node)
		rest = rest[len(node.Text):]
		consumed += len(node.Text)
		if node.Text == "" {
			break
		}
	}
	if len(kids) < m.lower {
		return nil
	}
	return newNode(m.Name, text[:consumed], kids)
}
