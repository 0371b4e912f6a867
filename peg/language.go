package peg

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/peggy-rt/peggy/internal/diagnostics"
)

// A RawAction is an arity-1 semantic action: it receives the raw Node
// matched by its rule and returns a user value from it directly.
type RawAction func(*Node) interface{}

// A FoldAction is an arity-2 semantic action: it receives the Node matched
// by its rule along with the already-evaluated values of its direct
// children, in source order (a strict bottom-up, post-order fold).
type FoldAction func(*Node, []interface{}) interface{}

// A Language binds semantic action callbacks to grammar rules and walks a
// parse tree — built fresh from source, or handed in directly — folding it
// into arbitrary user values. Registration order determines which rule is
// the root: the first rule registered is the one Eval parses source text
// against.
type Language struct {
	names []string
	rules map[string]*langRule
	log   hclog.Logger

	entry    *Matcher
	resolved bool
}

type langRule struct {
	matcher *Matcher
	action  interface{}
}

// NewLanguage returns an empty Language with no rules registered.
func NewLanguage(opts ...Option) *Language {
	cfg := grammarConfig{log: diagnostics.New()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Language{rules: make(map[string]*langRule), log: cfg.log}
}

// Rule registers a rule with an optional action callback. spec is either a
// *Matcher built directly with the combinator constructors, or a grammar
// source fragment of the form "name <- …" compiled through the same
// meta-grammar/generator pipeline Grammar uses — except that cross-rule
// references in the fragment need not resolve within the fragment itself;
// they resolve against the rest of this Language's registry when Eval
// next runs.
//
// action, if given, must be a RawAction or a FoldAction; any other type is
// an *ActionDispatchError. Passing no action makes the rule's default
// behavior the evaluated list of its children's values.
func (l *Language) Rule(spec interface{}, action ...interface{}) error {
	if len(action) > 1 {
		return fmt.Errorf("peg: Language.Rule: at most one action callback, got %d", len(action))
	}

	var m *Matcher
	switch v := spec.(type) {
	case *Matcher:
		m = v
	case string:
		compiled, err := parseRuleFragment(v)
		if err != nil {
			return err
		}
		m = compiled
	default:
		return fmt.Errorf("peg: Language.Rule: unsupported spec type %T", spec)
	}
	if m.Name == "" {
		return fmt.Errorf("peg: Language.Rule: matcher has no rule name")
	}

	var act interface{}
	if len(action) == 1 {
		act = action[0]
		switch act.(type) {
		case RawAction, FoldAction:
		case func(*Node) interface{}:
			act = RawAction(act.(func(*Node) interface{}))
		case func(*Node, []interface{}) interface{}:
			act = FoldAction(act.(func(*Node, []interface{}) interface{}))
		default:
			return &ActionDispatchError{Rule: m.Name, Type: fmt.Sprintf("%T", act)}
		}
	}

	if _, exists := l.rules[m.Name]; !exists {
		l.names = append(l.names, m.Name)
	}
	l.rules[m.Name] = &langRule{matcher: m, action: act}
	l.resolved = false
	l.log.Debug("registered rule", "name", m.Name, "has_action", act != nil)
	return nil
}

// parseRuleFragment compiles a single "name <- expression" fragment into
// its unresolved Matcher (Reference placeholders for any rule it calls are
// left as-is for the owning Language to resolve later).
func parseRuleFragment(source string) (*Matcher, error) {
	root, err := MetaGrammar().Parse(source)
	if err != nil {
		return nil, err
	}
	gen := &GrammarGenerator{}
	rules, err := gen.Generate(root)
	if err != nil {
		return nil, err
	}
	if len(rules) != 1 {
		return nil, fmt.Errorf("peg: Language.Rule: expected exactly one rule definition, got %d", len(rules))
	}
	return rules[0], nil
}

func (l *Language) resolve() error {
	if l.resolved {
		return nil
	}
	if len(l.names) == 0 {
		return NoRootRuleError{}
	}
	ordered := make([]*Matcher, len(l.names))
	for i, n := range l.names {
		ordered[i] = l.rules[n].matcher
	}
	entry, err := NewReferenceResolver(ordered).Resolve()
	if err != nil {
		return err
	}
	l.entry = entry
	l.resolved = true
	l.log.Debug("resolved language", "root", entry.Name, "rules", len(l.names))
	return nil
}

// Eval folds a parse tree into a user value using the registered action
// callbacks. input is either source text, parsed fresh against the root
// rule, or a pre-built *Node (e.g. from a prior Grammar.Parse). The fold is
// strictly bottom-up: every callback observes its children's already-folded
// values before it runs.
//
// Eval fails with a NoRootRuleError if no rule has been registered, or with
// whatever the parse itself fails with.
func (l *Language) Eval(input interface{}) (interface{}, error) {
	if err := l.resolve(); err != nil {
		return nil, err
	}

	var node *Node
	switch v := input.(type) {
	case string:
		n, err := l.entry.Parse(v)
		if err != nil {
			return nil, err
		}
		node = n
	case *Node:
		node = v
	default:
		return nil, fmt.Errorf("peg: Language.Eval: unsupported input type %T", input)
	}
	return l.fold(node), nil
}

func (l *Language) fold(node *Node) interface{} {
	children := make([]interface{}, len(node.Kids))
	for i, k := range node.Kids {
		children[i] = l.fold(k)
	}

	rule, ok := l.rules[node.Name]
	if !ok || rule.action == nil {
		return children
	}
	switch act := rule.action.(type) {
	case RawAction:
		return act(node)
	case FoldAction:
		return act(node, children)
	default:
		panic(&ActionDispatchError{Rule: node.Name, Type: fmt.Sprintf("%T", rule.action)})
	}
}
