package peg

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/peggy-rt/peggy/internal/diagnostics"
)

// A Grammar is a compiled, ready-to-run PEG grammar: the composition of the
// meta-grammar parse, the GrammarGenerator fold, and ReferenceResolver
// resolution. Its own Name is the name of the first rule parsed from
// source; Parse always starts there.
type Grammar struct {
	Name  string
	entry *Matcher
	log   hclog.Logger
}

// An Option configures NewGrammar.
type Option func(*grammarConfig)

type grammarConfig struct {
	log hclog.Logger
}

// WithLogger overrides the default hclog logger used for construction and
// resolution diagnostics.
func WithLogger(l hclog.Logger) Option {
	return func(c *grammarConfig) { c.log = l }
}

// NewGrammar compiles source (PEG grammar text) into a
// Grammar. It runs the meta-grammar over source, folds the resulting Node
// tree with a GrammarGenerator, and resolves every Reference with a
// ReferenceResolver. It fails with a *SyntaxError if source itself is not
// valid PEG, a *GrammarErrors if a literal escape or character class is
// invalid, or an *UnknownRuleError if a rule calls one that was never
// defined.
func NewGrammar(source string, opts ...Option) (*Grammar, error) {
	cfg := grammarConfig{log: diagnostics.New()}
	for _, opt := range opts {
		opt(&cfg)
	}

	root, err := MetaGrammar().Parse(source)
	if err != nil {
		cfg.log.Debug("meta-grammar parse failed", "error", err)
		return nil, err
	}

	gen := &GrammarGenerator{}
	rules, err := gen.Generate(root)
	if err != nil {
		cfg.log.Debug("grammar generation failed", "error", err)
		return nil, err
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("peg: grammar has no rules")
	}
	cfg.log.Debug("generated rules", "count", len(rules), "root", rules[0].Name)

	entry, err := NewReferenceResolver(rules).Resolve()
	if err != nil {
		cfg.log.Debug("reference resolution failed", "error", err)
		return nil, err
	}
	cfg.log.Debug("resolved grammar", "root", entry.Name)

	return &Grammar{Name: entry.Name, entry: entry, log: cfg.log}, nil
}

// Parse matches input against g's root rule, requiring the whole input to
// be consumed. It fails with a *SyntaxError otherwise.
func (g *Grammar) Parse(input string) (*Node, error) {
	node, err := g.entry.Parse(input)
	if err != nil {
		g.log.Debug("parse failed", "error", err)
		return nil, err
	}
	return node, nil
}

// Matcher returns g's resolved entry matcher, for callers (such as
// Language) that need direct access to the matcher graph.
func (g *Grammar) Matcher() *Matcher { return g.entry }
