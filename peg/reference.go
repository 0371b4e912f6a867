package peg

import "fmt"

// NewReference returns a placeholder Matcher naming another rule. It has no
// children and cannot itself be matched; ReferenceResolver eliminates every
// Reference before the graph is matched.
func NewReference(name string) *Matcher {
	return &Matcher{Kind: KindReference, Ref: name}
}

// UnknownRuleError is returned by ReferenceResolver.Resolve when a
// Reference names a rule that was never registered.
type UnknownRuleError struct {
	Rule string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("peg: unknown rule %q", e.Rule)
}

// A ReferenceResolver rewrites a list of named top-level matchers into a
// resolved graph where every Reference has been replaced by the matcher
// object it names. The graph produced may be cyclic, since grammar rules
// are typically recursive.
type ReferenceResolver struct {
	rules   map[string]*Matcher
	entry   *Matcher
	visited map[*Matcher]*Matcher
}

// NewReferenceResolver builds a resolver over rules, an ordered list of
// named matchers. The first rule in the list becomes the resolved entry
// point.
func NewReferenceResolver(rules []*Matcher) *ReferenceResolver {
	r := &ReferenceResolver{
		rules:   make(map[string]*Matcher, len(rules)),
		visited: make(map[*Matcher]*Matcher),
	}
	for i, m := range rules {
		if i == 0 {
			r.entry = m
		}
		r.rules[m.Name] = m
	}
	return r
}

// Resolve returns the fully resolved entry matcher: a depth-first rewrite of
// the registered rules in which no Reference remains reachable. It fails
// with *UnknownRuleError if any Reference names a rule that was never
// registered.
//
// The rewrite detaches each matcher's child list before recursing into the
// former children and reattaches the rewritten list afterward. This is what
// makes resolving a cyclic, self-referential rule graph terminate: a
// matcher being resolved is registered in r.visited before its children are
// visited, so a cycle back to it is answered with the (possibly
// still-being-filled) matcher itself rather than infinite recursion.
func (r *ReferenceResolver) Resolve() (*Matcher, error) {
	return r.resolve(r.entry)
}

func (r *ReferenceResolver) resolve(m *Matcher) (*Matcher, error) {
	if already, ok := r.visited[m]; ok {
		return already, nil
	}
	if m.Kind == KindReference {
		target, ok := r.rules[m.Ref]
		if !ok {
			return nil, &UnknownRuleError{Rule: m.Ref}
		}
		resolved, err := r.resolve(target)
		if err != nil {
			return nil, err
		}
		r.visited[m] = resolved
		return resolved, nil
	}

	r.visited[m] = m
	children := m.Children
	m.Children = nil
	rewritten := make([]*Matcher, len(children))
	for i, child := range children {
		kid, err := r.resolve(child)
		if err != nil {
			return nil, err
		}
		rewritten[i] = kid
	}
	m.Children = rewritten
	return m, nil
}
