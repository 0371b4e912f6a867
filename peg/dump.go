package peg

import "github.com/alecthomas/repr"

// Dump returns a repr-formatted debug representation of m and its
// children, distinct from Pretty (which renders a matched Node, not a
// matcher graph). An unresolved Reference is shown by its target name (Ref)
// and is not followed, so Dump remains useful both before and after
// ReferenceResolver has run.
func (m *Matcher) Dump() string {
	return repr.String(m.dumpView(make(map[*Matcher]bool)), repr.Indent("  "))
}

// dumpView is a tree-shaped, cycle-safe mirror of a Matcher used only to
// feed repr: repr.String would recurse forever over a resolved, cyclic
// Matcher graph, so visited matchers are replaced with a named stand-in.
type dumpView struct {
	Kind     string
	Name     string
	Literal  string
	Source   string
	Ref      string
	Children []interface{}
}

type dumpCycle struct{ Name string }

func (m *Matcher) dumpView(seen map[*Matcher]bool) dumpView {
	seen[m] = true
	v := dumpView{Kind: m.Kind.String(), Name: m.Name, Literal: m.Literal, Source: m.Source, Ref: m.Ref}
	for _, c := range m.Children {
		if seen[c] {
			v.Children = append(v.Children, dumpCycle{Name: c.Name})
			continue
		}
		child := c.dumpView(seen)
		v.Children = append(v.Children, child)
	}
	return v
}
