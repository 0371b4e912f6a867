// Package peg implements a Parsing Expression Grammar engine: a compiler
// from PEG grammar text to an executable matcher graph, and a runtime that
// evaluates input text against that graph to produce a tree of labeled
// matches.
package peg

// A Node is a node in a parse tree.
//
// Nodes are value-like: once constructed they are never mutated. Two nodes
// are equal iff their Name, Text, and Kids are recursively equal.
type Node struct {
	// Name is the name of the Rule that produced this Node,
	// or the empty string for anonymous nodes
	// produced by a matcher with no name.
	Name string

	// Text is the exact substring of the input consumed by the
	// matcher that produced this Node. It may be empty.
	Text string

	// Kids are the ordered child nodes, or nil for a leaf.
	Kids []*Node
}

// newNode builds a Node labeled with name, covering text, with kids as its
// children. Every matcher variant funnels its successful match through this
// helper so that naming stays consistent across the algebra.
func newNode(name, text string, kids []*Node) *Node {
	return &Node{Name: name, Text: text, Kids: kids}
}

// Equal reports whether n and o have the same structure: equal Name, equal
// Text, and recursively equal Kids in the same order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Name != o.Name || n.Text != o.Text || len(n.Kids) != len(o.Kids) {
		return false
	}
	for i, k := range n.Kids {
		if !k.Equal(o.Kids[i]) {
			return false
		}
	}
	return true
}
