package peg

// Parse matches m against the whole of text, succeeding only when the
// match consumes every byte of text. On failure — whether m.Match(text)
// itself fails, or it matches only a proper prefix — Parse returns a
// *SyntaxError describing the first unconsumed position.
func (m *Matcher) Parse(text string) (*Node, error) {
	node := m.Match(text)
	if node == nil {
		return nil, newSyntaxError(text, 0)
	}
	if len(node.Text) != len(text) {
		return nil, newSyntaxError(text, len(node.Text))
	}
	return node, nil
}
