package peg

// NewSequence returns a Matcher that matches each child against the
// remaining text in order, failing on the first child that fails, with no
// backtracking across children. The children become the resulting Node's
// children.
func NewSequence(children ...*Matcher) *Matcher {
	return &Matcher{Kind: KindSequence, Children: children}
}

// NewOr returns a Matcher that tries children left-to-right, returning the
// first success (ordered choice). It fails iff every child fails. The
// resulting Node's only child is the successful branch's Node.
func NewOr(children ...*Matcher) *Matcher {
	return &Matcher{Kind: KindOr, Children: children}
}

// NewNot returns a Matcher implementing negative lookahead: it succeeds,
// consuming no input, iff child fails.
func NewNot(child *Matcher) *Matcher {
	return &Matcher{Kind: KindNot, Children: []*Matcher{child}}
}

// NewAnd returns a Matcher implementing positive lookahead: it succeeds,
// consuming no input, iff child succeeds.
func NewAnd(child *Matcher) *Matcher {
	return &Matcher{Kind: KindAnd, Children: []*Matcher{child}}
}

// NewOneOrMore returns a Matcher requiring child to match one or more
// times: bound [1, inf).
func NewOneOrMore(child *Matcher) *Matcher {
	return &Matcher{Kind: KindOneOrMore, Children: []*Matcher{child}, lower: 1, upper: -1}
}

// NewZeroOrMore returns a Matcher matching child zero or more times: bound
// [0, inf).
func NewZeroOrMore(child *Matcher) *Matcher {
	return &Matcher{Kind: KindZeroOrMore, Children: []*Matcher{child}, lower: 0, upper: -1}
}

// NewOptional returns a Matcher matching child zero or one times: bound
// [0, 1].
func NewOptional(child *Matcher) *Matcher {
	return &Matcher{Kind: KindOptional, Children: []*Matcher{child}, lower: 0, upper: 1}
}
