package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteralMatch(t *testing.T) {
	m := NewLiteral("foo")
	assert.Equal(t, newNode("", "foo", nil), m.Match("foobar"))
	assert.Nil(t, m.Match("foz"))
	assert.Nil(t, m.Match("fo"))
}

func TestRegexMatch(t *testing.T) {
	m := NewRegex("[0-9]+")
	assert.Equal(t, newNode("", "123", nil), m.Match("123abc"))
	assert.Nil(t, m.Match("abc"))
}

func TestDotMatchesNewline(t *testing.T) {
	m := dotMatcher()
	assert.Equal(t, newNode("", "\n", nil), m.Match("\nrest"))
}

func TestSequenceNoBacktracking(t *testing.T) {
	m := NewSequence(NewLiteral("a"), NewLiteral("b"))
	node := m.Match("ab")
	assert.Equal(t, "ab", node.Text)
	assert.Len(t, node.Kids, 2)

	assert.Nil(t, m.Match("ac"), "sequence must fail, not backtrack, when a later child fails")
}

func TestOrOrderedChoice(t *testing.T) {
	m := NewOr(NewLiteral("a"), NewLiteral("ab"))
	node := m.Match("ab")
	// Ordered choice takes the first alternative that matches, even if a
	// later one would have matched more.
	assert.Equal(t, "a", node.Text)
	assert.Nil(t, m.Match("c"))
}

func TestNotLookahead(t *testing.T) {
	m := NewNot(NewLiteral("a"))
	node := m.Match("b")
	assert.NotNil(t, node)
	assert.Equal(t, "", node.Text, "lookahead consumes no input")
	assert.Nil(t, m.Match("a"))
}

func TestAndLookahead(t *testing.T) {
	m := NewAnd(NewLiteral("a"))
	node := m.Match("abc")
	assert.NotNil(t, node)
	assert.Equal(t, "", node.Text)
	assert.Nil(t, m.Match("b"))
}

func TestOneOrMore(t *testing.T) {
	m := NewOneOrMore(NewLiteral("a"))
	assert.Nil(t, m.Match("b"), "requires at least one match")
	node := m.Match("aaab")
	assert.Equal(t, "aaa", node.Text)
	assert.Len(t, node.Kids, 3)
}

func TestZeroOrMore(t *testing.T) {
	m := NewZeroOrMore(NewLiteral("a"))
	node := m.Match("bbb")
	assert.NotNil(t, node)
	assert.Equal(t, "", node.Text)
	assert.Empty(t, node.Kids)

	node = m.Match("aaab")
	assert.Equal(t, "aaa", node.Text)
}

func TestOptional(t *testing.T) {
	m := NewOptional(NewLiteral("a"))
	node := m.Match("b")
	assert.NotNil(t, node)
	assert.Equal(t, "", node.Text)

	node = m.Match("ab")
	assert.Equal(t, "a", node.Text)
}

func TestRepeatStopsOnEmptyMatch(t *testing.T) {
	// A child that can match the empty string must not loop forever.
	empty := NewOptional(NewLiteral("x"))
	m := NewZeroOrMore(empty)
	node := m.Match("yyy")
	assert.NotNil(t, node)
	assert.Equal(t, "", node.Text)
	assert.Len(t, node.Kids, 1, "the loop stops after the first empty match")
}

func TestUnresolvedReferencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Match on an unresolved Reference to panic")
		}
	}()
	NewReference("missing").Match("anything")
}
