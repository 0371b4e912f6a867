package peg

import (
	"testing"

	"github.com/eaburns/pretty"
)

// assertNodeEqual fails t with a pretty-printed diff of got vs want, in the
// style the rest of this module's tests render assertion failures.
func assertNodeEqual(t *testing.T, want, got *Node) {
	t.Helper()
	if !want.Equal(got) {
		t.Errorf("got:\n%s\nwant:\n%s", pretty.String(got), pretty.String(want))
	}
}

func TestSequenceNodeStructure(t *testing.T) {
	g, err := NewGrammar(`r <- "a" "b"`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := g.Parse("ab")
	if err != nil {
		t.Fatal(err)
	}
	want := newNode("r", "ab", []*Node{
		newNode("", "a", nil),
		newNode("", "b", nil),
	})
	assertNodeEqual(t, want, got)
}
