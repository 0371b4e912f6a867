package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpHandlesCyclicGraph(t *testing.T) {
	// list <- "a" ("," list)? — a self-referential matcher graph; Dump must
	// not recurse forever over the cycle introduced by resolution.
	list := NewSequence(
		NewLiteral("a"),
		NewOptional(NewSequence(NewLiteral(","), NewReference("list"))),
	).Named("list")
	entry, err := NewReferenceResolver([]*Matcher{list}).Resolve()
	require.NoError(t, err)

	s := entry.Dump()
	assert.Contains(t, s, "list")
	assert.Contains(t, s, "dumpCycle")
}

func TestDumpNonCyclic(t *testing.T) {
	m := NewSequence(NewLiteral("a"), NewRegex("[0-9]+")).Named("r")
	s := m.Dump()
	assert.Contains(t, s, "Sequence")
	assert.Contains(t, s, `"a"`)
}
