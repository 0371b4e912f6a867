package peg

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 6: semantic actions.
func TestLanguageEvalCalculator(t *testing.T) {
	lang := NewLanguage()
	require.NoError(t, lang.Rule(`expr <- num ("+" num)*`, FoldAction(func(_ *Node, kids []interface{}) interface{} {
		sum := kids[0].(int)
		for _, rep := range kids[1].([]interface{}) {
			pair := rep.([]interface{})
			sum += pair[1].(int)
		}
		return sum
	})))
	require.NoError(t, lang.Rule(`num <- [0-9]+`, RawAction(func(n *Node) interface{} {
		v, _ := strconv.Atoi(n.Text)
		return v
	})))

	v, err := lang.Eval("1+2+3")
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestLanguageDefaultActionReturnsChildValues(t *testing.T) {
	lang := NewLanguage()
	require.NoError(t, lang.Rule(`pair <- [a-z]+ "=" [0-9]+`))
	require.NoError(t, lang.Rule(`left <- [a-z]+`, RawAction(func(n *Node) interface{} { return n.Text })))

	v, err := lang.Eval("x=1")
	require.NoError(t, err)
	// pair has no action: default is the list of its folded children.
	list, ok := v.([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 3)
}

func TestLanguageNoRootRule(t *testing.T) {
	lang := NewLanguage()
	_, err := lang.Eval("anything")
	assert.Equal(t, NoRootRuleError{}, err)
}

func TestLanguageRejectsUnsupportedActionType(t *testing.T) {
	lang := NewLanguage()
	err := lang.Rule(`n <- [0-9]+`, 42)
	require.Error(t, err)
	var dispatchErr *ActionDispatchError
	assert.ErrorAs(t, err, &dispatchErr)
}

func TestLanguageRejectsTooManyActions(t *testing.T) {
	lang := NewLanguage()
	err := lang.Rule(`n <- [0-9]+`, RawAction(func(*Node) interface{} { return nil }), RawAction(func(*Node) interface{} { return nil }))
	assert.Error(t, err)
}

func TestLanguageEvalFromPrebuiltNode(t *testing.T) {
	lang := NewLanguage()
	require.NoError(t, lang.Rule(`n <- [0-9]+`, RawAction(func(n *Node) interface{} {
		v, _ := strconv.Atoi(n.Text)
		return v
	})))

	node := newNode("n", "42", nil)
	v, err := lang.Eval(node)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestLanguageAcceptsMatcherDirectly(t *testing.T) {
	lang := NewLanguage()
	m := NewOneOrMore(NewRegex("[0-9]")).Named("digits")
	require.NoError(t, lang.Rule(m, RawAction(func(n *Node) interface{} { return len(n.Text) })))

	v, err := lang.Eval("123")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestLanguageForwardReference(t *testing.T) {
	lang := NewLanguage()
	// expr references num before num is registered.
	require.NoError(t, lang.Rule(`expr <- num`, RawAction(func(n *Node) interface{} { return n.Text })))
	require.NoError(t, lang.Rule(`num <- [0-9]+`))

	v, err := lang.Eval("7")
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}
