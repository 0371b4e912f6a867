package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnescapeLiteral(t *testing.T) {
	tests := []struct {
		name    string
		quote   byte
		body    string
		want    string
		wantErr bool
	}{
		{"plain", '"', `abc`, "abc", false},
		{"newline", '"', `a\nb`, "a\nb", false},
		{"tab", '"', `a\tb`, "a\tb", false},
		{"carriage return", '"', `a\rb`, "a\rb", false},
		{"backslash", '"', `a\\b`, `a\b`, false},
		{"escaped delimiter", '"', `a\"b`, `a"b`, false},
		{"single-quote delimiter", '\'', `a\'b`, `a'b`, false},
		{"unsupported escape", '"', `a\zb`, "", true},
		{"trailing backslash", '"', `a\`, "", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := unescapeLiteral(test.quote, test.body)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestNewLiteralEmptyMatchesEmptyPrefix(t *testing.T) {
	m := NewLiteral("")
	node := m.Match("anything")
	assert.Equal(t, "", node.Text)
}
