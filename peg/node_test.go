package peg

import "testing"

func TestNodeEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", newNode("a", "x", nil), nil, false},
		{"equal leaves", newNode("a", "x", nil), newNode("a", "x", nil), true},
		{"different name", newNode("a", "x", nil), newNode("b", "x", nil), false},
		{"different text", newNode("a", "x", nil), newNode("a", "y", nil), false},
		{
			"equal trees",
			newNode("seq", "xy", []*Node{newNode("a", "x", nil), newNode("b", "y", nil)}),
			newNode("seq", "xy", []*Node{newNode("a", "x", nil), newNode("b", "y", nil)}),
			true,
		},
		{
			"different kid count",
			newNode("seq", "xy", []*Node{newNode("a", "x", nil)}),
			newNode("seq", "xy", []*Node{newNode("a", "x", nil), newNode("b", "y", nil)}),
			false,
		},
		{
			"different kid order",
			newNode("seq", "xy", []*Node{newNode("a", "x", nil), newNode("b", "y", nil)}),
			newNode("seq", "yx", []*Node{newNode("b", "y", nil), newNode("a", "x", nil)}),
			false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.a.Equal(test.b); got != test.want {
				t.Errorf("Equal() = %v, want %v", got, test.want)
			}
		})
	}
}
