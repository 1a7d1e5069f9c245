// Package samples provides ready-made matrices for common XCC problems,
// handy for experimenting with the solver and as test fixtures.
package samples

import (
	"strings"

	"github.com/katalvlaran/xcover/builder"
	"github.com/katalvlaran/xcover/xcc"
)

// Toy builds the toy problem from equation (49) of Knuth 7.2.2.1.
//
// It has 3 primary items p, q, r and 2 secondary items x, y, with the
// options:
//
//	p q x y:A
//	p r x:A y
//	p x:B
//	q x:A
//	r y:B
//
// Each option's meaning is its own text. The problem has exactly one
// solution: {"q x:A", "p r x:A y"}.
func Toy() *xcc.Matrix[string] {
	b := builder.New[string]()
	b.AddPrimaryItems("p", "q", "r")
	b.AddSecondaryItems("x", "y")
	for _, tokens := range [][]string{
		{"p", "q", "x", "y:A"},
		{"p", "r", "x:A", "y"},
		{"p", "x:B"},
		{"q", "x:A"},
		{"r", "y:B"},
	} {
		b.AddOption(strings.Join(tokens, " "), tokens...)
	}

	return b.MustBuild()
}
