package builder_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/xcover/builder"
)

// ExampleBuilder_Build compiles and solves the Knuth 7.2.2.1 toy
// problem from named items and "name:color" tokens.
func ExampleBuilder_Build() {
	b := builder.New[string]()
	b.AddPrimaryItems("p", "q", "r")
	b.AddSecondaryItems("x", "y")
	b.AddOption("p q x y:A", "p", "q", "x", "y:A")
	b.AddOption("p r x:A y", "p", "r", "x:A", "y")
	b.AddOption("p x:B", "p", "x:B")
	b.AddOption("q x:A", "q", "x:A")
	b.AddOption("r y:B", "r", "y:B")

	m, err := b.Build()
	if err != nil {
		fmt.Println(err)

		return
	}
	for _, solution := range m.SolveAll() {
		fmt.Println(m.Meanings(solution))
	}
	// Output:
	// [q x:A p r x:A y]
}

// ExampleBuilder_Build_validation shows a validation failure matched
// with errors.Is.
func ExampleBuilder_Build_validation() {
	b := builder.New[int]()
	b.AddPrimaryItem("a")
	b.AddOption(1, "a", "ghost")

	_, err := b.Build()
	fmt.Println(errors.Is(err, builder.ErrItemNotDeclared))
	// Output:
	// true
}

// ExampleBuilder_Dump prints a problem in the input format of Knuth's
// dlx2 program.
func ExampleBuilder_Dump() {
	b := builder.New[int]()
	b.AddPrimaryItems("a", "b")
	b.AddOption(1, "a")
	b.AddOption(2, "a", "b")

	_ = b.Dump(os.Stdout)
	// Output:
	// | primary items: 2
	// | secondary items: 0
	// | options: 2
	// a b
	// | Option 0: 1
	// a
	// | Option 1: 2
	// a b
}
