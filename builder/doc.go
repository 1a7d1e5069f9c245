// Package builder constructs xcc matrices from named items and
// string-token options, validating the problem before compiling it.
//
// Overview:
//
//   - Declare primary items (must be covered exactly once) and secondary
//     items (optional, color-taggable) by name.
//   - Add options as token lists: "name" for a plain item, "name:color"
//     for a colored secondary item. Color names are interned in order of
//     first appearance; a color is just an equality tag.
//   - Build resolves every name to an index, assigns sequential option
//     IDs, and emits a compiled *xcc.Matrix ready to solve. The matrix
//     layer itself performs no validation; all of it happens here.
//
// Each option carries a payload of type T ("meaning") that the solver
// returns verbatim from solutions. Typically the meaning is a struct
// that reconstructs a domain answer from the chosen options, say the
// row, column, and digit of a Sudoku placement (see examples/sudoku).
//
// Declaration order is free: options may be added before the items they
// reference, as long as every name is declared by the time Build runs.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrItemNotDeclared    if an option references an undeclared name.
//	– ErrItemDeclaredTwice  if a name is declared more than once.
//	– ErrNoPrimaryItems     if no primary items were declared.
//	– ErrPrimaryItemNotUsed if a primary item appears in no option.
//	– ErrNoOptions          if no options were declared.
//	– ErrPrimaryItemColored if a primary item carries a color token.
//
// Example usage:
//
//	b := builder.New[string]()
//	b.AddPrimaryItems("p", "q", "r")
//	b.AddSecondaryItems("x", "y")
//	b.AddOption("p q x y:A", "p", "q", "x", "y:A")
//	b.AddOption("q x:A", "q", "x:A")
//	b.AddOption("p r x:A y", "p", "r", "x:A", "y")
//	m, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	solutions := m.SolveAll()
package builder
