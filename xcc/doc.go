// Package xcc implements color-controlled exact cover (XCC) solving —
// Knuth's Algorithm C from The Art of Computer Programming, Volume 4B.
//
// Overview:
//
//   - A Matrix is the compiled, immutable-after-construction description
//     of a problem: primary items that must be covered exactly once,
//     secondary items that may be covered at most once (uncolored) or
//     any number of times under a single consistent color, and options:
//     candidate rows touching a subset of the items, each carrying an
//     opaque user payload ("meaning").
//   - A Solver is the backtracking engine bound to one Matrix. It tracks
//     which items and options are still available as bitsets, plus the
//     colors committed so far, and explores branches with an explicit
//     stack of full-state checkpoints.
//   - A Solution records which options one successful path chose; Unique
//     wraps the three possible outcomes of a "find a unique solution"
//     query.
//
// Search mechanics:
//
//   - Branch selection uses the minimum-remaining-values heuristic: among
//     available primary items, pick the one with the fewest remaining
//     options (ties go to the lowest item index). This is essential for
//     tractability on hard instances such as Sudoku.
//   - Covering an item hides it and every available option touching it;
//     the hidden options are exactly the branches to try.
//   - Committing an option covers its uncolored items and purifies its
//     colored ones: the first time a color is committed to a secondary
//     item, every option that would give that item a different color is
//     discarded.
//   - Backtracking restores a saved checkpoint (both bitsets plus the
//     committed-color map). Each branch node costs one full state copy,
//     an explicit simplicity/efficiency trade-off against dancing-links
//     pointer surgery; memory is bounded by stack depth × state size.
//
// Complexity:
//
//	– Exact cover is NP-complete; worst-case time is exponential in the
//	  number of options. Per search node the engine spends
//	  O(NumOptions × items-per-option) counting plus O(NumItems +
//	  NumOptions) checkpoint copying.
//	– Space: O(depth × (NumItems + NumOptions)) for the branch stack.
//
// Concurrency:
//
//   - A Matrix is read-only during search and may be shared by any number
//     of concurrently running Solvers. One Solver serves one logical
//     search at a time; SolveAll/SolveOnce/SolveUnique on Matrix each run
//     a fresh Solver.
//
// Failure semantics:
//
//   - The engine has no error channel. Out-of-range item or option
//     indices passed to low-level operations are contract violations and
//     panic via bounds checks; they are never silently tolerated. Input
//     validation belongs to the builder package, which compiles named
//     problems into a Matrix.
//
// Example usage:
//
//	m := xcc.NewMatrix[string](2, 0)
//	a := m.AddOption("first", []xcc.ColoredItem{xcc.NewColoredItem(0)})
//	b := m.AddOption("second", []xcc.ColoredItem{xcc.NewColoredItem(1)})
//	for _, s := range m.SolveAll() {
//	    fmt.Println(m.Meanings(s)) // [first second]
//	}
//	_ = a
//	_ = b
package xcc
