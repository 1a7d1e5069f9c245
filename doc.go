// Package xcover is an in-memory solver for exact cover problems with
// color controls — Donald Knuth's "Algorithm C", as described in
// The Art of Computer Programming, Volume 4B, under "Color-controlled
// covering".
//
// 🚀 What is xcover?
//
//	A small, focused library that takes:
//		• a set of primary items (constraints satisfied exactly once)
//		• a set of secondary items (optional, color-taggable constraints)
//		• a set of options (candidate rows over those items)
//	and enumerates the subsets of options that cover every primary item
//	exactly once while keeping every secondary item's color consistent.
//
// ✨ What can it solve?
//
//   - Sudoku-like puzzles
//   - Shape puzzles (tile a 6×10 rectangle with the 12 pentominoes)
//   - Word puzzles (fill a 5×4 grid with dictionary words)
//   - Most Nikoli puzzles, graph coloring, scheduling, and more
//
// Everything is organized under three subpackages:
//
//	xcc/     — the core: Matrix, Solver, Solution, Unique
//	builder/ — name-based problem construction with validation
//	samples/ — ready-made matrices for experimenting and testing
//
// Runnable puzzle encoders (Sudoku, N-Queens, Pentominoes) live under
// examples/.
//
//	go get github.com/katalvlaran/xcover/xcc
package xcover
