package xcc

import (
	"github.com/bits-and-blooms/bitset"
)

// Matrix is a compiled specification of an exact cover problem with
// colored secondary items. It owns the full, fixed list of options plus
// the item counts, and is immutable once built: the only mutator is
// AddOption, used solely during construction.
//
// Items [0, NumPrimaryItems) are primary; items [NumPrimaryItems,
// NumItems) are secondary. The type parameter T is the payload carried
// by each option and returned verbatim by Meaning/Meanings; the engine
// never inspects it.
//
// The usual way to build a Matrix is the builder package, which resolves
// item names and validates the problem before compiling it down to the
// index-based operations here. AddOption performs no bounds validation:
// out-of-range items are a contract violation by the caller.
type Matrix[T any] struct {
	numItems        int
	numPrimaryItems int
	options         []optionRow[T]
}

// optionRow is one option (row): the set of items it touches, a sparse
// map from colored secondary items to their colors, and the payload.
type optionRow[T any] struct {
	id      OptionID
	items   *bitset.BitSet
	colors  map[ItemID]Color
	meaning T
}

// NewMatrix creates an empty matrix with the given number of primary
// and secondary items. Total item count is the sum; construction cannot
// fail (no validation happens at this layer).
func NewMatrix[T any](numPrimary, numSecondary int) *Matrix[T] {
	return &Matrix[T]{
		numItems:        numPrimary + numSecondary,
		numPrimaryItems: numPrimary,
	}
}

// AddOption appends an option with the given payload and colored-item
// list, returning its newly assigned identifier (sequential from 0).
//
// Color-bearing entries must reference secondary items; enforcing that
// is the construction layer's responsibility, not the Matrix's.
func (m *Matrix[T]) AddOption(meaning T, items []ColoredItem) OptionID {
	row := optionRow[T]{
		id:      OptionID(len(m.options)),
		items:   bitset.New(uint(m.numItems)),
		meaning: meaning,
	}
	for _, ci := range items {
		row.items.Set(uint(ci.Item()))
		if color, ok := ci.Color(); ok {
			if row.colors == nil {
				row.colors = make(map[ItemID]Color)
			}
			row.colors[ci.Item()] = color
		}
	}
	m.options = append(m.options, row)

	return row.id
}

// NumItems returns the total number of items (primary + secondary).
func (m *Matrix[T]) NumItems() int { return m.numItems }

// NumPrimaryItems returns the number of primary items.
func (m *Matrix[T]) NumPrimaryItems() int { return m.numPrimaryItems }

// NumOptions returns the number of options added so far.
func (m *Matrix[T]) NumOptions() int { return len(m.options) }

// Meaning returns the payload of the given option.
func (m *Matrix[T]) Meaning(option OptionID) T {
	return m.options[option.Index()].meaning
}

// OptionsForItem returns the IDs of all options whose item set contains
// item, in insertion order. The engine uses this both to find covering
// candidates and to count remaining options per item.
func (m *Matrix[T]) OptionsForItem(item ItemID) []OptionID {
	var ids []OptionID
	for i := range m.options {
		if m.options[i].items.Test(uint(item)) {
			ids = append(ids, m.options[i].id)
		}
	}

	return ids
}

// ItemsForOption returns every item touched by the given option,
// annotated with its color where one was assigned. Iteration order is
// ascending item index (bit order), not the order items were listed
// when the option was added.
func (m *Matrix[T]) ItemsForOption(option OptionID) []ColoredItem {
	row := &m.options[option.Index()]
	items := make([]ColoredItem, 0, row.items.Count())
	for i, ok := row.items.NextSet(0); ok; i, ok = row.items.NextSet(i + 1) {
		item := ItemID(i)
		if color, colored := row.colors[item]; colored {
			items = append(items, WithColor(item, color))
		} else {
			items = append(items, NewColoredItem(item))
		}
	}

	return items
}

// ItemCounts returns, for each item, the number of options touching it.
func (m *Matrix[T]) ItemCounts() []int {
	counts := make([]int, m.numItems)
	for i := range m.options {
		row := &m.options[i]
		for j, ok := row.items.NextSet(0); ok; j, ok = row.items.NextSet(j + 1) {
			counts[j]++
		}
	}

	return counts
}

// Meanings resolves a solution's option IDs back into their payloads,
// in the order the options were selected.
func (m *Matrix[T]) Meanings(s Solution) []T {
	meanings := make([]T, len(s.options))
	for i, id := range s.options {
		meanings[i] = m.options[id.Index()].meaning
	}

	return meanings
}

// colorOf reports the color the given option assigns to item, if any.
func (m *Matrix[T]) colorOf(option OptionID, item ItemID) (Color, bool) {
	color, ok := m.options[option.Index()].colors[item]

	return color, ok
}

// containsItem reports whether the given option touches item.
func (m *Matrix[T]) containsItem(option OptionID, item ItemID) bool {
	return m.options[option.Index()].items.Test(uint(item))
}

// SolveAll runs an exhaustive search and returns every solution.
//
// The Matrix is not mutated; each call runs a fresh Solver.
func (m *Matrix[T]) SolveAll() []Solution {
	return NewSolver(m).SolveAll()
}

// SolveOnce searches until the first solution and returns it, or
// ok=false if the problem has no solution.
func (m *Matrix[T]) SolveOnce() (Solution, bool) {
	return NewSolver(m).SolveOnce()
}

// SolveUnique searches for up to two solutions and classifies the
// outcome: no solution, exactly one (exhaustively confirmed), or
// ambiguous (at least two; search stops after the second).
func (m *Matrix[T]) SolveUnique() Unique[Solution] {
	return NewSolver(m).SolveUnique()
}
