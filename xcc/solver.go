package xcc

import (
	"maps"

	"github.com/bits-and-blooms/bitset"
)

// Solver is the backtracking search engine for one Matrix. It tracks
// which items and options are still eligible on the current path, and
// which colors have been committed to secondary items.
//
// A Solver is bound to its Matrix for life and starts with everything
// available; it is not reusable across unrelated searches. One Solver
// must not be driven by more than one logical search at a time. For
// concurrent searches over a shared Matrix, run one Solver each.
type Solver[T any] struct {
	matrix *Matrix[T]
	// availableItems has a bit per item; set = not yet removed from
	// consideration on the current path.
	availableItems *bitset.BitSet
	// availableOptions has a bit per option; set = still an eligible
	// branch candidate.
	availableOptions *bitset.BitSet
	// committedColors maps each purified secondary item to the color
	// fixed for it along the current path.
	committedColors map[ItemID]Color
}

// savedState is one atomic, copyable checkpoint of solver state.
// Restoring it rolls the search back to the node where it was taken.
type savedState struct {
	availableItems   *bitset.BitSet
	availableOptions *bitset.BitSet
	committedColors  map[ItemID]Color
}

// NewSolver creates a solver over m with all items and options
// available and no committed colors.
func NewSolver[T any](m *Matrix[T]) *Solver[T] {
	availableItems := bitset.New(uint(m.NumItems()))
	for i := 0; i < m.NumItems(); i++ {
		availableItems.Set(uint(i))
	}
	availableOptions := bitset.New(uint(m.NumOptions()))
	for i := 0; i < m.NumOptions(); i++ {
		availableOptions.Set(uint(i))
	}

	return &Solver[T]{
		matrix:           m,
		availableItems:   availableItems,
		availableOptions: availableOptions,
		committedColors:  make(map[ItemID]Color),
	}
}

// SolveAll runs the search to exhaustion and returns every solution.
func (s *Solver[T]) SolveAll() []Solution {
	return s.Solve(0)
}

// SolveOnce stops at the first solution. ok is false if none exists.
func (s *Solver[T]) SolveOnce() (Solution, bool) {
	solutions := s.Solve(1)
	if len(solutions) == 0 {
		return Solution{}, false
	}

	return solutions[0], true
}

// SolveUnique searches for up to two solutions and reports whether the
// problem has none, exactly one, or at least two. In the ambiguous case
// the two solutions are returned in discovery order; which two the
// search happens to find first is an artifact of traversal order, not a
// contract.
func (s *Solver[T]) SolveUnique() Unique[Solution] {
	solutions := s.Solve(2)
	switch len(solutions) {
	case 0:
		return UniqueNone[Solution]()
	case 1:
		return UniqueOne(solutions[0])
	default:
		return UniqueAmbiguous(solutions[0], solutions[1])
	}
}

// frame is one pending branch: the checkpoint to resume from plus the
// options chosen so far on that path.
type frame struct {
	state  savedState
	chosen []OptionID
}

// Solve runs a depth-first search over full-state checkpoints and
// returns the solutions found. A limit > 0 stops the whole search as
// soon as that many solutions exist (remaining branches are abandoned);
// limit <= 0 means exhaustive.
//
// The stack is explicit rather than recursive, so deep or wide problems
// cannot exhaust the call stack, and an early exit at limit is a plain
// loop break. Sibling branches are pushed in candidate order and
// therefore explored last-in-first-out.
func (s *Solver[T]) Solve(limit int) []Solution {
	var results []Solution
	stack := []frame{{state: s.saveState(), chosen: nil}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.restore(top.state)

		item, ok := s.ChooseNextItem()
		if !ok {
			// No primary item left: every one is covered exactly once.
			results = append(results, Solution{options: top.chosen})
			if limit > 0 && len(results) == limit {
				break
			}

			continue
		}

		candidates := s.CoverItemAndOptions(item)

		// Each candidate branch starts from the state right after the
		// covering, commits one option, and parks its checkpoint.
		ss := s.saveState()
		for _, option := range candidates {
			s.restore(ss.clone())
			s.Commit(option)
			chosen := make([]OptionID, len(top.chosen), len(top.chosen)+1)
			copy(chosen, top.chosen)
			chosen = append(chosen, option)
			stack = append(stack, frame{state: s.saveState(), chosen: chosen})
		}
	}

	return results
}

// Commit makes a provisional commitment to an option on the current
// path. For every item the option touches that is still available:
// uncolored items are covered outright (propagating the row's other
// constraints), colored items are purified the first time a color is
// committed to them. Either way the item then becomes unavailable, so
// branch selection never reconsiders it, while later options may still
// reference a purified secondary item under the same color.
func (s *Solver[T]) Commit(option OptionID) {
	for _, ci := range s.matrix.ItemsForOption(option) {
		item := ci.Item()
		if !s.availableItems.Test(uint(item)) {
			// Already removed by this or an enclosing commit.
			continue
		}
		if color, colored := ci.Color(); colored {
			if _, done := s.committedColors[item]; !done {
				s.Purify(item, color)
			}
		} else {
			s.CoverItemAndOptions(item)
		}
		s.availableItems.Clear(uint(item))
	}
}

// CoverItemAndOptions marks item unavailable, hides every still-available
// option containing it, and returns the IDs just hidden, in insertion
// order. Those are exactly the candidate branches for satisfying item.
func (s *Solver[T]) CoverItemAndOptions(item ItemID) []OptionID {
	var covered []OptionID
	for _, option := range s.matrix.OptionsForItem(item) {
		if s.availableOptions.Test(uint(option)) {
			s.availableOptions.Clear(uint(option))
			covered = append(covered, option)
		}
	}
	s.availableItems.Clear(uint(item))

	return covered
}

// Purify fixes a color for a secondary item: every option containing
// the item (scanned in insertion order, available or not) either agrees
// with the color, recording the commitment and staying usable, or is
// hidden, since a conflicting color forecloses that branch. An option
// that leaves the item uncolored conflicts too.
func (s *Solver[T]) Purify(item ItemID, color Color) {
	for _, option := range s.matrix.OptionsForItem(item) {
		if c, ok := s.matrix.colorOf(option, item); ok && c == color {
			s.committedColors[item] = color
		} else {
			s.availableOptions.Clear(uint(option))
		}
	}
}

// ChooseNextItem picks the available primary item touched by the fewest
// available options (minimum remaining values); ties go to the lowest
// item index. ok=false means no primary item is left: the current
// partial assignment is a complete solution. Secondary items are never
// chosen.
func (s *Solver[T]) ChooseNextItem() (ItemID, bool) {
	counts := s.CountItems()
	var (
		best      ItemID
		bestCount int
		found     bool
	)
	limit := uint(s.matrix.NumPrimaryItems())
	for i, ok := s.availableItems.NextSet(0); ok && i < limit; i, ok = s.availableItems.NextSet(i + 1) {
		if !found || counts[i] < bestCount {
			best, bestCount, found = ItemID(i), counts[i], true
		}
	}

	return best, found
}

// CountItems counts, for each item, the available options touching it.
func (s *Solver[T]) CountItems() []int {
	counts := make([]int, s.matrix.NumItems())
	for i, ok := s.availableOptions.NextSet(0); ok; i, ok = s.availableOptions.NextSet(i + 1) {
		for _, ci := range s.matrix.ItemsForOption(OptionID(i)) {
			counts[ci.Item()]++
		}
	}

	return counts
}

// saveState takes a checkpoint: both bitsets plus the color map are
// copied in full. This costs O(NumItems + NumOptions) per branch node
// in exchange for trivially correct rollback.
func (s *Solver[T]) saveState() savedState {
	return savedState{
		availableItems:   s.availableItems.Clone(),
		availableOptions: s.availableOptions.Clone(),
		committedColors:  maps.Clone(s.committedColors),
	}
}

// restore adopts a checkpoint as the current state. The checkpoint's
// storage is taken over, so restore a clone when the checkpoint must
// survive for another branch.
func (s *Solver[T]) restore(state savedState) {
	s.availableItems = state.availableItems
	s.availableOptions = state.availableOptions
	s.committedColors = state.committedColors
}

// clone deep-copies a checkpoint.
func (st savedState) clone() savedState {
	return savedState{
		availableItems:   st.availableItems.Clone(),
		availableOptions: st.availableOptions.Clone(),
		committedColors:  maps.Clone(st.committedColors),
	}
}
