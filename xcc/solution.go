package xcc

// Solution is an immutable record of one successful search path: the
// options chosen, in the order items were selected (not necessarily
// option-ID order).
//
// Solutions are produced only by the engine. Callers resolve the IDs
// back into payloads with Matrix.Meanings.
//
// # Example
//
//	toy := samples.Toy()
//	for _, solution := range toy.SolveAll() {
//	    fmt.Println(toy.Meanings(solution))
//	}
type Solution struct {
	options []OptionID
}

// OptionIDs returns the chosen option identifiers in selection order.
// The returned slice is a copy; mutating it does not affect the
// Solution.
func (s Solution) OptionIDs() []OptionID {
	ids := make([]OptionID, len(s.options))
	copy(ids, s.options)

	return ids
}

// Len returns the number of options in the solution.
func (s Solution) Len() int { return len(s.options) }
