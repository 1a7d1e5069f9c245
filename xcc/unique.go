package xcc

// uniqueKind tags the three Unique variants.
type uniqueKind int

const (
	uniqueNone uniqueKind = iota
	uniqueOne
	uniqueAmbiguous
)

// Unique is the result of a "find a unique solution" query, such as
// Matrix.SolveUnique. It distinguishes three cases:
//
//   - none: the problem is unsolvable;
//   - one: exactly one solution exists; after finding it, the solver
//     exhaustively searched for another and found none;
//   - ambiguous: at least two solutions exist, and two of them are
//     carried. The solver stops after the second, so no claim is made
//     about the total count beyond "at least two".
//
// There is a large class of problems (puzzle generation in particular)
// that search for an instance with a unique solution; Unique is the
// vocabulary for that search.
type Unique[T any] struct {
	kind          uniqueKind
	first, second T
}

// UniqueNone reports an unsolvable problem.
func UniqueNone[T any]() Unique[T] {
	return Unique[T]{kind: uniqueNone}
}

// UniqueOne reports a problem with exactly one solution.
func UniqueOne[T any](value T) Unique[T] {
	return Unique[T]{kind: uniqueOne, first: value}
}

// UniqueAmbiguous reports a problem with at least two solutions, two of
// which are carried.
func UniqueAmbiguous[T any](first, second T) Unique[T] {
	return Unique[T]{kind: uniqueAmbiguous, first: first, second: second}
}

// One returns the unique value and true if there is exactly one;
// otherwise the zero value and false.
func (u Unique[T]) One() (T, bool) {
	if u.kind != uniqueOne {
		var zero T

		return zero, false
	}

	return u.first, true
}

// Ambiguous returns the two witness values and true if the problem had
// multiple solutions; otherwise zero values and false.
func (u Unique[T]) Ambiguous() (T, T, bool) {
	if u.kind != uniqueAmbiguous {
		var zero T

		return zero, zero, false
	}

	return u.first, u.second, true
}

// IsUnique reports whether there is exactly one solution.
func (u Unique[T]) IsUnique() bool { return u.kind == uniqueOne }

// IsAmbiguous reports whether there were multiple solutions.
func (u Unique[T]) IsAmbiguous() bool { return u.kind == uniqueAmbiguous }

// MapUnique transforms whichever value(s) a Unique holds with f,
// preserving the variant shape. (A free function: Go methods cannot
// introduce a second type parameter.)
func MapUnique[T, U any](u Unique[T], f func(T) U) Unique[U] {
	switch u.kind {
	case uniqueOne:
		return UniqueOne(f(u.first))
	case uniqueAmbiguous:
		return UniqueAmbiguous(f(u.first), f(u.second))
	default:
		return UniqueNone[U]()
	}
}
