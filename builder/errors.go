package builder

import "errors"

// Sentinel errors returned by Build. Match them with errors.Is; where a
// specific item name is involved it is carried in the wrapping message.
var (
	// ErrItemNotDeclared indicates an option references an item name that
	// was never declared as primary or secondary.
	ErrItemNotDeclared = errors.New("builder: item is used in an option but not declared")

	// ErrItemDeclaredTwice indicates the same name was declared more than
	// once (as both primary and secondary, or twice within one kind).
	ErrItemDeclaredTwice = errors.New("builder: item is declared twice")

	// ErrNoPrimaryItems indicates no primary items were declared.
	ErrNoPrimaryItems = errors.New("builder: no primary items declared")

	// ErrPrimaryItemNotUsed indicates a declared primary item appears in
	// no option, so no solution is possible.
	ErrPrimaryItemNotUsed = errors.New("builder: primary item is not used in any option")

	// ErrNoOptions indicates no options were declared.
	ErrNoOptions = errors.New("builder: no options declared")

	// ErrPrimaryItemColored indicates an option assigns a color to a
	// primary item; only secondary items may carry colors.
	ErrPrimaryItemColored = errors.New("builder: primary items cannot be colored")
)
