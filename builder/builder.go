package builder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/xcover/xcc"
)

// Builder accumulates named items and token-based options, then
// compiles them into an *xcc.Matrix.
//
// The zero value is ready to use; New is provided for symmetry with the
// rest of the module.
type Builder[T any] struct {
	primaryItems   []string
	secondaryItems []string
	options        []option[T]
}

// option is one pending option: its payload plus the raw tokens.
type option[T any] struct {
	meaning T
	tokens  []string
}

// New creates an empty Builder.
func New[T any]() *Builder[T] {
	return &Builder[T]{}
}

// AddPrimaryItem declares a single primary item.
func (b *Builder[T]) AddPrimaryItem(name string) {
	b.primaryItems = append(b.primaryItems, name)
}

// AddPrimaryItems declares primary items in the given order.
func (b *Builder[T]) AddPrimaryItems(names ...string) {
	b.primaryItems = append(b.primaryItems, names...)
}

// AddSecondaryItem declares a single secondary item.
func (b *Builder[T]) AddSecondaryItem(name string) {
	b.secondaryItems = append(b.secondaryItems, name)
}

// AddSecondaryItems declares secondary items in the given order.
func (b *Builder[T]) AddSecondaryItems(names ...string) {
	b.secondaryItems = append(b.secondaryItems, names...)
}

// AddOption adds an option with the given payload. Each token is either
// "name" or "name:color"; names are resolved, and the whole option
// validated, when Build runs.
func (b *Builder[T]) AddOption(meaning T, tokens ...string) {
	opt := option[T]{meaning: meaning, tokens: make([]string, len(tokens))}
	copy(opt.tokens, tokens)
	b.options = append(b.options, opt)
}

// Build validates the declared problem and compiles it into a matrix.
// On failure it returns one of the package's sentinel errors, wrapped
// with the offending item name where there is one.
func (b *Builder[T]) Build() (*xcc.Matrix[T], error) {
	if len(b.primaryItems) == 0 {
		return nil, ErrNoPrimaryItems
	}
	if len(b.options) == 0 {
		return nil, ErrNoOptions
	}

	numPrimary := len(b.primaryItems)
	itemIDs := make(map[string]xcc.ItemID, numPrimary+len(b.secondaryItems))
	for _, name := range b.primaryItems {
		if _, dup := itemIDs[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrItemDeclaredTwice, name)
		}
		itemIDs[name] = xcc.NewItemID(len(itemIDs))
	}
	for _, name := range b.secondaryItems {
		if _, dup := itemIDs[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrItemDeclaredTwice, name)
		}
		itemIDs[name] = xcc.NewItemID(len(itemIDs))
	}

	// Intern color names in order of first appearance across options.
	colorIDs := make(map[string]xcc.Color)
	for _, opt := range b.options {
		for _, token := range opt.tokens {
			if _, color, colored := strings.Cut(token, ":"); colored {
				if _, seen := colorIDs[color]; !seen {
					colorIDs[color] = xcc.NewColor(len(colorIDs))
				}
			}
		}
	}

	matrix := xcc.NewMatrix[T](numPrimary, len(b.secondaryItems))
	usedPrimary := make([]bool, numPrimary)
	for _, opt := range b.options {
		items := make([]xcc.ColoredItem, 0, len(opt.tokens))
		for _, token := range opt.tokens {
			name, color, colored := strings.Cut(token, ":")
			id, declared := itemIDs[name]
			if !declared {
				return nil, fmt.Errorf("%w: %q", ErrItemNotDeclared, name)
			}
			if colored {
				if id.Index() < numPrimary {
					return nil, fmt.Errorf("%w: %q", ErrPrimaryItemColored, token)
				}
				items = append(items, xcc.WithColor(id, colorIDs[color]))
			} else {
				items = append(items, xcc.NewColoredItem(id))
			}
			if id.Index() < numPrimary {
				usedPrimary[id.Index()] = true
			}
		}
		matrix.AddOption(opt.meaning, items)
	}

	for i, used := range usedPrimary {
		if !used {
			return nil, fmt.Errorf("%w: %q", ErrPrimaryItemNotUsed, b.primaryItems[i])
		}
	}

	return matrix, nil
}

// MustBuild is Build for problems known to be well-formed; it panics on
// a validation error.
func (b *Builder[T]) MustBuild() *xcc.Matrix[T] {
	matrix, err := b.Build()
	if err != nil {
		panic(err)
	}

	return matrix
}

// Dump writes the declared problem to w in the input format of Knuth's
// dlx2 program. Meanings are rendered with %v in comment lines.
func (b *Builder[T]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "| primary items: %d\n", len(b.primaryItems))
	fmt.Fprintf(bw, "| secondary items: %d\n", len(b.secondaryItems))
	fmt.Fprintf(bw, "| options: %d\n", len(b.options))
	fmt.Fprint(bw, strings.Join(b.primaryItems, " "))
	if len(b.secondaryItems) > 0 {
		fmt.Fprint(bw, " | ")
		fmt.Fprint(bw, strings.Join(b.secondaryItems, " "))
	}
	fmt.Fprintln(bw)
	for i, opt := range b.options {
		fmt.Fprintf(bw, "| Option %d: %v\n", i, opt.meaning)
		fmt.Fprintln(bw, strings.Join(opt.tokens, " "))
	}

	return bw.Flush()
}
