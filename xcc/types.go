// Package xcc defines core identifier types for the color-controlled
// exact cover solver of github.com/katalvlaran/xcover.
package xcc

// ItemID identifies an item (column) in a Matrix.
//
// Items are positional: IDs in [0, NumPrimaryItems) are primary items,
// IDs in [NumPrimaryItems, NumItems) are secondary items. ItemID is a
// distinct type so that item, option, and color index spaces cannot be
// mixed by accident.
type ItemID int

// NewItemID creates an ItemID from a raw index.
func NewItemID(id int) ItemID { return ItemID(id) }

// Index returns the positional index of the item in the matrix.
func (i ItemID) Index() int { return int(i) }

// OptionID identifies an option (row) in a Matrix.
//
// Options are numbered sequentially from 0 in insertion order; an
// OptionID is never reused or reordered.
type OptionID int

// NewOptionID creates an OptionID from a raw index.
func NewOptionID(id int) OptionID { return OptionID(id) }

// Index returns the positional index of the option in the matrix.
func (o OptionID) Index() int { return int(o) }

// Color tags a secondary item within an option. A color has no
// semantics beyond equality, and is scoped per secondary item use,
// not globally meaningful across items.
type Color int

// NewColor creates a Color from a raw index.
func NewColor(id int) Color { return Color(id) }

// Index returns the underlying color index.
func (c Color) Index() int { return int(c) }

// ColoredItem is an item reference inside an option that may or may not
// carry a color. Primary items never carry a color; uncolored secondary
// items act as "zero or one" constraints, colored secondary items may be
// shared by several chosen options under one consistent color.
type ColoredItem struct {
	item    ItemID
	color   Color
	colored bool
}

// NewColoredItem creates a ColoredItem with no color.
func NewColoredItem(item ItemID) ColoredItem {
	return ColoredItem{item: item}
}

// WithColor creates a ColoredItem carrying the given color.
func WithColor(item ItemID, color Color) ColoredItem {
	return ColoredItem{item: item, color: color, colored: true}
}

// Item returns the referenced item.
func (ci ColoredItem) Item() ItemID { return ci.item }

// Color returns the item's color and true, or the zero Color and false
// if the item is uncolored.
func (ci ColoredItem) Color() (Color, bool) { return ci.color, ci.colored }
