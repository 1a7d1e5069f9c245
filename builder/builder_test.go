package builder_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xcover/builder"
	"github.com/katalvlaran/xcover/xcc"
)

// TestBuild_ValidationErrors exercises the closed validation-error set.
func TestBuild_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		setup func(b *builder.Builder[string])
		err   error
	}{
		{
			"NoPrimaryItems",
			func(b *builder.Builder[string]) {
				b.AddSecondaryItem("s")
				b.AddOption("opt", "s")
			},
			builder.ErrNoPrimaryItems,
		},
		{
			"NoOptions",
			func(b *builder.Builder[string]) {
				b.AddPrimaryItem("a")
			},
			builder.ErrNoOptions,
		},
		{
			"ItemNotDeclared",
			func(b *builder.Builder[string]) {
				b.AddPrimaryItem("a")
				b.AddOption("opt", "a", "mystery")
			},
			builder.ErrItemNotDeclared,
		},
		{
			"ItemDeclaredTwice",
			func(b *builder.Builder[string]) {
				b.AddPrimaryItem("a")
				b.AddSecondaryItem("a")
				b.AddOption("opt", "a")
			},
			builder.ErrItemDeclaredTwice,
		},
		{
			"ItemDeclaredTwiceSameKind",
			func(b *builder.Builder[string]) {
				b.AddPrimaryItems("a", "a")
				b.AddOption("opt", "a")
			},
			builder.ErrItemDeclaredTwice,
		},
		{
			"PrimaryItemNotUsed",
			func(b *builder.Builder[string]) {
				b.AddPrimaryItems("a", "b")
				b.AddOption("opt", "a")
			},
			builder.ErrPrimaryItemNotUsed,
		},
		{
			"PrimaryItemColored",
			func(b *builder.Builder[string]) {
				b.AddPrimaryItem("a")
				b.AddOption("opt", "a:red")
			},
			builder.ErrPrimaryItemColored,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.New[string]()
			tc.setup(b)
			_, err := b.Build()
			if !errors.Is(err, tc.err) {
				t.Errorf("Build() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestBuild_ItemNumbering checks primary items take the low indexes,
// secondary the high ones, regardless of option order.
func TestBuild_ItemNumbering(t *testing.T) {
	b := builder.New[string]()
	// Options may be added before the items they reference.
	b.AddOption("opt", "s", "p2")
	b.AddOption("other", "p1")
	b.AddPrimaryItems("p1", "p2")
	b.AddSecondaryItem("s")

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 2, m.NumPrimaryItems())
	require.Equal(t, 3, m.NumItems())

	// Option 0 touches s (index 2) and p2 (index 1), listed ascending.
	items := m.ItemsForOption(xcc.NewOptionID(0))
	require.Len(t, items, 2)
	assert.Equal(t, xcc.NewItemID(1), items[0].Item())
	assert.Equal(t, xcc.NewItemID(2), items[1].Item())
}

// TestBuild_ColorInterning checks colors are numbered by first
// appearance scanning options in insertion order.
func TestBuild_ColorInterning(t *testing.T) {
	b := builder.New[string]()
	b.AddPrimaryItems("p", "q")
	b.AddSecondaryItems("x", "y")
	b.AddOption("first", "p", "x:green")
	b.AddOption("second", "q", "x:blue", "y:green")

	m, err := b.Build()
	require.NoError(t, err)

	colorOf := func(option, item int) xcc.Color {
		for _, ci := range m.ItemsForOption(xcc.NewOptionID(option)) {
			if ci.Item().Index() == item {
				c, ok := ci.Color()
				require.True(t, ok)

				return c
			}
		}
		t.Fatalf("option %d does not touch item %d", option, item)

		return 0
	}

	green := colorOf(0, 2)
	blue := colorOf(1, 2)
	assert.Equal(t, xcc.NewColor(0), green)
	assert.Equal(t, xcc.NewColor(1), blue)
	assert.Equal(t, green, colorOf(1, 3), "same color name must intern to the same Color")
}

// TestMustBuild panics on an invalid problem and succeeds otherwise.
func TestMustBuild(t *testing.T) {
	b := builder.New[int]()
	assert.Panics(t, func() { b.MustBuild() })

	b.AddPrimaryItem("a")
	b.AddOption(1, "a")
	assert.NotNil(t, b.MustBuild())
}

// TestDump checks the Knuth dlx2 dump format.
func TestDump(t *testing.T) {
	b := builder.New[int]()
	b.AddPrimaryItems("p", "q")
	b.AddSecondaryItem("x")
	b.AddOption(7, "p", "x:A")
	b.AddOption(8, "q")

	var buf bytes.Buffer
	require.NoError(t, b.Dump(&buf))

	want := "| primary items: 2\n" +
		"| secondary items: 1\n" +
		"| options: 2\n" +
		"p q | x\n" +
		"| Option 0: 7\n" +
		"p x:A\n" +
		"| Option 1: 8\n" +
		"q\n"
	assert.Equal(t, want, buf.String())
}

// TestBuild_EndToEnd compiles and solves a small colored problem.
func TestBuild_EndToEnd(t *testing.T) {
	b := builder.New[string]()
	b.AddPrimaryItems("p", "q", "r")
	b.AddSecondaryItems("x", "y")
	b.AddOption("p q x y:A", "p", "q", "x", "y:A")
	b.AddOption("p r x:A y", "p", "r", "x:A", "y")
	b.AddOption("p x:B", "p", "x:B")
	b.AddOption("q x:A", "q", "x:A")
	b.AddOption("r y:B", "r", "y:B")

	m, err := b.Build()
	require.NoError(t, err)

	solutions := m.SolveAll()
	require.Len(t, solutions, 1)
	assert.Equal(t, []string{"q x:A", "p r x:A y"}, m.Meanings(solutions[0]))
}
