package samples_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xcover/samples"
)

// TestToy checks the canned toy problem has its one known solution.
func TestToy(t *testing.T) {
	toy := samples.Toy()
	require.Equal(t, 3, toy.NumPrimaryItems())
	require.Equal(t, 5, toy.NumItems())
	require.Equal(t, 5, toy.NumOptions())

	solutions := toy.SolveAll()
	require.Len(t, solutions, 1)
	assert.Equal(t, []string{"q x:A", "p r x:A y"}, toy.Meanings(solutions[0]))

	u := toy.SolveUnique()
	assert.True(t, u.IsUnique())
	_, ok := u.One()
	assert.True(t, ok)
}
