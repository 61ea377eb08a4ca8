package arraykit

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/arraykit/internal/testutil"
)

func TestSortAscending(t *testing.T) {
	input := []int{0, 1, 0, 0, 1, 0}
	got, err := SortAscending(input)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1}, got)
	assert.Equal(t, []int{0, 1, 0, 0, 1, 0}, input)
}

func TestSortDescending(t *testing.T) {
	input := []int{0, 1, 0, 0, 1, 0}
	got, err := SortDescending(input)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 0, 0, 0}, got)
	assert.Equal(t, []int{0, 1, 0, 0, 1, 0}, input)
}

func TestSort_Single(t *testing.T) {
	asc, err := SortAscending([]int{3})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, asc)

	desc, err := SortDescending([]int{3})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, desc)
}

func TestSort_Properties(t *testing.T) {
	gen := testutil.NewSequenceGenerator(3)

	for i := 0; i < 300; i++ {
		seq := gen.Next(1, 40, 20)

		asc, err := SortAscending(seq)
		require.NoError(t, err)
		assert.True(t, slices.IsSorted(asc), "seed=%d", gen.Seed())
		assert.ElementsMatch(t, seq, asc)

		desc, err := SortDescending(seq)
		require.NoError(t, err)
		reversed := slices.Clone(asc)
		slices.Reverse(reversed)
		assert.Equal(t, reversed, desc)
	}
}
