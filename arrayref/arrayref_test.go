package arrayref

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polykit/affine/loopnest"
	"github.com/polykit/affine/matrix"
)

func twoLoopNest() *loopnest.AffineLoopNest {
	a := matrix.NewFromRows([][]int64{
		{0, 1, 0},
		{1, -1, 0},
		{0, 0, 1},
		{0, 1, -1},
	})
	return loopnest.New(a, []string{"N"}, 1)
}

func TestNewRetainsNest(t *testing.T) {
	nest := twoLoopNest()
	require.False(t, nest.Shared())

	idx := matrix.NewFromRows([][]int64{{1, 0}, {0, 1}})
	ref := New("A", nest, idx)

	require.True(t, nest.Shared(), "constructing a reference must retain its nest")
	require.Same(t, idx, ref.Indices)
	require.Equal(t, "A", ref.Name)
}

func TestWithIndicesKeepsNestReplacesMatrix(t *testing.T) {
	nest := twoLoopNest()
	idx := matrix.NewFromRows([][]int64{{1, 0}, {0, 1}})
	ref := New("A", nest, idx)

	newIdx := matrix.NewFromRows([][]int64{{1, 1}, {0, 1}})
	ref2 := ref.WithIndices(newIdx)

	require.Same(t, ref.Nest, ref2.Nest)
	require.Same(t, newIdx, ref2.Indices)
	require.Equal(t, ref.Name, ref2.Name)
	require.True(t, nest.Shared(), "both references now share the nest")
}

func TestWithNestSwapsSharedPointer(t *testing.T) {
	nest := twoLoopNest()
	idx := matrix.NewFromRows([][]int64{{1, 0}, {0, 1}})
	ref := New("A", nest, idx)

	replacement := nest.WithConstraintMatrix(matrix.New(4, 3))
	ref2 := ref.WithNest(replacement)

	require.Same(t, replacement, ref2.Nest)
	require.Same(t, idx, ref2.Indices)
	require.True(t, replacement.Shared())
}
