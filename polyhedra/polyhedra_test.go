package polyhedra

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polykit/affine/matrix"
)

func ic(vs ...int64) []IntC {
	out := make([]IntC, len(vs))
	for i, v := range vs {
		out[i] = IntC(v)
	}
	return out
}

// scenario S6: 0 <= i <= N, 0 <= j <= i, variables ordered (N, i, j).
// As A·x <= b:
//
//	-i       <= 0
//	 i - N   <= 0
//	-j       <= 0
//	 j - i   <= 0
func boundedTriangle() Polyhedron[IntC] {
	A := matrix.NewFromRows([][]int64{
		{0, -1, 0},
		{-1, 1, 0},
		{0, 0, -1},
		{0, -1, 1},
	})
	b := ic(0, 0, 0, 0)
	return New[IntC](A, b, NoOracle{})
}

func TestRemoveVariableProjectsOntoRemainingCoordinates(t *testing.T) {
	p := boundedTriangle()
	reduced, err := RemoveVariable(p, 2) // eliminate j
	require.NoError(t, err)
	require.Equal(t, 2, reduced.NumVars())

	changed, err := PruneBounds(&reduced)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 2, reduced.A.Rows())

	for r := 0; r < reduced.A.Rows(); r++ {
		row := reduced.A.RowSlice(r)
		require.True(t, row[0] == 0 || row[1] != 0 || row[0] != 0)
	}

	// The surviving rows must still be exactly "-i <= 0" and "i - N <= 0"
	// up to row order: the j-bound j<=i became 0<=i after eliminating j
	// against 0<=j, which PruneBounds should have recognized as implied by
	// -i<=0 combined with i<=N... concretely, check the two original
	// i-bounds are still present and nothing new about N alone appears.
	sawLower, sawUpper := false, false
	for r := 0; r < reduced.A.Rows(); r++ {
		row := reduced.A.RowSlice(r)
		switch {
		case row[0] == 0 && row[1] == -1:
			sawLower = true
		case row[0] == -1 && row[1] == 1:
			sawUpper = true
		}
	}
	require.True(t, sawLower, "expected -i<=0 to survive pruning")
	require.True(t, sawUpper, "expected i-N<=0 to survive pruning")
}

func TestIsEmptyMonotoneUnderRowAddition(t *testing.T) {
	p := boundedTriangle()
	empty, err := IsEmpty(p)
	require.NoError(t, err)
	require.False(t, empty)

	// Adding a row can only shrink the set, never grow it: add i <= -1,
	// contradicting -i <= 0 (i.e. i >= 0), which must make it empty.
	withExtra := p.Clone()
	extraA := matrix.New(withExtra.A.Rows()+1, withExtra.A.Cols())
	for r := 0; r < withExtra.A.Rows(); r++ {
		for c := 0; c < withExtra.A.Cols(); c++ {
			extraA.Set(r, c, withExtra.A.At(r, c))
		}
	}
	extraA.Set(withExtra.A.Rows(), 1, 1) // i <= -1
	withExtra.A = extraA
	withExtra.B = append(withExtra.B, IntC(-1))

	empty2, err := IsEmpty(withExtra)
	require.NoError(t, err)
	require.True(t, empty2, "adding a contradictory row must not un-empty the set")
}

func TestPruneBoundsIdempotent(t *testing.T) {
	p := boundedTriangle()
	reduced, err := RemoveVariable(p, 2)
	require.NoError(t, err)

	changed, err := PruneBounds(&reduced)
	require.NoError(t, err)
	require.True(t, changed)

	again, err := PruneBounds(&reduced)
	require.NoError(t, err)
	require.False(t, again, "a second prune pass must remove nothing further")
}

func TestPruneBoundsPreservesIntegerPointSet(t *testing.T) {
	// A simple redundant system: 0<=i<=10 and i<=20 (the second upper
	// bound is implied by the first). Pruning must drop exactly the
	// redundant row and leave the same feasibility for every test point.
	A := matrix.NewFromRows([][]int64{
		{-1},
		{1},
		{1},
	})
	b := ic(0, 10, 20)
	p := New[IntC](A, b, NoOracle{})

	satisfies := func(poly Polyhedron[IntC], i int64) bool {
		for r := 0; r < poly.A.Rows(); r++ {
			if poly.A.At(r, 0)*i > int64(poly.B[r]) {
				return false
			}
		}
		return true
	}

	before := make([]bool, 25)
	for i := int64(0); i < 25; i++ {
		before[i] = satisfies(p, i)
	}

	changed, err := PruneBounds(&p)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 2, p.A.Rows())

	for i := int64(0); i < 25; i++ {
		require.Equal(t, before[i], satisfies(p, i), "point %d", i)
	}
}

func TestIsEmptyDetectsEmptySet(t *testing.T) {
	// i >= 1 and i <= 0 has no integer solution.
	A := matrix.NewFromRows([][]int64{
		{-1},
		{1},
	})
	b := ic(-1, 0)
	p := New[IntC](A, b, NoOracle{})
	empty, err := IsEmpty(p)
	require.NoError(t, err)
	require.True(t, empty)
}

func TestRemoveVariableViaEquality(t *testing.T) {
	// i = 5, 0 <= j <= i: eliminating i via the equality row should leave
	// 0 <= j <= 5 over the remaining variable j.
	A := matrix.NewFromRows([][]int64{
		{0, -1},
		{-1, 1},
	})
	b := ic(0, 0)
	E := matrix.NewFromRows([][]int64{
		{1, 0},
	})
	q := ic(5)
	p := NewWithEqualities[IntC](A, b, E, q, NoOracle{})

	reduced, err := RemoveVariable(p, 0)
	require.NoError(t, err)
	require.Equal(t, 1, reduced.NumVars())
	require.Equal(t, 0, reduced.E.Rows())

	satisfies := func(j int64) bool {
		for r := 0; r < reduced.A.Rows(); r++ {
			if reduced.A.At(r, 0)*j > int64(reduced.B[r]) {
				return false
			}
		}
		return true
	}
	require.True(t, satisfies(0))
	require.True(t, satisfies(5))
	require.False(t, satisfies(6))
	require.False(t, satisfies(-1))
}
