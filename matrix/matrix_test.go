package matrix

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestMatMulIdentity(t *testing.T) {
	A := NewFromRows([][]int64{{1, 2, 3}, {4, 5, 6}})
	I := Identity(3)
	out := New(2, 3)
	MatMul(out, A, I)
	require.True(t, A.Equal(out))

	I2 := Identity(2)
	out2 := New(2, 3)
	MatMul(out2, I2, A)
	require.True(t, A.Equal(out2))
}

func TestSwapRowsInvolution(t *testing.T) {
	A := NewFromRows([][]int64{{1, 2}, {3, 4}, {5, 6}})
	clone := A.Clone()
	A.SwapRows(0, 2)
	A.SwapRows(0, 2)
	require.True(t, A.Equal(clone))
}

func TestNormalizeByGCD(t *testing.T) {
	A := NewFromRows([][]int64{{4, 6, 8}})
	A.NormalizeByGCD(0)
	require.Equal(t, []int64{2, 3, 4}, A.RowSlice(0))

	zero := NewFromRows([][]int64{{0, 0, 0}})
	zero.NormalizeByGCD(0)
	require.Equal(t, []int64{0, 0, 0}, zero.RowSlice(0))

	single := NewFromRows([][]int64{{0, -5, 0}})
	single.NormalizeByGCD(0)
	require.Equal(t, []int64{0, -1, 0}, single.RowSlice(0))
}

func TestNullSpaceLaw(t *testing.T) {
	// 0*i + 1*j - 1*k = 0  (A is 1x3)
	A := NewFromRows([][]int64{{0, 1, -1}})
	ns := NullSpace(A)
	require.Equal(t, 2, ns.Rows())
	for r := 0; r < ns.Rows(); r++ {
		var dot int64
		for c := 0; c < A.Cols(); c++ {
			dot += A.At(0, c) * ns.At(r, c)
		}
		require.Equal(t, int64(0), dot)
	}
}

func TestOrthogonalizePairwiseOrthogonal(t *testing.T) {
	A := NewFromRows([][]int64{{1, 1}, {1, -1}})
	out, err := Orthogonalize(A)
	require.NoError(t, err)
	var dot int64
	for c := 0; c < out.Cols(); c++ {
		dot += out.At(0, c) * out.At(1, c)
	}
	require.Equal(t, int64(0), dot)
}

func TestOrthogonalizeWithPivotsNoImprovement(t *testing.T) {
	// Identity is already orthogonal: no column should improve on it, so
	// OrthogonalizeWithPivots should report no pivots.
	A := Identity(2)
	K, included, err := OrthogonalizeWithPivots(A)
	require.NoError(t, err)
	require.Empty(t, included)
	require.True(t, K.Equal(Identity(2)))
}

func TestOrthogonalizeWithPivotsImproves(t *testing.T) {
	// S: subscript C[i, i+j] has columns (1,0) and (1,1) in (i,j) space.
	S := NewFromRows([][]int64{{1, 1}, {0, 1}})
	K, included, err := OrthogonalizeWithPivots(S)
	require.NoError(t, err)
	require.NotEmpty(t, included)
	require.Equal(t, 2, K.Rows())
}

// Law 7: swap_rows(A,i,j); swap_rows(A,i,j) is a no-op.
func TestSwapRowsLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)
	properties.Property("double swap is identity", prop.ForAll(
		func(a, b, c, d int16) bool {
			A := NewFromRows([][]int64{{int64(a), int64(b)}, {int64(c), int64(d)}})
			orig := A.Clone()
			A.SwapRows(0, 1)
			A.SwapRows(0, 1)
			return A.Equal(orig)
		},
		gen.Int16(), gen.Int16(), gen.Int16(), gen.Int16(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSmallSparseMatrixRoundTrip(t *testing.T) {
	s := NewSmallSparseMatrix(3, 4)
	s.Insert(5, 0, 2)
	s.Insert(7, 1, 0)
	s.Insert(9, 1, 3)
	s.Insert(0, 0, 2) // remove it again

	require.Equal(t, int64(0), s.Get(0, 2))
	require.Equal(t, int64(7), s.Get(1, 0))
	require.Equal(t, int64(9), s.Get(1, 3))
	require.Equal(t, int64(0), s.Get(2, 1))

	dense := s.Dense()
	require.Equal(t, int64(7), dense.At(1, 0))
	require.Equal(t, int64(9), dense.At(1, 3))
}
