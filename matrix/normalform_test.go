package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHermiteNormalFormReconstructsViaTransform(t *testing.T) {
	A := NewFromRows([][]int64{{4, 6}, {2, 8}})
	H, U := HermiteNormalForm(A)

	got := New(A.Rows(), A.Cols())
	MatMul(got, A, U)
	require.True(t, got.Equal(H))

	for r := 0; r < H.Rows() && r < H.Cols(); r++ {
		for c := r + 1; c < H.Cols(); c++ {
			require.Equal(t, int64(0), H.At(r, c))
		}
	}
}

func TestSmithNormalFormDiagonalAndReconstructs(t *testing.T) {
	A := NewFromRows([][]int64{{4, 6}, {2, 8}})
	D, U, V := SmithNormalForm(A)

	tmp := New(A.Rows(), A.Cols())
	MatMul(tmp, U, A)
	got := New(A.Rows(), A.Cols())
	MatMul(got, tmp, V)
	require.True(t, got.Equal(D))

	n := D.Rows()
	if D.Cols() < n {
		n = D.Cols()
	}
	for r := 0; r < n; r++ {
		for c := 0; c < D.Cols(); c++ {
			if r != c {
				require.Equal(t, int64(0), D.At(r, c))
			}
		}
	}
}
