package polyhedra

import (
	"github.com/polykit/affine/arrayref"
	"github.com/polykit/affine/matrix"
)

// OrthogonalizeReferences implements the array-access orthogonalizing
// change of basis: given a list of references sharing one loop nest, it
// forms the block matrix of their subscript matrices, computes a candidate
// unimodular loop basis via matrix.OrthogonalizeWithPivots, and when that
// basis improves on the identity it rewrites the shared loop nest's
// constraint matrix and every reference's subscript matrix to use it. When
// no column improved, included is empty and this returns (nil, false, nil)
// — the caller must treat that as a no-op, not a failure.
func OrthogonalizeReferences(refs []*arrayref.ArrayReference) ([]*arrayref.ArrayReference, bool, error) {
	if len(refs) == 0 {
		return nil, false, nil
	}
	nest := refs[0].Nest
	numLoops := nest.NumLoops()

	totalCols := 0
	for _, r := range refs {
		totalCols += r.Indices.Cols()
	}
	S := matrix.New(numLoops, totalCols)
	col := 0
	for _, r := range refs {
		for c := 0; c < r.Indices.Cols(); c++ {
			for row := 0; row < numLoops; row++ {
				S.Set(row, col, r.Indices.At(row, c))
			}
			col++
		}
	}

	K, included, err := matrix.OrthogonalizeWithPivots(S)
	if err != nil {
		return nil, false, err
	}
	if len(included) == 0 {
		return nil, false, nil
	}

	Kt := K.Transpose()
	numSymbols := nest.NumSymbols()
	oldA := nest.ConstraintMatrix()
	newA := matrix.New(oldA.Rows(), oldA.Cols())
	for r := 0; r < oldA.Rows(); r++ {
		for c := 0; c < numSymbols; c++ {
			newA.Set(r, c, oldA.At(r, c))
		}
	}
	loopBlock := matrix.New(oldA.Rows(), numLoops)
	for r := 0; r < oldA.Rows(); r++ {
		for c := 0; c < numLoops; c++ {
			loopBlock.Set(r, c, oldA.At(r, numSymbols+c))
		}
	}
	rewritten := matrix.New(oldA.Rows(), numLoops)
	matrix.MatMul(rewritten, loopBlock, Kt)
	for r := 0; r < oldA.Rows(); r++ {
		for c := 0; c < numLoops; c++ {
			newA.Set(r, numSymbols+c, rewritten.At(r, c))
		}
	}

	newNest := nest.WithConstraintMatrix(newA)
	aux := New(newA, make([]IntC, newA.Rows()), NoOracle{})
	if _, err := PruneBounds(&aux); err != nil {
		return nil, false, err
	}
	newNest = newNest.WithConstraintMatrix(aux.A)

	out := make([]*arrayref.ArrayReference, len(refs))
	for i, r := range refs {
		newIdx := matrix.New(numLoops, r.Indices.Cols())
		matrix.MatMul(newIdx, K, r.Indices)
		out[i] = arrayref.New(r.Name, newNest, newIdx)
	}
	return out, true, nil
}
