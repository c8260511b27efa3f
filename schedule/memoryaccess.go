package schedule

import (
	"github.com/polykit/affine/arrayref"
	"github.com/polykit/affine/matrix"
	"github.com/polykit/affine/polyhedra"
)

// MemoryAccess is one node of the dependence graph: a reference paired with
// its direction, the schedule assigned to its statement, and the edges that
// connect it to other accesses. Edge construction itself is outside this
// package's job (it depends on a host IR this kernel doesn't see); the type
// exists so FusedThrough/MemoryAccessOverlap have something concrete to
// operate on.
type MemoryAccess struct {
	Reference *arrayref.ArrayReference
	IsLoad    bool
	Schedule  Schedule
	InEdges   []*MemoryAccess
	OutEdges  []*MemoryAccess
}

// MemoryAccessOverlap decides whether two accesses can touch the same
// memory location and, if so, whether a's schedule places it before b's. It
// builds the dependence polyhedron over the concatenated iteration spaces
// of both accesses' loop nests — equality rows equate each array dimension
// of the two subscript matrices, inequality rows lift each nest's own
// bound constraints unchanged into the shared variable space — and tests it
// for emptiness. Accesses to different arrays never overlap and the
// polyhedron is skipped entirely.
func MemoryAccessOverlap(a, b *MemoryAccess) (overlap bool, aBeforeB bool, err error) {
	if a.Reference.Name != b.Reference.Name {
		return false, false, nil
	}
	nestA := a.Reference.Nest
	nestB := b.Reference.Nest
	numSymbols := nestA.NumSymbols()
	dA := nestA.NumLoops()
	dB := nestB.NumLoops()
	totalVars := numSymbols + dA + dB

	idxA := a.Reference.Indices
	idxB := b.Reference.Indices
	m := idxA.Cols()

	E := matrix.New(m, totalVars)
	q := make([]polyhedra.IntC, m)
	for r := 0; r < m; r++ {
		for c := 0; c < dA; c++ {
			E.Set(r, numSymbols+c, idxA.At(c, r))
		}
		for c := 0; c < dB; c++ {
			E.Set(r, numSymbols+dA+c, -idxB.At(c, r))
		}
	}

	boundsA := nestA.ConstraintMatrix()
	boundsB := nestB.ConstraintMatrix()
	A := matrix.New(boundsA.Rows()+boundsB.Rows(), totalVars)
	bb := make([]polyhedra.IntC, boundsA.Rows()+boundsB.Rows())
	out := 0
	for r := 0; r < boundsA.Rows(); r++ {
		for c := 0; c < numSymbols; c++ {
			A.Set(out, c, -boundsA.At(r, c))
		}
		for c := 0; c < dA; c++ {
			A.Set(out, numSymbols+c, -boundsA.At(r, numSymbols+c))
		}
		out++
	}
	for r := 0; r < boundsB.Rows(); r++ {
		for c := 0; c < numSymbols; c++ {
			A.Set(out, c, -boundsB.At(r, c))
		}
		for c := 0; c < dB; c++ {
			A.Set(out, numSymbols+dA+c, -boundsB.At(r, numSymbols+c))
		}
		out++
	}

	combined := polyhedra.NewWithEqualities[polyhedra.IntC](A, bb, E, q, polyhedra.NoOracle{})
	empty, err := polyhedra.IsEmpty(combined)
	if err != nil {
		return false, false, err
	}
	overlap = !empty
	if overlap {
		aBeforeB = LexicographicallyBefore(a.Schedule, b.Schedule)
	}
	return overlap, aBeforeB, nil
}
