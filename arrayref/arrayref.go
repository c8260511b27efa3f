// Package arrayref holds ArrayReference, a subscript matrix tied to the
// loop nest it indexes into.
package arrayref

import (
	"github.com/polykit/affine/loopnest"
	"github.com/polykit/affine/matrix"
)

// ArrayReference holds a shared loop-nest pointer and an index matrix whose
// columns are the index-coefficient vectors of the array's dimensions over
// the loops (so its row count equals the nest's NumLoops, and its column
// count equals the indexed array's dimensionality).
type ArrayReference struct {
	Nest    *loopnest.AffineLoopNest
	Indices *matrix.Dense
	Name    string
}

// New builds a reference sharing nest (retaining it).
func New(name string, nest *loopnest.AffineLoopNest, indices *matrix.Dense) *ArrayReference {
	return &ArrayReference{Nest: nest.Retain(), Indices: indices, Name: name}
}

// WithIndices returns a copy of r with a replaced index matrix, keeping the
// same shared loop nest — what the orthogonalization pass uses to rewrite
// each subscript matrix as K*S_i without touching the nest pointer.
func (r *ArrayReference) WithIndices(indices *matrix.Dense) *ArrayReference {
	return &ArrayReference{Nest: r.Nest.Retain(), Indices: indices, Name: r.Name}
}

// WithNest returns a copy of r pointed at a new (already-built) loop nest —
// used after the nest's constraint matrix has been rewritten so every
// reference that shared the old nest picks up the replacement together.
func (r *ArrayReference) WithNest(nest *loopnest.AffineLoopNest) *ArrayReference {
	return &ArrayReference{Nest: nest.Retain(), Indices: r.Indices, Name: r.Name}
}
