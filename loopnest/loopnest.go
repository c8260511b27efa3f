// Package loopnest holds AffineLoopNest, the reference-counted, immutable
// constraint-matrix representation shared by every array reference in a
// loop body.
package loopnest

import "github.com/polykit/affine/matrix"

// AffineLoopNest pairs an integer constraint matrix A (rows encode
// `sum(a_j*s_j) + sum(c_k*i_k) >= 0`, symbols prefix, induction variables
// suffix) with the symbol table it refers to. It is reference-counted:
// cloning is explicit, and every accessor is read-only so sharing a pointer
// across array references is always safe without locking.
type AffineLoopNest struct {
	a         *matrix.Dense
	numSymbols int
	symbols   []string
	refs      *int
}

// New builds a loop nest from a constraint matrix whose first numSymbols
// columns are symbol coefficients and the rest are induction-variable
// coefficients.
func New(a *matrix.Dense, symbols []string, numSymbols int) *AffineLoopNest {
	n := 1
	return &AffineLoopNest{a: a, numSymbols: numSymbols, symbols: symbols, refs: &n}
}

// Retain increments the reference count and returns the same nest, the
// idiom every ArrayReference uses when it starts sharing a nest.
func (l *AffineLoopNest) Retain() *AffineLoopNest {
	*l.refs++
	return l
}

// Release decrements the reference count; it does not free anything
// (Go is garbage collected) but lets callers assert a nest is no longer
// shared before attempting an in-place mutation.
func (l *AffineLoopNest) Release() {
	*l.refs--
}

// Shared reports whether more than one owner currently holds this nest.
func (l *AffineLoopNest) Shared() bool { return *l.refs > 1 }

// ConstraintMatrix returns the read-only constraint matrix A.
func (l *AffineLoopNest) ConstraintMatrix() *matrix.Dense { return l.a }

// Symbols returns the symbol table.
func (l *AffineLoopNest) Symbols() []string { return l.symbols }

// NumLoops returns the induction-variable column count.
func (l *AffineLoopNest) NumLoops() int { return l.a.Cols() - l.numSymbols }

// NumSymbols returns the symbol column count.
func (l *AffineLoopNest) NumSymbols() int { return l.numSymbols }

// WithConstraintMatrix returns a new, unshared loop nest with a replaced
// constraint matrix — the operation the orthogonalizing change of basis and
// prune_bounds use, since this type is immutable in place once shared.
func (l *AffineLoopNest) WithConstraintMatrix(a *matrix.Dense) *AffineLoopNest {
	return New(a, l.symbols, l.numSymbols)
}
