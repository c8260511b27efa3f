// Package polyhedra implements the constraint-elimination engine: a
// Polyhedron is the integer-point set `{x : A·x ≤ b ∧ E·x = q}`, generic
// over whether its right-hand sides are plain machine integers or
// multivariate polynomials in unknown symbols. Fourier-Motzkin elimination,
// redundancy pruning, and the orthogonalizing change of basis used to
// straighten array-subscript access patterns are all expressed once,
// parameterized by Coeff[C], rather than duplicated per coefficient kind —
// the generic replacement for the reference engine's CRTP-derived pair of
// concrete polyhedra types.
package polyhedra

import (
	"github.com/polykit/affine/arith"
	"github.com/polykit/affine/matrix"
)

// Polyhedron is the quadruple (A, b, E, q): A (m x n) and b (length m)
// encode inequalities A·x ≤ b; E (p x n) and q (length p) encode equalities
// E·x = q. Either matrix may have zero rows. Oracle is consulted by Sign
// whenever C is a symbolic coefficient; it is ignored for plain integers.
type Polyhedron[C Coeff[C]] struct {
	A      *matrix.Dense
	B      []C
	E      *matrix.Dense
	Q      []C
	Oracle Oracle
}

// New builds a Polyhedron with no equality rows.
func New[C Coeff[C]](A *matrix.Dense, b []C, oracle Oracle) Polyhedron[C] {
	return Polyhedron[C]{A: A, B: b, E: matrix.New(0, A.Cols()), Q: nil, Oracle: oracle}
}

// NewWithEqualities builds a Polyhedron with both inequality and equality
// rows.
func NewWithEqualities[C Coeff[C]](A *matrix.Dense, b []C, E *matrix.Dense, q []C, oracle Oracle) Polyhedron[C] {
	return Polyhedron[C]{A: A, B: b, E: E, Q: q, Oracle: oracle}
}

// NumVars returns n, the shared column count of A and E.
func (p Polyhedron[C]) NumVars() int { return p.A.Cols() }

// Clone deep-copies every field so the original is unaffected by in-place
// mutation of the result.
func (p Polyhedron[C]) Clone() Polyhedron[C] {
	b := make([]C, len(p.B))
	copy(b, p.B)
	q := make([]C, len(p.Q))
	copy(q, p.Q)
	return Polyhedron[C]{A: p.A.Clone(), B: b, E: p.E.Clone(), Q: q, Oracle: p.Oracle}
}

// normalizeRowAndRHS divides a freshly combined Fourier-Motzkin row by the
// GCD of its coefficients, per removeVariable's "normalize each emitted row
// by the GCD of its integer coefficients". The right-hand side is left
// untouched: normalizing a ≤-constraint's bound after shrinking its
// coefficients would require rounding (valid only when C is a plain
// integer and only as a strengthening step, not a bare scaling), so this
// package keeps the simpler, always-correct half of the normalization and
// leaves bound tightening to a caller that wants it.
func normalizeRowAndRHS[C Coeff[C]](row []int64, rhs C) ([]int64, C, error) {
	g := int64(0)
	for _, v := range row {
		g = arith.GCD(g, v)
	}
	if g <= 1 {
		return row, rhs, nil
	}
	out := make([]int64, len(row))
	for i, v := range row {
		out[i] = v / g
	}
	return out, rhs, nil
}
