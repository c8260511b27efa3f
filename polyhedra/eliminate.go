package polyhedra

import (
	"github.com/polykit/affine/arith"
	"github.com/polykit/affine/matrix"
)

// RemoveVariable eliminates coordinate i by Fourier-Motzkin: if any equality
// row has a non-zero entry at i, that row is used to substitute the column
// out everywhere first (a Gaussian elimination step over the integers,
// GCD-scaled); otherwise the inequality rows are partitioned by the sign of
// their i-th coefficient into pos/neg/zero, one new row is emitted per
// (p, n) pair in pos x neg by canceling column i, and the result is
// concatenated with the zero rows. Elimination never fails — it always
// returns a polyhedron with one fewer column. The combined-row construction
// can overflow on adversarial inputs; ArithmeticOverflow is returned rather
// than silently wrapping.
func RemoveVariable[C Coeff[C]](p Polyhedron[C], i int) (Polyhedron[C], error) {
	for r := 0; r < p.E.Rows(); r++ {
		if p.E.At(r, i) != 0 {
			return eliminateViaEquality(p, i, r)
		}
	}
	return eliminateViaFourierMotzkin(p, i)
}

func eliminateViaEquality[C Coeff[C]](p Polyhedron[C], i, eqRow int) (Polyhedron[C], error) {
	n := p.NumVars()
	pivot := p.E.At(eqRow, i)

	newA := matrix.New(p.A.Rows(), n-1)
	newB := make([]C, p.A.Rows())
	for r := 0; r < p.A.Rows(); r++ {
		coef := p.A.At(r, i)
		// The inequality row may only be scaled by a positive factor.
		g := arith.GCD(coef, pivot)
		s1, s2 := -coef/g, pivot/g
		if s2 < 0 {
			s1, s2 = -s1, -s2
		}
		row, rhs, err := combineRow(p.E.RowSlice(eqRow), p.Q[eqRow], p.A.RowSlice(r), p.B[r], s1, s2, i)
		if err != nil {
			return Polyhedron[C]{}, err
		}
		writeDroppingCol(newA, r, row, i)
		newB[r] = rhs
	}

	newE := matrix.New(p.E.Rows()-1, n-1)
	newQ := make([]C, 0, p.E.Rows()-1)
	out := 0
	for r := 0; r < p.E.Rows(); r++ {
		if r == eqRow {
			continue
		}
		coef := p.E.At(r, i)
		if coef == 0 {
			writeDroppingCol(newE, out, p.E.RowSlice(r), i)
			newQ = append(newQ, p.Q[r])
		} else {
			g := arith.GCD(coef, pivot)
			row, rhs, err := combineRow(p.E.RowSlice(eqRow), p.Q[eqRow], p.E.RowSlice(r), p.Q[r], -coef/g, pivot/g, i)
			if err != nil {
				return Polyhedron[C]{}, err
			}
			writeDroppingCol(newE, out, row, i)
			newQ = append(newQ, rhs)
		}
		out++
	}

	return Polyhedron[C]{A: newA, B: newB, E: newE, Q: newQ, Oracle: p.Oracle}, nil
}

// combineRow builds scale1*pivotRow + scale2*otherRow (coefficient vector
// and right-hand side together), matching removeVariable's "|n_i|*p_row +
// p_i*|n_row|" construction with the two scale factors supplied by the
// caller for either the equality-substitution or Fourier-Motzkin case.
func combineRow[C Coeff[C]](pivotRow []int64, pivotB C, otherRow []int64, otherB C, scale1, scale2 int64, _ int) ([]int64, C, error) {
	n := len(pivotRow)
	row := make([]int64, n)
	overflow := false
	for k := 0; k < n; k++ {
		t1, ov1 := arith.MulChecked(pivotRow[k], scale1)
		t2, ov2 := arith.MulChecked(otherRow[k], scale2)
		sum, ov3 := arith.AddChecked(t1, t2)
		overflow = overflow || ov1 || ov2 || ov3
		row[k] = sum
	}
	sb1, err := pivotB.ScaleInt(scale1)
	if err != nil {
		return nil, sb1, err
	}
	sb2, err := otherB.ScaleInt(scale2)
	if err != nil {
		return nil, sb2, err
	}
	rhs, err := sb1.Add(sb2)
	if err != nil {
		return nil, rhs, err
	}
	if overflow {
		var zero C
		return nil, zero, arith.ErrOverflow
	}
	return row, rhs, nil
}

func writeDroppingCol(m *matrix.Dense, row int, src []int64, drop int) {
	out := 0
	for c, v := range src {
		if c == drop {
			continue
		}
		m.Set(row, out, v)
		out++
	}
}

func eliminateViaFourierMotzkin[C Coeff[C]](p Polyhedron[C], i int) (Polyhedron[C], error) {
	n := p.NumVars()
	var pos, neg, zero []int
	for r := 0; r < p.A.Rows(); r++ {
		switch {
		case p.A.At(r, i) > 0:
			pos = append(pos, r)
		case p.A.At(r, i) < 0:
			neg = append(neg, r)
		default:
			zero = append(zero, r)
		}
	}

	newA := matrix.New(len(pos)*len(neg)+len(zero), n-1)
	newB := make([]C, 0, len(pos)*len(neg)+len(zero))
	out := 0
	for _, pr := range pos {
		for _, nr := range neg {
			pCoef := p.A.At(pr, i)
			nCoef := -p.A.At(nr, i) // |n_i|
			row, rhs, err := combineRow(p.A.RowSlice(nr), p.B[nr], p.A.RowSlice(pr), p.B[pr], pCoef, nCoef, i)
			if err != nil {
				return Polyhedron[C]{}, err
			}
			row, rhs, _ = normalizeRowAndRHS(row, rhs)
			writeDroppingCol(newA, out, row, i)
			newB = append(newB, rhs)
			out++
		}
	}
	for _, zr := range zero {
		writeDroppingCol(newA, out, p.A.RowSlice(zr), i)
		newB = append(newB, p.B[zr])
		out++
	}

	newE := matrix.New(p.E.Rows(), n-1)
	newQ := make([]C, p.E.Rows())
	for r := 0; r < p.E.Rows(); r++ {
		writeDroppingCol(newE, r, p.E.RowSlice(r), i)
		newQ[r] = p.Q[r]
	}

	return Polyhedron[C]{A: newA, B: newB, E: newE, Q: newQ, Oracle: p.Oracle}, nil
}
