package matrix

import "github.com/polykit/affine/arith"

// Orthogonalize performs Gram-Schmidt over Q on the rows of A, then clears
// denominators so the result stays integer. Row 0 is NormalizeByGCD of the
// original row 0; every pair of distinct result rows is Q-orthogonal.
// Mirrors the reference engine's orthogonalize(IntMatrix) directly: each
// row is reduced against every earlier (already orthogonalized) row before
// its denominators are cleared.
func Orthogonalize(A *Dense) (*Dense, error) {
	out := A.Clone()
	if out.Cols() < 2 || out.Rows() == 0 {
		return out, nil
	}
	out.NormalizeByGCD(0)
	if out.Rows() == 1 {
		return out, nil
	}
	buff := make([]arith.Rational, out.Cols())
	for i := 1; i < out.Rows(); i++ {
		for j := 0; j < out.Cols(); j++ {
			buff[j] = arith.Int(out.At(i, j))
		}
		for j := 0; j < i; j++ {
			var n, d int64
			var ov bool
			for k := 0; k < out.Cols(); k++ {
				term, o := arith.MulChecked(out.At(i, k), out.At(j, k))
				ov = ov || o
				n, o = arith.AddChecked(n, term)
				ov = ov || o
				sq, o := arith.MulChecked(out.At(j, k), out.At(j, k))
				ov = ov || o
				d, o = arith.AddChecked(d, sq)
				ov = ov || o
			}
			if ov {
				return nil, arith.ErrOverflow
			}
			if d == 0 {
				continue
			}
			for k := 0; k < out.Cols(); k++ {
				prod, o := arith.MulChecked(out.At(j, k), n)
				if o {
					return nil, arith.ErrOverflow
				}
				proj := arith.NewRational(prod, d)
				v, err := buff[k].Sub(proj)
				if err != nil {
					return nil, err
				}
				buff[k] = v
			}
		}
		lm := int64(1)
		for _, v := range buff {
			lm = arith.LCM(lm, v.D)
		}
		for k := 0; k < out.Cols(); k++ {
			out.Set(i, k, buff[k].N*(lm/buff[k].D))
		}
	}
	return out, nil
}

// OrthogonalNullSpace returns Orthogonalize(NullSpace(A)): the reference
// engine computes an orthogonalized basis for ker(A) by composing the two
// passes directly.
func OrthogonalNullSpace(A *Dense) (*Dense, error) {
	return Orthogonalize(NullSpace(A))
}

// OrthogonalizeWithPivots builds a unimodular-candidate loop basis K (n x n,
// n = A.Rows()) by greedily selecting columns of A that extend the rank of
// the basis collected so far, Gram-Schmidt-reducing each selected direction
// against the ones already chosen and clearing denominators exactly as
// Orthogonalize does. included lists, in selection order, the column
// indices of A used as pivots. If A's columns are already pairwise
// orthogonal, nothing can improve on them: included is empty and K is the
// identity — the
// caller must treat that as a no-op per spec.md's orthogonalization
// failure semantics, not an error.
//
// When A's columns do not span all n dimensions, remaining basis rows are
// completed with standard basis vectors not already in the span, so K
// always has full rank n.
func OrthogonalizeWithPivots(A *Dense) (K *Dense, included []int, err error) {
	n := A.Rows()
	orthogonal := true
	for c1 := 0; c1 < A.Cols() && orthogonal; c1++ {
		for c2 := c1 + 1; c2 < A.Cols(); c2++ {
			var dot int64
			for r := 0; r < n; r++ {
				dot += A.At(r, c1) * A.At(r, c2)
			}
			if dot != 0 {
				orthogonal = false
				break
			}
		}
	}
	if orthogonal {
		return Identity(n), nil, nil
	}
	K = New(n, n)
	rowCount := 0
	tryAdd := func(candidate []int64) (bool, error) {
		buff := make([]arith.Rational, n)
		for j := 0; j < n; j++ {
			buff[j] = arith.Int(candidate[j])
		}
		for j := 0; j < rowCount; j++ {
			var nDot, dDot int64
			for k := 0; k < n; k++ {
				nDot += candidate[k] * K.At(j, k)
				dDot += K.At(j, k) * K.At(j, k)
			}
			if dDot == 0 {
				continue
			}
			for k := 0; k < n; k++ {
				proj := arith.NewRational(K.At(j, k)*nDot, dDot)
				v, e := buff[k].Sub(proj)
				if e != nil {
					return false, e
				}
				buff[k] = v
			}
		}
		allZero := true
		for _, v := range buff {
			if !v.IsZero() {
				allZero = false
				break
			}
		}
		if allZero {
			return false, nil
		}
		lm := int64(1)
		for _, v := range buff {
			lm = arith.LCM(lm, v.D)
		}
		for k := 0; k < n; k++ {
			K.Set(rowCount, k, buff[k].N*(lm/buff[k].D))
		}
		K.NormalizeByGCD(rowCount)
		rowCount++
		return true, nil
	}

	for col := 0; col < A.Cols() && rowCount < n; col++ {
		candidate := make([]int64, n)
		for r := 0; r < n; r++ {
			candidate[r] = A.At(r, col)
		}
		added, e := tryAdd(candidate)
		if e != nil {
			return nil, nil, e
		}
		if added {
			included = append(included, col)
		}
	}

	if len(included) == 0 {
		return Identity(n), nil, nil
	}

	for std := 0; std < n && rowCount < n; std++ {
		candidate := make([]int64, n)
		candidate[std] = 1
		added, e := tryAdd(candidate)
		if e != nil {
			return nil, nil, e
		}
		_ = added
	}

	return K, included, nil
}
