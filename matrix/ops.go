package matrix

import (
	"github.com/polykit/affine/arith"
	"github.com/polykit/affine/debug"
)

// SwapRows exchanges rows i and j in place. O(cols); a no-op if i == j.
func (m *Dense) SwapRows(i, j int) {
	if i == j {
		return
	}
	for c := 0; c < m.cols; c++ {
		ii, jj := m.index(i, c), m.index(j, c)
		m.data[ii], m.data[jj] = m.data[jj], m.data[ii]
	}
}

// SwapCols exchanges columns i and j in place. O(rows); a no-op if i == j.
func (m *Dense) SwapCols(i, j int) {
	if i == j {
		return
	}
	for r := 0; r < m.rows; r++ {
		ii, jj := m.index(r, i), m.index(r, j)
		m.data[ii], m.data[jj] = m.data[jj], m.data[ii]
	}
}

// NormalizeByGCD divides row i by the GCD of its entries so the result has
// unit content. A zero row is left unchanged; a row with a single non-zero
// entry has that entry set to 1 or -1, keeping its sign.
func (m *Dense) NormalizeByGCD(row int) {
	if m.cols == 0 {
		return
	}
	g := int64(0)
	nonZero := 0
	for c := 0; c < m.cols; c++ {
		v := m.At(row, c)
		if v != 0 {
			nonZero++
			if g == 0 {
				g = arith.Abs(v)
			} else {
				g = arith.GCD(g, v)
			}
		}
	}
	if g == 0 || g == 1 {
		return
	}
	if nonZero == 1 {
		for c := 0; c < m.cols; c++ {
			if v := m.At(row, c); v != 0 {
				if v < 0 {
					m.Set(row, c, -1)
				} else {
					m.Set(row, c, 1)
				}
			}
		}
		return
	}
	for c := 0; c < m.cols; c++ {
		v := m.At(row, c)
		if v != 0 {
			m.Set(row, c, v/g)
		}
	}
}

// MatMul computes dst = a*b, overwriting dst (never accumulating). Panics
// if shapes are incompatible. dst must not share storage with a or b; this
// is not checked.
func MatMul(dst, a, b *Dense) {
	debug.Assert(a.cols == b.rows, "matrix: matmul shape mismatch: a is %dx%d, b is %dx%d", a.rows, a.cols, b.rows, b.cols)
	debug.Assert(dst.rows == a.rows && dst.cols == b.cols, "matrix: matmul destination shape mismatch")
	for r := 0; r < a.rows; r++ {
		for c := 0; c < b.cols; c++ {
			var sum int64
			for k := 0; k < a.cols; k++ {
				sum += a.At(r, k) * b.At(k, c)
			}
			dst.Set(r, c, sum)
		}
	}
}

// MatMulNT computes dst = a * b^T.
func MatMulNT(dst, a, b *Dense) {
	debug.Assert(a.cols == b.cols, "matrix: matmulNT shape mismatch: a is %dx%d, b is %dx%d", a.rows, a.cols, b.rows, b.cols)
	debug.Assert(dst.rows == a.rows && dst.cols == b.rows, "matrix: matmulNT destination shape mismatch")
	for r := 0; r < a.rows; r++ {
		for c := 0; c < b.rows; c++ {
			var sum int64
			for k := 0; k < a.cols; k++ {
				sum += a.At(r, k) * b.At(c, k)
			}
			dst.Set(r, c, sum)
		}
	}
}

// MatMulTN computes dst = a^T * b.
func MatMulTN(dst, a, b *Dense) {
	debug.Assert(a.rows == b.rows, "matrix: matmulTN shape mismatch: a is %dx%d, b is %dx%d", a.rows, a.cols, b.rows, b.cols)
	debug.Assert(dst.rows == a.cols && dst.cols == b.cols, "matrix: matmulTN destination shape mismatch")
	for r := 0; r < a.cols; r++ {
		for c := 0; c < b.cols; c++ {
			var sum int64
			for k := 0; k < a.rows; k++ {
				sum += a.At(k, r) * b.At(k, c)
			}
			dst.Set(r, c, sum)
		}
	}
}

// MatMulTT computes dst = a^T * b^T.
func MatMulTT(dst, a, b *Dense) {
	debug.Assert(a.rows == b.cols, "matrix: matmulTT shape mismatch: a is %dx%d, b is %dx%d", a.rows, a.cols, b.rows, b.cols)
	debug.Assert(dst.rows == a.cols && dst.cols == b.rows, "matrix: matmulTT destination shape mismatch")
	for r := 0; r < a.cols; r++ {
		for c := 0; c < b.rows; c++ {
			var sum int64
			for k := 0; k < a.rows; k++ {
				sum += a.At(k, r) * b.At(c, k)
			}
			dst.Set(r, c, sum)
		}
	}
}

// Transpose returns a freshly allocated transpose of m.
func (m *Dense) Transpose() *Dense {
	out := New(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.Set(c, r, m.At(r, c))
		}
	}
	return out
}
