package matrix

import "github.com/polykit/affine/arith"


// HermiteNormalForm reduces A (m x n) to row-style Hermite normal form H via
// elementary integer column operations, returning H alongside the
// unimodular transform U such that A*U = H. Each pivot is made positive and
// every entry to its left in the same row is reduced into [0, pivot), using
// Euclidean column combinations, column negations and SwapCols.
func HermiteNormalForm(A *Dense) (H, U *Dense) {
	H = A.Clone()
	U = Identity(A.Cols())
	rows, cols := H.Rows(), H.Cols()
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		pivotCol := -1
		for c := col; c < cols; c++ {
			if H.At(row, c) != 0 {
				pivotCol = c
				break
			}
		}
		if pivotCol == -1 {
			continue
		}
		for {
			nonzero := -1
			for c := col; c < cols; c++ {
				if c != pivotCol && H.At(row, c) != 0 {
					nonzero = c
					break
				}
			}
			if nonzero == -1 {
				break
			}
			a, b := H.At(row, pivotCol), H.At(row, nonzero)
			q := euclideanQuotient(b, a)
			colCombine(H, nonzero, pivotCol, -q)
			colCombine(U, nonzero, pivotCol, -q)
			pivotCol = nonzero
		}
		if pivotCol != col {
			H.SwapCols(col, pivotCol)
			U.SwapCols(col, pivotCol)
		}
		if H.At(row, col) < 0 {
			negateCol(H, col)
			negateCol(U, col)
		}
		pivot := H.At(row, col)
		if pivot != 0 {
			for c := 0; c < col; c++ {
				v := H.At(row, c)
				if v == 0 {
					continue
				}
				q := floorDiv(v, pivot)
				colCombine(H, c, col, -q)
				colCombine(U, c, col, -q)
			}
		}
		row++
	}
	return H, U
}

func euclideanQuotient(b, a int64) int64 {
	if a == 0 {
		return 0
	}
	return floorDiv(b, a)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func colCombine(m *Dense, dst, src int, factor int64) {
	for r := 0; r < m.Rows(); r++ {
		m.Set(r, dst, m.At(r, dst)+factor*m.At(r, src))
	}
}

func negateCol(m *Dense, col int) {
	for r := 0; r < m.Rows(); r++ {
		m.Set(r, col, -m.At(r, col))
	}
}

// SmithNormalForm reduces A to diagonal form D via unimodular row and column
// transforms U, V such that U*A*V = D. Built directly on the same elementary
// row/column GCD-reduction step HermiteNormalForm uses, alternated between
// rows and columns at each pivot until its row and column are clear. The
// diagonal entries are not further adjusted, so each one need not divide
// the next and their signs are left as the reduction produced them.
func SmithNormalForm(A *Dense) (D, U, V *Dense) {
	D = A.Clone()
	U = Identity(A.Rows())
	V = Identity(A.Cols())
	n := arith.Min(D.Rows(), D.Cols())
	for t := 0; t < n; t++ {
		for {
			for r := t + 1; r < D.Rows(); r++ {
				zeroRowEntryAgainstPivot(D, U, t, r)
			}
			for c := t + 1; c < D.Cols(); c++ {
				zeroColEntryAgainstPivot(D, V, t, c)
			}
			clear := true
			for r := t + 1; r < D.Rows(); r++ {
				if D.At(r, t) != 0 {
					clear = false
				}
			}
			if clear {
				break
			}
		}
	}
	return D, U, V
}

// zeroRowEntryAgainstPivot drives D(r,pivotRow) to zero by repeated
// Euclidean reduction against the pivot D(pivotRow,pivotRow), swapping the
// two rows whenever the off-pivot entry is the smaller of the pair. Each
// non-swap step strictly shrinks abs(D(r,pivotRow)) via floor division, and
// each swap strictly shrinks abs(D(pivotRow,pivotRow)), so the loop
// terminates.
func zeroRowEntryAgainstPivot(D, U *Dense, pivotRow, r int) {
	for D.At(r, pivotRow) != 0 {
		pivot := D.At(pivotRow, pivotRow)
		entry := D.At(r, pivotRow)
		if pivot == 0 || arith.Abs(entry) < arith.Abs(pivot) {
			D.SwapRows(pivotRow, r)
			U.SwapRows(pivotRow, r)
			continue
		}
		q := floorDiv(entry, pivot)
		rowCombine(D, r, pivotRow, -q)
		rowCombine(U, r, pivotRow, -q)
	}
}

func zeroColEntryAgainstPivot(D, V *Dense, pivotCol, c int) {
	for D.At(pivotCol, c) != 0 {
		pivot := D.At(pivotCol, pivotCol)
		entry := D.At(pivotCol, c)
		if pivot == 0 || arith.Abs(entry) < arith.Abs(pivot) {
			D.SwapCols(pivotCol, c)
			V.SwapCols(pivotCol, c)
			continue
		}
		q := floorDiv(entry, pivot)
		colCombine(D, c, pivotCol, -q)
		colCombine(V, c, pivotCol, -q)
	}
}

func rowCombine(m *Dense, dst, src int, factor int64) {
	for c := 0; c < m.Cols(); c++ {
		m.Set(dst, c, m.At(dst, c)+factor*m.At(src, c))
	}
}
