package matrix

import (
	"github.com/polykit/affine/arith"
)

// NullSpace returns an integer matrix whose rows span ker(A) over Q: for
// every row n, A * n^T == 0. It works by row-reducing a rational copy of A
// to echelon form (tracking pivot columns), then for each free column
// building the corresponding null-space vector by back substitution and
// clearing denominators by their LCM so the result stays in Z, per
// spec.md's "integer-preserving column reduction; coefficients remain in Z
// by scaling".
func NullSpace(A *Dense) *Dense {
	rows, cols := A.Rows(), A.Cols()
	rat := make([][]arith.Rational, rows)
	for r := 0; r < rows; r++ {
		rat[r] = make([]arith.Rational, cols)
		for c := 0; c < cols; c++ {
			rat[r][c] = arith.Int(A.At(r, c))
		}
	}

	pivotCol := make([]int, 0, rows)
	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if !rat[r][col].IsZero() {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		rat[pivotRow], rat[sel] = rat[sel], rat[pivotRow]
		pivot := rat[pivotRow][col]
		for c := col; c < cols; c++ {
			v, err := rat[pivotRow][c].Div(pivot)
			mustNoOverflow(err)
			rat[pivotRow][c] = v
		}
		pivot = arith.Int(1)
		for r := 0; r < rows; r++ {
			if r == pivotRow || rat[r][col].IsZero() {
				continue
			}
			factor, err := rat[r][col].Div(pivot)
			mustNoOverflow(err)
			for c := col; c < cols; c++ {
				term, err := factor.Mul(rat[pivotRow][c])
				mustNoOverflow(err)
				v, err := rat[r][c].Sub(term)
				mustNoOverflow(err)
				rat[r][c] = v
			}
		}
		pivotCol = append(pivotCol, col)
		pivotRow++
	}

	isPivotCol := make([]bool, cols)
	for _, c := range pivotCol {
		isPivotCol[c] = true
	}
	var freeCols []int
	for c := 0; c < cols; c++ {
		if !isPivotCol[c] {
			freeCols = append(freeCols, c)
		}
	}

	ns := New(len(freeCols), cols)
	for vi, fc := range freeCols {
		vec := make([]arith.Rational, cols)
		for c := range vec {
			vec[c] = arith.Int(0)
		}
		vec[fc] = arith.Int(1)
		for pr, pc := range pivotCol {
			// row pr reads: 1*x[pc] + sum_{free} rat[pr][free]*x[free] == 0
			coef := rat[pr][fc]
			if coef.IsZero() {
				continue
			}
			vec[pc] = coef.Negate()
		}
		lm := int64(1)
		for _, v := range vec {
			lm = arith.LCM(lm, v.D)
		}
		for c := 0; c < cols; c++ {
			ns.Set(vi, c, vec[c].N*(lm/vec[c].D))
		}
	}
	return ns
}

func mustNoOverflow(err error) {
	if err != nil {
		panic(err)
	}
}
