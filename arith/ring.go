package arith

// AddChecked, SubChecked, MulChecked expose the checked int64 arithmetic
// used pervasively by matrix row-combination code (Fourier-Motzkin row
// cancellation, GCD normalization, matmul) without requiring an
// intermediate Rational.
func AddChecked(a, b int64) (int64, bool) { return addChecked(a, b) }
func SubChecked(a, b int64) (int64, bool) { return subChecked(a, b) }
func MulChecked(a, b int64) (int64, bool) { return mulChecked(a, b) }

// Sign returns -1, 0, or +1 for a machine integer: the trivial sign oracle
// used by the non-symbolic (integer) polyhedron engine, where soundness of
// knownLessEqualZero/knownGreaterEqualZero is free rather than deferred to
// a PartiallyOrderedSet.
func Sign(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
