package arith

import (
	"fmt"
	"math/bits"
)

func muluint64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// Rational is an exact fraction (numerator, denominator) maintained in
// canonical form: gcd(|n|, d) == 1 and d > 0 for every non-zero value; zero
// is represented as (0, 1). Every arithmetic operation is checked: it
// returns ErrOverflow rather than silently truncating when an intermediate
// product or sum would exceed int64.
type Rational struct {
	N int64
	D int64
}

// Int returns the integer n as the rational n/1.
func Int(n int64) Rational {
	return Rational{N: n, D: 1}
}

// NewRational builds a canonical Rational from n/d, normalizing the sign so
// that the denominator is always positive (per spec: the positive
// denominator invariant is adopted uniformly). Panics if d == 0: this is a
// caller precondition violation, not a runtime overflow.
func NewRational(n, d int64) Rational {
	debug_assertNonZero(d)
	if d < 0 {
		n, d = -n, -d
	}
	if n == 0 {
		return Rational{N: 0, D: 1}
	}
	g := GCD(n, d)
	if g != 1 {
		n /= g
		d /= g
	}
	return Rational{N: n, D: d}
}

func debug_assertNonZero(d int64) {
	if d == 0 {
		panic("arith: rational denominator is zero")
	}
}

// IsZero reports whether r is the additive identity.
func (r Rational) IsZero() bool { return r.N == 0 }

// IsOne reports whether r is the multiplicative identity.
func (r Rational) IsOne() bool { return r.N == r.D }

// IsInteger reports whether r has denominator 1.
func (r Rational) IsInteger() bool { return r.D == 1 }

// Negate returns -r. Rationals are otherwise immutable value types; Negate
// is the one operation the spec calls out as in-place in the reference
// engine, so callers that want that behavior should assign back:
// r = r.Negate().
func (r Rational) Negate() Rational {
	return Rational{N: -r.N, D: r.D}
}

// Inv returns 1/r. Panics if r is zero.
func (r Rational) Inv() Rational {
	if r.N == 0 {
		panic("arith: inverse of zero rational")
	}
	if r.N < 0 {
		return Rational{N: -r.D, D: -r.N}
	}
	return Rational{N: r.D, D: r.N}
}

// Add returns r+y, or ErrOverflow if any intermediate product/sum exceeds
// int64.
func (r Rational) Add(y Rational) (Rational, error) {
	xd, yd := DivGCD(r.D, y.D)
	a, o1 := mulChecked(r.N, yd)
	b, o2 := mulChecked(y.N, xd)
	d, o3 := mulChecked(r.D, yd)
	n, o4 := addChecked(a, b)
	if o1 || o2 || o3 || o4 {
		return Rational{}, ErrOverflow
	}
	if n == 0 {
		return Rational{N: 0, D: 1}, nil
	}
	nn, nd := DivGCD(n, d)
	return Rational{N: nn, D: nd}, nil
}

// Sub returns r-y, or ErrOverflow.
func (r Rational) Sub(y Rational) (Rational, error) {
	xd, yd := DivGCD(r.D, y.D)
	a, o1 := mulChecked(r.N, yd)
	b, o2 := mulChecked(y.N, xd)
	d, o3 := mulChecked(r.D, yd)
	n, o4 := subChecked(a, b)
	if o1 || o2 || o3 || o4 {
		return Rational{}, ErrOverflow
	}
	if n == 0 {
		return Rational{N: 0, D: 1}, nil
	}
	nn, nd := DivGCD(n, d)
	return Rational{N: nn, D: nd}, nil
}

// Mul returns r*y, or ErrOverflow.
func (r Rational) Mul(y Rational) (Rational, error) {
	if r.N == 0 || y.N == 0 {
		return Rational{N: 0, D: 1}, nil
	}
	xn, yd := DivGCD(r.N, y.D)
	xd, yn := DivGCD(r.D, y.N)
	n, o1 := mulChecked(xn, yn)
	d, o2 := mulChecked(xd, yd)
	if o1 || o2 {
		return Rational{}, ErrOverflow
	}
	return NewRational(n, d), nil
}

// MulInt returns r*y for a machine integer y, or ErrOverflow.
func (r Rational) MulInt(y int64) (Rational, error) {
	xd, yn := DivGCD(r.D, y)
	n, o := mulChecked(r.N, yn)
	if o {
		return Rational{}, ErrOverflow
	}
	return NewRational(n, xd), nil
}

// Div returns r/y, or ErrOverflow. Division by zero always fails.
func (r Rational) Div(y Rational) (Rational, error) {
	if y.N == 0 {
		return Rational{}, ErrOverflow
	}
	return r.Mul(y.Inv())
}

// Cmp returns -1, 0, or 1 as r is less than, equal to, or greater than y.
// Comparisons widen to 128 bits (via math/bits.Mul64, sign-adjusted) to
// avoid overflow in the cross-multiplication.
func (r Rational) Cmp(y Rational) int {
	lhsHi, lhsLo := wideMulSigned(r.N, y.D)
	rhsHi, rhsLo := wideMulSigned(y.N, r.D)
	if lhsHi != rhsHi {
		if lhsHi < rhsHi {
			return -1
		}
		return 1
	}
	if lhsLo < rhsLo {
		return -1
	}
	if lhsLo > rhsLo {
		return 1
	}
	return 0
}

// EqualInt reports whether r equals the machine integer y: true iff the
// canonical form has denominator 1 and the numerator matches (a denominator
// of -1 cannot occur under the positive-denominator invariant, but is
// tolerated here for defence in depth against hand-built values).
func (r Rational) EqualInt(y int64) bool {
	switch r.D {
	case 1:
		return r.N == y
	case -1:
		return r.N == -y
	default:
		return false
	}
}

func (r Rational) String() string {
	if r.D == 1 {
		return fmt.Sprintf("%d", r.N)
	}
	return fmt.Sprintf("%d // %d", r.N, r.D)
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, true
	}
	return p, false
}

func addChecked(a, b int64) (int64, bool) {
	s := a + b
	if ((a ^ s) & (b ^ s)) < 0 {
		return 0, true
	}
	return s, false
}

func subChecked(a, b int64) (int64, bool) {
	d := a - b
	if ((a ^ b) & (a ^ d)) < 0 {
		return 0, true
	}
	return d, false
}

// wideMulSigned returns the signed 128-bit product hi:lo of a*b.
func wideMulSigned(a, b int64) (hi int64, lo uint64) {
	hiU, loU := muluint64(uint64(a), uint64(b))
	hi = int64(hiU)
	lo = loU
	if a < 0 {
		hi -= int64(b)
	}
	if b < 0 {
		hi -= int64(a)
	}
	return hi, lo
}
