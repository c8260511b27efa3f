// Package arith provides the exact integer and rational arithmetic
// primitives (L0) that every higher layer of the polyhedral kernel builds
// on: signed binary GCD, LCM, the extended Euclidean algorithm, the
// divgcd helper used throughout matrix normalization, and exponentiation
// by squaring.
package arith

import (
	"errors"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned whenever a checked arithmetic operation would
// exceed the range of a machine int64. Callers should use errors.Is against
// this sentinel rather than comparing error strings.
var ErrOverflow = errors.New("arith: overflow")

// GCD returns the (non-negative) greatest common divisor of x and y using a
// signed binary GCD, following Stein's algorithm. math.MinInt64 has no
// positive absolute value representable in int64, so it panics rather than
// silently return a wrong answer.
func GCD(x, y int64) int64 {
	debugAssertNotMinInt64(x)
	debugAssertNotMinInt64(y)
	if x == 0 {
		return Abs(y)
	}
	if y == 0 {
		return Abs(x)
	}
	a := Abs(x)
	b := Abs(y)
	if a == 1 || b == 1 {
		return 1
	}
	az := bits.TrailingZeros64(uint64(a))
	bz := bits.TrailingZeros64(uint64(b))
	b >>= bz
	k := Min(az, bz)
	for a != 0 {
		a >>= az
		d := a - b
		az = bits.TrailingZeros64(uint64(Abs(d)))
		if a < b {
			b = a
		}
		a = Abs(d)
	}
	return b << uint(k)
}

// Min returns the smaller of a and b, generic over any ordered type — used
// throughout matrix, symbolic, and here in arith itself so loop-bound and
// GCD-reduction code doesn't each carry its own private copy.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Abs returns the absolute value of x, generic over any signed type.
// math.MinInt64 has no positive int64 representation; callers dealing in
// int64 that might see it should guard separately, as GCD does.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func debugAssertNotMinInt64(x int64) {
	const minInt64 = -1 << 63
	if x == minInt64 {
		panic("arith: GCD operand is math.MinInt64, whose absolute value overflows int64")
	}
}

// LCM returns the (non-negative) least common multiple of x and y, or 0 when
// either operand is 0. Short-circuits when either operand is ±1, matching
// the reference engine's special case.
func LCM(x, y int64) int64 {
	if x == 0 || y == 0 {
		return 0
	}
	if Abs(x) == 1 {
		return Abs(y)
	}
	if Abs(y) == 1 {
		return Abs(x)
	}
	return Abs(x * (y / GCD(x, y)))
}

// ExtGCD returns (g, s, t) such that g = s*a + t*b and g = GCD(a, b),
// computed with the iterative extended Euclidean algorithm.
func ExtGCD(a, b int64) (g, s, t int64) {
	oldR, r := a, b
	oldS, curS := int64(1), int64(0)
	oldT, curT := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, curS = curS, oldS-q*curS
		oldT, curT = curT, oldT-q*curT
	}
	if oldR < 0 {
		return -oldR, -oldS, -oldT
	}
	return oldR, oldS, oldT
}

// DivGCD returns (x/g, y/g) where g = GCD(x, y), with the conventional
// special cases: x == 0 -> (0, 1); y == 0 -> (1, 0); x == y == 0 -> (0, 0).
func DivGCD(x, y int64) (int64, int64) {
	if x != 0 {
		if y != 0 {
			g := GCD(x, y)
			return x / g, y / g
		}
		return 1, 0
	}
	if y != 0 {
		return 0, 1
	}
	return 0, 0
}

// Bin2 returns x*(x-1)/2, the number of unordered pairs among x items.
func Bin2(x int) int {
	return (x * (x - 1)) >> 1
}

// Squarer is implemented by types that expose a two-operand multiply, such
// as matrices where in-place accumulation avoids extra allocation.
// PowBySquare takes the multiply as a function argument, so such a type's
// Mul method value can be passed to it directly.
type Squarer[T any] interface {
	Mul(dst, a, b *T)
}

// PowBySquare computes x^i by repeated squaring, with direct cases for the
// small exponents 0..3. mul(dst, a, b) must compute dst = a*b and may alias
// dst with a or b.
func PowBySquare[T any](one, x T, i uint, mul func(dst, a, b *T)) T {
	switch i {
	case 0:
		return one
	case 1:
		return x
	case 2:
		var z T
		mul(&z, &x, &x)
		return z
	case 3:
		var z, z2 T
		mul(&z2, &x, &x)
		mul(&z, &z2, &x)
		return z
	}
	t := bits.TrailingZeros(i) + 1
	i >>= uint(t)
	z := x
	var b T
	for t--; t > 0; t-- {
		b = z
		mul(&z, &z, &b)
	}
	if i == 0 {
		return z
	}
	y := z
	for i != 0 {
		t = bits.TrailingZeros(i) + 1
		i >>= uint(t)
		for ; t > 0; t-- {
			b = z
			mul(&z, &z, &b)
		}
		mul(&y, &y, &z)
	}
	return y
}
