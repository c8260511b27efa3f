package symbolic

import "github.com/polykit/affine/arith"

// Coefficient is the self-referential constraint every coefficient ring used
// by Polynomial must satisfy: checked arithmetic returning arith.ErrOverflow
// on overflow, mirroring the error-return convention arith.Rational already
// uses rather than panicking on a result that legitimately cannot be
// represented.
type Coefficient[C any] interface {
	IsZero() bool
	Negate() C
	Add(C) (C, error)
	Sub(C) (C, error)
	Mul(C) (C, error)
}

// DivisibleCoefficient extends Coefficient with the operations the
// polynomial GCD algorithm needs: exact division (ok is false when the
// division is not exact) and a ring GCD.
type DivisibleCoefficient[C any] interface {
	Coefficient[C]
	Div(C) (C, bool)
	Gcd(C) C
}

// IntCoeff is the Coefficient implementation over plain integers, used when
// a polynomial's coefficients are known to stay integral (no division
// introduced by the algorithm that built it).
type IntCoeff int64

func (c IntCoeff) IsZero() bool     { return c == 0 }
func (c IntCoeff) Negate() IntCoeff { return -c }

func (c IntCoeff) Add(o IntCoeff) (IntCoeff, error) {
	v, ok := arith.AddChecked(int64(c), int64(o))
	if ok {
		return 0, arith.ErrOverflow
	}
	return IntCoeff(v), nil
}

func (c IntCoeff) Sub(o IntCoeff) (IntCoeff, error) {
	v, ok := arith.SubChecked(int64(c), int64(o))
	if ok {
		return 0, arith.ErrOverflow
	}
	return IntCoeff(v), nil
}

func (c IntCoeff) Mul(o IntCoeff) (IntCoeff, error) {
	v, ok := arith.MulChecked(int64(c), int64(o))
	if ok {
		return 0, arith.ErrOverflow
	}
	return IntCoeff(v), nil
}

// Div returns c/o when o exactly divides c.
func (c IntCoeff) Div(o IntCoeff) (IntCoeff, bool) {
	if o == 0 || int64(c)%int64(o) != 0 {
		return 0, false
	}
	return c / o, true
}

// Gcd returns the non-negative GCD of c and o.
func (c IntCoeff) Gcd(o IntCoeff) IntCoeff {
	return IntCoeff(arith.GCD(int64(c), int64(o)))
}

func (c IntCoeff) String() string { return itoa(int(c)) }

// ratCoeff adapts arith.Rational to the Coefficient/DivisibleCoefficient
// interfaces: every non-zero rational is a unit, so Gcd is trivial (the
// standard convention for a field's polynomial ring — content extraction
// over Q always normalizes to a primitive integer polynomial via a
// different ring, int coefficients, not Q itself, which is why content/
// primPart operate on IntCoeff polynomials rather than ratCoeff ones).
type ratCoeff struct{ arith.Rational }

func (c ratCoeff) IsZero() bool         { return c.Rational.IsZero() }
func (c ratCoeff) Negate() ratCoeff     { return ratCoeff{c.Rational.Negate()} }
func (c ratCoeff) Add(o ratCoeff) (ratCoeff, error) {
	v, err := c.Rational.Add(o.Rational)
	return ratCoeff{v}, err
}
func (c ratCoeff) Sub(o ratCoeff) (ratCoeff, error) {
	v, err := c.Rational.Sub(o.Rational)
	return ratCoeff{v}, err
}
func (c ratCoeff) Mul(o ratCoeff) (ratCoeff, error) {
	v, err := c.Rational.Mul(o.Rational)
	return ratCoeff{v}, err
}
func (c ratCoeff) Div(o ratCoeff) (ratCoeff, bool) {
	if o.IsZero() {
		return ratCoeff{}, false
	}
	v, err := c.Rational.Div(o.Rational)
	return ratCoeff{v}, err == nil
}
func (c ratCoeff) Gcd(o ratCoeff) ratCoeff {
	if c.IsZero() {
		return o
	}
	return ratCoeff{arith.Int(1)}
}
