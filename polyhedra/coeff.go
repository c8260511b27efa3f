package polyhedra

import (
	"github.com/polykit/affine/arith"
	"github.com/polykit/affine/symbolic"
)

// Coeff is the constraint a Polyhedron's right-hand-side/equality-constant
// type must satisfy: the arithmetic Fourier-Motzkin elimination needs to
// combine two rows (scale each side by the other's coefficient at the
// eliminated column, then add) without ever knowing whether the underlying
// type is a machine integer or a multivariate polynomial.
type Coeff[C any] interface {
	IsZero() bool
	Negate() C
	Add(C) (C, error)
	ScaleInt(k int64) (C, error)
	Sign(o Oracle) sign
	// One returns the multiplicative identity of C; its receiver value is
	// irrelevant, it exists purely so a generic function holding only a
	// zero-initialized C can still materialize a constant 1.
	One() C
}

// Oracle is the sign-query boundary a Polyhedron[C] consults: for IntC it is
// ignored (sign is always decidable), for PolyC every query is delegated to
// it. Passed explicitly through each call rather than held in package state,
// so a Polyhedron carries its own oracle with no shared mutable state.
type Oracle interface {
	KnownLessEqualZero(p symbolic.Polynomial[symbolic.IntCoeff]) bool
	KnownGreaterEqualZero(p symbolic.Polynomial[symbolic.IntCoeff]) bool
}

// NoOracle proves nothing; the conservative default for the plain-integer
// engine (whose Sign never consults it) and for callers with no symbol
// relation to inject.
type NoOracle struct{}

func (NoOracle) KnownLessEqualZero(symbolic.Polynomial[symbolic.IntCoeff]) bool    { return false }
func (NoOracle) KnownGreaterEqualZero(symbolic.Polynomial[symbolic.IntCoeff]) bool { return false }

type sign int

const (
	signUnknown sign = iota
	signNonNegative
	signNonPositive
	signZero
)

// IntC is the Coeff implementation for the plain-integer engine
// (IntegerEqPolyhedra in the reference design): sign is always decidable
// exactly, so the injected PartiallyOrderedSet is never consulted.
type IntC int64

func (c IntC) IsZero() bool  { return c == 0 }
func (c IntC) Negate() IntC  { return -c }

func (c IntC) Add(o IntC) (IntC, error) {
	v, ov := arith.AddChecked(int64(c), int64(o))
	if ov {
		return 0, arith.ErrOverflow
	}
	return IntC(v), nil
}

func (c IntC) ScaleInt(k int64) (IntC, error) {
	v, ov := arith.MulChecked(int64(c), k)
	if ov {
		return 0, arith.ErrOverflow
	}
	return IntC(v), nil
}

func (c IntC) One() IntC { return 1 }

func (c IntC) Sign(Oracle) sign {
	switch {
	case c == 0:
		return signZero
	case c < 0:
		return signNonPositive
	default:
		return signNonNegative
	}
}

// PolyC is the Coeff implementation for the symbolic engine
// (SymbolicEqPolyhedra): sign queries are deferred to whatever oracle is
// currently active.
type PolyC struct {
	symbolic.Polynomial[symbolic.IntCoeff]
}

func (c PolyC) IsZero() bool { return c.Polynomial.IsZero() }
func (c PolyC) Negate() PolyC {
	return PolyC{c.Polynomial.Negate()}
}

func (c PolyC) Add(o PolyC) (PolyC, error) {
	v, err := c.Polynomial.Add(o.Polynomial)
	return PolyC{v}, err
}

func (c PolyC) ScaleInt(k int64) (PolyC, error) {
	scalar, err := symbolic.New(symbolic.Term[symbolic.IntCoeff]{Coeff: symbolic.IntCoeff(k), Mono: symbolic.Monomial{}})
	if err != nil {
		return PolyC{}, err
	}
	v, err := c.Polynomial.Mul(scalar)
	return PolyC{v}, err
}

func (c PolyC) One() PolyC {
	one, _ := symbolic.New(symbolic.Term[symbolic.IntCoeff]{Coeff: symbolic.IntCoeff(1), Mono: symbolic.Monomial{}})
	return PolyC{one}
}

func (c PolyC) Sign(o Oracle) sign {
	if c.IsZero() {
		return signZero
	}
	le := o.KnownLessEqualZero(c.Polynomial)
	ge := o.KnownGreaterEqualZero(c.Polynomial)
	switch {
	case le && ge:
		return signZero
	case le:
		return signNonPositive
	case ge:
		return signNonNegative
	default:
		return signUnknown
	}
}
