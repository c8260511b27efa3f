package symbolic

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func x(sym int32, exp int) Monomial {
	m := make(Monomial, exp)
	for i := range m {
		m[i] = sym
	}
	return m
}

func term(c int64, m Monomial) Term[IntCoeff] {
	return Term[IntCoeff]{Coeff: IntCoeff(c), Mono: m}
}

func TestMonomialMulDivGcd(t *testing.T) {
	a := x(0, 2).Mul(x(1, 1)) // x0^2 * x1
	b := x(0, 1)
	q, fail := a.Div(b)
	require.False(t, fail)
	require.True(t, q.Equal(x(0, 1).Mul(x(1, 1))))

	_, fail = x(1, 1).Div(x(0, 1))
	require.True(t, fail)

	g := a.Gcd(x(0, 1).Mul(x(2, 1)))
	require.True(t, g.Equal(x(0, 1)))
}

func TestMonomialCmpDegreeThenLex(t *testing.T) {
	require.Equal(t, -1, x(0, 2).Cmp(x(0, 1)))
	require.Equal(t, 1, x(1, 1).Cmp(x(0, 1)))
	require.Equal(t, 0, x(0, 1).Cmp(x(0, 1)))
}

func TestPolynomialAddSubEqual(t *testing.T) {
	p, err := New(term(1, x(0, 2)), term(3, x(1, 1)))
	require.NoError(t, err)
	q, err := New(term(2, x(0, 2)), term(-3, x(1, 1)))
	require.NoError(t, err)

	sum, err := p.Add(q)
	require.NoError(t, err)
	want, err := New(term(3, x(0, 2)))
	require.NoError(t, err)
	require.True(t, sum.Equal(want))

	diff, err := p.Sub(p)
	require.NoError(t, err)
	require.True(t, diff.IsZero())
}

func TestPolynomialMulDistributes(t *testing.T) {
	p, err := New(term(1, x(0, 1)), term(1, Monomial{}))
	require.NoError(t, err) // x0 + 1
	q, err := New(term(1, x(0, 1)), term(-1, Monomial{}))
	require.NoError(t, err) // x0 - 1
	prod, err := p.Mul(q)
	require.NoError(t, err)
	want, err := New(term(1, x(0, 2)), term(-1, Monomial{}))
	require.NoError(t, err) // x0^2 - 1
	require.True(t, prod.Equal(want))
}

// DivRem: (x0^2 - 1) / (x0 - 1) == x0 + 1 remainder 0.
func TestDivRemExact(t *testing.T) {
	p, err := New(term(1, x(0, 2)), term(-1, Monomial{}))
	require.NoError(t, err)
	d, err := New(term(1, x(0, 1)), term(-1, Monomial{}))
	require.NoError(t, err)

	q, r, ok, err := DivRem(p, d)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, r.IsZero())
	want, err := New(term(1, x(0, 1)), term(1, Monomial{}))
	require.NoError(t, err)
	require.True(t, q.Equal(want))
}

func TestContentPrimPart(t *testing.T) {
	p, err := New(term(6, x(0, 2)), term(-9, x(1, 1)), term(3, Monomial{}))
	require.NoError(t, err)
	require.Equal(t, IntCoeff(3), Content(p))

	pp := PrimPart(p)
	want, err := New(term(2, x(0, 2)), term(-3, x(1, 1)), term(1, Monomial{}))
	require.NoError(t, err)
	require.True(t, pp.Equal(want))
}

// Gcd(x0^2 - 1, x0 - 1) == x0 - 1.
func TestGcdSingleVariable(t *testing.T) {
	a, err := New(term(1, x(0, 2)), term(-1, Monomial{}))
	require.NoError(t, err)
	b, err := New(term(1, x(0, 1)), term(-1, Monomial{}))
	require.NoError(t, err)

	g := Gcd(a, b)
	require.True(t, g.Equal(b))
}

func TestGcdZeroIdentity(t *testing.T) {
	a, err := New(term(1, x(0, 1)))
	require.NoError(t, err)
	var zero Polynomial[IntCoeff]
	require.True(t, Gcd(a, zero).Equal(a))
	require.True(t, Gcd(zero, a).Equal(a))
}

// Law: polynomial addition is commutative.
func TestPolynomialAddCommutes(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)
	properties.Property("p + q == q + p", prop.ForAll(
		func(a, b, c, d int16) bool {
			p, err := New(term(int64(a), x(0, 1)), term(int64(b), Monomial{}))
			if err != nil {
				return false
			}
			q, err := New(term(int64(c), x(0, 1)), term(int64(d), Monomial{}))
			if err != nil {
				return false
			}
			s1, err := p.Add(q)
			if err != nil {
				return false
			}
			s2, err := q.Add(p)
			if err != nil {
				return false
			}
			return s1.Equal(s2)
		},
		gen.Int16(), gen.Int16(), gen.Int16(), gen.Int16(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestUniPolynomialToPolynomial(t *testing.T) {
	up, err := NewUni(UniTerm[IntCoeff]{Coeff: 1, Mono: Uninomial{Exp: 2}}, UniTerm[IntCoeff]{Coeff: -1, Mono: Uninomial{}})
	require.NoError(t, err)
	p := up.ToPolynomial(0)
	want, err := New(term(1, x(0, 2)), term(-1, Monomial{}))
	require.NoError(t, err)
	require.True(t, p.Equal(want))
}
