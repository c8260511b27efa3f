package arith

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// S2 from spec.md §8.
func TestRationalCanonicalization(t *testing.T) {
	r := NewRational(2, -4)
	require.Equal(t, int64(-1), r.N)
	require.Equal(t, int64(2), r.D)

	a := NewRational(6, 9)
	b := NewRational(-4, 6)
	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.EqualInt(0))
}

func TestRationalDivisionByZero(t *testing.T) {
	a := Int(1)
	_, err := a.Div(Int(0))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestRationalOverflow(t *testing.T) {
	big := Rational{N: 1 << 62, D: 1}
	_, err := big.Add(big)
	require.ErrorIs(t, err, ErrOverflow)
}

// Law 2: (p+q)-q == p and (p*q)/q == p, for rationals where no overflow
// occurs.
func TestRationalAddSubInverseLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	smallRational := gen.Int16Range(-500, 500).FlatMap(func(n interface{}) gopter.Gen {
		return gen.Int16Range(1, 500).Map(func(d int16) Rational {
			return NewRational(int64(n.(int16)), int64(d))
		})
	}, reflect.TypeOf(Rational{}))

	properties := gopter.NewProperties(parameters)
	properties.Property("(p+q)-q == p", prop.ForAll(
		func(p, q Rational) bool {
			sum, err := p.Add(q)
			if err != nil {
				return true
			}
			back, err := sum.Sub(q)
			if err != nil {
				return true
			}
			return back == p
		},
		smallRational, smallRational,
	))
	properties.Property("(p*q)/q == p when q != 0", prop.ForAll(
		func(p, q Rational) bool {
			if q.IsZero() {
				return true
			}
			prod, err := p.Mul(q)
			if err != nil {
				return true
			}
			back, err := prod.Div(q)
			if err != nil {
				return true
			}
			return back == p
		},
		smallRational, smallRational,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRationalCmp(t *testing.T) {
	require.Equal(t, -1, NewRational(1, 3).Cmp(NewRational(1, 2)))
	require.Equal(t, 1, NewRational(2, 3).Cmp(NewRational(1, 2)))
	require.Equal(t, 0, NewRational(1, 2).Cmp(NewRational(2, 4)))
}

func TestRationalInv(t *testing.T) {
	r := NewRational(-3, 5)
	inv := r.Inv()
	require.Equal(t, int64(-5), inv.N)
	require.Equal(t, int64(3), inv.D)
}
