package arith

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// S1 from spec.md §8.
func TestConcreteGCDLCMExtGCD(t *testing.T) {
	require.Equal(t, int64(7), GCD(1001, 777))
	require.Equal(t, int64(30), LCM(6, 10))

	g, s, tt := ExtGCD(240, 46)
	require.Equal(t, int64(2), g)
	require.Equal(t, int64(-9), s)
	require.Equal(t, int64(47), tt)
	require.Equal(t, g, s*240+tt*46)
}

func TestDivGCDSpecialCases(t *testing.T) {
	x, y := DivGCD(0, 0)
	require.Equal(t, int64(0), x)
	require.Equal(t, int64(0), y)

	x, y = DivGCD(0, 5)
	require.Equal(t, int64(0), x)
	require.Equal(t, int64(1), y)

	x, y = DivGCD(5, 0)
	require.Equal(t, int64(1), x)
	require.Equal(t, int64(0), y)
}

// Law 1: for non-zero a, b: gcd(a,b)*lcm(a,b) == |a*b|.
func TestGCDLCMLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("gcd(a,b)*lcm(a,b) == |a*b|", prop.ForAll(
		func(a, b int32) bool {
			if a == 0 || b == 0 {
				return true
			}
			x, y := int64(a), int64(b)
			g := GCD(x, y)
			l := LCM(x, y)
			prod := x * y
			if prod < 0 {
				prod = -prod
			}
			return g*l == prod
		},
		gen.Int32Range(-1<<20, 1<<20),
		gen.Int32Range(-1<<20, 1<<20),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestExtGCDLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("s*a + t*b == gcd(a,b)", prop.ForAll(
		func(a, b int32) bool {
			x, y := int64(a), int64(b)
			g, s, tt := ExtGCD(x, y)
			return s*x+tt*y == g
		},
		gen.Int32Range(-1<<20, 1<<20),
		gen.Int32Range(-1<<20, 1<<20),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPowBySquareInt(t *testing.T) {
	mul := func(dst, a, b *int64) { *dst = *a * *b }
	require.Equal(t, int64(1), PowBySquare(int64(1), int64(7), 0, mul))
	require.Equal(t, int64(7), PowBySquare(int64(1), int64(7), 1, mul))
	require.Equal(t, int64(49), PowBySquare(int64(1), int64(7), 2, mul))
	require.Equal(t, int64(343), PowBySquare(int64(1), int64(7), 3, mul))
	require.Equal(t, int64(16807), PowBySquare(int64(1), int64(7), 5, mul))
	require.Equal(t, int64(2401), PowBySquare(int64(1), int64(7), 4, mul))
}
