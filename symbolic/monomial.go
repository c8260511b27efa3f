// Package symbolic implements the symbolic polynomial algebra layer (L2):
// sorted multivariate monomials, a generic Term/Polynomial representation
// over integer or rational coefficients, polynomial division and
// pseudo-remainder, content/primitive-part extraction, and a
// subresultant-style multivariate GCD built by recursive reduction to
// univariate GCDs.
package symbolic

import (
	"sort"

	"github.com/polykit/affine/arith"
)

// Monomial is a sorted, non-decreasing sequence of symbol indices
// representing the product of the symbols at those indices; repetition
// encodes exponents (e.g. {0, 0, 2} is x0^2 * x2). One is the empty
// sequence. Equality is sequence equality.
type Monomial []int32

// One returns the empty monomial (the constant 1).
func One() Monomial { return Monomial{} }

// IsOne reports whether m is the empty monomial.
func (m Monomial) IsOne() bool { return len(m) == 0 }

// Degree returns the total degree (length of the sequence).
func (m Monomial) Degree() int { return len(m) }

// DegreeOf returns the exponent of symbol sym in m.
func (m Monomial) DegreeOf(sym int32) int {
	n := 0
	for _, s := range m {
		if s == sym {
			n++
		}
	}
	return n
}

// Equal reports whether m and o represent the same monomial.
func (m Monomial) Equal(o Monomial) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// Mul merges two sorted symbol sequences in linear time, returning their
// product.
func (m Monomial) Mul(o Monomial) Monomial {
	out := make(Monomial, 0, len(m)+len(o))
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		if m[i] <= o[j] {
			out = append(out, m[i])
			i++
		} else {
			out = append(out, o[j])
			j++
		}
	}
	out = append(out, m[i:]...)
	out = append(out, o[j:]...)
	return out
}

// Div returns (q, fail) such that m == q*o when fail is false; fail is true
// iff o is not a submultiset of m.
func (m Monomial) Div(o Monomial) (Monomial, bool) {
	out := make(Monomial, 0, len(m))
	i, j := 0, 0
	for i < len(m) {
		if j >= len(o) {
			out = append(out, m[i])
			i++
			continue
		}
		switch {
		case m[i] == o[j]:
			i++
			j++
		case m[i] < o[j]:
			out = append(out, m[i])
			i++
		default: // m[i] > o[j]: o has a symbol m lacks at this point
			return nil, true
		}
	}
	if j < len(o) {
		return nil, true
	}
	return out, false
}

// Gcd returns the sorted intersection (multiset min) of m and o.
func (m Monomial) Gcd(o Monomial) Monomial {
	out := make(Monomial, 0, arith.Min(len(m), len(o)))
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		switch {
		case m[i] == o[j]:
			out = append(out, m[i])
			i++
			j++
		case m[i] < o[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// Pow returns m^e via repeated sorted-merge, equivalent to repeating the
// sequence e times and re-sorting, but built with the same Mul merge used
// elsewhere so the sorted invariant is never broken.
func (m Monomial) Pow(e int) Monomial {
	if e == 0 {
		return One()
	}
	out := m
	for i := 1; i < e; i++ {
		out = out.Mul(m)
	}
	return out
}

// Cmp orders monomials by decreasing total degree (the primary lex key),
// then, at equal degree, by the first position where the symbol sequences
// differ, with the lower symbol index sorting first — the tie-break rule a
// polynomial's term list uses to keep its leading term first.
func (m Monomial) Cmp(o Monomial) int {
	if len(m) != len(o) {
		if len(m) > len(o) {
			return -1
		}
		return 1
	}
	for i := range m {
		if m[i] != o[i] {
			if m[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (m Monomial) String() string {
	if len(m) == 0 {
		return "1"
	}
	type run struct {
		sym int32
		exp int
	}
	var runs []run
	for _, s := range m {
		if len(runs) > 0 && runs[len(runs)-1].sym == s {
			runs[len(runs)-1].exp++
		} else {
			runs = append(runs, run{sym: s, exp: 1})
		}
	}
	out := ""
	for i, r := range runs {
		if i > 0 {
			out += "*"
		}
		if r.exp == 1 {
			out += symName(r.sym)
		} else {
			out += symName(r.sym) + "^" + itoa(r.exp)
		}
	}
	return out
}

func symName(i int32) string { return "x" + itoa(int(i)) }

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// sortMonomials sorts a slice of monomials by Cmp (decreasing degree, then
// lex).
func sortMonomials(ms []Monomial) {
	sort.Slice(ms, func(i, j int) bool { return ms[i].Cmp(ms[j]) < 0 })
}
