package symbolic

// Uninomial is the single-variable analogue of Monomial: just an exponent.
// It backs UniPolynomial, the representation used when a polynomial is
// known to involve only one symbol (the common case for the loop-bound and
// stride expressions this package ultimately feeds).
type Uninomial struct{ Exp uint32 }

func (u Uninomial) Degree() int { return int(u.Exp) }

// UniTerm pairs a coefficient with a Uninomial.
type UniTerm[C Coefficient[C]] struct {
	Coeff C
	Mono  Uninomial
}

// UniPolynomial is a sum of UniTerms, sorted by descending exponent, with no
// two terms sharing an exponent and no zero coefficients.
type UniPolynomial[C Coefficient[C]] struct {
	Terms []UniTerm[C]
}

// NewUni builds a normalized UniPolynomial, merging terms that share an
// exponent and dropping zero coefficients.
func NewUni[C Coefficient[C]](terms ...UniTerm[C]) (UniPolynomial[C], error) {
	byExp := map[uint32]int{}
	var out []UniTerm[C]
	for _, t := range terms {
		if idx, ok := byExp[t.Mono.Exp]; ok {
			sum, err := out[idx].Coeff.Add(t.Coeff)
			if err != nil {
				return UniPolynomial[C]{}, err
			}
			out[idx].Coeff = sum
			continue
		}
		byExp[t.Mono.Exp] = len(out)
		out = append(out, t)
	}
	filtered := out[:0]
	for _, t := range out {
		if !t.Coeff.IsZero() {
			filtered = append(filtered, t)
		}
	}
	for i := 1; i < len(filtered); i++ {
		for j := i; j > 0 && filtered[j].Mono.Exp > filtered[j-1].Mono.Exp; j-- {
			filtered[j], filtered[j-1] = filtered[j-1], filtered[j]
		}
	}
	return UniPolynomial[C]{Terms: filtered}, nil
}

func (p UniPolynomial[C]) IsZero() bool { return len(p.Terms) == 0 }

func (p UniPolynomial[C]) Degree() int {
	if p.IsZero() {
		return -1
	}
	return int(p.Terms[0].Mono.Exp)
}

// ToPolynomial embeds a UniPolynomial into the multivariate Polynomial type
// over symbol sym, so the two representations can interoperate when a
// caller wants the general multivariate machinery (Add, Mul, Gcd) applied
// to what started as a single-variable expression.
func (p UniPolynomial[C]) ToPolynomial(sym int32) Polynomial[C] {
	terms := make([]Term[C], len(p.Terms))
	for i, t := range p.Terms {
		m := make(Monomial, t.Mono.Exp)
		for j := range m {
			m[j] = sym
		}
		terms[i] = Term[C]{Coeff: t.Coeff, Mono: m}
	}
	out, _ := New(terms...)
	return out
}
