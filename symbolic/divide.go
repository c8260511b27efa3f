package symbolic

// DivRem performs exact multivariate polynomial division of p by d under the
// Monomial ordering used throughout this package: repeatedly, if d's leading
// monomial divides the current remainder's leading monomial, subtract the
// matching multiple of d (accumulating the quotient term); otherwise move
// the remainder's leading term to the output remainder and continue with
// what's left. Division of the matched coefficients must be exact or the
// step fails and ok is reported false — callers working over a ring without
// full division (e.g. IntCoeff) should prefer Gcd, which works through
// pseudo-remainders instead.
func DivRem[C DivisibleCoefficient[C]](p, d Polynomial[C]) (q, r Polynomial[C], ok bool, err error) {
	if d.IsZero() {
		return Polynomial[C]{}, Polynomial[C]{}, false, nil
	}
	remain := p
	dLead := d.LeadingTerm()
	var quotTerms, remTerms []Term[C]
	for !remain.IsZero() {
		lt := remain.LeadingTerm()
		monoQ, fail := lt.Mono.Div(dLead.Mono)
		if fail {
			remTerms = append(remTerms, lt)
			remain, err = remain.Sub(Polynomial[C]{Terms: []Term[C]{lt}})
			if err != nil {
				return Polynomial[C]{}, Polynomial[C]{}, false, err
			}
			continue
		}
		coefQ, divOk := lt.Coeff.Div(dLead.Coeff)
		if !divOk {
			return Polynomial[C]{}, Polynomial[C]{}, false, nil
		}
		qt := Term[C]{Coeff: coefQ, Mono: monoQ}
		quotTerms = append(quotTerms, qt)
		sub, err := Polynomial[C]{Terms: []Term[C]{qt}}.Mul(d)
		if err != nil {
			return Polynomial[C]{}, Polynomial[C]{}, false, err
		}
		remain, err = remain.Sub(sub)
		if err != nil {
			return Polynomial[C]{}, Polynomial[C]{}, false, err
		}
	}
	quot, err := New(quotTerms...)
	if err != nil {
		return Polynomial[C]{}, Polynomial[C]{}, false, err
	}
	rem, err := New(remTerms...)
	if err != nil {
		return Polynomial[C]{}, Polynomial[C]{}, false, err
	}
	return quot, rem, true, nil
}

// Content returns the GCD of every coefficient in p, the integer factor that
// can be pulled out of the whole polynomial.
func Content(p Polynomial[IntCoeff]) IntCoeff {
	var c IntCoeff
	for _, t := range p.Terms {
		c = c.Gcd(t.Coeff)
	}
	return c
}

// PrimPart returns p divided by Content(p): a primitive polynomial (content
// 1) with the same roots. The zero polynomial's primitive part is itself.
func PrimPart(p Polynomial[IntCoeff]) Polynomial[IntCoeff] {
	if p.IsZero() {
		return p
	}
	c := Content(p)
	if c == 0 || c == 1 {
		return p
	}
	out := make([]Term[IntCoeff], len(p.Terms))
	for i, t := range p.Terms {
		q, _ := t.Coeff.Div(c)
		out[i] = Term[IntCoeff]{Coeff: q, Mono: t.Mono}
	}
	return Polynomial[IntCoeff]{Terms: out}
}
