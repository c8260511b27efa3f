package symbolic

// Term is a single coefficient-monomial pair.
type Term[C Coefficient[C]] struct {
	Coeff C
	Mono  Monomial
}

// Polynomial is a sum of terms, kept normalized: sorted by Monomial.Cmp
// (descending, so Terms[0] is the leading term), no two terms share a
// monomial, and no term has a zero coefficient. The zero polynomial is
// represented by an empty Terms slice.
type Polynomial[C Coefficient[C]] struct {
	Terms []Term[C]
}

// New builds a normalized Polynomial from a set of terms, merging terms
// that share a monomial and dropping zero-coefficient terms.
func New[C Coefficient[C]](terms ...Term[C]) (Polynomial[C], error) {
	byMono := map[string]int{}
	var out []Term[C]
	for _, t := range terms {
		key := t.Mono.String() + "#" + itoaLen(len(t.Mono))
		if idx, ok := byMono[key]; ok {
			sum, err := out[idx].Coeff.Add(t.Coeff)
			if err != nil {
				var zero Polynomial[C]
				return zero, err
			}
			out[idx].Coeff = sum
			continue
		}
		byMono[key] = len(out)
		out = append(out, t)
	}
	filtered := out[:0]
	for _, t := range out {
		if !t.Coeff.IsZero() {
			filtered = append(filtered, t)
		}
	}
	sortTerms(filtered)
	return Polynomial[C]{Terms: filtered}, nil
}

func itoaLen(n int) string { return itoa(n) }

func sortTerms[C Coefficient[C]](terms []Term[C]) {
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && terms[j].Mono.Cmp(terms[j-1].Mono) < 0; j-- {
			terms[j], terms[j-1] = terms[j-1], terms[j]
		}
	}
}

// IsZero reports whether p has no terms.
func (p Polynomial[C]) IsZero() bool { return len(p.Terms) == 0 }

// Degree returns the total degree of the leading term, or -1 for the zero
// polynomial.
func (p Polynomial[C]) Degree() int {
	if p.IsZero() {
		return -1
	}
	return p.Terms[0].Mono.Degree()
}

// LeadingTerm returns the polynomial's highest-order term under Monomial.Cmp.
func (p Polynomial[C]) LeadingTerm() Term[C] { return p.Terms[0] }

// Add returns p + q.
func (p Polynomial[C]) Add(q Polynomial[C]) (Polynomial[C], error) {
	return mergeAdd(p, q, false)
}

// Sub returns p - q.
func (p Polynomial[C]) Sub(q Polynomial[C]) (Polynomial[C], error) {
	return mergeAdd(p, q, true)
}

func mergeAdd[C Coefficient[C]](p, q Polynomial[C], negateQ bool) (Polynomial[C], error) {
	var out []Term[C]
	i, j := 0, 0
	for i < len(p.Terms) && j < len(q.Terms) {
		switch p.Terms[i].Mono.Cmp(q.Terms[j].Mono) {
		case -1:
			out = append(out, p.Terms[i])
			i++
		case 1:
			qc := q.Terms[j].Coeff
			if negateQ {
				qc = qc.Negate()
			}
			out = append(out, Term[C]{Coeff: qc, Mono: q.Terms[j].Mono})
			j++
		default:
			var sum C
			var err error
			if negateQ {
				sum, err = p.Terms[i].Coeff.Sub(q.Terms[j].Coeff)
			} else {
				sum, err = p.Terms[i].Coeff.Add(q.Terms[j].Coeff)
			}
			if err != nil {
				var zero Polynomial[C]
				return zero, err
			}
			if !sum.IsZero() {
				out = append(out, Term[C]{Coeff: sum, Mono: p.Terms[i].Mono})
			}
			i++
			j++
		}
	}
	for ; i < len(p.Terms); i++ {
		out = append(out, p.Terms[i])
	}
	for ; j < len(q.Terms); j++ {
		qc := q.Terms[j].Coeff
		if negateQ {
			qc = qc.Negate()
		}
		out = append(out, Term[C]{Coeff: qc, Mono: q.Terms[j].Mono})
	}
	return Polynomial[C]{Terms: out}, nil
}

// Negate returns -p.
func (p Polynomial[C]) Negate() Polynomial[C] {
	out := make([]Term[C], len(p.Terms))
	for i, t := range p.Terms {
		out[i] = Term[C]{Coeff: t.Coeff.Negate(), Mono: t.Mono}
	}
	return Polynomial[C]{Terms: out}
}

// Mul returns p * q, distributing every term pair and accumulating like
// monomials.
func (p Polynomial[C]) Mul(q Polynomial[C]) (Polynomial[C], error) {
	acc := map[string]Term[C]{}
	var order []string
	for _, a := range p.Terms {
		for _, b := range q.Terms {
			coeff, err := a.Coeff.Mul(b.Coeff)
			if err != nil {
				var zero Polynomial[C]
				return zero, err
			}
			mono := a.Mono.Mul(b.Mono)
			key := mono.String() + "#" + itoa(len(mono))
			if existing, ok := acc[key]; ok {
				sum, err := existing.Coeff.Add(coeff)
				if err != nil {
					var zero Polynomial[C]
					return zero, err
				}
				acc[key] = Term[C]{Coeff: sum, Mono: mono}
			} else {
				acc[key] = Term[C]{Coeff: coeff, Mono: mono}
				order = append(order, key)
			}
		}
	}
	out := make([]Term[C], 0, len(order))
	for _, key := range order {
		t := acc[key]
		if !t.Coeff.IsZero() {
			out = append(out, t)
		}
	}
	sortTerms(out)
	return Polynomial[C]{Terms: out}, nil
}

// Equal reports whether p and q have identical normalized term lists. It
// relies on the coefficients' Sub and IsZero rather than requiring a
// separate equality method on C.
func (p Polynomial[C]) Equal(q Polynomial[C]) bool {
	if len(p.Terms) != len(q.Terms) {
		return false
	}
	for i := range p.Terms {
		if !p.Terms[i].Mono.Equal(q.Terms[i].Mono) {
			return false
		}
		diff, err := p.Terms[i].Coeff.Sub(q.Terms[i].Coeff)
		if err != nil || !diff.IsZero() {
			return false
		}
	}
	return true
}

func (p Polynomial[C]) String() string {
	if p.IsZero() {
		return "0"
	}
	out := ""
	for i, t := range p.Terms {
		if i > 0 {
			out += " + "
		}
		if t.Mono.IsOne() {
			out += stringer(t.Coeff)
		} else {
			out += stringer(t.Coeff) + "*" + t.Mono.String()
		}
	}
	return out
}

func stringer(v any) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return "?"
}
