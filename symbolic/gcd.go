package symbolic

import "github.com/polykit/affine/logger"

// uniTerm is one grouped-by-degree term of a polynomial viewed as univariate
// in a chosen main variable: exp is the power of that variable, coeff is the
// (possibly multivariate) polynomial in every other variable multiplying it.
// Sorted by descending exp, as Polynomial.Terms is sorted by descending
// Monomial.Cmp.
type uniTerm struct {
	exp   int
	coeff Polynomial[IntCoeff]
}

// mainVariable returns the lowest symbol index appearing in p or q, and
// whether any variable appears at all (false means both are constants).
func mainVariable(p, q Polynomial[IntCoeff]) (int32, bool) {
	found := false
	var v int32
	scan := func(poly Polynomial[IntCoeff]) {
		for _, t := range poly.Terms {
			for _, s := range t.Mono {
				if !found || s < v {
					v = s
					found = true
				}
			}
		}
	}
	scan(p)
	scan(q)
	return v, found
}

// liftUni views p as a univariate polynomial in variable v, grouping terms
// by their degree in v.
func liftUni(p Polynomial[IntCoeff], v int32) []uniTerm {
	byExp := map[int][]Term[IntCoeff]{}
	var exps []int
	for _, t := range p.Terms {
		e := t.Mono.DegreeOf(v)
		residual := make(Monomial, 0, len(t.Mono))
		for _, s := range t.Mono {
			if s != v {
				residual = append(residual, s)
			}
		}
		if _, ok := byExp[e]; !ok {
			exps = append(exps, e)
		}
		byExp[e] = append(byExp[e], Term[IntCoeff]{Coeff: t.Coeff, Mono: residual})
	}
	out := make([]uniTerm, 0, len(exps))
	for _, e := range exps {
		poly, _ := New(byExp[e]...)
		out = append(out, uniTerm{exp: e, coeff: poly})
	}
	sortUniDesc(out)
	return out
}

func sortUniDesc(u []uniTerm) {
	for i := 1; i < len(u); i++ {
		for j := i; j > 0 && u[j].exp > u[j-1].exp; j-- {
			u[j], u[j-1] = u[j-1], u[j]
		}
	}
}

// lowerUni is the inverse of liftUni: multiply each group's coefficient
// polynomial by v^exp and sum.
func lowerUni(u []uniTerm, v int32) Polynomial[IntCoeff] {
	out := Polynomial[IntCoeff]{}
	for _, ut := range u {
		vpow := Monomial{}
		for i := 0; i < ut.exp; i++ {
			vpow = append(vpow, v)
		}
		terms := make([]Term[IntCoeff], len(ut.coeff.Terms))
		for i, t := range ut.coeff.Terms {
			terms[i] = Term[IntCoeff]{Coeff: t.Coeff, Mono: t.Mono.Mul(vpow)}
		}
		part, _ := New(terms...)
		out, _ = out.Add(part)
	}
	return out
}

func addUni(a, b []uniTerm) []uniTerm {
	byExp := map[int]Polynomial[IntCoeff]{}
	var exps []int
	add := func(e int, c Polynomial[IntCoeff]) {
		if cur, ok := byExp[e]; ok {
			byExp[e], _ = cur.Add(c)
		} else {
			byExp[e] = c
			exps = append(exps, e)
		}
	}
	for _, t := range a {
		add(t.exp, t.coeff)
	}
	for _, t := range b {
		add(t.exp, t.coeff)
	}
	out := make([]uniTerm, 0, len(exps))
	for _, e := range exps {
		if !byExp[e].IsZero() {
			out = append(out, uniTerm{exp: e, coeff: byExp[e]})
		}
	}
	sortUniDesc(out)
	return out
}

func negUni(a []uniTerm) []uniTerm {
	out := make([]uniTerm, len(a))
	for i, t := range a {
		out[i] = uniTerm{exp: t.exp, coeff: t.coeff.Negate()}
	}
	return out
}

func scaleUni(a []uniTerm, factor Polynomial[IntCoeff]) []uniTerm {
	out := make([]uniTerm, 0, len(a))
	for _, t := range a {
		c, _ := t.coeff.Mul(factor)
		if !c.IsZero() {
			out = append(out, uniTerm{exp: t.exp, coeff: c})
		}
	}
	return out
}

func shiftScaleUni(a []uniTerm, shift int, factor Polynomial[IntCoeff]) []uniTerm {
	out := make([]uniTerm, 0, len(a))
	for _, t := range a {
		c, _ := t.coeff.Mul(factor)
		if !c.IsZero() {
			out = append(out, uniTerm{exp: t.exp + shift, coeff: c})
		}
	}
	return out
}

// pseudoRemUni computes the pseudo-remainder of u by v (both non-empty,
// sorted descending by exp): the classical algorithm that multiplies the
// divisor's leading coefficient into the running remainder at each step so
// division by v's leading coefficient is never required to be exact.
func pseudoRemUni(u, v []uniTerm) []uniTerm {
	degV := v[0].exp
	lcV := v[0].coeff
	r := u
	for len(r) > 0 && r[0].exp >= degV {
		degR := r[0].exp
		lcR := r[0].coeff
		r = scaleUni(r, lcV)
		shifted := shiftScaleUni(v, degR-degV, lcR)
		r = addUni(r, negUni(shifted))
	}
	return r
}

// contentGcdUni folds Gcd across every coefficient polynomial in u,
// producing the "content" of u as a univariate-over-polynomials object —
// the recursive step that lets multivariate GCD bottom out through however
// many variables a polynomial has.
func contentGcdUni(u []uniTerm) Polynomial[IntCoeff] {
	var c Polynomial[IntCoeff]
	first := true
	for _, t := range u {
		if first {
			c = t.coeff
			first = false
			continue
		}
		c = Gcd(c, t.coeff)
	}
	return c
}

func divExactUni(u []uniTerm, d Polynomial[IntCoeff]) []uniTerm {
	out := make([]uniTerm, len(u))
	for i, t := range u {
		q, _, ok, _ := DivRem(t.coeff, d)
		if !ok {
			out[i] = t
			continue
		}
		out[i] = uniTerm{exp: t.exp, coeff: q}
	}
	return out
}

// Gcd computes a GCD of a and b by lifting both to univariate polynomials in
// the lowest-indexed variable appearing in either, running a content-reduced
// pseudo-remainder sequence, and recursing through Gcd itself to settle the
// coefficient-polynomial GCDs the lift exposes at each step — bottoming out
// at plain integer GCD once no variable remains. The result is a GCD up to a
// unit factor (sign), not a normalized canonical associate.
func Gcd(a, b Polynomial[IntCoeff]) Polynomial[IntCoeff] {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	v, hasVar := mainVariable(a, b)
	if !hasVar {
		g := Content(a).Gcd(Content(b))
		poly, _ := New(Term[IntCoeff]{Coeff: g, Mono: Monomial{}})
		return poly
	}
	logger.Logger().Trace().Int32("var", v).Msg("symbolic: gcd lifting to univariate")

	ua := liftUni(a, v)
	ub := liftUni(b, v)
	ca := contentGcdUni(ua)
	cb := contentGcdUni(ub)
	ppa := divExactUni(ua, ca)
	ppb := divExactUni(ub, cb)
	cont := Gcd(ca, cb)

	if len(ppa) > 0 && len(ppb) > 0 && ppa[0].exp < ppb[0].exp {
		ppa, ppb = ppb, ppa
	}
	for len(ppb) > 0 {
		r := pseudoRemUni(ppa, ppb)
		if len(r) == 0 {
			ppa = ppb
			ppb = nil
			break
		}
		rc := contentGcdUni(r)
		if !rc.IsZero() {
			r = divExactUni(r, rc)
		}
		ppa, ppb = ppb, r
	}
	if len(ppa) == 0 {
		poly, _ := New[IntCoeff]()
		return poly
	}
	result := lowerUni(ppa, v)
	result, _ = result.Mul(cont)
	return PrimPart(result)
}
