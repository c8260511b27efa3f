package polyhedra

import (
	"github.com/polykit/affine/logger"
	"github.com/polykit/affine/matrix"
)

// IsEmpty tests whether the polyhedron's integer-point set is empty by
// eliminating every variable and inspecting what's left: a remaining
// inequality row 0·x ≤ b is a witness of emptiness when b is provably
// negative, and a remaining equality row 0·x = q is a witness when q is
// provably non-zero. Elimination is total, so this always terminates; when
// a needed sign can't be proven (only possible for symbolic coefficients)
// that row is simply not a witness, matching the "false means unknown"
// oracle contract — the polyhedron is reported non-empty rather than
// guessed empty.
func IsEmpty[C Coeff[C]](p Polyhedron[C]) (bool, error) {
	cur := p
	for cur.NumVars() > 0 {
		next, err := RemoveVariable(cur, cur.NumVars()-1)
		if err != nil {
			return false, err
		}
		cur = next
	}
	for _, b := range cur.B {
		if b.Sign(cur.Oracle) == signNonPositive && !b.IsZero() {
			return true, nil
		}
	}
	for _, q := range cur.Q {
		s := q.Sign(cur.Oracle)
		if !q.IsZero() && s != signUnknown {
			return true, nil
		}
	}
	return false, nil
}

// PruneBounds removes redundant inequality rows in place and reports
// whether any were removed. Row r is redundant when the polyhedron with r
// replaced by its negation (r_coeffs·x ≥ r_b + 1, i.e. the integer-strict
// complement) and every other row kept is empty: if no point satisfies
// "not r" alongside the rest, then the rest alone already implies r.
// Pruning is idempotent: a second call removes nothing further, since every
// surviving row was already checked against the (smaller) remaining set.
func PruneBounds[C Coeff[C]](p *Polyhedron[C]) (bool, error) {
	removedAny := false
	rows := p.A.Rows()
	keep := make([]bool, rows)
	for i := range keep {
		keep[i] = true
	}

	for r := 0; r < rows; r++ {
		if !keep[r] {
			continue
		}
		aux, err := auxiliaryComplement(*p, keep, r)
		if err != nil {
			return false, err
		}
		empty, err := IsEmpty(aux)
		if err != nil {
			return false, err
		}
		if empty {
			keep[r] = false
			removedAny = true
		}
	}

	if !removedAny {
		return false, nil
	}
	removed := 0
	for _, k := range keep {
		if !k {
			removed++
		}
	}
	logger.Logger().Debug().Int("removed", removed).Int("kept", rows-removed).Msg("polyhedra: pruned redundant bounds")
	n := p.A.Cols()
	kept := 0
	for r := 0; r < rows; r++ {
		if keep[r] {
			kept++
		}
	}
	newA := matrix.New(kept, n)
	newB := make([]C, 0, kept)
	out := 0
	for r := 0; r < rows; r++ {
		if !keep[r] {
			continue
		}
		for c := 0; c < n; c++ {
			newA.Set(out, c, p.A.At(r, c))
		}
		newB = append(newB, p.B[r])
		out++
	}
	p.A = newA
	p.B = newB
	return true, nil
}

// auxiliaryComplement builds the polyhedron used to test row r's
// redundancy: every other currently-kept row unchanged, plus r negated to
// its integer-strict complement (-r_coeffs·x ≤ -r_b - 1).
func auxiliaryComplement[C Coeff[C]](p Polyhedron[C], keep []bool, r int) (Polyhedron[C], error) {
	n := p.A.Cols()
	kept := 0
	for i, k := range keep {
		if k && i != r {
			kept++
		}
	}
	newA := matrix.New(kept+1, n)
	newB := make([]C, 0, kept+1)
	out := 0
	for i, k := range keep {
		if !k || i == r {
			continue
		}
		for c := 0; c < n; c++ {
			newA.Set(out, c, p.A.At(i, c))
		}
		newB = append(newB, p.B[i])
		out++
	}
	for c := 0; c < n; c++ {
		newA.Set(out, c, -p.A.At(r, c))
	}
	negB := p.B[r].Negate()
	shifted, err := subtractOne(negB)
	if err != nil {
		return Polyhedron[C]{}, err
	}
	newB = append(newB, shifted)

	return Polyhedron[C]{A: newA, B: newB, E: p.E.Clone(), Q: append([]C(nil), p.Q...), Oracle: p.Oracle}, nil
}

// subtractOne computes v - 1 using Coeff's own One/Negate/Add, so it works
// identically for IntC and PolyC without a type switch.
func subtractOne[C Coeff[C]](v C) (C, error) {
	return v.Add(v.One().Negate())
}
