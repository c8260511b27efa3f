// Package poset defines the external sign-oracle boundary the polyhedra
// engine consults when a coefficient is a symbolic polynomial rather than a
// plain machine integer: deciding the sign of a polynomial whose symbols
// represent unknown (but possibly mutually constrained) runtime values is
// outside this engine's job, so the answer is injected rather than derived.
package poset

import "github.com/polykit/affine/symbolic"

// PartiallyOrderedSet is a relation over symbol identifiers, consumed by the
// polyhedra engine to decide whether a polynomial's value is provably
// non-positive or non-negative. The contract is soundness-only: true means
// provable, false means "unknown" — never "opposite sign". A caller that
// cannot prove anything must return false from both queries, never attempt
// to guess.
type PartiallyOrderedSet interface {
	KnownLessEqualZero(p symbolic.Polynomial[symbolic.IntCoeff]) bool
	KnownGreaterEqualZero(p symbolic.Polynomial[symbolic.IntCoeff]) bool
}

// Empty is a PartiallyOrderedSet that never proves anything — the
// conservative default for callers with no external symbol relation to
// inject, or for tests that only exercise the plain-integer polyhedron.
type Empty struct{}

func (Empty) KnownLessEqualZero(symbolic.Polynomial[symbolic.IntCoeff]) bool    { return false }
func (Empty) KnownGreaterEqualZero(symbolic.Polynomial[symbolic.IntCoeff]) bool { return false }
