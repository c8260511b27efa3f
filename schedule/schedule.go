// Package schedule implements the loop-nest scheduling transform and the
// fusion/ordering/overlap queries built on top of it.
package schedule

import "github.com/polykit/affine/matrix"

// Schedule is a loop nest's scheduling transform: Phi (d x d) linearly
// remaps the induction-variable vector, and Omega (length 2d+1) interleaves
// fixed positions between loop levels so distinct statements sharing a nest
// can be totally ordered.
type Schedule struct {
	Phi   *matrix.Dense
	Omega []int64
}

// New builds a Schedule for a nest of the given depth, defaulting Phi to
// identity (no loop permutation/skewing) and Omega to all zeros.
func New(depth int) Schedule {
	return Schedule{Phi: matrix.Identity(depth), Omega: make([]int64, 2*depth+1)}
}

// Depth returns d, the loop nest depth this schedule was built for.
func (s Schedule) Depth() int { return s.Phi.Rows() }

// FusedThrough reports whether a and b are fused through level k: their
// Omega vectors agree at every even position below k, the positions that
// record the interleaving sequence number between loop levels rather than a
// per-iteration offset.
func FusedThrough(a, b Schedule, k int) bool {
	for i := 0; i < k; i++ {
		idx := 2 * i
		if idx >= len(a.Omega) || idx >= len(b.Omega) {
			return false
		}
		if a.Omega[idx] != b.Omega[idx] {
			return false
		}
	}
	return true
}

// LexicographicallyBefore reports whether a's static interleaving strictly
// precedes b's: it compares Omega lexicographically at the even
// (loop-independent) positions, which is exactly the part of the ordering
// that does not depend on a concrete iteration vector. Ties at every even
// position (same outer fusion structure) are reported as not-before, since
// resolving them needs an iteration point — see CompareAt.
func LexicographicallyBefore(a, b Schedule) bool {
	n := len(a.Omega)
	if len(b.Omega) < n {
		n = len(b.Omega)
	}
	for i := 0; i < n; i += 2 {
		if a.Omega[i] != b.Omega[i] {
			return a.Omega[i] < b.Omega[i]
		}
	}
	return false
}

// CompareAt totally orders a and b at a concrete shared iteration vector i
// (length Depth()): it interleaves Omega[0], Phi[0]·i, Omega[2], Phi[1]·i,
// ..., Omega[2d], and compares the two resulting sequences lexicographically,
// returning -1, 0, or 1. The odd positions of Omega take no part.
func CompareAt(a, b Schedule, i []int64) int {
	av := interleave(a, i)
	bv := interleave(b, i)
	n := len(av)
	if len(bv) < n {
		n = len(bv)
	}
	for k := 0; k < n; k++ {
		if av[k] != bv[k] {
			if av[k] < bv[k] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(av) < len(bv):
		return -1
	case len(av) > len(bv):
		return 1
	default:
		return 0
	}
}

func interleave(s Schedule, i []int64) []int64 {
	d := s.Depth()
	out := make([]int64, 0, 2*d+1)
	for level := 0; level < d; level++ {
		out = append(out, s.Omega[2*level])
		var dot int64
		for c := 0; c < len(i); c++ {
			dot += s.Phi.At(level, c) * i[c]
		}
		out = append(out, dot)
	}
	out = append(out, s.Omega[2*d])
	return out
}
