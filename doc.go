// Package affine provides an exact-arithmetic polyhedral analysis kernel:
// integer and rational linear algebra, symbolic polynomial algebra, and a
// polyhedra engine supporting Fourier-Motzkin elimination, redundancy
// pruning, and an orthogonalizing change of basis for array-subscript
// access patterns.
//
// The kernel is organized in four layers, each building on the one below:
//   - arith: machine-word exact integer and rational arithmetic
//   - matrix: dense integer matrix/vector algebra
//   - symbolic: multivariate polynomial algebra over a generic coefficient
//   - polyhedra: the constraint-elimination engine
package affine

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
