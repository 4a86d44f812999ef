// Package geom is a small planar geometry kernel: points, vectors, lines,
// rays, segments, and the intersection/orientation predicates the skel
// package needs to compute a weighted straight skeleton.
//
// Scalars are Exact, a thin wrapper around math/big.Float evaluated at a
// fixed, generous precision (see precisionBits in scalar.go). This gives
// deterministic, reproducible arithmetic — including the square roots
// weighted bisectors need, which a rational (big.Rat) kernel cannot
// represent — at the cost of the full algebraic exactness an
// arbitrary-precision rational-with-radicals kernel would give. Two
// points that coincide only to within 2^-256 compare unequal; see
// DESIGN.md for the full rationale.
package geom
