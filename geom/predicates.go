// Package geom: orientation and parallelism predicates.

package geom

// RightTurn reports whether the path a -> b -> c turns clockwise (i.e. c
// lies to the right of the directed line a->b). Used by the monotonicity
// analyzer to find reflex vertices.
func RightTurn(a, b, c Point) bool {
	return b.Sub(a).Cross(c.Sub(b)).Sign() < 0
}

// LeftTurn reports whether the path a -> b -> c turns counter-clockwise.
func LeftTurn(a, b, c Point) bool {
	return b.Sub(a).Cross(c.Sub(b)).Sign() > 0
}

// Parallel reports whether two directions (or lines, via their direction
// vectors) are parallel, same or opposite sense.
func Parallel(a, b Vector) bool { return a.Cross(b).IsZero() }

// SameSense reports whether two parallel vectors point in the same
// general direction (their dot product is positive). Undefined unless
// Parallel(a, b) holds; callers always check Parallel first.
func SameSense(a, b Vector) bool { return a.Dot(b).Sign() > 0 }
