// Package geom: Vector and Point, the plane's additive and affine
// primitives.

package geom

import "fmt"

// Vector is a free vector in the plane.
type Vector struct {
	X, Y Exact
}

// NewVector builds a Vector from two Exact components.
func NewVector(x, y Exact) Vector { return Vector{X: x, Y: y} }

func (v Vector) String() string { return fmt.Sprintf("(%s, %s)", v.X, v.Y) }

// Add returns v+o.
func (v Vector) Add(o Vector) Vector { return Vector{v.X.Add(o.X), v.Y.Add(o.Y)} }

// Sub returns v-o.
func (v Vector) Sub(o Vector) Vector { return Vector{v.X.Sub(o.X), v.Y.Sub(o.Y)} }

// Mul returns v scaled by m.
func (v Vector) Mul(m Exact) Vector { return Vector{v.X.Mul(m), v.Y.Mul(m)} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{v.X.Neg(), v.Y.Neg()} }

// Dot returns the standard dot product of v and o.
func (v Vector) Dot(o Vector) Exact { return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)) }

// Cross returns the z-component of the 3D cross product of v and o.
// Positive when o is counter-clockwise from v.
func (v Vector) Cross(o Vector) Exact { return v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)) }

// Norm2 returns the squared Euclidean length of v.
func (v Vector) Norm2() Exact { return v.Dot(v) }

// Norm returns the Euclidean length of v. This is the one place irrational
// lengths enter the kernel; see scalar.go's Sqrt.
func (v Vector) Norm() Exact { return v.Norm2().Sqrt() }

// Normalize returns a unit vector in the same direction as v. Panics on the
// zero vector; callers only normalize polygon edge directions, which are
// non-degenerate by construction (core.NewPolygon rejects zero-length
// edges).
func (v Vector) Normalize() Vector {
	n := v.Norm()
	if n.IsZero() {
		panic("geom: normalize zero vector")
	}
	return Vector{v.X.Div(n), v.Y.Div(n)}
}

// Perpendicular returns v rotated +90 degrees (counter-clockwise).
func (v Vector) Perpendicular() Vector { return Vector{v.Y.Neg(), v.X} }

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool { return v.X.IsZero() && v.Y.IsZero() }

// Point is a location in the plane.
type Point struct {
	X, Y Exact
}

// NewPoint builds a Point from two Exact components.
func NewPoint(x, y Exact) Point { return Point{X: x, Y: y} }

// INFPOINT is the sentinel "no such point" value used by events and
// bisector/arc intersection queries. It must compare unequal to every
// real point, which Equal below guarantees via IsInfinite (both scalars
// unset) rather than a magic coordinate.
var INFPOINT = Point{X: Exact{}, Y: Exact{}}

func (p Point) String() string { return fmt.Sprintf("(%s, %s)", p.X, p.Y) }

// Vector returns the free vector from the origin to p.
func (p Point) Vector() Vector { return Vector{p.X, p.Y} }

// Add translates p by v.
func (p Point) Add(v Vector) Point { return Point{p.X.Add(v.X), p.Y.Add(v.Y)} }

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vector { return Vector{p.X.Sub(o.X), p.Y.Sub(o.Y)} }

// Equal reports whether p and o denote the same point. INFPOINT is only
// ever equal to itself by identity of the sentinel, never by coordinate
// coincidence with a real (0,0); callers compare against INFPOINT with
// IsInfinite instead of Equal.
func (p Point) Equal(o Point) bool {
	if p.IsInfinite() || o.IsInfinite() {
		return p.IsInfinite() && o.IsInfinite()
	}
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// IsInfinite reports whether p is the INFPOINT sentinel.
func (p Point) IsInfinite() bool { return p.X.v == nil && p.Y.v == nil }

// LessThan imposes the lexicographic (x, then y) order used to pick
// monotonicity extrema (monMin/monMax) deterministically.
func (p Point) LessThan(o Point) bool {
	if p.X.LessThan(o.X) {
		return true
	}
	if o.X.LessThan(p.X) {
		return false
	}
	return p.Y.LessThan(o.Y)
}

// SquaredDistance returns the squared Euclidean distance between p and o.
func SquaredDistance(p, o Point) Exact { return p.Sub(o).Norm2() }
