// Package geom: Line, Ray and Segment — the affine primitives bisectors
// and skeleton arcs are realized as.

package geom

import "fmt"

// Line is the infinite line { p + t*d : t in R }, stored as a point and a
// direction vector (not normalized — only the sign of components is used
// by predicates, so normalizing would just waste a sqrt).
type Line struct {
	P Point
	D Vector
}

// NewLine builds the line through p with direction d. Panics if d is the
// zero vector: every call site derives d from a polygon edge or a
// bisector direction, neither of which degenerates to zero.
func NewLine(p Point, d Vector) Line {
	if d.IsZero() {
		panic("geom: degenerate line direction")
	}
	return Line{P: p, D: d}
}

// LineThrough builds the line through a and b.
func LineThrough(a, b Point) Line { return NewLine(a, b.Sub(a)) }

func (l Line) String() string { return fmt.Sprintf("line(%s + t*%s)", l.P, l.D) }

// Opposite returns the same line with direction reversed.
func (l Line) Opposite() Line { return Line{P: l.P, D: l.D.Neg()} }

// Perpendicular returns the line through p perpendicular to l.
func (l Line) Perpendicular(p Point) Line { return Line{P: p, D: l.D.Perpendicular()} }

// Point returns a point on the line: i==0 is l.P itself, any other i
// walks i steps of D from there.
func (l Line) Point(i int64) Point {
	if i == 0 {
		return l.P
	}
	return l.P.Add(l.D.Mul(NewExactInt(i)))
}

// HasOnPositiveSide reports whether p lies strictly to the left of l (the
// side D.Perpendicular() points toward).
func (l Line) HasOnPositiveSide(p Point) bool {
	return l.D.Cross(p.Sub(l.P)).Sign() > 0
}

// HasOnNegativeSide reports whether p lies strictly to the right of l.
func (l Line) HasOnNegativeSide(p Point) bool {
	return l.D.Cross(p.Sub(l.P)).Sign() < 0
}

// signedCross returns D.Cross(p - P): positive/negative/zero exactly as
// HasOnPositiveSide/HasOnNegativeSide, but retained as a magnitude for
// NormalDistance below.
func (l Line) signedCross(p Point) Exact { return l.D.Cross(p.Sub(l.P)) }

// NormalDistance returns the unsigned perpendicular distance from p to l.
func NormalDistance(l Line, p Point) Exact {
	return l.signedCross(p).Abs().Div(l.D.Norm())
}

// Ray is the half-line { p + t*d : t >= 0 }.
type Ray struct {
	P Point
	D Vector
}

// NewRay builds the ray from p in direction d.
func NewRay(p Point, d Vector) Ray {
	if d.IsZero() {
		panic("geom: degenerate ray direction")
	}
	return Ray{P: p, D: d}
}

func (r Ray) String() string { return fmt.Sprintf("ray(%s + t*%s, t>=0)", r.P, r.D) }

// SupportingLine returns the line that contains r.
func (r Ray) SupportingLine() Line { return Line{P: r.P, D: r.D} }

// Opposite returns the ray with the same source but reversed direction.
func (r Ray) Opposite() Ray { return Ray{P: r.P, D: r.D.Neg()} }

// Source returns the ray's origin.
func (r Ray) Source() Point { return r.P }

// Segment is the bounded segment between two points.
type Segment struct {
	A, B Point
}

// NewSegment builds the segment from a to b.
func NewSegment(a, b Point) Segment { return Segment{A: a, B: b} }

// SupportingLine returns the line through A and B. Panics on a degenerate
// (zero-length) segment, which core.NewPolygon never produces and
// skel never constructs (a collapsed arc is disabled before it would be
// asked for its supporting line).
func (s Segment) SupportingLine() Line { return LineThrough(s.A, s.B) }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() Exact { return s.B.Sub(s.A).Norm().Abs() }

// Reverse returns the segment with endpoints swapped.
func (s Segment) Reverse() Segment { return Segment{A: s.B, B: s.A} }
