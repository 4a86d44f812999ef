// Package geom: intersection constructions. Every routine returns
// INFPOINT on "no intersection" rather than an (ok bool, Point) pair, so
// event points carry their own validity through the pipeline.

package geom

// IntersectLines returns the unique intersection point of two lines, or
// INFPOINT if they are parallel (including coincident).
func IntersectLines(a, b Line) Point {
	d := a.D.Cross(b.D)
	if d.IsZero() {
		return INFPOINT
	}
	// Solve a.P + t*a.D = b.P + s*b.D for t via Cramer's rule.
	w := b.P.Sub(a.P)
	t := w.Cross(b.D).Div(d)
	return a.P.Add(a.D.Mul(t))
}

// intersectParamOnRay returns the line parameter t such that r.P + t*r.D
// equals the given point, assuming the point lies on r's supporting line.
func intersectParamOnRay(r Ray, p Point) Exact {
	v := p.Sub(r.P)
	if !r.D.X.IsZero() {
		return v.X.Div(r.D.X)
	}
	return v.Y.Div(r.D.Y)
}

// RayParam is intersectParamOnRay for callers outside the package: the
// parameter t with r.P + t*r.D == p, for a point already known to lie on
// r's supporting line.
func RayParam(r Ray, p Point) Exact { return intersectParamOnRay(r, p) }

// IntersectRayLine returns the point where ray r meets line l, or
// INFPOINT if they are parallel or meet behind the ray's source.
func IntersectRayLine(r Ray, l Line) Point {
	p := IntersectLines(r.SupportingLine(), l)
	if p.IsInfinite() {
		return INFPOINT
	}
	if intersectParamOnRay(r, p).Sign() < 0 {
		return INFPOINT
	}
	return p
}

// IntersectRays returns the point where two rays cross, or INFPOINT if
// they don't (parallel, or the crossing point lies behind either source).
func IntersectRays(a, b Ray) Point {
	p := IntersectLines(a.SupportingLine(), b.SupportingLine())
	if p.IsInfinite() {
		return INFPOINT
	}
	if intersectParamOnRay(a, p).Sign() < 0 || intersectParamOnRay(b, p).Sign() < 0 {
		return INFPOINT
	}
	return p
}

// IntersectRaySegment returns the point where ray r crosses segment s, or
// INFPOINT if they don't meet within both bounds.
func IntersectRaySegment(r Ray, s Segment) Point {
	sl := s.SupportingLine()
	p := IntersectRayLine(r, sl)
	if p.IsInfinite() {
		return INFPOINT
	}
	if !withinSegment(s, p) {
		return INFPOINT
	}
	return p
}

// withinSegment reports whether p (assumed collinear with s) lies between
// s.A and s.B inclusive.
func withinSegment(s Segment, p Point) bool {
	loX, hiX := Min(s.A.X, s.B.X), Max(s.A.X, s.B.X)
	loY, hiY := Min(s.A.Y, s.B.Y), Max(s.A.Y, s.B.Y)
	return !(p.X.LessThan(loX) || hiX.LessThan(p.X)) &&
		!(p.Y.LessThan(loY) || hiY.LessThan(p.Y))
}

// ProjectOntoLine returns the point on l closest to p (the foot of the
// perpendicular from p).
func ProjectOntoLine(p Point, l Line) Point {
	v := p.Sub(l.P)
	t := v.Dot(l.D).Div(l.D.Norm2())
	return l.P.Add(l.D.Mul(t))
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	half := NewExactRat(1, 2)
	return a.Add(b.Sub(a).Mul(half))
}

// PseudoAngle returns a value in [0,4) that increases monotonically with
// v's true angle, without any trigonometry — the standard
// sum-of-absolute-values trick. The monotonicity analyzer's angular
// sweep only needs directions ordered, never measured.
func PseudoAngle(v Vector) Exact {
	ax, ay := v.X.Abs(), v.Y.Abs()
	sum := ax.Add(ay)
	t := zero()
	if !sum.IsZero() {
		t = ay.Div(sum)
	}
	if v.X.Sign() < 0 {
		t = NewExactInt(2).Sub(t)
	}
	if v.Y.Sign() < 0 {
		t = NewExactInt(4).Sub(t)
	}
	return t
}

// UnitSum returns the (unnormalized-safe) sum of the two unit vectors in
// directions a and b: the classical unweighted internal-angle-bisector
// direction at the vertex where two edges with directions a, b meet.
// Degenerates to the zero vector when a and b are anti-parallel; the
// caller (skel's monotonicity candidate construction) checks for that
// zero result and substitutes a perpendicular direction.
func UnitSum(a, b Vector) Vector {
	return a.Normalize().Add(b.Normalize())
}
