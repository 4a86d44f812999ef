// Package skel: the weighted bisector builder.

package skel

import "github.com/monoskel/monoskel/geom"

// Bisector is the locus a wavefront vertex travels along once its two
// flanking edges are fixed: a ray rooted at the vertex's current point in
// the general case, or a full line when the two edges are parallel with
// distinct supporting lines (the weighted midline, on which apex already
// lies; callers orient it).
type Bisector struct {
	IsLine bool
	Ray    geom.Ray
	Line   geom.Line
}

// Direction returns the bisector's travel direction.
func (b Bisector) Direction() geom.Vector {
	if b.IsLine {
		return b.Line.D
	}
	return b.Ray.D
}

// inwardNormal returns the unit normal to a boundary-direction vector d
// that points into a CCW-oriented polygon's interior (left of d).
func inwardNormal(d geom.Vector) geom.Vector {
	return d.Normalize().Perpendicular()
}

// BuildBisector computes the weighted bisector of the two wavefront edges
// realized by segments a and b, rooted at apex. apex must lie on the
// bisector locus; every call site guarantees this (a terminal vertex is
// shared by its two edges, an event point is weighted-equidistant from
// all three edges it retires, a seam crossing from both facing edges).
//
// Non-parallel edges: the wavefront vertex's velocity v solves
// v·n1 = wA, v·n2 = wB over the inward unit normals — v is both the
// bisector direction and the vertex's speed, so arrival times fall out of
// the ray parameter with no separate normalization.
//
// Parallel edges split on whether the supporting lines coincide:
//   - coincident (a spike, or collinear consecutive edges sharing apex):
//     the vertex rides perpendicular to the shared direction;
//   - distinct (two walls facing across the interior, which arises after
//     splices and along the merge seam): the locus is the weighted
//     midline, a full line parallel to both edges through apex.
func BuildBisector(a, b geom.Segment, wA, wB geom.Exact, apex geom.Point) Bisector {
	dirA := a.B.Sub(a.A)
	dirB := b.B.Sub(b.A)

	if !geom.Parallel(dirA, dirB) {
		n1, n2 := inwardNormal(dirA), inwardNormal(dirB)
		d := n1.Cross(n2)
		// v . n1 = wA, v . n2 = wB, solved via Cramer's rule.
		x := wA.Mul(n2.Y).Sub(wB.Mul(n1.Y)).Div(d)
		y := n1.X.Mul(wB).Sub(n2.X.Mul(wA)).Div(d)
		return Bisector{Ray: geom.NewRay(apex, geom.NewVector(x, y))}
	}

	if dirA.Cross(b.A.Sub(a.A)).IsZero() {
		// Coincident supporting lines. Equal weights ride straight up the
		// shared normal; unequal weights have no exact closed form here
		// and degenerate to the same perpendicular ray (the faster edge's
		// overshoot is resolved by the next collapse event).
		return Bisector{Ray: geom.NewRay(apex, inwardNormal(dirA))}
	}

	// Distinct parallel supports: the weighted midline through apex.
	return Bisector{IsLine: true, Line: geom.NewLine(apex, dirA)}
}
