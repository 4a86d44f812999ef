// Package skel: the monotonicity analyzer. For each reflex vertex the
// polygon fails to be monotone with respect to any line whose direction
// falls in the cone spanned by the vertex's incident edge vectors (plus
// its antipode); sweeping the cones' endpoints in angular order finds
// the gaps where no cone is active, and each gap's midpoint direction is
// a candidate reference line, verified by a linear pass.
//
// The analyzer never calls an angle function: direction comparisons use
// geom.PseudoAngle, a trig-free monotone proxy for true angle, so sorting
// the sweep's events takes no square root. Building a gap's candidate
// direction does (geom.UnitSum normalizes both boundary vectors).

package skel

import (
	"sort"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

// Monotonicity is the result of a successful analysis: the reference
// line and the two vertices extremal along it.
type Monotonicity struct {
	Line           geom.Line
	MonMin, MonMax core.VertexID
}

// dirEvent is one boundary of a reflex vertex's forbidden angular
// interval.
type dirEvent struct {
	angle geom.Exact
	end   bool
	id    int
	vec   geom.Vector
}

// isCCW reports whether poly's vertex order is counter-clockwise, via the
// shoelace sum's sign.
func isCCW(poly *core.Polygon) bool {
	sum := geom.NewExactInt(0)
	n := poly.N()
	for i := 0; i < n; i++ {
		a := poly.V(core.VertexID(i)).P
		b := poly.V(core.VertexID((i + 1) % n)).P
		sum = sum.Add(a.X.Mul(b.Y).Sub(b.X.Mul(a.Y)))
	}
	return sum.Sign() > 0
}

// reflexVertices returns, for every reflex vertex, the incoming and
// outgoing edge direction vectors (vA, vB).
func reflexVertices(poly *core.Polygon) []struct{ vA, vB geom.Vector } {
	n := poly.N()
	ccw := isCCW(poly)
	var out []struct{ vA, vB geom.Vector }
	for i := 0; i < n; i++ {
		prev := poly.V(core.VertexID((i - 1 + n) % n)).P
		cur := poly.V(core.VertexID(i)).P
		next := poly.V(core.VertexID((i + 1) % n)).P
		turnsRight := geom.RightTurn(prev, cur, next)
		reflex := turnsRight
		if !ccw {
			reflex = geom.LeftTurn(prev, cur, next)
		}
		if !reflex {
			continue
		}
		vA := cur.Sub(prev)
		vB := next.Sub(cur)
		out = append(out, struct{ vA, vB geom.Vector }{vA, vB})
	}
	return out
}

// xAxis is the line the not_x_mon=false default assumes the input is
// already monotone with respect to.
var xAxis = geom.NewLine(geom.NewPoint(geom.NewExactInt(0), geom.NewExactInt(0)), geom.NewVector(geom.NewExactInt(1), geom.NewExactInt(0)))

// AssumeXAxisMonotone builds a Monotonicity against the x-axis without
// running the reflex-vertex analyzer, for callers that already know (or
// are willing to assume) their input is x-monotone.
func AssumeXAxisMonotone(poly *core.Polygon) (Monotonicity, error) {
	return monotonicityFromLine(poly, xAxis)
}

// AnalyzeMonotonicity finds a line L such that poly is monotone with
// respect to L, via the reflex-vertex angular sweep. Returns
// ErrNotMonotone if no such line exists.
func AnalyzeMonotonicity(poly *core.Polygon) (Monotonicity, error) {
	reflex := reflexVertices(poly)
	if len(reflex) == 0 {
		// Convex polygons are monotone with respect to every line; the
		// x-axis is as good as any.
		return monotonicityFromLine(poly, xAxis)
	}

	var events []dirEvent
	id := 0
	for _, r := range reflex {
		events = append(events, dirEvent{angle: geom.PseudoAngle(r.vB), end: false, id: id, vec: r.vB})
		events = append(events, dirEvent{angle: geom.PseudoAngle(r.vA), end: true, id: id, vec: r.vA})
		id++
		antiA, antiB := r.vA.Neg(), r.vB.Neg()
		events = append(events, dirEvent{angle: geom.PseudoAngle(antiB), end: false, id: id, vec: antiB})
		events = append(events, dirEvent{angle: geom.PseudoAngle(antiA), end: true, id: id, vec: antiA})
		id++
	}

	sort.Slice(events, func(i, j int) bool {
		c := events[i].angle.Cmp(events[j].angle)
		if c != 0 {
			return c < 0
		}
		if events[i].end != events[j].end {
			return events[i].end // END before START at a tied angle
		}
		return events[i].id < events[j].id
	})

	n := len(events)
	active := make([]bool, id)
	activeCnt := 0
	for _, e := range events {
		if e.end {
			if active[e.id] {
				active[e.id] = false
				activeCnt--
			}
		} else if !active[e.id] {
			active[e.id] = true
			activeCnt++
		}
	}

	if activeCnt == 0 {
		a := events[n-1].vec
		b := events[0].vec
		if l, ok := tryMonotonicityLine(poly, a, b); ok {
			return monotonicityFromLine(poly, l)
		}
	}

	for start := 0; start < n; start++ {
		i := start
		if events[i].end {
			if active[events[i].id] {
				active[events[i].id] = false
				activeCnt--
			}
		} else if !active[events[i].id] {
			active[events[i].id] = true
			activeCnt++
		}
		if activeCnt == 0 {
			a := events[i].vec
			b := events[(i+1)%n].vec
			if l, ok := tryMonotonicityLine(poly, a, b); ok {
				return monotonicityFromLine(poly, l)
			}
		}
	}

	return Monotonicity{}, ErrNotMonotone
}

// tryMonotonicityLine builds the candidate line perpendicular to the
// bisector of directions a and b, then verifies it against the polygon.
func tryMonotonicityLine(poly *core.Polygon, a, b geom.Vector) (geom.Line, bool) {
	bis := geom.UnitSum(a, b)
	if bis.IsZero() {
		bis = a.Perpendicular()
	}
	dir := bis.Perpendicular()
	if dir.X.Sign() < 0 || (dir.X.IsZero() && dir.Y.Sign() < 0) {
		dir = dir.Neg()
	}
	origin := geom.NewPoint(geom.NewExactInt(0), geom.NewExactInt(0))
	l := geom.NewLine(origin, dir)
	if !testMonotonicityLineOnPolygon(poly, l) {
		return geom.Line{}, false
	}
	return l, true
}

// testMonotonicityLineOnPolygon reports whether poly's boundary, walked
// from its minimal-projection vertex, has exactly one local maximum of
// projection onto l.D before returning to the minimum — the standard
// monotone-polygon characterization, expressed directly via projections.
func testMonotonicityLineOnPolygon(poly *core.Polygon, l geom.Line) bool {
	n := poly.N()
	proj := make([]geom.Exact, n)
	minIdx := 0
	for i := 0; i < n; i++ {
		proj[i] = poly.V(core.VertexID(i)).P.Vector().Dot(l.D)
		if proj[i].LessThan(proj[minIdx]) {
			minIdx = i
		}
	}

	rightward := true
	for k := 1; k <= n; k++ {
		i := (minIdx + k) % n
		prev := (minIdx + k - 1) % n
		cmp := proj[i].Cmp(proj[prev])
		if rightward {
			if cmp < 0 {
				rightward = false
			}
		} else if cmp > 0 {
			return false
		}
	}
	return true
}

// monotonicityFromLine computes monMin/monMax (the vertices extremal
// along l.D) and packages the result.
func monotonicityFromLine(poly *core.Polygon, l geom.Line) (Monotonicity, error) {
	n := poly.N()
	minIdx, maxIdx := 0, 0
	minProj := poly.V(0).P.Vector().Dot(l.D)
	maxProj := minProj
	for i := 1; i < n; i++ {
		p := poly.V(core.VertexID(i)).P.Vector().Dot(l.D)
		if p.LessThan(minProj) {
			minProj = p
			minIdx = i
		}
		if maxProj.LessThan(p) {
			maxProj = p
			maxIdx = i
		}
	}
	if minIdx == maxIdx {
		return Monotonicity{}, ErrNotMonotone
	}
	return Monotonicity{Line: l, MonMin: core.VertexID(minIdx), MonMax: core.VertexID(maxIdx)}, nil
}
