// Package skel: the chain decomposer. Splits the polygon boundary, at
// monMin/monMax, into the upper and lower chain of a *core.Chain each.

package skel

import (
	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

// Decompose splits poly's boundary into upper and lower chains relative
// to mono.Line, walking forward (via CNext) from monMin to monMax for one
// side and from monMax to monMin for the other. Neither chain comes back
// empty: each walk includes at least the edge leaving its start vertex,
// so when monMin and monMax are adjacent one chain is that single
// connecting edge.
func Decompose(poly *core.Polygon, mono Monotonicity) (upper, lower *core.Chain) {
	a := walk(poly, mono.MonMin, mono.MonMax)
	b := walk(poly, mono.MonMax, mono.MonMin)

	aSide := sideOf(poly, mono.Line, a)
	if aSide >= 0 {
		return core.NewChain(a), core.NewChain(b)
	}
	return core.NewChain(b), core.NewChain(a)
}

// walk collects, in order, the edge ids along poly's boundary starting at
// the edge leaving vertex `from` and ending at the edge arriving at
// vertex `to`.
func walk(poly *core.Polygon, from, to core.VertexID) []core.EdgeID {
	var edges []core.EdgeID
	e := core.EdgeID(from)
	for {
		edges = append(edges, e)
		if poly.E(e).V == to {
			break
		}
		e = poly.CNext(e)
		if e == core.EdgeID(from) {
			break // defensive: never actually loops given a simple polygon
		}
	}
	return edges
}

// sideOf reports which side of l the given edge chain lies on: +1 for the
// positive (left) side, -1 for negative, 0 if every edge lies exactly on
// l (fully degenerate, picked as "upper" by convention).
func sideOf(poly *core.Polygon, l geom.Line, edges []core.EdgeID) int {
	for _, e := range edges {
		seg := poly.Segment(e)
		mid := geom.Midpoint(seg.A, seg.B)
		if l.HasOnPositiveSide(mid) {
			return 1
		}
		if l.HasOnNegativeSide(mid) {
			return -1
		}
	}
	return 0
}
