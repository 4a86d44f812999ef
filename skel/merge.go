// Package skel: the skeleton merger.
//
// Each chain's propagation ran blind to the opposite chain, so its
// partial skeleton can overrun the region the seam claims. The seam
// starts at monMin as the weighted bisector of the two edges incident
// there (one per chain), repeatedly crosses the nearest partial-skeleton
// arc, fuses a node at the crossing, and swaps that side's facing edge
// for the one on the arc's far side — the crossed arc is precisely the
// boundary between the two edges' faces. When neither side's face
// boundary crosses the seam anymore, the two facing edges are the ones
// incident at monMax and the seam closes into that terminal node.
// Whatever overran past the seam is pruned afterwards.
package skel

import (
	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

// mergeSide is one chain's view of the seam sweep: the edge whose face
// currently borders the seam, and an index of the chain's partial-
// skeleton arcs by their incident edges.
type mergeSide struct {
	facing core.EdgeID
	byEdge map[core.EdgeID][]core.ArcID
}

// startEdge returns the chain's live edge incident to the given terminal
// vertex; the first and last chain edges never collapse, so the lookup
// only has to examine the two chain ends.
func startEdge(poly *core.Polygon, chain *core.Chain, v core.VertexID) core.EdgeID {
	f := chain.Front()
	if e := poly.E(f); e.U == v || e.V == v {
		return f
	}
	return chain.Back()
}

// advanceAcross swaps the facing edge for the one on the far side of a
// just-crossed arc.
func (s *mergeSide) advanceAcross(arc *core.Arc) {
	if arc.LeftEdge == s.facing {
		s.facing = arc.RightEdge
	} else {
		s.facing = arc.LeftEdge
	}
}

// intersectSeamArc intersects the seam ray with an arc in whichever
// realization the arc currently has. An arc collinear with the seam —
// the two chains' bisectors coincide, as symmetric input produces — is
// "crossed" at its nearest endpoint ahead of the seam source: the seam
// runs along the arc and leaves it there.
func intersectSeamArc(seam geom.Ray, arc *core.Arc) geom.Point {
	line := arc.SupportingLine()
	if geom.Parallel(seam.D, line.D) {
		if !seam.D.Cross(line.P.Sub(seam.P)).IsZero() {
			return geom.INFPOINT
		}
		if arc.IsEdge() {
			return nearestForward(seam, arc.Seg.A, arc.Seg.B)
		}
		return nearestForward(seam, arc.Ray.P)
	}
	if arc.IsEdge() {
		return geom.IntersectRaySegment(seam, arc.Seg)
	}
	return geom.IntersectRays(seam, arc.Ray)
}

// nearestForward returns whichever of the given on-seam points lies
// closest ahead of the seam's source, or INFPOINT if none is ahead.
func nearestForward(seam geom.Ray, pts ...geom.Point) geom.Point {
	best := geom.INFPOINT
	var bestParam geom.Exact
	for _, p := range pts {
		t := geom.RayParam(seam, p)
		if t.Sign() <= 0 {
			continue
		}
		if best.IsInfinite() || t.LessThan(bestParam) {
			best, bestParam = p, t
		}
	}
	return best
}

// Merge zips the two partial skeletons produced independently by
// PropagateChain into one connected graph spanning monMin to monMax,
// then prunes whatever each chain grew past the seam.
func Merge(poly *core.Polygon, sk *core.Skeleton, upper, lower *core.Chain, upProp, loProp ChainPropagation, mono Monotonicity) error {
	if upper.Empty() || lower.Empty() {
		// One side contributes no propagation; there is no mouth to zip,
		// only overruns to discard.
		pruneOverruns(sk)
		return nil
	}

	up := &mergeSide{facing: startEdge(poly, upper, mono.MonMin), byEdge: indexByEdge(sk, upProp)}
	lo := &mergeSide{facing: startEdge(poly, lower, mono.MonMin), byEdge: indexByEdge(sk, loProp)}

	seamNode := core.NodeID(mono.MonMin)
	seamPoint := sk.Nodes.Get(seamNode).P
	monMaxNode := core.NodeID(mono.MonMax)
	closeFn := func(n core.NodeID) geom.Point { return sk.Nodes.Get(n).P }

	// Every iteration crosses at least one not-yet-clipped arc, so the
	// arc count bounds the sweep; exceeding it means the seam is cycling
	// and the invariants are broken.
	maxIter := 2*(len(upProp.Arcs)+len(loProp.Arcs)) + 8

	for iter := 0; ; iter++ {
		if iter > maxIter {
			return ErrNumericInconsistency
		}

		seamRay, perpendicular := seamBisector(poly, up.facing, lo.facing, seamPoint, mono.Line)
		seamArc := sk.Arcs.AddRay(seamNode, up.facing, lo.facing, seamRay)
		sk.Arcs.Get(seamArc).Perpendicular = perpendicular
		sk.Nodes.AddIncidentArc(seamNode, seamArc)

		p := nearestCrossing(sk, seamRay, up, lo)
		if p.IsInfinite() {
			// No face boundary ahead on either side: both facing edges
			// are incident at monMax and the seam closes into it.
			closeOrRetire(sk, closeFn, seamArc, monMaxNode, sk.Nodes.Get(monMaxNode).P)
			pruneOverruns(sk)
			return nil
		}

		node := fuseAt(poly, sk, closeFn, seamRay, p, up, lo)
		sk.Arcs.Close(seamArc, node, p, closeFn)
		sk.Nodes.AddIncidentArc(node, seamArc)
		seamNode, seamPoint = node, p
	}
}

// indexByEdge builds the facing-edge index over one chain's arcs.
func indexByEdge(sk *core.Skeleton, prop ChainPropagation) map[core.EdgeID][]core.ArcID {
	byEdge := make(map[core.EdgeID][]core.ArcID)
	for _, id := range prop.Arcs {
		a := sk.Arcs.Get(id)
		byEdge[a.LeftEdge] = append(byEdge[a.LeftEdge], id)
		byEdge[a.RightEdge] = append(byEdge[a.RightEdge], id)
	}
	return byEdge
}

// seamBisector builds the weighted bisector of the two current facing
// edges through the current seam point, oriented toward monMax (positive
// projection on the monotonicity direction). A seam segment perpendicular
// to the monotonicity line has no such projection; it keeps the vertex's
// velocity orientation, which advances in event time, and is flagged.
func seamBisector(poly *core.Polygon, upEdge, loEdge core.EdgeID, from geom.Point, monLine geom.Line) (geom.Ray, bool) {
	wU, wL := poly.E(upEdge).Weight, poly.E(loEdge).Weight
	bis := BuildBisector(poly.Segment(upEdge), poly.Segment(loEdge), wU, wL, from)
	dir := bis.Direction()
	s := dir.Dot(monLine.D).Sign()
	if s < 0 {
		dir = dir.Neg()
	}
	return geom.NewRay(from, dir), s == 0
}

// nearestCrossing returns the closest point, strictly ahead of the seam
// ray's source, where either side's face boundary crosses the seam — or
// INFPOINT when neither side's does.
func nearestCrossing(sk *core.Skeleton, seam geom.Ray, up, lo *mergeSide) geom.Point {
	best := geom.INFPOINT
	var bestParam geom.Exact
	for _, side := range [2]*mergeSide{up, lo} {
		for _, id := range side.byEdge[side.facing] {
			arc := sk.Arcs.Get(id)
			if arc.IsDisabled() {
				continue
			}
			p := intersectSeamArc(seam, arc)
			if p.IsInfinite() {
				continue
			}
			t := geom.RayParam(seam, p)
			if t.Sign() <= 0 {
				continue
			}
			if best.IsInfinite() || t.LessThan(bestParam) {
				best, bestParam = p, t
			}
		}
	}
	return best
}

// fuseAt resolves the skeleton node at seam crossing point p and crosses
// every arc that passes through p on either side's current face
// boundary, advancing each side's facing edge across each crossed arc.
// Three behaviors per arc:
//   - the arc already ends at p: reuse its end node, fusing the
//     coincident meeting points into one multi-way node;
//   - clipping the arc at p would leave zero length (p is its root): the
//     arc never grew, disable it in place and do not advance the facing
//     edge across it;
//   - otherwise: clip the arc (shorten its segment, or materialize its
//     ray) to end at the fused node.
func fuseAt(poly *core.Polygon, sk *core.Skeleton, closeFn func(core.NodeID) geom.Point, seam geom.Ray, p geom.Point, up, lo *mergeSide) core.NodeID {
	node := core.NodeID(-1)
	crossed := make(map[core.ArcID]bool)

	for {
		id, side := findArcThrough(sk, seam, p, up, lo, crossed)
		if side == nil {
			break
		}
		crossed[id] = true
		arc := sk.Arcs.Get(id)

		if sk.Nodes.Get(arc.First).P.Equal(p) {
			// Zero-length clip: a placeholder that never grew separates
			// no faces, so the facing edge stays.
			if node < 0 {
				node = arc.First
			}
			arc.Disable()
			continue
		}

		if node < 0 {
			if arc.IsEdge() && sk.Nodes.Get(arc.Second).P.Equal(p) {
				node = arc.Second
			} else {
				node = sk.Nodes.AddNormal(p, weightedTime(poly, side.facing, p))
			}
		}
		if arc.Second != node {
			sk.Arcs.Close(id, node, p, closeFn)
			sk.Nodes.AddIncidentArc(node, id)
		}
		side.advanceAcross(arc)
	}
	return node
}

// findArcThrough returns one not-yet-crossed live arc on either side's
// current face boundary that the seam meets exactly at p, preferring the
// upper side and lower arc ids for determinism.
func findArcThrough(sk *core.Skeleton, seam geom.Ray, p geom.Point, up, lo *mergeSide, crossed map[core.ArcID]bool) (core.ArcID, *mergeSide) {
	for _, side := range [2]*mergeSide{up, lo} {
		for _, id := range side.byEdge[side.facing] {
			arc := sk.Arcs.Get(id)
			if arc.IsDisabled() || crossed[id] {
				continue
			}
			if q := intersectSeamArc(seam, arc); !q.IsInfinite() && q.Equal(p) {
				return id, side
			}
		}
	}
	return 0, nil
}

// pruneOverruns retires everything a chain simulated past the seam: any
// arc still growing as a ray once the merge is done, then, iteratively,
// any internal node left with fewer than two live arcs along with its
// last dangling arc. Finally each node's incidence list is rebuilt from
// the surviving arcs so the CCW sort operates on live data only.
func pruneOverruns(sk *core.Skeleton) {
	for _, id := range sk.LiveArcs() {
		if sk.Arcs.Get(id).IsRay() {
			sk.Arcs.Get(id).Disable()
		}
	}

	for changed := true; changed; {
		changed = false
		deg := make([]int, sk.Nodes.Len())
		last := make([]core.ArcID, sk.Nodes.Len())
		for _, id := range sk.LiveArcs() {
			a := sk.Arcs.Get(id)
			deg[a.First]++
			last[a.First] = id
			deg[a.Second]++
			last[a.Second] = id
		}
		for i := 0; i < sk.Nodes.Len(); i++ {
			n := sk.Nodes.Get(core.NodeID(i))
			if n.IsDisabled() || n.IsTerminal() || deg[i] > 1 {
				continue
			}
			if deg[i] == 1 {
				sk.Arcs.Get(last[i]).Disable()
			}
			n.Disable()
			changed = true
		}
	}

	for i := 0; i < sk.Nodes.Len(); i++ {
		sk.Nodes.Get(core.NodeID(i)).Arcs = nil
	}
	for _, id := range sk.LiveArcs() {
		a := sk.Arcs.Get(id)
		sk.Nodes.AddIncidentArc(a.First, id)
		sk.Nodes.AddIncidentArc(a.Second, id)
	}
}
