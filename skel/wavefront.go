// Package skel: the per-chain wavefront propagator. Seeds one bisector
// per interior chain vertex, then repeatedly pops the earliest collapse
// event, splices the collapsed edge out of the chain, and spawns the
// replacement bisector for its surviving neighbors.
//
// Edge supporting lines never move; only the bisector emanating from
// each current wavefront vertex does, so BuildBisector is always fed the
// two flanking edges' input segments and weights, regardless of how many
// prior collapses occurred.
package skel

import (
	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

// weightedTime returns the wavefront time at which edge id's offset line
// sweeps over p: the perpendicular distance from p to the edge's
// supporting line, divided by the edge's speed. Every point a bisector
// arc passes through is weighted-equidistant from the arc's two defining
// edges, so either edge gives the same answer.
func weightedTime(poly *core.Polygon, id core.EdgeID, p geom.Point) geom.Exact {
	line := poly.Segment(id).SupportingLine()
	return geom.NormalDistance(line, p).Div(poly.E(id).Weight)
}

// pushEventFor (re)computes main edge e's collapse event from its
// current flanking arcs and schedules it, or drops any stale entry if no
// event is currently computable (e sits at a chain boundary, or its
// flanking rays don't converge).
func pushEventFor(sk *core.Skeleton, chain *core.Chain, arcOf map[core.EdgeID]core.ArcID, q *EventQueue, poly *core.Polygon, e core.EdgeID) {
	left := chain.Prev(e)
	if left == core.NoEdge || chain.Next(e) == core.NoEdge {
		q.Unschedule(e)
		return
	}
	arcLID, okL := arcOf[left]
	arcRID, okR := arcOf[e]
	if !okL || !okR {
		q.Unschedule(e)
		return
	}
	arcL := sk.Arcs.Get(arcLID)
	arcR := sk.Arcs.Get(arcRID)
	p := geom.IntersectRays(arcL.Ray, arcR.Ray)
	if p.IsInfinite() {
		q.Unschedule(e)
		return
	}
	q.Schedule(&Event{Time: weightedTime(poly, e, p), Point: p, MainEdge: e})
}

// seedBisector builds and records the bisector arc separating edges L
// and R, rooted at node at point p. away disambiguates the orientation
// of a midline bisector (two parallel edges facing across the interior
// have a full line as their bisector; the arc grows away from the region
// that just collapsed) — initial seeding passes p itself, since chain-
// adjacent edges share a vertex and never produce a midline.
func seedBisector(sk *core.Skeleton, poly *core.Polygon, monLine geom.Line, L, R core.EdgeID, node core.NodeID, p, away geom.Point) core.ArcID {
	wL, wR := poly.E(L).Weight, poly.E(R).Weight
	bis := BuildBisector(poly.Segment(L), poly.Segment(R), wL, wR, p)
	dir := bis.Direction()
	if bis.IsLine && dir.Dot(away.Sub(p)).Sign() > 0 {
		dir = dir.Neg()
	}
	id := sk.Arcs.AddRay(node, L, R, geom.NewRay(p, dir))
	sk.Arcs.Get(id).Perpendicular = geom.Parallel(dir, monLine.D.Perpendicular())
	sk.Nodes.AddIncidentArc(node, id)
	return id
}

// ChainPropagation is the result of propagating one monotone chain's
// wavefront to completion: every arc the chain's partial skeleton grew,
// in creation order. A chain's own simulation has no visibility into the
// opposite chain, so its later arcs can legitimately overrun the region
// the cross-chain seam will claim — the merger clips or discards them.
type ChainPropagation struct {
	Arcs []core.ArcID
}

// PropagateChain runs the wavefront simulation for a single monotone
// chain, growing arcs and nodes into sk until the chain's internal events
// are exhausted. A chain with fewer than 2 edges has no interior vertex
// and is a no-op.
func PropagateChain(poly *core.Polygon, sk *core.Skeleton, chain *core.Chain, monLine geom.Line) (ChainPropagation, error) {
	edges := chain.Edges()
	var prop ChainPropagation
	if len(edges) < 2 {
		return prop, nil
	}

	arcOf := make(map[core.EdgeID]core.ArcID, len(edges)-1)
	q := NewEventQueue()

	for i := 0; i < len(edges)-1; i++ {
		L, R := edges[i], edges[i+1]
		nodeID := core.NodeID(poly.E(R).U)
		p := sk.Nodes.Get(nodeID).P
		id := seedBisector(sk, poly, monLine, L, R, nodeID, p, p)
		arcOf[L] = id
		prop.Arcs = append(prop.Arcs, id)
	}

	for i := 1; i < len(edges)-1; i++ {
		pushEventFor(sk, chain, arcOf, q, poly, edges[i])
	}

	closeFn := func(n core.NodeID) geom.Point { return sk.Nodes.Get(n).P }
	now := geom.NewExactInt(0)

	for {
		ev, ok := q.Pop()
		if !ok {
			break
		}
		e := ev.MainEdge
		if !chain.Contains(e) {
			continue
		}
		left, right := chain.Prev(e), chain.Next(e)
		if left == core.NoEdge || right == core.NoEdge {
			continue
		}
		arcLID, okL := arcOf[left]
		arcRID, okR := arcOf[e]
		if !okL || !okR {
			continue
		}

		if ev.Time.LessThan(now) {
			return ChainPropagation{}, ErrNumericInconsistency
		}
		now = ev.Time

		// Coincident events at the same point fuse into one multi-way
		// node: when a flanking arc is rooted exactly at the event point,
		// an earlier simultaneous event already created the node there,
		// so reuse it and retire the zero-length arc instead of
		// materializing it.
		arcL, arcR := sk.Arcs.Get(arcLID), sk.Arcs.Get(arcRID)
		var node core.NodeID
		switch {
		case sk.Nodes.Get(arcL.First).P.Equal(ev.Point):
			node = arcL.First
		case sk.Nodes.Get(arcR.First).P.Equal(ev.Point):
			node = arcR.First
		default:
			node = sk.Nodes.AddNormal(ev.Point, ev.Time)
		}
		closeOrRetire(sk, closeFn, arcLID, node, ev.Point)
		closeOrRetire(sk, closeFn, arcRID, node, ev.Point)

		chain.Remove(e)
		delete(arcOf, e)

		id := seedBisector(sk, poly, monLine, left, right, node, ev.Point, geom.Midpoint(poly.Segment(e).A, poly.Segment(e).B))
		arcOf[left] = id
		prop.Arcs = append(prop.Arcs, id)

		pushEventFor(sk, chain, arcOf, q, poly, left)
		pushEventFor(sk, chain, arcOf, q, poly, right)
	}

	return prop, nil
}

// closeOrRetire ends arc id at node: a normal close in the general case,
// or a disable when the close would leave a zero-length arc (the arc is
// already rooted at node).
func closeOrRetire(sk *core.Skeleton, closeFn func(core.NodeID) geom.Point, id core.ArcID, node core.NodeID, p geom.Point) {
	arc := sk.Arcs.Get(id)
	if arc.First == node {
		arc.Disable()
		return
	}
	sk.Arcs.Close(id, node, p, closeFn)
	sk.Nodes.AddIncidentArc(node, id)
}
