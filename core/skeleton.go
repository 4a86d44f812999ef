// Package core: Skeleton, the aggregate of a Polygon plus its grown
// Node/Arc arenas.

package core

import "github.com/monoskel/monoskel/geom"

// Skeleton is the full output of a straight-skeleton computation: the
// input polygon plus every node and arc produced while propagating its
// wavefront.
type Skeleton struct {
	Polygon *Polygon
	Nodes   *NodeArena
	Arcs    *ArcArena
	BBox    geom.BBox
}

// NewSkeleton seeds a Skeleton with one terminal node per polygon vertex
// and an empty arc arena.
func NewSkeleton(poly *Polygon) *Skeleton {
	return &Skeleton{
		Polygon: poly,
		Nodes:   NewNodeArena(poly),
		Arcs:    NewArcArena(),
		BBox:    geom.NewBBox(poly.Points()),
	}
}

// LiveNodes returns the ids of every non-disabled node, in id order.
func (s *Skeleton) LiveNodes() []NodeID {
	out := make([]NodeID, 0, s.Nodes.Len())
	for i, n := range s.Nodes.All() {
		if !n.IsDisabled() {
			out = append(out, NodeID(i))
		}
	}
	return out
}

// LiveArcs returns the ids of every non-disabled arc, in id order.
func (s *Skeleton) LiveArcs() []ArcID {
	out := make([]ArcID, 0, s.Arcs.Len())
	for i, a := range s.Arcs.All() {
		if !a.IsDisabled() {
			out = append(out, ArcID(i))
		}
	}
	return out
}

// SortIncidentArcs sorts every node's incident-arc list into CCW order
// using the ArcOrder comparator.
func (s *Skeleton) SortIncidentArcs() {
	less := ArcOrder(s.Arcs)
	for i := range s.Nodes.All() {
		n := s.Nodes.Get(NodeID(i))
		insertionSortArcs(n.Arcs, less)
	}
}

// insertionSortArcs sorts a short incident-arc list in place. Node degree
// in a straight skeleton is tiny (3, occasionally more at a fused
// multi-way event), so insertion sort is both simplest and fastest here.
func insertionSortArcs(arcs []ArcID, less func(i, j ArcID) bool) {
	for i := 1; i < len(arcs); i++ {
		for j := i; j > 0 && less(arcs[j], arcs[j-1]); j-- {
			arcs[j], arcs[j-1] = arcs[j-1], arcs[j]
		}
	}
}
