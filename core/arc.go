// Package core: Arc, the skeleton graph's traces, its append-only arena,
// and the comparator that orders arcs counter-clockwise around a shared
// node.

package core

import "github.com/monoskel/monoskel/geom"

// ArcType classifies an Arc.
type ArcType int

const (
	// ArcRay is an unbounded trace emanating from a terminal vertex; its
	// second endpoint is not yet bound.
	ArcRay ArcType = iota
	// ArcNormal is a finite segment between two bound nodes.
	ArcNormal
	// ArcDisabled marks a retired arc (never removed, only flagged).
	ArcDisabled
)

// unboundNode marks Arc.Second as "not yet bound": the arc is still
// growing and its second endpoint is not decided.
const unboundNode NodeID = -1

// ArcID indexes an ArcArena.
type ArcID int

// Arc is one trace of the skeleton: a ray while growing, a segment once
// its second endpoint is fixed.
type Arc struct {
	Type          ArcType
	First         NodeID
	Second        NodeID // unboundNode while still a ray
	LeftEdge      EdgeID
	RightEdge     EdgeID
	Seg           geom.Segment // valid when Type == ArcNormal
	Ray           geom.Ray     // valid when Type == ArcRay
	Perpendicular bool         // true if perpendicular to the monotonicity line
}

// IsRay reports whether the arc is still an unbounded ray.
func (a *Arc) IsRay() bool { return a.Type == ArcRay }

// IsEdge reports whether the arc has been materialized as a finite segment.
func (a *Arc) IsEdge() bool { return a.Type == ArcNormal }

// IsDisabled reports whether the arc has been retired.
func (a *Arc) IsDisabled() bool { return a.Type == ArcDisabled }

// Disable retires the arc in place.
func (a *Arc) Disable() { a.Type = ArcDisabled }

// SupportingLine returns the line containing the arc, ray or segment.
func (a *Arc) SupportingLine() geom.Line {
	if a.IsEdge() {
		return a.Seg.SupportingLine()
	}
	return a.Ray.SupportingLine()
}

// SecondNodeOf returns the endpoint of a that is not idx.
func (a *Arc) SecondNodeOf(idx NodeID) NodeID {
	if idx == a.First {
		return a.Second
	}
	return a.First
}

// ArcArena is the append-only store of every Arc ever created.
type ArcArena struct {
	arcs []Arc
}

// NewArcArena returns an empty arena.
func NewArcArena() *ArcArena { return &ArcArena{} }

// AddRay appends a new growing-ray arc rooted at `first`, and returns its id.
func (a *ArcArena) AddRay(first NodeID, left, right EdgeID, r geom.Ray) ArcID {
	id := ArcID(len(a.arcs))
	a.arcs = append(a.arcs, Arc{Type: ArcRay, First: first, Second: unboundNode, LeftEdge: left, RightEdge: right, Ray: r})
	return id
}

// Get returns a pointer to arc id for in-place mutation.
func (a *ArcArena) Get(id ArcID) *Arc { return &a.arcs[id] }

// Len returns the number of arcs ever created (disabled or not).
func (a *ArcArena) Len() int { return len(a.arcs) }

// All returns every arc, including disabled ones, in id order.
func (a *ArcArena) All() []Arc { return a.arcs }

// Close materializes a growing ray as a finite segment ending at `second`,
// or clips an existing segment to a new (earlier) second endpoint.
func (a *ArcArena) Close(id ArcID, second NodeID, p geom.Point, firstPoint func(NodeID) geom.Point) {
	arc := a.Get(id)
	start := firstPoint(arc.First)
	arc.Second = second
	arc.Seg = geom.NewSegment(start, p)
	arc.Type = ArcNormal
}

// ArcOrder reports whether arc i should sort before arc j when both are
// incident to the same node: arcs are ordered so each arc's right edge
// matches its CCW successor's left edge around the shared node.
func ArcOrder(arcs *ArcArena) func(i, j ArcID) bool {
	return func(i, j ArcID) bool {
		l, r := arcs.Get(i), arcs.Get(j)
		sameNode := l.First == r.First || l.Second == r.Second
		if sameNode && l.RightEdge == r.LeftEdge {
			return true
		}
		if l.First == r.Second && l.RightEdge == r.RightEdge {
			return true
		}
		if l.Second == r.First && l.LeftEdge == r.LeftEdge {
			return true
		}
		return false
	}
}
