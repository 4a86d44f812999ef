// Package core: Vertex, Edge and Polygon — the input model.
//
// Identifiers are dense, 0-based ints: VertexID i is input.Vertices[i], and
// EdgeID i is input.Edges[i], with input.Edges[i] running from vertex i to
// vertex (i+1) mod n. That single invariant is what lets cNext/cPrev below
// be O(1) index arithmetic instead of a map lookup.

package core

import "github.com/monoskel/monoskel/geom"

// VertexID indexes Polygon.Vertices.
type VertexID int

// EdgeID indexes Polygon.Edges.
type EdgeID int

// Vertex is one polygon corner: a dense id and its exact position.
type Vertex struct {
	ID VertexID
	P  geom.Point
}

// Edge is one directed boundary edge U->V with a positive propagation
// weight, the speed its offset line moves inward at.
type Edge struct {
	ID     EdgeID
	U, V   VertexID
	Weight geom.Exact
}

// Polygon is the cyclic boundary: edge i runs from vertex i to vertex
// (i+1) mod n, so the polygon is simple-by-construction for any
// non-degenerate, non-self-intersecting vertex ordering
// (self-intersection is the caller's problem and is not checked here).
type Polygon struct {
	Vertices []Vertex
	Edges    []Edge
}

// NewPolygon builds a Polygon from vertex positions and per-edge weights
// (weights[i] is the weight of the edge points[i] -> points[(i+1)%n]).
func NewPolygon(points []geom.Point, weights []geom.Exact) (*Polygon, error) {
	n := len(points)
	if n < 3 {
		return nil, ErrEmptyPolygon
	}
	if len(weights) != n {
		return nil, ErrVertexWeightMismatch
	}

	p := &Polygon{
		Vertices: make([]Vertex, n),
		Edges:    make([]Edge, n),
	}
	for i, pt := range points {
		p.Vertices[i] = Vertex{ID: VertexID(i), P: pt}
	}
	for i := 0; i < n; i++ {
		if weights[i].Sign() <= 0 {
			return nil, ErrNonPositiveWeight
		}
		u, v := VertexID(i), VertexID((i+1)%n)
		if p.Vertices[u].P.Equal(p.Vertices[v].P) {
			return nil, ErrDegenerateEdge
		}
		p.Edges[i] = Edge{ID: EdgeID(i), U: u, V: v, Weight: weights[i]}
	}
	return p, nil
}

// N returns the number of vertices (== number of edges).
func (p *Polygon) N() int { return len(p.Vertices) }

// V returns the vertex with the given id.
func (p *Polygon) V(id VertexID) Vertex { return p.Vertices[id] }

// E returns the edge with the given id.
func (p *Polygon) E(id EdgeID) Edge { return p.Edges[id] }

// Segment returns the geometric segment realizing edge id.
func (p *Polygon) Segment(id EdgeID) geom.Segment {
	e := p.Edges[id]
	return geom.NewSegment(p.V(e.U).P, p.V(e.V).P)
}

// CNext returns the cyclically-next edge id along the original (never
// spliced) boundary.
func (p *Polygon) CNext(id EdgeID) EdgeID { return EdgeID((int(id) + 1) % p.N()) }

// CPrev returns the cyclically-previous edge id along the original
// boundary.
func (p *Polygon) CPrev(id EdgeID) EdgeID { return EdgeID((int(id) - 1 + p.N()) % p.N()) }

// Points returns every vertex position, in id order — used for bbox
// computation and output normalization.
func (p *Polygon) Points() []geom.Point {
	pts := make([]geom.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = v.P
	}
	return pts
}
