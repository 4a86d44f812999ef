// Package core: Node, the skeleton graph's vertices, and its append-only
// arena.
//
// Invariant: terminal-node identifiers equal input vertex identifiers,
// 0-based and contiguous. NewNodeArena below seeds exactly that.

package core

import "github.com/monoskel/monoskel/geom"

// NodeType classifies a Node.
type NodeType int

const (
	// NodeTerminal is an input polygon vertex, present from the start.
	NodeTerminal NodeType = iota
	// NodeNormal is an internal wavefront-collapse meeting point.
	NodeNormal
	// NodeDisabled marks a node logically deleted (fused into another, or
	// never actually reached — arenas never shrink, only flag entries).
	NodeDisabled
)

// NodeID indexes a NodeArena.
type NodeID int

// Node is one vertex of the output skeleton graph.
type Node struct {
	Type NodeType
	P    geom.Point
	Time geom.Exact
	// Arcs lists, by id, every arc incident to this node. Populated as
	// arcs are created/closed, and sorted into CCW order once the node's
	// final incidence set is known (Skeleton.SortIncidentArcs).
	Arcs []ArcID
}

// IsDisabled reports whether n has been logically deleted.
func (n *Node) IsDisabled() bool { return n.Type == NodeDisabled }

// IsTerminal reports whether n is an input polygon vertex.
func (n *Node) IsTerminal() bool { return n.Type == NodeTerminal }

// Disable logically deletes n. Arenas never shrink; disabling is a flag,
// not deletion, so node ids stay stable for the whole computation.
func (n *Node) Disable() { n.Type = NodeDisabled }

// NodeArena is the append-only store of every Node ever created.
type NodeArena struct {
	nodes []Node
}

// NewNodeArena seeds the arena with one TERMINAL node per polygon vertex,
// satisfying the "terminal id == vertex id" invariant by construction.
func NewNodeArena(poly *Polygon) *NodeArena {
	a := &NodeArena{nodes: make([]Node, poly.N())}
	for i, v := range poly.Vertices {
		a.nodes[i] = Node{Type: NodeTerminal, P: v.P, Time: geom.NewExactInt(0)}
	}
	return a
}

// AddNormal appends a new NORMAL node born at time t, point p, and returns
// its id.
func (a *NodeArena) AddNormal(p geom.Point, t geom.Exact) NodeID {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Node{Type: NodeNormal, P: p, Time: t})
	return id
}

// Get returns a pointer to node id for in-place mutation (appending an
// incident arc, disabling, etc.).
func (a *NodeArena) Get(id NodeID) *Node { return &a.nodes[id] }

// Len returns the number of nodes ever created (disabled or not).
func (a *NodeArena) Len() int { return len(a.nodes) }

// AddIncidentArc records that arc aid touches node id.
func (a *NodeArena) AddIncidentArc(id NodeID, aid ArcID) {
	n := a.Get(id)
	n.Arcs = append(n.Arcs, aid)
}

// All returns every node, including disabled ones, in id order.
func (a *NodeArena) All() []Node { return a.nodes }
