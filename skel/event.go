// Package skel: Event, a pending wavefront collapse.

package skel

import (
	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

// Event is a candidate collapse of the chain edge between two converging
// bisector arcs: at Time, the left and right arcs flanking MainEdge meet
// at Point, shrinking MainEdge to zero length.
type Event struct {
	Time     geom.Exact
	Point    geom.Point
	MainEdge core.EdgeID
	seq      int // monotonically increasing insertion order, for stable heap ties
	dropped  bool
}
