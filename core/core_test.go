package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

func square() *core.Polygon {
	pts := []geom.Point{
		geom.NewPoint(geom.NewExactInt(0), geom.NewExactInt(0)),
		geom.NewPoint(geom.NewExactInt(1), geom.NewExactInt(0)),
		geom.NewPoint(geom.NewExactInt(1), geom.NewExactInt(1)),
		geom.NewPoint(geom.NewExactInt(0), geom.NewExactInt(1)),
	}
	w := []geom.Exact{geom.NewExactInt(1), geom.NewExactInt(1), geom.NewExactInt(1), geom.NewExactInt(1)}
	p, err := core.NewPolygon(pts, w)
	if err != nil {
		panic(err)
	}
	return p
}

func TestNewPolygonRejectsTooFew(t *testing.T) {
	_, err := core.NewPolygon(nil, nil)
	require.ErrorIs(t, err, core.ErrEmptyPolygon)
}

func TestNewPolygonRejectsNonPositiveWeight(t *testing.T) {
	pts := []geom.Point{
		geom.NewPoint(geom.NewExactInt(0), geom.NewExactInt(0)),
		geom.NewPoint(geom.NewExactInt(1), geom.NewExactInt(0)),
		geom.NewPoint(geom.NewExactInt(0), geom.NewExactInt(1)),
	}
	w := []geom.Exact{geom.NewExactInt(1), geom.NewExactInt(0), geom.NewExactInt(1)}
	_, err := core.NewPolygon(pts, w)
	require.ErrorIs(t, err, core.ErrNonPositiveWeight)
}

func TestCNextCPrevCycle(t *testing.T) {
	p := square()
	require.Equal(t, core.EdgeID(1), p.CNext(0))
	require.Equal(t, core.EdgeID(0), p.CPrev(1))
	require.Equal(t, core.EdgeID(0), p.CNext(3))
	require.Equal(t, core.EdgeID(3), p.CPrev(0))
}

func TestChainSpliceKeepsHandlesStable(t *testing.T) {
	c := core.NewChain([]core.EdgeID{0, 1, 2, 3})
	require.Equal(t, core.EdgeID(0), c.Front())
	require.Equal(t, core.EdgeID(3), c.Back())

	c.Remove(1)
	assert.False(t, c.Contains(1))
	assert.Equal(t, []core.EdgeID{0, 2, 3}, c.Edges())
	assert.Equal(t, core.EdgeID(2), c.Next(0))
	assert.Equal(t, core.EdgeID(0), c.Prev(2))

	c.Remove(0)
	assert.Equal(t, core.EdgeID(2), c.Front())
	c.Remove(3)
	assert.Equal(t, core.EdgeID(2), c.Back())
	c.Remove(2)
	assert.True(t, c.Empty())
}

func TestSkeletonSeedsTerminalNodesWithVertexIDs(t *testing.T) {
	p := square()
	s := core.NewSkeleton(p)
	require.Equal(t, 4, s.Nodes.Len())
	for i := 0; i < 4; i++ {
		n := s.Nodes.Get(core.NodeID(i))
		assert.True(t, n.IsTerminal())
		assert.True(t, n.P.Equal(p.V(core.VertexID(i)).P))
	}
}

func TestArcCloseMaterializesSegment(t *testing.T) {
	p := square()
	s := core.NewSkeleton(p)
	origin := geom.NewPoint(geom.NewExactInt(0), geom.NewExactInt(0))
	r := geom.NewRay(origin, geom.NewVector(geom.NewExactInt(1), geom.NewExactInt(1)))
	id := s.Arcs.AddRay(core.NodeID(0), 0, 1, r)
	require.True(t, s.Arcs.Get(id).IsRay())

	mid := geom.NewPoint(geom.NewExactInt(1), geom.NewExactInt(1))
	newNode := s.Nodes.AddNormal(mid, geom.NewExactInt(1))
	s.Arcs.Close(id, newNode, mid, func(n core.NodeID) geom.Point { return s.Nodes.Get(n).P })

	arc := s.Arcs.Get(id)
	assert.True(t, arc.IsEdge())
	assert.True(t, arc.Seg.B.Equal(mid))
}
