package skel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
	"github.com/monoskel/monoskel/skel"
)

func pt(x, y int64) geom.Point {
	return geom.NewPoint(geom.NewExactInt(x), geom.NewExactInt(y))
}

func halfPt(x2, y2 int64) geom.Point {
	return geom.NewPoint(geom.NewExactRat(x2, 2), geom.NewExactRat(y2, 2))
}

func unitWeights(n int) []geom.Exact {
	w := make([]geom.Exact, n)
	for i := range w {
		w[i] = geom.NewExactInt(1)
	}
	return w
}

func polygon(t *testing.T, pts []geom.Point, w []geom.Exact) *core.Polygon {
	t.Helper()
	p, err := core.NewPolygon(pts, w)
	require.NoError(t, err)
	return p
}

func unitSquare(t *testing.T) *core.Polygon {
	return polygon(t, []geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}, unitWeights(4))
}

func rightTriangle(t *testing.T) *core.Polygon {
	return polygon(t, []geom.Point{pt(0, 0), pt(4, 0), pt(0, 3)}, unitWeights(3))
}

func rectangle4x1(t *testing.T) *core.Polygon {
	return polygon(t, []geom.Point{pt(0, 0), pt(4, 0), pt(4, 1), pt(0, 1)}, unitWeights(4))
}

func lShape(t *testing.T) *core.Polygon {
	pts := []geom.Point{pt(0, 0), pt(3, 0), pt(3, 1), pt(1, 1), pt(1, 2), pt(0, 2)}
	return polygon(t, pts, unitWeights(len(pts)))
}

// doubleDentedSquare is a square with one pocket opening east and one
// opening north. The two pockets' reflex vertices together rule out every
// sweep direction, so no monotonicity line exists — unlike the symmetric
// four-pointed stars one might reach for first, which turn out to be
// monotone along a diagonal.
func doubleDentedSquare(t *testing.T) *core.Polygon {
	pts := []geom.Point{
		pt(0, 0), pt(6, 0),
		pt(6, 1), pt(4, 1), pt(4, 3), pt(6, 3),
		pt(6, 6),
		pt(4, 6), pt(4, 4), pt(2, 4), pt(2, 6),
		pt(0, 6),
	}
	return polygon(t, pts, unitWeights(len(pts)))
}

// internalNodes returns the ids of live non-terminal nodes.
func internalNodes(sk *core.Skeleton) []core.NodeID {
	var out []core.NodeID
	for i, n := range sk.Nodes.All() {
		if !n.IsDisabled() && !n.IsTerminal() {
			out = append(out, core.NodeID(i))
		}
	}
	return out
}

func findNodeAt(t *testing.T, sk *core.Skeleton, p geom.Point) core.NodeID {
	t.Helper()
	for i, n := range sk.Nodes.All() {
		if !n.IsDisabled() && n.P.Equal(p) {
			return core.NodeID(i)
		}
	}
	t.Fatalf("no live node at %s", p)
	return 0
}

func TestAnalyzeMonotonicityConvexSquareSucceeds(t *testing.T) {
	p := unitSquare(t)
	mono, err := skel.AnalyzeMonotonicity(p)
	require.NoError(t, err)
	assert.NotEqual(t, mono.MonMin, mono.MonMax)
}

func TestAnalyzeMonotonicityLShapeFindsLine(t *testing.T) {
	p := lShape(t)
	mono, err := skel.AnalyzeMonotonicity(p)
	require.NoError(t, err)
	assert.NotEqual(t, mono.MonMin, mono.MonMax)
}

func TestAnalyzeMonotonicityDentedSquareFails(t *testing.T) {
	p := doubleDentedSquare(t)
	_, err := skel.AnalyzeMonotonicity(p)
	require.ErrorIs(t, err, skel.ErrNotMonotone)
}

func TestComputeNonMonotoneInputFails(t *testing.T) {
	p := doubleDentedSquare(t)
	_, err := skel.Compute(p, skel.ComputeOptions{AnalyzeMonotonicity: true})
	require.ErrorIs(t, err, skel.ErrNotMonotone)
}

func TestDecomposeSquareYieldsTwoNonEmptyChains(t *testing.T) {
	p := unitSquare(t)
	mono, err := skel.AnalyzeMonotonicity(p)
	require.NoError(t, err)

	upper, lower := skel.Decompose(p, mono)
	assert.False(t, upper.Empty())
	assert.False(t, lower.Empty())
	assert.Equal(t, 4, upper.Len()+lower.Len())
}

// TestComputeUnitSquare checks the unit square literally: one internal
// node at (0.5, 0.5) with exactly one arc reaching each of the four
// corners.
func TestComputeUnitSquare(t *testing.T) {
	p := unitSquare(t)
	sk, err := skel.Compute(p)
	require.NoError(t, err)

	internal := internalNodes(sk)
	require.Len(t, internal, 1)
	center := internal[0]
	assert.True(t, sk.Nodes.Get(center).P.Equal(halfPt(1, 1)))
	assert.Len(t, sk.Nodes.Get(center).Arcs, 4)

	for _, aid := range sk.Nodes.Get(center).Arcs {
		a := sk.Arcs.Get(aid)
		other := a.SecondNodeOf(center)
		assert.True(t, sk.Nodes.Get(other).IsTerminal())
	}
	for i := 0; i < 4; i++ {
		assert.Len(t, sk.Nodes.Get(core.NodeID(i)).Arcs, 1, "corner %d", i)
	}
}

// TestComputeRightTriangle checks the 3-4-5 triangle against the convex
// tree property: n-2 = 1 internal node, 2n-3 = 3 arcs, the node at the
// incenter (1,1) since the inradius is (3+4-5)/2 = 1.
func TestComputeRightTriangle(t *testing.T) {
	p := rightTriangle(t)
	sk, err := skel.Compute(p)
	require.NoError(t, err)

	internal := internalNodes(sk)
	require.Len(t, internal, 1)
	assert.True(t, sk.Nodes.Get(internal[0]).P.Equal(pt(1, 1)))
	assert.Len(t, sk.LiveArcs(), 3)
}

// TestComputeRectangle checks the 4x1 rectangle: two internal nodes
// joined by the horizontal seam along the rectangle's midline.
func TestComputeRectangle(t *testing.T) {
	p := rectangle4x1(t)
	sk, err := skel.Compute(p)
	require.NoError(t, err)

	internal := internalNodes(sk)
	require.Len(t, internal, 2)
	left := findNodeAt(t, sk, halfPt(1, 1))
	right := findNodeAt(t, sk, halfPt(7, 1))
	assert.Len(t, sk.LiveArcs(), 5)

	seam := 0
	for _, aid := range sk.Nodes.Get(left).Arcs {
		a := sk.Arcs.Get(aid)
		if a.SecondNodeOf(left) == right {
			seam++
			assert.True(t, a.Seg.A.Y.Equal(a.Seg.B.Y), "seam should be horizontal")
		}
	}
	assert.Equal(t, 1, seam, "exactly one seam arc joins the two internal nodes")
}

// TestComputeLShape checks the reflex polygon: three internal nodes, the
// reflex vertex contributing a single outgoing arc, eight arcs total.
func TestComputeLShape(t *testing.T) {
	p := lShape(t)
	sk, err := skel.Compute(p)
	require.NoError(t, err)

	internal := internalNodes(sk)
	require.Len(t, internal, 3)
	findNodeAt(t, sk, halfPt(1, 3))
	armJoint := findNodeAt(t, sk, halfPt(1, 1))
	findNodeAt(t, sk, halfPt(5, 1))
	assert.Len(t, sk.LiveArcs(), 8)

	// Vertex 3 is the reflex corner (1,1); its trace runs straight to
	// the joint node at (0.5, 0.5).
	reflex := sk.Nodes.Get(core.NodeID(3))
	require.Len(t, reflex.Arcs, 1)
	a := sk.Arcs.Get(reflex.Arcs[0])
	assert.Equal(t, armJoint, a.SecondNodeOf(core.NodeID(3)))
}

// TestComputeWeightedTrapezoid feeds edge weights (1,1,2,1) and checks
// the weighted equidistance invariant at every internal node: a node's
// birth time must equal its perpendicular distance to each incident
// arc's defining edges, divided by that edge's weight.
func TestComputeWeightedTrapezoid(t *testing.T) {
	pts := []geom.Point{pt(0, 0), pt(4, 0), pt(3, 2), pt(1, 2)}
	w := []geom.Exact{
		geom.NewExactInt(1), geom.NewExactInt(1),
		geom.NewExactInt(2), geom.NewExactInt(1),
	}
	p := polygon(t, pts, w)

	sk, err := skel.Compute(p)
	require.NoError(t, err)

	internal := internalNodes(sk)
	require.NotEmpty(t, internal)
	for _, id := range internal {
		n := sk.Nodes.Get(id)
		for _, aid := range n.Arcs {
			a := sk.Arcs.Get(aid)
			for _, e := range []core.EdgeID{a.LeftEdge, a.RightEdge} {
				line := p.Segment(e).SupportingLine()
				d := geom.NormalDistance(line, n.P).Div(p.E(e).Weight)
				assert.InDelta(t, n.Time.Float64(), d.Float64(), 1e-9,
					"node %d vs edge %d", id, e)
			}
		}
		// The heavier top edge reaches the node sooner, pulling every
		// meeting point below the unweighted midline.
		assert.Less(t, n.P.Y.Float64(), 1.0)
	}
}

func TestAssumeXAxisMonotoneSkipsAnalyzer(t *testing.T) {
	p := unitSquare(t)
	mono, err := skel.AssumeXAxisMonotone(p)
	require.NoError(t, err)
	assert.True(t, mono.Line.D.Y.IsZero())
}

func TestEventQueuePopOrdersByTime(t *testing.T) {
	q := skel.NewEventQueue()
	q.Schedule(&skel.Event{Time: geom.NewExactInt(5), MainEdge: 1})
	q.Schedule(&skel.Event{Time: geom.NewExactInt(1), MainEdge: 2})
	q.Schedule(&skel.Event{Time: geom.NewExactInt(3), MainEdge: 3})

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, core.EdgeID(2), first.MainEdge)

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, core.EdgeID(3), second.MainEdge)
}

func TestEventQueueBreaksTimeTiesByEdgeID(t *testing.T) {
	q := skel.NewEventQueue()
	q.Schedule(&skel.Event{Time: geom.NewExactInt(2), MainEdge: 9})
	q.Schedule(&skel.Event{Time: geom.NewExactInt(2), MainEdge: 4})

	ev, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, core.EdgeID(4), ev.MainEdge)
}

func TestEventQueueUpdateSupersedesStaleEntry(t *testing.T) {
	q := skel.NewEventQueue()
	q.Schedule(&skel.Event{Time: geom.NewExactInt(10), MainEdge: 1})
	q.Schedule(&skel.Event{Time: geom.NewExactInt(2), MainEdge: 1}) // update: edge 1 collapses sooner

	ev, ok := q.Pop()
	require.True(t, ok)
	assert.True(t, ev.Time.Equal(geom.NewExactInt(2)))

	_, ok = q.Pop()
	assert.False(t, ok) // the stale time=10 entry must never surface
}

func TestEventQueueDropDiscardsEvent(t *testing.T) {
	q := skel.NewEventQueue()
	q.Schedule(&skel.Event{Time: geom.NewExactInt(1), MainEdge: 7})
	q.Unschedule(7)

	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestBuildBisectorSquareCorner(t *testing.T) {
	a := geom.NewSegment(pt(0, 0), pt(1, 0))
	b := geom.NewSegment(pt(1, 0), pt(1, 1))
	bis := skel.BuildBisector(a, b, geom.NewExactInt(1), geom.NewExactInt(1), pt(1, 0))
	d := bis.Direction()
	// Equal weights at a right-angle corner bisect into the (-1,1) diagonal.
	assert.False(t, bis.IsLine)
	assert.True(t, d.X.Sign() < 0)
	assert.True(t, d.Y.Sign() > 0)
}

func TestBuildBisectorFacingParallelEdgesIsMidline(t *testing.T) {
	bottom := geom.NewSegment(pt(0, 0), pt(4, 0))
	top := geom.NewSegment(pt(4, 1), pt(0, 1))
	bis := skel.BuildBisector(bottom, top, geom.NewExactInt(1), geom.NewExactInt(1), halfPt(4, 1))
	assert.True(t, bis.IsLine)
	assert.True(t, bis.Direction().Y.IsZero())
}

func TestBuildBisectorCollinearSpikeIsPerpendicular(t *testing.T) {
	left := geom.NewSegment(pt(0, 0), pt(1, 0))
	right := geom.NewSegment(pt(1, 0), pt(2, 0))
	bis := skel.BuildBisector(left, right, geom.NewExactInt(1), geom.NewExactInt(1), pt(1, 0))
	assert.False(t, bis.IsLine)
	assert.True(t, bis.Direction().X.IsZero())
	assert.True(t, bis.Direction().Y.Sign() > 0)
}

// TestComputeDeterministic runs the same input twice and compares the
// full node/arc layout, which must match element for element.
func TestComputeDeterministic(t *testing.T) {
	a, err := skel.Compute(lShape(t))
	require.NoError(t, err)
	b, err := skel.Compute(lShape(t))
	require.NoError(t, err)

	require.Equal(t, a.Nodes.Len(), b.Nodes.Len())
	require.Equal(t, a.Arcs.Len(), b.Arcs.Len())
	for i := 0; i < a.Nodes.Len(); i++ {
		na, nb := a.Nodes.Get(core.NodeID(i)), b.Nodes.Get(core.NodeID(i))
		assert.Equal(t, na.Type, nb.Type)
		assert.True(t, na.P.Equal(nb.P))
		assert.Equal(t, na.Arcs, nb.Arcs)
	}
}
