package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monoskel/monoskel/geom"
)

func pt(x, y int64) geom.Point { return geom.NewPoint(geom.NewExactInt(x), geom.NewExactInt(y)) }

func TestVectorArithmetic(t *testing.T) {
	v := geom.NewVector(geom.NewExactInt(3), geom.NewExactInt(4))
	assert.InDelta(t, 25.0, v.Norm2().Float64(), 1e-9)
	assert.InDelta(t, 5.0, v.Norm().Float64(), 1e-9)
}

func TestRightTurn(t *testing.T) {
	a, b, c := pt(0, 0), pt(1, 0), pt(1, -1)
	assert.True(t, geom.RightTurn(a, b, c))
	assert.False(t, geom.LeftTurn(a, b, c))
}

func TestIntersectLines(t *testing.T) {
	l1 := geom.LineThrough(pt(0, 0), pt(2, 2))
	l2 := geom.LineThrough(pt(0, 2), pt(2, 0))
	p := geom.IntersectLines(l1, l2)
	require.False(t, p.IsInfinite())
	assert.InDelta(t, 1.0, p.X.Float64(), 1e-9)
	assert.InDelta(t, 1.0, p.Y.Float64(), 1e-9)
}

func TestIntersectLinesParallel(t *testing.T) {
	l1 := geom.LineThrough(pt(0, 0), pt(1, 0))
	l2 := geom.LineThrough(pt(0, 1), pt(1, 1))
	p := geom.IntersectLines(l1, l2)
	assert.True(t, p.IsInfinite())
}

func TestBBoxClipRay(t *testing.T) {
	b := geom.NewBBox([]geom.Point{pt(0, 0), pt(10, 10)})
	r := geom.NewRay(pt(5, 5), geom.NewVector(geom.NewExactInt(1), geom.NewExactInt(0)))
	p := geom.ClipRay(r, b)
	require.False(t, p.IsInfinite())
	assert.InDelta(t, 10.0, p.X.Float64(), 1e-9)
	assert.InDelta(t, 5.0, p.Y.Float64(), 1e-9)
}

func TestINFPOINTNeverEqualsReal(t *testing.T) {
	assert.False(t, geom.INFPOINT.Equal(pt(0, 0)))
	assert.True(t, geom.INFPOINT.Equal(geom.INFPOINT))
}
