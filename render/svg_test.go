package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
	"github.com/monoskel/monoskel/render"
	"github.com/monoskel/monoskel/skel"
)

func pt(x, y int64) geom.Point {
	return geom.NewPoint(geom.NewExactInt(x), geom.NewExactInt(y))
}

func unitSquare(t *testing.T) *core.Polygon {
	t.Helper()
	pts := []geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	w := make([]geom.Exact, 4)
	for i := range w {
		w[i] = geom.NewExactInt(1)
	}
	p, err := core.NewPolygon(pts, w)
	require.NoError(t, err)
	return p
}

func TestRenderProducesWellFormedSVG(t *testing.T) {
	p := unitSquare(t)
	sk, err := skel.Compute(p)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, render.Render(&buf, sk, render.Options{Width: 400, Height: 400}))
	out := buf.String()

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, "<circle")
}

func TestRenderDefaultsOptionsWhenZero(t *testing.T) {
	p := unitSquare(t)
	sk, err := skel.Compute(p)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, render.Render(&buf, sk, render.Options{}))
	assert.Contains(t, buf.String(), "900")
}
