package mesh_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monoskel/monoskel/geom"
	"github.com/monoskel/monoskel/mesh"
	"github.com/monoskel/monoskel/skel"
)

const squareMarkup = `
# unit square
v 0 0 0
v 1 1 0
v 2 1 1
v 3 0 1
e 0 0 1 1
e 1 1 2 1
e 2 2 3 1
e 3 3 0 1
`

func TestParsePolygonRoundTripsSquare(t *testing.T) {
	p, err := mesh.ParsePolygon(strings.NewReader(squareMarkup))
	require.NoError(t, err)
	assert.Equal(t, 4, p.N())
	assert.True(t, p.V(0).P.Equal(geom.NewPoint(geom.NewExactInt(0), geom.NewExactInt(0))))
}

func TestParsePolygonRejectsUnknownVertex(t *testing.T) {
	bad := "v 0 0 0\nv 1 1 0\nv 2 1 1\ne 0 0 1 1\ne 1 1 2 1\ne 2 2 9 1\n"
	_, err := mesh.ParsePolygon(strings.NewReader(bad))
	require.Error(t, err)
}

func TestWriteMeshProducesFacesForLiveArcs(t *testing.T) {
	p, err := mesh.ParsePolygon(strings.NewReader(squareMarkup))
	require.NoError(t, err)
	sk, err := skel.Compute(p)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, mesh.WriteMesh(&buf, sk))
	out := buf.String()
	assert.Contains(t, out, "v ")
	assert.Contains(t, out, "f ")
}

func TestWriteDuplicatedEmitsTwicePoints(t *testing.T) {
	p, err := mesh.ParsePolygon(strings.NewReader(squareMarkup))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, mesh.WriteDuplicated(&buf, p))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	vCount := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "v ") {
			vCount++
		}
	}
	assert.Equal(t, 8, vCount)
}

// TestWriteDuplicatedCopiesDoNotTouch checks the copies are genuinely
// disjoint: the second copy's bounding box starts strictly right of the
// first's, and every copied vertex is nudged off its chain's y.
func TestWriteDuplicatedCopiesDoNotTouch(t *testing.T) {
	p, err := mesh.ParsePolygon(strings.NewReader(squareMarkup))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, mesh.WriteDuplicated(&buf, p))

	var xs, ys []float64
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		f := strings.Fields(l)
		if f[0] != "v" {
			continue
		}
		x, err := strconv.ParseFloat(f[2], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(f[3], 64)
		require.NoError(t, err)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	require.Len(t, xs, 8)

	maxOrig, minCopy := xs[0], xs[4]
	for i := 1; i < 4; i++ {
		if xs[i] > maxOrig {
			maxOrig = xs[i]
		}
		if xs[4+i] < minCopy {
			minCopy = xs[4+i]
		}
	}
	assert.Less(t, maxOrig, minCopy, "the copies' bounding boxes must not touch")

	for i := 0; i < 4; i++ {
		assert.NotEqual(t, ys[i], ys[4+i], "copied vertex %d should be nudged off its chain", i)
	}
}
