// Package mesh: the "duplicate" debugging helper — independent of
// skeleton computation, it writes the input polygon twice into one mesh
// file, the second copy translated right past the bounding box width
// plus a margin, each copied vertex nudged off its chain, so the two
// copies are genuinely disjoint. The output holds two separate boundary
// cycles; ParsePolygon reads exactly one closed polygon and rejects such
// a file with ErrNotAClosedCycle.

package mesh

import (
	"bufio"
	"fmt"
	"io"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

// WriteDuplicated writes poly's vertices and edges twice: unchanged,
// then translated along x by the bounding box width plus a fixed margin
// of 10, with every copied vertex's y perturbed away from the chain it
// sits on (downward on the lower chain, upward on the upper) so the two
// copies never share so much as a touching boundary. The perturbation is
// a deterministic function of the walk position, keeping repeated runs
// byte-identical.
func WriteDuplicated(w io.Writer, poly *core.Polygon) error {
	bw := bufio.NewWriter(w)
	bbox := geom.NewBBox(poly.Points())

	offset := bbox.Width().Add(geom.NewExactInt(10))
	epsScale := offset.Div(geom.NewExactInt(100000))

	n := poly.N()
	for i := 0; i < n; i++ {
		p := poly.V(core.VertexID(i)).P
		if _, err := fmt.Fprintf(bw, "v %d %s %s\n", i, p.X, p.Y); err != nil {
			return err
		}
	}

	// Walk the copy's vertices from the x-minimal vertex: everything up
	// to the x-maximal vertex is the lower chain, the rest the upper.
	minIdx, maxIdx := extremalX(poly)
	shifted := make([]geom.Point, n)
	lower := true
	for k := 0; k < n; k++ {
		i := core.VertexID((int(minIdx) + k) % n)
		if i == maxIdx {
			lower = false
		}
		pert := epsScale.Add(offset.Div(geom.NewExactInt(int64(100 * (k + 2)))))
		p := poly.V(i).P
		y := p.Y
		if lower {
			y = y.Sub(pert)
		} else {
			y = y.Add(pert)
		}
		shifted[i] = geom.NewPoint(p.X.Add(offset), y)
	}
	for i := 0; i < n; i++ {
		p := shifted[i]
		if _, err := fmt.Fprintf(bw, "v %d %s %s\n", n+i, p.X, p.Y); err != nil {
			return err
		}
	}

	for i := 0; i < n; i++ {
		e := poly.E(core.EdgeID(i))
		if _, err := fmt.Fprintf(bw, "e %d %d %d %s\n", i, int(e.U), int(e.V), e.Weight); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		e := poly.E(core.EdgeID(i))
		if _, err := fmt.Fprintf(bw, "e %d %d %d %s\n", n+i, n+int(e.U), n+int(e.V), e.Weight); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// extremalX returns the lexicographically extremal vertices along x,
// ties broken by y — the two ends of the copy's chain walk.
func extremalX(poly *core.Polygon) (minIdx, maxIdx core.VertexID) {
	for i := 1; i < poly.N(); i++ {
		id := core.VertexID(i)
		if poly.V(id).P.LessThan(poly.V(minIdx).P) {
			minIdx = id
		}
		if poly.V(maxIdx).P.LessThan(poly.V(id).P) {
			maxIdx = id
		}
	}
	return minIdx, maxIdx
}
