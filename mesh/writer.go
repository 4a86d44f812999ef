// Package mesh: the output writer. Deterministic `v`/`f` lines, 1-based
// indices, non-disabled nodes and arcs only, trailing polygon face.

package mesh

import (
	"bufio"
	"fmt"
	"io"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

// WriteMesh writes sk's live nodes and arcs, followed by the input
// polygon boundary as a trailing face. Coordinates are normalized into
// the unit box using the polygon's bounding box, longer side as the
// scale, so meshes of differently sized inputs view identically.
func WriteMesh(w io.Writer, sk *core.Skeleton) error {
	bw := bufio.NewWriter(w)

	scale := geom.Max(sk.BBox.Width(), sk.BBox.Height())
	if scale.IsZero() {
		scale = geom.NewExactInt(1)
	}

	// index[nodeID] is the 1-based output index, or 0 if disabled.
	index := make(map[core.NodeID]int, sk.Nodes.Len())
	next := 1
	for i, n := range sk.Nodes.All() {
		if n.IsDisabled() {
			continue
		}
		id := core.NodeID(i)
		index[id] = next
		next++
		nx := n.P.X.Sub(sk.BBox.XMin).Div(scale)
		ny := n.P.Y.Sub(sk.BBox.YMin).Div(scale)
		if _, err := fmt.Fprintf(bw, "v %s %s 0\n", nx, ny); err != nil {
			return err
		}
	}

	for _, a := range sk.Arcs.All() {
		if a.IsDisabled() || a.IsRay() {
			continue
		}
		fi, okF := index[a.First]
		si, okS := index[a.Second]
		if !okF || !okS {
			continue
		}
		if _, err := fmt.Fprintf(bw, "f %d %d\n", fi, si); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString("f"); err != nil {
		return err
	}
	for i := range sk.Polygon.Vertices {
		idx, ok := index[core.NodeID(i)]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(bw, " %d", idx); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}

	return bw.Flush()
}
