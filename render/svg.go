// Package render: static SVG rendering of a computed skeleton. Not a
// viewer — no input loop, no stepping; one static picture of the
// finished (or partial) skeleton per call.

package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/ajstarks/svgo"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

var (
	colorBackdrop     = color.RGBA{R: 0xfa, G: 0xfa, B: 0xf8, A: 0xff}
	colorBoundary     = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	colorArc          = color.RGBA{R: 0x1f, G: 0x6f, B: 0xb4, A: 0xff}
	colorRay          = color.RGBA{R: 0xb4, G: 0x4a, B: 0x1f, A: 0xff}
	colorNodeTerminal = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	colorNodeNormal   = color.RGBA{R: 0x1f, G: 0x6f, B: 0xb4, A: 0xff}
)

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// margin is the padding, in pixels, left between the skeleton's bounding
// box and the canvas edge.
const margin = 24.0

// transform maps sk.BBox onto a width x height canvas with margin padding
// on every side, flipping y (SVG grows downward, the geometry kernel
// doesn't).
type transform struct {
	scale         float64
	xOff, yOff    float64
	width, height int
}

func newTransform(bbox geom.BBox, width, height int) transform {
	w := bbox.Width().Float64()
	h := bbox.Height().Float64()
	avail := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	scale := 1.0
	switch {
	case w <= 0 && h <= 0:
		scale = 1.0
	case w <= 0:
		scale = availH / h
	case h <= 0:
		scale = avail / w
	default:
		sx, sy := avail/w, availH/h
		if sx < sy {
			scale = sx
		} else {
			scale = sy
		}
	}
	return transform{
		scale:  scale,
		xOff:   bbox.XMin.Float64(),
		yOff:   bbox.YMin.Float64(),
		width:  width,
		height: height,
	}
}

func (t transform) point(p geom.Point) (int, int) {
	x := margin + (p.X.Float64()-t.xOff)*t.scale
	y := float64(t.height) - margin - (p.Y.Float64()-t.yOff)*t.scale
	return int(x), int(y)
}

// Options controls Render's canvas size.
type Options struct {
	Width, Height int
}

// DefaultOptions is the canvas size used when Render is called with a
// zero Options.
var DefaultOptions = Options{Width: 900, Height: 900}

// Render draws sk to w as SVG: the input boundary, every live arc (rays
// clipped against sk.BBox for display, independent of whether Merge has
// already closed them), and every live node.
func Render(w io.Writer, sk *core.Skeleton, opts Options) error {
	if opts.Width == 0 {
		opts.Width = DefaultOptions.Width
	}
	if opts.Height == 0 {
		opts.Height = DefaultOptions.Height
	}
	t := newTransform(sk.BBox, opts.Width, opts.Height)

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, fmt.Sprintf("fill:%s", css(colorBackdrop)))

	drawBoundary(canvas, sk, t)
	drawArcs(canvas, sk, t)
	drawNodes(canvas, sk, t)

	canvas.End()
	return nil
}

// RenderToFile renders sk to the SVG file at path, creating parent
// directories as needed.
func RenderToFile(path string, sk *core.Skeleton, opts Options) error {
	if filepath.Ext(path) != "" && filepath.Ext(path) != ".svg" {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("render: create parent dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Render(f, sk, opts)
}

func drawBoundary(canvas *svg.SVG, sk *core.Skeleton, t transform) {
	poly := sk.Polygon
	n := poly.N()
	xs := make([]int, n)
	ys := make([]int, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = t.point(poly.V(core.VertexID(i)).P)
	}
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", css(colorBoundary)))
}

func drawArcs(canvas *svg.SVG, sk *core.Skeleton, t transform) {
	for _, a := range sk.Arcs.All() {
		if a.IsDisabled() {
			continue
		}
		if a.IsEdge() {
			x1, y1 := t.point(a.Seg.A)
			x2, y2 := t.point(a.Seg.B)
			canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:%s;stroke-width:1.5", css(colorArc)))
			continue
		}
		end := geom.ClipRay(a.Ray, sk.BBox)
		if end.IsInfinite() {
			continue
		}
		x1, y1 := t.point(a.Ray.P)
		x2, y2 := t.point(end)
		canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:%s;stroke-width:1.5;stroke-dasharray:4,3", css(colorRay)))
	}
}

func drawNodes(canvas *svg.SVG, sk *core.Skeleton, t transform) {
	for _, n := range sk.Nodes.All() {
		if n.IsDisabled() {
			continue
		}
		x, y := t.point(n.P)
		col, r := colorNodeNormal, 3
		if n.IsTerminal() {
			col, r = colorNodeTerminal, 4
		}
		canvas.Circle(x, y, r, fmt.Sprintf("fill:%s", css(col)))
	}
}
