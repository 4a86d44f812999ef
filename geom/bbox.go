// Package geom: axis-aligned bounding box tracking. The box keeps its
// four boundary edges, not just the extremal coordinates, so a renderer
// can clip unbounded rays against them.

package geom

// BBox is the axis-aligned bounding box of a point set, plus the four
// boundary edges a renderer needs to clip unbounded rays against.
type BBox struct {
	XMin, XMax, YMin, YMax Exact

	Top, Bottom, Left, Right Segment
}

// NewBBox computes the bounding box of pts. Panics on an empty slice: a
// polygon with zero vertices never reaches this call (core.NewPolygon
// rejects it first).
func NewBBox(pts []Point) BBox {
	if len(pts) == 0 {
		panic("geom: bbox of empty point set")
	}
	b := BBox{XMin: pts[0].X, XMax: pts[0].X, YMin: pts[0].Y, YMax: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X.LessThan(b.XMin) {
			b.XMin = p.X
		}
		if b.XMax.LessThan(p.X) {
			b.XMax = p.X
		}
		if p.Y.LessThan(b.YMin) {
			b.YMin = p.Y
		}
		if b.YMax.LessThan(p.Y) {
			b.YMax = p.Y
		}
	}
	b.Bottom = NewSegment(NewPoint(b.XMin, b.YMin), NewPoint(b.XMax, b.YMin))
	b.Top = NewSegment(NewPoint(b.XMin, b.YMax), NewPoint(b.XMax, b.YMax))
	b.Left = NewSegment(NewPoint(b.XMin, b.YMin), NewPoint(b.XMin, b.YMax))
	b.Right = NewSegment(NewPoint(b.XMax, b.YMin), NewPoint(b.XMax, b.YMax))
	return b
}

// Outside reports whether p lies outside the box.
func (b BBox) Outside(p Point) bool {
	return p.X.LessThan(b.XMin) || b.XMax.LessThan(p.X) ||
		p.Y.LessThan(b.YMin) || b.YMax.LessThan(p.Y)
}

// Inside reports whether p lies within (or on) the box.
func (b BBox) Inside(p Point) bool { return !b.Outside(p) }

// Width returns XMax-XMin.
func (b BBox) Width() Exact { return b.XMax.Sub(b.XMin) }

// Height returns YMax-YMin.
func (b BBox) Height() Exact { return b.YMax.Sub(b.YMin) }

// ClipRay intersects ray r against the four boundary edges and returns the
// nearest crossing point, or INFPOINT if the ray never exits the box (it
// is already outside, or parallel to every wall it doesn't lie on).
func ClipRay(r Ray, b BBox) Point {
	best := INFPOINT
	var bestParam Exact
	for _, edge := range [4]Segment{b.Top, b.Bottom, b.Left, b.Right} {
		p := IntersectRaySegment(r, edge)
		if p.IsInfinite() {
			continue
		}
		t := intersectParamOnRay(r, p)
		if best.IsInfinite() || t.LessThan(bestParam) {
			best, bestParam = p, t
		}
	}
	return best
}
