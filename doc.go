// Package monoskel computes weighted straight skeletons of monotone
// simple polygons in O(n log n) time and O(n) space.
//
// A straight skeleton is the planar graph traced by the vertices of a
// wavefront obtained by sliding every polygon edge inward, each at its
// own speed (its weight). monoskel decides whether the input admits a
// monotonicity line, splits the boundary into two chains around it,
// simulates each chain's wavefront independently with a priority queue
// of edge-collapse events, and zips the two partial skeletons together
// along the seam between the chains.
//
// Everything is organized under six subpackages and one command:
//
//	geom/        — fixed-precision plane geometry: points, lines, rays,
//	               predicates and intersections over big.Float scalars
//	core/        — polygon, chain, node and arc storage (append-only,
//	               id-addressed, disable-don't-delete)
//	skel/        — the algorithm: monotonicity analysis, bisectors,
//	               event queue, wavefront propagation, merge
//	mesh/        — graph-markup input parsing and mesh output writing
//	render/      — static SVG snapshots of a computed skeleton
//	skelcfg/     — configuration (flags, YAML, functional options)
//	cmd/monoskel — the command-line runner
//
// Quick ASCII example:
//
//	    ┌───────────┐        the 4x1 rectangle's skeleton: two
//	    │ \_______/ │        internal nodes joined by a seam arc,
//	    │ /       \ │        four bisector arcs to the corners
//	    └───────────┘
//
//	go get github.com/monoskel/monoskel
package monoskel
