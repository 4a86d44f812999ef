// Package core: sentinel errors. Package-level sentinels, never
// stringified at the definition site; callers wrap with %w and call-site
// context.

package core

import "errors"

var (
	// ErrEmptyPolygon indicates a polygon was built from fewer than 3 vertices.
	ErrEmptyPolygon = errors.New("core: polygon needs at least 3 vertices")

	// ErrVertexWeightMismatch indicates the vertex and weight slices passed
	// to NewPolygon have different lengths.
	ErrVertexWeightMismatch = errors.New("core: vertex/weight count mismatch")

	// ErrNonPositiveWeight indicates an edge weight <= 0; a wavefront edge
	// must move inward.
	ErrNonPositiveWeight = errors.New("core: edge weight must be positive")

	// ErrDegenerateEdge indicates two consecutive vertices coincide.
	ErrDegenerateEdge = errors.New("core: degenerate (zero-length) edge")

	// ErrVertexNotVisitedTwice indicates the boundary, as built, does not
	// traverse some vertex exactly twice, i.e. it is not a single closed
	// polygon.
	ErrVertexNotVisitedTwice = errors.New("core: boundary must visit each vertex exactly twice")
)
