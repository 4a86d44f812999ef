// Package mesh: sentinel errors.

package mesh

import "errors"

var (
	// ErrMalformedLine indicates a graph-markup line didn't parse as
	// either a vertex or an edge record.
	ErrMalformedLine = errors.New("mesh: malformed line")

	// ErrUnknownVertex indicates an edge referenced a vertex id that was
	// never declared.
	ErrUnknownVertex = errors.New("mesh: edge references unknown vertex")

	// ErrNotAClosedCycle indicates the edge set, read as an undirected
	// graph, doesn't form a single closed boundary.
	ErrNotAClosedCycle = errors.New("mesh: edges do not form a single closed polygon")
)
