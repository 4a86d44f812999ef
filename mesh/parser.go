// Package mesh: the graph-markup polygon parser. Format: one record per
// line, either
//
//	v <id> <x> <y>
//	e <id> <u> <v> <w>
//
// Vertex and edge ids are whatever integers the file uses; they need not
// be 0-based or contiguous. ParsePolygon re-threads the edge set into the
// canonical cyclic order core.NewPolygon requires, verifying along the
// way that the boundary visits each vertex exactly twice.
package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
)

type rawVertex struct {
	id   int
	x, y geom.Exact
}

type rawEdge struct {
	id   int
	u, v int
	w    geom.Exact
}

// ParsePolygon reads a graph-markup polygon description from r.
func ParsePolygon(r io.Reader) (*core.Polygon, error) {
	vertices := make(map[int]rawVertex)
	var edges []rawEdge

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			rv, err := parseVertex(fields)
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			vertices[rv.id] = rv
		case "e":
			re, err := parseEdge(fields)
			if err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", lineNo, err)
			}
			edges = append(edges, re)
		default:
			return nil, fmt.Errorf("mesh: line %d: %w", lineNo, ErrMalformedLine)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: reading input: %w", err)
	}

	return assemble(vertices, edges)
}

func parseVertex(fields []string) (rawVertex, error) {
	if len(fields) != 4 {
		return rawVertex{}, ErrMalformedLine
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return rawVertex{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	x, err := geom.ParseExact(fields[2])
	if err != nil {
		return rawVertex{}, err
	}
	y, err := geom.ParseExact(fields[3])
	if err != nil {
		return rawVertex{}, err
	}
	return rawVertex{id: id, x: x, y: y}, nil
}

func parseEdge(fields []string) (rawEdge, error) {
	if len(fields) != 5 {
		return rawEdge{}, ErrMalformedLine
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return rawEdge{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	u, err := strconv.Atoi(fields[2])
	if err != nil {
		return rawEdge{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	v, err := strconv.Atoi(fields[3])
	if err != nil {
		return rawEdge{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	w, err := geom.ParseExact(fields[4])
	if err != nil {
		return rawEdge{}, err
	}
	return rawEdge{id: id, u: u, v: v, w: w}, nil
}

// assemble re-threads edges into a single cyclic walk starting at the
// lowest vertex id, verifying every vertex is visited exactly twice.
func assemble(vertices map[int]rawVertex, edges []rawEdge) (*core.Polygon, error) {
	if len(vertices) == 0 {
		return nil, core.ErrEmptyPolygon
	}

	adj := make(map[int][]rawEdge, len(vertices))
	for _, e := range edges {
		if _, ok := vertices[e.u]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, e.u)
		}
		if _, ok := vertices[e.v]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, e.v)
		}
		adj[e.u] = append(adj[e.u], e)
		adj[e.v] = append(adj[e.v], e)
	}
	for id := range vertices {
		if len(adj[id]) != 2 {
			return nil, fmt.Errorf("%w: vertex %d visited %d times", core.ErrVertexNotVisitedTwice, id, len(adj[id]))
		}
	}

	start := minKey(vertices)
	used := make(map[int]bool, len(edges))
	order := []int{start}
	weights := []geom.Exact{}

	cur := start
	for len(order) < len(vertices) {
		next, w, edgeID, err := nextHop(adj, cur, used)
		if err != nil {
			return nil, err
		}
		used[edgeID] = true
		weights = append(weights, w)
		order = append(order, next)
		cur = next
	}
	// Close the cycle: find the remaining unused edge back to start.
	_, w, edgeID, err := nextHop(adj, cur, used)
	if err != nil {
		return nil, err
	}
	used[edgeID] = true
	weights = append(weights, w)

	if len(used) != len(edges) {
		return nil, ErrNotAClosedCycle
	}

	points := make([]geom.Point, len(order))
	for i, id := range order {
		points[i] = geom.NewPoint(vertices[id].x, vertices[id].y)
	}
	return core.NewPolygon(points, weights)
}

func nextHop(adj map[int][]rawEdge, cur int, used map[int]bool) (next int, w geom.Exact, edgeID int, err error) {
	for _, e := range adj[cur] {
		if used[e.id] {
			continue
		}
		other := e.u
		if other == cur {
			other = e.v
		}
		return other, e.w, e.id, nil
	}
	return 0, geom.Exact{}, 0, ErrNotAClosedCycle
}

func minKey(m map[int]rawVertex) int {
	first := true
	var best int
	for k := range m {
		if first || k < best {
			best = k
			first = false
		}
	}
	return best
}
