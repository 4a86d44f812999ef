package skel_test

import (
	"fmt"

	"github.com/monoskel/monoskel/core"
	"github.com/monoskel/monoskel/geom"
	"github.com/monoskel/monoskel/skel"
)

// ExampleCompute computes the straight skeleton of the unit square: the
// four corner bisectors meet in a single internal node at the center.
func ExampleCompute() {
	pts := []geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	weights := []geom.Exact{
		geom.NewExactInt(1), geom.NewExactInt(1),
		geom.NewExactInt(1), geom.NewExactInt(1),
	}
	poly, err := core.NewPolygon(pts, weights)
	if err != nil {
		fmt.Println(err)
		return
	}

	sk, err := skel.Compute(poly)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("nodes:", len(sk.LiveNodes()), "arcs:", len(sk.LiveArcs()))
	// Output: nodes: 5 arcs: 4
}
