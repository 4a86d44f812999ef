// Package skel: top-level orchestration tying the analyzer, decomposer,
// propagator and merger into a single entry point.
package skel

import "github.com/monoskel/monoskel/core"

// ComputeOptions controls Compute's entry into the monotonicity stage.
type ComputeOptions struct {
	// AnalyzeMonotonicity, when true, runs the reflex-vertex analyzer.
	// When false (the default), poly is assumed already monotone along
	// the x-axis and the analyzer is skipped entirely.
	AnalyzeMonotonicity bool
}

// Compute runs the full weighted straight skeleton pipeline on poly:
// monotonicity analysis (or the x-axis assumption, per opts), chain
// decomposition, independent per-chain wavefront propagation, and final
// merge.
func Compute(poly *core.Polygon, opts ...ComputeOptions) (*core.Skeleton, error) {
	var opt ComputeOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	var mono Monotonicity
	var err error
	if opt.AnalyzeMonotonicity {
		mono, err = AnalyzeMonotonicity(poly)
	} else {
		mono, err = AssumeXAxisMonotone(poly)
	}
	if err != nil {
		return nil, err
	}

	sk := core.NewSkeleton(poly)
	upper, lower := Decompose(poly, mono)

	upperProp, err := PropagateChain(poly, sk, upper, mono.Line)
	if err != nil {
		return nil, err
	}
	lowerProp, err := PropagateChain(poly, sk, lower, mono.Line)
	if err != nil {
		return nil, err
	}

	if err := Merge(poly, sk, upper, lower, upperProp, lowerProp, mono); err != nil {
		return nil, err
	}
	sk.SortIncidentArcs()
	return sk, nil
}
