// Package skel: sentinel errors.

package skel

import "errors"

var (
	// ErrNotMonotone indicates no valid monotonicity line could be found
	// for the input polygon — it cannot be decomposed into upper/lower
	// wavefront chains.
	ErrNotMonotone = errors.New("skel: polygon is not monotone with respect to any line")

	// ErrNumericInconsistency indicates an internal arithmetic invariant
	// failed: a popped event's time is earlier than the current simulation
	// time, or the merge seam exceeds its iteration bound without closing.
	ErrNumericInconsistency = errors.New("skel: numeric inconsistency detected during propagation")

	// ErrEmptyChain is a non-fatal sentinel for a decomposition side with
	// zero edges — callers should treat the corresponding chain as
	// contributing no arcs, not as a failure.
	ErrEmptyChain = errors.New("skel: chain has no edges")
)
