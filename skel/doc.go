// Package skel implements the weighted straight skeleton algorithm itself:
// monotonicity analysis, chain decomposition, weighted bisector
// construction, the deferred-update event queue, the per-chain wavefront
// propagator, and the two-chain skeleton merger.
//
// Every stage operates on a single *core.Skeleton in place. Nothing here
// is safe for concurrent use, by design (single-threaded simulation, not
// a server).
package skel
