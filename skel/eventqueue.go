// Package skel: the event queue, a min-heap over container/heap with a
// lazy decrease-key strategy: push duplicates and ignore stale entries.
//
// "Updating" a main edge's event is just pushing a new Event for the same
// edge; the old heap entry is recognized as stale (via latest) and
// skipped when it eventually surfaces. "Dropping" an edge's event (it no
// longer exists, e.g. spliced away) flips a flag rather than searching
// the heap for it.

package skel

import (
	"container/heap"

	"github.com/monoskel/monoskel/core"
)

// eventHeap is a min-heap of *Event ordered by (Time, MainEdge), with
// insertion order as the final tiebreaker so same-edge re-pushes stay
// deterministic.
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	c := h[i].Time.Cmp(h[j].Time)
	if c != 0 {
		return c < 0
	}
	if h[i].MainEdge != h[j].MainEdge {
		return h[i].MainEdge < h[j].MainEdge
	}
	return h[i].seq < h[j].seq
}
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(*Event)) }
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// EventQueue is the priority queue driving one chain's wavefront
// simulation. Schedule stands in for "mark this edge's event as needing
// recomputation, then apply", and Unschedule for "mark it for dropping,
// then apply". There is no separate batching step because nothing here
// needs one — wavefront.go always calls Schedule/Unschedule once per
// affected edge, immediately after the splice that invalidated its old
// event, so there is never more than one pending update per edge to
// batch in the first place.
type EventQueue struct {
	h      eventHeap
	seq    int
	latest map[core.EdgeID]*Event
}

// NewEventQueue returns an empty queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{latest: make(map[core.EdgeID]*Event)}
	heap.Init(&q.h)
	return q
}

// Schedule (re)schedules ev for ev.MainEdge. Any previously scheduled
// event for the same edge becomes stale and is discarded, unobserved,
// the next time it would otherwise surface — the push-new-entry-instead-
// of-decrease-key idiom container/heap users reach for when the stdlib
// offers no decrease-key primitive.
func (q *EventQueue) Schedule(ev *Event) {
	ev.seq = q.seq
	q.seq++
	q.latest[ev.MainEdge] = ev
	heap.Push(&q.h, ev)
}

// Unschedule marks edge's pending event, if any, as permanently stale —
// used when the edge is spliced out of its chain and will never
// collapse.
func (q *EventQueue) Unschedule(edge core.EdgeID) {
	if ev, ok := q.latest[edge]; ok {
		ev.dropped = true
		delete(q.latest, edge)
	}
}

// Pop returns the earliest non-stale event, or ok=false once the queue
// is exhausted of live events.
func (q *EventQueue) Pop() (ev *Event, ok bool) {
	for q.h.Len() > 0 {
		item := heap.Pop(&q.h).(*Event)
		if item.dropped {
			continue
		}
		if q.latest[item.MainEdge] != item {
			continue // superseded by a later Push for the same edge
		}
		delete(q.latest, item.MainEdge)
		return item, true
	}
	return nil, false
}

// Len reports the number of entries still physically in the heap
// (including stale ones not yet popped).
func (q *EventQueue) Len() int { return q.h.Len() }
