// Package core is the data substrate the skel package computes over: a
// weighted, directed polygon boundary (Polygon/Vertex/Edge), the
// append-only node/arc arenas a straight-skeleton simulation grows
// (Node/Arc), and the intrusive, splice-stable Chain the event queue
// indexes into.
//
// Storage is dense and ID-addressed with a thin typed facade over plain
// slices and maps. There is no locking anywhere: the whole computation
// is single-threaded and non-reentrant, so concurrency guards would be
// dead weight.
package core
