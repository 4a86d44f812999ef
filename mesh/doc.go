// Package mesh converts between the on-disk graph-markup formats and the
// in-memory model: the polygon input parser, the mesh output writer, and
// the duplicated-input debugging writer.
package mesh
