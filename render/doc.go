// Package render draws a computed skeleton to SVG: the input boundary,
// every live arc, and every live node, one static picture per call.
package render
