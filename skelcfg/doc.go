// Package skelcfg is the runner configuration layer: the recognized
// option set (fileName, outputFileName, not_x_mon, duplicate, timings,
// verbose), its YAML file form, and functional-option overrides for
// programmatic callers.
package skelcfg
