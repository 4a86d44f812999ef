package render

import "errors"

// ErrUnsupportedFormat is returned for an output path whose extension
// names a format this package does not produce.
var ErrUnsupportedFormat = errors.New("render: unsupported output format")
