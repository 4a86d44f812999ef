package skelcfg

import "errors"

// ErrMissingFileName is returned when a Config has no input path set at
// the point the runner needs to open it.
var ErrMissingFileName = errors.New("skelcfg: fileName is required")
