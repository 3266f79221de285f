package profiler

import "errors"

// ErrInvalidConfig is returned when Config holds inconsistent values.
var ErrInvalidConfig = errors.New("profiler: invalid config")
