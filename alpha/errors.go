package alpha

import "errors"

// Typed failure kinds. Arithmetic itself cannot fail; only the shape preconditions below can.
var (
	ErrDimensionsDiffer      = errors.New("alpha: source and destination dimensions differ")
	ErrPixelFormatsDiffer    = errors.New("alpha: source and destination pixel formats differ")
	ErrPixelFormatUnsupported = errors.New("alpha: pixel format has no alpha channel")
)
