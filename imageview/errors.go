package imageview

import "errors"

// Error kinds for view construction.
var (
	ErrBufferSizeInvalid = errors.New("imageview: buffer size invalid")
	ErrInvalidRowsCount  = errors.New("imageview: count of rows doesn't match image height")
	ErrInvalidRowSize    = errors.New("imageview: size of a row doesn't match image width")
)
