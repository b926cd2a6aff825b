// Package resize is the facade that orchestrates the coefficient precomputer, normalizer,
// convolution passes and alpha wrapping into full source-to-destination resizes, plus the
// crop-box geometry and the nearest-neighbor and super-sampling algorithms.
package resize

import "errors"

var (
	ErrPixelFormatsDiffer     = errors.New("resize: source and destination pixel formats differ")
	ErrCropBoxOutOfBounds     = errors.New("resize: crop box extends past the source image")
	ErrMultiplicityOutOfRange = errors.New("resize: super-sampling multiplicity out of range")
)
