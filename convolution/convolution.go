// Package convolution implements the two-pass separable convolution resampler: for every
// supported pixel format and SIMD tier, a horizontal and a vertical pass that accumulate
// filter-weighted source pixels into a destination pixel.
package convolution

import (
	"fmt"

	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/cputier"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

// ErrPreconditionViolated reports a violated precondition that the resize orchestrator should
// have checked before dispatch. Kernels never fail on well-formed input; this guards against
// programmer error reaching a kernel directly.
var ErrPreconditionViolated = fmt.Errorf("convolution: precondition violated")

// HorizontalConvolution convolves each source row (starting at srcRowOffset) against the
// per-destination-column coefficient chunks, writing one row of dst per row consumed.
//
// Requires src.Height()-srcRowOffset >= dst.Height() and that every chunk's Start+len(Values) <=
// src.Width(). Both are guaranteed by the coefficient precomputer and checked defensively here;
// violating them is undefined behavior inside a kernel, so this function returns an error
// instead of silently misbehaving.
func HorizontalConvolution(src imageview.View, dst imageview.MutableView, srcRowOffset int, chunks []coeffs.Chunk, tier cputier.Tier) error {
	if !src.Format().Equal(dst.Format()) {
		return fmt.Errorf("%w: horizontal pass requires matching pixel formats", ErrPreconditionViolated)
	}
	if src.Height()-srcRowOffset < dst.Height() {
		return fmt.Errorf("%w: source has too few rows after offset", ErrPreconditionViolated)
	}
	if len(chunks) != dst.Width() {
		return fmt.Errorf("%w: coefficient chunk count %d != dst width %d", ErrPreconditionViolated, len(chunks), dst.Width())
	}
	for _, c := range chunks {
		if c.Start+len(c.Values) > src.Width() {
			return fmt.Errorf("%w: chunk reaches past source width", ErrPreconditionViolated)
		}
	}

	format := src.Format()
	switch format.ComponentType() {
	case pixfmt.U8:
		return horizontalU8(src, dst, srcRowOffset, chunks, tier)
	case pixfmt.U16:
		return horizontalU16(src, dst, srcRowOffset, chunks, tier)
	case pixfmt.F32:
		return horizontalF32(src, dst, srcRowOffset, chunks)
	case pixfmt.I32:
		return horizontalI32(src, dst, srcRowOffset, chunks)
	default:
		return fmt.Errorf("%w: unsupported component type %s", ErrPreconditionViolated, format.ComponentType())
	}
}

// VerticalConvolution convolves each source column (starting at srcColOffset in the component
// domain of each row) against the per-destination-row coefficient chunks.
//
// Requires src.Width()-srcColOffset >= dst.Width() and that every chunk's Start+len(Values) <=
// src.Height().
func VerticalConvolution(src imageview.View, dst imageview.MutableView, srcColOffset int, chunks []coeffs.Chunk, tier cputier.Tier) error {
	if !src.Format().Equal(dst.Format()) {
		return fmt.Errorf("%w: vertical pass requires matching pixel formats", ErrPreconditionViolated)
	}
	if src.Width()-srcColOffset < dst.Width() {
		return fmt.Errorf("%w: source has too few columns after offset", ErrPreconditionViolated)
	}
	if len(chunks) != dst.Height() {
		return fmt.Errorf("%w: coefficient chunk count %d != dst height %d", ErrPreconditionViolated, len(chunks), dst.Height())
	}
	for _, c := range chunks {
		if c.Start+len(c.Values) > src.Height() {
			return fmt.Errorf("%w: chunk reaches past source height", ErrPreconditionViolated)
		}
	}

	format := src.Format()
	switch format.ComponentType() {
	case pixfmt.U8:
		return verticalU8(src, dst, srcColOffset, chunks, tier)
	case pixfmt.U16:
		return verticalU16(src, dst, srcColOffset, chunks, tier)
	case pixfmt.F32:
		return verticalF32(src, dst, srcColOffset, chunks)
	case pixfmt.I32:
		return verticalI32(src, dst, srcColOffset, chunks)
	default:
		return fmt.Errorf("%w: unsupported component type %s", ErrPreconditionViolated, format.ComponentType())
	}
}
