// Package colormap implements the pixel-component mapper: transfer-function based
// forward/backward lookup tables between bit depths and gamma spaces, built once per mapper
// instance, one table per (source depth, destination depth) combination.
package colormap

import (
	"fmt"
	"math"
	"sync"

	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

// TransferFunc maps a normalized component value in [0, 1] to another value, ideally also
// in [0, 1]; results are clamped to [0, 1] before being scaled back to a component's integer
// range.
type TransferFunc func(float64) float64

// PixelComponentMapper holds the four forward and four backward lookup tables derived from a
// pair of transfer functions, one per (src-bit-depth, dst-bit-depth) combination.
type PixelComponentMapper struct {
	forward8to8   [256]uint8
	forward8to16  [256]uint16
	forward16to8  [65536]uint8
	forward16to16 [65536]uint16

	backward8to8   [256]uint8
	backward8to16  [256]uint16
	backward16to8  [65536]uint8
	backward16to16 [65536]uint16
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func round(x float64) int { return int(math.Floor(x + 0.5)) }

// New builds a mapper from a forward and backward transfer function, both defined and expected
// to return values in [0, 1].
func New(forward, backward TransferFunc) *PixelComponentMapper {
	m := &PixelComponentMapper{}
	for i := 0; i < 256; i++ {
		v := clamp01(forward(float64(i) / 255))
		m.forward8to8[i] = uint8(round(v * 255))
		m.forward8to16[i] = uint16(round(v * 65535))
	}
	for i := 0; i < 65536; i++ {
		v := clamp01(forward(float64(i) / 65535))
		m.forward16to8[i] = uint8(round(v * 255))
		m.forward16to16[i] = uint16(round(v * 65535))
	}
	for i := 0; i < 256; i++ {
		v := clamp01(backward(float64(i) / 255))
		m.backward8to8[i] = uint8(round(v * 255))
		m.backward8to16[i] = uint16(round(v * 65535))
	}
	for i := 0; i < 65536; i++ {
		v := clamp01(backward(float64(i) / 65535))
		m.backward16to8[i] = uint8(round(v * 255))
		m.backward16to16[i] = uint16(round(v * 65535))
	}
	return m
}

var (
	gamma22Once sync.Once
	gamma22     *PixelComponentMapper

	srgbOnce sync.Once
	srgb     *PixelComponentMapper
)

// Gamma22 returns the built-in gamma-2.2 <-> linear mapper, building its tables on first use.
func Gamma22() *PixelComponentMapper {
	gamma22Once.Do(func() {
		gamma22 = New(
			func(x float64) float64 { return math.Pow(x, 2.2) },
			func(x float64) float64 { return math.Pow(x, 1/2.2) },
		)
	})
	return gamma22
}

// SRGB returns the built-in sRGB <-> linear mapper, building its tables on first use.
func SRGB() *PixelComponentMapper {
	srgbOnce.Do(func() {
		srgb = New(srgbForward, srgbBackward)
	})
	return srgb
}

func srgbForward(x float64) float64 {
	if x < 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

func srgbBackward(x float64) float64 {
	if x < 0.0031308 {
		return x * 12.92
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

var (
	// ErrDimensionsDiffer reports mismatched source/destination dimensions.
	ErrDimensionsDiffer = fmt.Errorf("colormap: source and destination dimensions differ")
	// ErrComponentCountMismatch reports source/destination formats with differing component counts.
	ErrComponentCountMismatch = fmt.Errorf("colormap: source and destination component counts differ")
	// ErrPixelFormatUnsupported reports an I32/F32 format or a component width other than 8/16 bit.
	ErrPixelFormatUnsupported = fmt.Errorf("colormap: pixel format unsupported by the component mapper")
)

func checkShape(src, dst imageview.View) error {
	if src.Width() != dst.Width() || src.Height() != dst.Height() {
		return fmt.Errorf("%w: src %dx%d, dst %dx%d", ErrDimensionsDiffer, src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	if src.Format().ComponentCount() != dst.Format().ComponentCount() {
		return fmt.Errorf("%w: src has %d, dst has %d", ErrComponentCountMismatch, src.Format().ComponentCount(), dst.Format().ComponentCount())
	}
	for _, f := range []pixfmt.Format{src.Format(), dst.Format()} {
		ct := f.ComponentType()
		if ct != pixfmt.U8 && ct != pixfmt.U16 {
			return fmt.Errorf("%w: %s", ErrPixelFormatUnsupported, f)
		}
	}
	return nil
}

// ForwardMap applies the mapper's forward curve, component by component, passing the alpha
// channel through unchanged except for bit-depth conversion.
func (m *PixelComponentMapper) ForwardMap(src imageview.View, dst imageview.MutableView) error {
	return m.apply(src, dst, false)
}

// BackwardMap applies the mapper's backward curve, as ForwardMap applies the forward curve.
func (m *PixelComponentMapper) BackwardMap(src imageview.View, dst imageview.MutableView) error {
	return m.apply(src, dst, true)
}

func (m *PixelComponentMapper) apply(src imageview.View, dst imageview.MutableView, backward bool) error {
	if err := checkShape(src, dst); err != nil {
		return err
	}
	nc := src.Format().ComponentCount()
	hasAlpha := src.Format().HasAlpha()
	srcIs16 := src.Format().ComponentType() == pixfmt.U16
	dstIs16 := dst.Format().ComponentType() == pixfmt.U16

	for y := 0; y < src.Height(); y++ {
		srcRow, dstRow := src.Row(y), dst.RowMut(y)
		switch {
		case !srcIs16 && !dstIs16:
			mapRowU8toU8(m, backward, pixfmt.U8Components(srcRow), pixfmt.U8Components(dstRow), nc, hasAlpha)
		case !srcIs16 && dstIs16:
			out := make([]uint16, nc*src.Width())
			mapRowU8toU16(m, backward, pixfmt.U8Components(srcRow), out, nc, hasAlpha)
			pixfmt.PutU16Components(dstRow, out)
		case srcIs16 && !dstIs16:
			mapRowU16toU8(m, backward, pixfmt.U16Components(srcRow), pixfmt.U8Components(dstRow), nc, hasAlpha)
		default:
			in := pixfmt.U16Components(srcRow)
			out := make([]uint16, len(in))
			mapRowU16toU16(m, backward, in, out, nc, hasAlpha)
			pixfmt.PutU16Components(dstRow, out)
		}
	}
	return nil
}

func mapRowU8toU8(m *PixelComponentMapper, backward bool, src, dst []uint8, nc int, hasAlpha bool) {
	table := &m.forward8to8
	if backward {
		table = &m.backward8to8
	}
	for px := 0; px+nc <= len(src); px += nc {
		for k := 0; k < nc; k++ {
			if hasAlpha && k == nc-1 {
				dst[px+k] = src[px+k]
				continue
			}
			dst[px+k] = table[src[px+k]]
		}
	}
}

func mapRowU8toU16(m *PixelComponentMapper, backward bool, src []uint8, dst []uint16, nc int, hasAlpha bool) {
	table := &m.forward8to16
	if backward {
		table = &m.backward8to16
	}
	for px := 0; px+nc <= len(src); px += nc {
		for k := 0; k < nc; k++ {
			if hasAlpha && k == nc-1 {
				dst[px+k] = uint16(src[px+k]) * 257
				continue
			}
			dst[px+k] = table[src[px+k]]
		}
	}
}

func mapRowU16toU8(m *PixelComponentMapper, backward bool, src []uint16, dst []uint8, nc int, hasAlpha bool) {
	table := &m.forward16to8
	if backward {
		table = &m.backward16to8
	}
	for px := 0; px+nc <= len(src); px += nc {
		for k := 0; k < nc; k++ {
			if hasAlpha && k == nc-1 {
				dst[px+k] = uint8((int(src[px+k]) + 128) / 257)
				continue
			}
			dst[px+k] = table[src[px+k]]
		}
	}
}

func mapRowU16toU16(m *PixelComponentMapper, backward bool, src, dst []uint16, nc int, hasAlpha bool) {
	table := &m.forward16to16
	if backward {
		table = &m.backward16to16
	}
	for px := 0; px+nc <= len(src); px += nc {
		for k := 0; k < nc; k++ {
			if hasAlpha && k == nc-1 {
				dst[px+k] = src[px+k]
				continue
			}
			dst[px+k] = table[src[px+k]]
		}
	}
}
