package alpha

import (
	"fmt"

	"github.com/rasterkit/fir/cputier"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

// MulDiv dispatches the four alpha operations to the per-tier row kernels. The zero value uses
// the detected CPU tier; SetUnsafeTier forces another one.
type MulDiv struct {
	unsafeTier *cputier.Unsafe
}

// SetUnsafeTier forces the tier every subsequent operation dispatches to. Forcing a tier the
// hardware does not support is undefined behavior; constructing the cputier.Unsafe is the
// caller's opt-in.
func (m *MulDiv) SetUnsafeTier(u cputier.Unsafe) { m.unsafeTier = &u }

func (m *MulDiv) tier() cputier.Tier { return cputier.Resolve(m.unsafeTier) }

func checkShape(src, dst imageview.View) error {
	if src.Width() != dst.Width() || src.Height() != dst.Height() {
		return fmt.Errorf("%w: src %dx%d, dst %dx%d", ErrDimensionsDiffer, src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	if !src.Format().Equal(dst.Format()) {
		return fmt.Errorf("%w: src %s, dst %s", ErrPixelFormatsDiffer, src.Format(), dst.Format())
	}
	if !src.Format().HasAlpha() {
		return fmt.Errorf("%w: %s has no alpha channel", ErrPixelFormatUnsupported, src.Format())
	}
	return nil
}

// MultiplyAlpha writes dst[i] = src[i] with each color component c replaced by round(c*a/max).
func (m *MulDiv) MultiplyAlpha(src imageview.View, dst imageview.MutableView) error {
	if err := checkShape(src, dst); err != nil {
		return err
	}
	nc := src.Format().ComponentCount()
	ct := src.Format().ComponentType()
	t := m.tier()
	for y := 0; y < src.Height(); y++ {
		multiplyRow(ct, t, src.Row(y), dst.RowMut(y), nc)
	}
	return nil
}

// MultiplyAlphaInPlace is MultiplyAlpha with src and dst aliased to the same view.
func (m *MulDiv) MultiplyAlphaInPlace(img imageview.MutableView) error {
	return m.MultiplyAlpha(img, img)
}

// DivideAlpha writes dst[i] = src[i] with each color component c replaced by c*max/a, clamped
// to [0, max], when a > 0. Integer formats compute the quotient through a per-alpha reciprocal
// table as (c*recip[a])>>P, which can differ from the rounded quotient by a small amount. A zero
// alpha zeroes the whole pixel.
func (m *MulDiv) DivideAlpha(src imageview.View, dst imageview.MutableView) error {
	if err := checkShape(src, dst); err != nil {
		return err
	}
	nc := src.Format().ComponentCount()
	ct := src.Format().ComponentType()
	t := m.tier()
	for y := 0; y < src.Height(); y++ {
		divideRow(ct, t, src.Row(y), dst.RowMut(y), nc)
	}
	return nil
}

// DivideAlphaInPlace is DivideAlpha with src and dst aliased to the same view.
func (m *MulDiv) DivideAlphaInPlace(img imageview.MutableView) error {
	return m.DivideAlpha(img, img)
}

var defaultMulDiv MulDiv

// MultiplyAlpha runs the multiply operation on the detected CPU tier.
func MultiplyAlpha(src imageview.View, dst imageview.MutableView) error {
	return defaultMulDiv.MultiplyAlpha(src, dst)
}

// MultiplyAlphaInPlace runs the in-place multiply operation on the detected CPU tier.
func MultiplyAlphaInPlace(img imageview.MutableView) error {
	return defaultMulDiv.MultiplyAlphaInPlace(img)
}

// DivideAlpha runs the divide operation on the detected CPU tier.
func DivideAlpha(src imageview.View, dst imageview.MutableView) error {
	return defaultMulDiv.DivideAlpha(src, dst)
}

// DivideAlphaInPlace runs the in-place divide operation on the detected CPU tier.
func DivideAlphaInPlace(img imageview.MutableView) error {
	return defaultMulDiv.DivideAlphaInPlace(img)
}

func multiplyRow(ct pixfmt.ComponentType, tier cputier.Tier, srcBytes, dstBytes []byte, nc int) {
	switch ct {
	case pixfmt.U8:
		s, d := pixfmt.U8Components(srcBytes), pixfmt.U8Components(dstBytes)
		switch tier {
		case cputier.AVX2:
			mulRowU8AVX2(s, d, nc)
		case cputier.SSE41:
			mulRowU8SSE4(s, d, nc)
		case cputier.NEON:
			mulRowU8NEON(s, d, nc)
		case cputier.WASMSIMD128:
			mulRowU8WASM(s, d, nc)
		default:
			mulRowU8Native(s, d, nc)
		}
	case pixfmt.U16:
		s := pixfmt.U16Components(srcBytes)
		d := pixfmt.U16Components(dstBytes)
		switch tier {
		case cputier.AVX2:
			mulRowU16AVX2(s, d, nc)
		case cputier.SSE41:
			mulRowU16SSE4(s, d, nc)
		case cputier.NEON:
			mulRowU16NEON(s, d, nc)
		case cputier.WASMSIMD128:
			mulRowU16WASM(s, d, nc)
		default:
			mulRowU16Native(s, d, nc)
		}
		pixfmt.PutU16Components(dstBytes, d)
	case pixfmt.F32:
		s := pixfmt.F32Components(srcBytes)
		d := pixfmt.F32Components(dstBytes)
		mulRowF32(s, d, nc)
		pixfmt.PutF32Components(dstBytes, d)
	}
}

func divideRow(ct pixfmt.ComponentType, tier cputier.Tier, srcBytes, dstBytes []byte, nc int) {
	switch ct {
	case pixfmt.U8:
		s, d := pixfmt.U8Components(srcBytes), pixfmt.U8Components(dstBytes)
		switch tier {
		case cputier.AVX2:
			divRowU8AVX2(s, d, nc)
		case cputier.SSE41:
			divRowU8SSE4(s, d, nc)
		case cputier.NEON:
			divRowU8NEON(s, d, nc)
		case cputier.WASMSIMD128:
			divRowU8WASM(s, d, nc)
		default:
			divRowU8Native(s, d, nc)
		}
	case pixfmt.U16:
		s := pixfmt.U16Components(srcBytes)
		d := pixfmt.U16Components(dstBytes)
		switch tier {
		case cputier.AVX2:
			divRowU16AVX2(s, d, nc)
		case cputier.SSE41:
			divRowU16SSE4(s, d, nc)
		case cputier.NEON:
			divRowU16NEON(s, d, nc)
		case cputier.WASMSIMD128:
			divRowU16WASM(s, d, nc)
		default:
			divRowU16Native(s, d, nc)
		}
		pixfmt.PutU16Components(dstBytes, d)
	case pixfmt.F32:
		s := pixfmt.F32Components(srcBytes)
		d := pixfmt.F32Components(dstBytes)
		divRowF32(s, d, nc)
		pixfmt.PutF32Components(dstBytes, d)
	}
}
