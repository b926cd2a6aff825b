package convolution

import (
	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/cputier"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

// 8-bit-component formats accumulate i16 fixed-point weights in i32. The normalizer is built
// once per pass; every tier of the pass shares it, so tier outputs are bit-identical.

func horizontalU8(src imageview.View, dst imageview.MutableView, srcRowOffset int, chunks []coeffs.Chunk, tier cputier.Tier) error {
	nc := src.Format().ComponentCount()
	n := coeffs.NewNormalizer16(chunks, src.Format().ComponentMax())
	maxv := int32(src.Format().ComponentMax())
	switch tier {
	case cputier.AVX2:
		horizU8AVX2(src, dst, srcRowOffset, n, nc, maxv)
	case cputier.SSE41:
		horizU8SSE4(src, dst, srcRowOffset, n, nc, maxv)
	case cputier.NEON:
		horizU8NEON(src, dst, srcRowOffset, n, nc, maxv)
	case cputier.WASMSIMD128:
		horizU8WASM(src, dst, srcRowOffset, n, nc, maxv)
	default:
		horizU8Native(src, dst, srcRowOffset, n, nc, maxv)
	}
	return nil
}

func verticalU8(src imageview.View, dst imageview.MutableView, srcColOffset int, chunks []coeffs.Chunk, tier cputier.Tier) error {
	nc := src.Format().ComponentCount()
	n := coeffs.NewNormalizer16(chunks, src.Format().ComponentMax())
	maxv := int32(src.Format().ComponentMax())
	switch tier {
	case cputier.AVX2:
		vertU8AVX2(src, dst, srcColOffset, n, nc, maxv)
	case cputier.SSE41:
		vertU8SSE4(src, dst, srcColOffset, n, nc, maxv)
	case cputier.NEON:
		vertU8NEON(src, dst, srcColOffset, n, nc, maxv)
	case cputier.WASMSIMD128:
		vertU8WASM(src, dst, srcColOffset, n, nc, maxv)
	default:
		vertU8Native(src, dst, srcColOffset, n, nc, maxv)
	}
	return nil
}

// Native scalar kernels, the mandatory fallback on every platform. One row, one tap at a time.

func horizU8Native(src imageview.View, dst imageview.MutableView, srcRowOffset int, n coeffs.Normalizer16, nc int, maxv int32) {
	w := dst.Width()
	for y := 0; y < dst.Height(); y++ {
		s := pixfmt.U8Components(src.Row(y + srcRowOffset))
		d := pixfmt.U8Components(dst.RowMut(y))
		for x := 0; x < w; x++ {
			st, wv := n.Chunk(x)
			for c := 0; c < nc; c++ {
				off := st*nc + c
				a := n.Bias()
				for j, wt := range wv {
					a += int32(wt) * int32(s[off+j*nc])
				}
				d[x*nc+c] = uint8(n.Clip(a, maxv))
			}
		}
	}
}

func vertU8Native(src imageview.View, dst imageview.MutableView, srcColOffset int, n coeffs.Normalizer16, nc int, maxv int32) {
	rows := make([][]uint8, src.Height())
	for y := range rows {
		rows[y] = pixfmt.U8Components(src.Row(y))
	}
	total := dst.Width() * nc
	co := srcColOffset * nc
	for i := 0; i < dst.Height(); i++ {
		st, wv := n.Chunk(i)
		d := pixfmt.U8Components(dst.RowMut(i))
		for x := 0; x < total; x++ {
			a := n.Bias()
			for j, wt := range wv {
				a += int32(wt) * int32(rows[st+j][co+x])
			}
			d[x] = uint8(n.Clip(a, maxv))
		}
	}
}
