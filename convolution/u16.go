package convolution

import (
	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/cputier"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

// 16-bit-component formats accumulate i32 fixed-point weights in i64.

func horizontalU16(src imageview.View, dst imageview.MutableView, srcRowOffset int, chunks []coeffs.Chunk, tier cputier.Tier) error {
	nc := src.Format().ComponentCount()
	n := coeffs.NewNormalizer32(chunks, src.Format().ComponentMax())
	maxv := int64(src.Format().ComponentMax())
	switch tier {
	case cputier.AVX2:
		horizU16AVX2(src, dst, srcRowOffset, n, nc, maxv)
	case cputier.SSE41:
		horizU16SSE4(src, dst, srcRowOffset, n, nc, maxv)
	case cputier.NEON:
		horizU16NEON(src, dst, srcRowOffset, n, nc, maxv)
	case cputier.WASMSIMD128:
		horizU16WASM(src, dst, srcRowOffset, n, nc, maxv)
	default:
		horizU16Native(src, dst, srcRowOffset, n, nc, maxv)
	}
	return nil
}

func verticalU16(src imageview.View, dst imageview.MutableView, srcColOffset int, chunks []coeffs.Chunk, tier cputier.Tier) error {
	nc := src.Format().ComponentCount()
	n := coeffs.NewNormalizer32(chunks, src.Format().ComponentMax())
	maxv := int64(src.Format().ComponentMax())
	switch tier {
	case cputier.AVX2:
		vertU16AVX2(src, dst, srcColOffset, n, nc, maxv)
	case cputier.SSE41:
		vertU16SSE4(src, dst, srcColOffset, n, nc, maxv)
	case cputier.NEON:
		vertU16NEON(src, dst, srcColOffset, n, nc, maxv)
	case cputier.WASMSIMD128:
		vertU16WASM(src, dst, srcColOffset, n, nc, maxv)
	default:
		vertU16Native(src, dst, srcColOffset, n, nc, maxv)
	}
	return nil
}

func horizU16Native(src imageview.View, dst imageview.MutableView, srcRowOffset int, n coeffs.Normalizer32, nc int, maxv int64) {
	w := dst.Width()
	for y := 0; y < dst.Height(); y++ {
		s := pixfmt.U16Components(src.Row(y + srcRowOffset))
		raw := dst.RowMut(y)
		d := pixfmt.U16Components(raw)
		for x := 0; x < w; x++ {
			st, wv := n.Chunk(x)
			for c := 0; c < nc; c++ {
				off := st*nc + c
				a := n.Bias()
				for j, wt := range wv {
					a += int64(wt) * int64(s[off+j*nc])
				}
				d[x*nc+c] = uint16(n.Clip(a, maxv))
			}
		}
		pixfmt.PutU16Components(raw, d)
	}
}

func vertU16Native(src imageview.View, dst imageview.MutableView, srcColOffset int, n coeffs.Normalizer32, nc int, maxv int64) {
	rows := make([][]uint16, src.Height())
	for y := range rows {
		rows[y] = pixfmt.U16Components(src.Row(y))
	}
	total := dst.Width() * nc
	co := srcColOffset * nc
	for i := 0; i < dst.Height(); i++ {
		st, wv := n.Chunk(i)
		raw := dst.RowMut(i)
		d := pixfmt.U16Components(raw)
		for x := 0; x < total; x++ {
			a := n.Bias()
			for j, wt := range wv {
				a += int64(wt) * int64(rows[st+j][co+x])
			}
			d[x] = uint16(n.Clip(a, maxv))
		}
		pixfmt.PutU16Components(raw, d)
	}
}
