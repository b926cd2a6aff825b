// WASM-SIMD128 kernels for 16-bit components. Same 128-bit geometry as SSE4.1: 4/2 tap
// tiles, 4-wide vertical column steps.

package convolution

import (
	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

func horizU16WASM(src imageview.View, dst imageview.MutableView, srcRowOffset int, n coeffs.Normalizer32, nc int, maxv int64) {
	h := dst.Height()
	w := dst.Width()
	y := 0
	for ; y+4 <= h; y += 4 {
		var s [4][]uint16
		var d [4][]uint16
		var raw [4][]byte
		for k := 0; k < 4; k++ {
			s[k] = pixfmt.U16Components(src.Row(y + k + srcRowOffset))
			raw[k] = dst.RowMut(y + k)
			d[k] = pixfmt.U16Components(raw[k])
		}
		horizFourRowsU16WASM(n, nc, maxv, s, d, w)
		for k := 0; k < 4; k++ {
			pixfmt.PutU16Components(raw[k], d[k])
		}
	}
	for ; y < h; y++ {
		raw := dst.RowMut(y)
		d := pixfmt.U16Components(raw)
		horizRowU16WASM(n, nc, maxv, pixfmt.U16Components(src.Row(y+srcRowOffset)), d, w)
		pixfmt.PutU16Components(raw, d)
	}
}

func horizFourRowsU16WASM(n coeffs.Normalizer32, nc int, maxv int64, s [4][]uint16, d [4][]uint16, width int) {
	s0, s1, s2, s3 := s[0], s[1], s[2], s[3]
	d0, d1, d2, d3 := d[0], d[1], d[2], d[3]
	bias := n.Bias()
	for x := 0; x < width; x++ {
		st, wv := n.Chunk(x)
		for c := 0; c < nc; c++ {
			off := st*nc + c
			a0, a1, a2, a3 := bias, bias, bias, bias
			j := 0
			for ; j+4 <= len(wv); j += 4 {
				o := off + j*nc
				w0, w1, w2, w3 := int64(wv[j]), int64(wv[j+1]), int64(wv[j+2]), int64(wv[j+3])
				a0 += w0*int64(s0[o]) + w1*int64(s0[o+nc]) + w2*int64(s0[o+2*nc]) + w3*int64(s0[o+3*nc])
				a1 += w0*int64(s1[o]) + w1*int64(s1[o+nc]) + w2*int64(s1[o+2*nc]) + w3*int64(s1[o+3*nc])
				a2 += w0*int64(s2[o]) + w1*int64(s2[o+nc]) + w2*int64(s2[o+2*nc]) + w3*int64(s2[o+3*nc])
				a3 += w0*int64(s3[o]) + w1*int64(s3[o+nc]) + w2*int64(s3[o+2*nc]) + w3*int64(s3[o+3*nc])
			}
			for ; j+2 <= len(wv); j += 2 {
				o := off + j*nc
				w0, w1 := int64(wv[j]), int64(wv[j+1])
				a0 += w0*int64(s0[o]) + w1*int64(s0[o+nc])
				a1 += w0*int64(s1[o]) + w1*int64(s1[o+nc])
				a2 += w0*int64(s2[o]) + w1*int64(s2[o+nc])
				a3 += w0*int64(s3[o]) + w1*int64(s3[o+nc])
			}
			for ; j < len(wv); j++ {
				o := off + j*nc
				wt := int64(wv[j])
				a0 += wt * int64(s0[o])
				a1 += wt * int64(s1[o])
				a2 += wt * int64(s2[o])
				a3 += wt * int64(s3[o])
			}
			di := x*nc + c
			d0[di] = uint16(n.Clip(a0, maxv))
			d1[di] = uint16(n.Clip(a1, maxv))
			d2[di] = uint16(n.Clip(a2, maxv))
			d3[di] = uint16(n.Clip(a3, maxv))
		}
	}
}

func horizRowU16WASM(n coeffs.Normalizer32, nc int, maxv int64, s []uint16, d []uint16, width int) {
	bias := n.Bias()
	for x := 0; x < width; x++ {
		st, wv := n.Chunk(x)
		for c := 0; c < nc; c++ {
			off := st*nc + c
			a := bias
			j := 0
			for ; j+4 <= len(wv); j += 4 {
				o := off + j*nc
				w0, w1, w2, w3 := int64(wv[j]), int64(wv[j+1]), int64(wv[j+2]), int64(wv[j+3])
				a += w0*int64(s[o]) + w1*int64(s[o+nc]) + w2*int64(s[o+2*nc]) + w3*int64(s[o+3*nc])
			}
			for ; j+2 <= len(wv); j += 2 {
				o := off + j*nc
				w0, w1 := int64(wv[j]), int64(wv[j+1])
				a += w0*int64(s[o]) + w1*int64(s[o+nc])
			}
			for ; j < len(wv); j++ {
				o := off + j*nc
				wt := int64(wv[j])
				a += wt * int64(s[o])
			}
			d[x*nc+c] = uint16(n.Clip(a, maxv))
		}
	}
}

func vertU16WASM(src imageview.View, dst imageview.MutableView, srcColOffset int, n coeffs.Normalizer32, nc int, maxv int64) {
	rows := make([][]uint16, src.Height())
	for y := range rows {
		rows[y] = pixfmt.U16Components(src.Row(y))
	}
	total := dst.Width() * nc
	co := srcColOffset * nc
	bias := n.Bias()
	for i := 0; i < dst.Height(); i++ {
		st, wv := n.Chunk(i)
		raw := dst.RowMut(i)
		d := pixfmt.U16Components(raw)
		x := 0
		for ; x+4 <= total; x += 4 {
			a0, a1, a2, a3 := bias, bias, bias, bias
			for j, w := range wv {
				r := rows[st+j]
				o := co + x
				wt := int64(w)
				a0 += wt * int64(r[o])
				a1 += wt * int64(r[o+1])
				a2 += wt * int64(r[o+2])
				a3 += wt * int64(r[o+3])
			}
			d[x] = uint16(n.Clip(a0, maxv))
			d[x+1] = uint16(n.Clip(a1, maxv))
			d[x+2] = uint16(n.Clip(a2, maxv))
			d[x+3] = uint16(n.Clip(a3, maxv))
		}
		for ; x < total; x++ {
			a := bias
			for j, w := range wv {
				a += int64(w) * int64(rows[st+j][co+x])
			}
			d[x] = uint16(n.Clip(a, maxv))
		}
		pixfmt.PutU16Components(raw, d)
	}
}
