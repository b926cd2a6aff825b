// NEON kernels for 8-bit components. One quadword register holds 8 widened source
// components, matching the SSE4.1 tile geometry: 8/4/2-tap horizontal tiles, 8-wide
// vertical column steps.

package convolution

import (
	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

func horizU8NEON(src imageview.View, dst imageview.MutableView, srcRowOffset int, n coeffs.Normalizer16, nc int, maxv int32) {
	h := dst.Height()
	w := dst.Width()
	y := 0
	for ; y+4 <= h; y += 4 {
		var s [4][]uint8
		var d [4][]uint8
		for k := 0; k < 4; k++ {
			s[k] = pixfmt.U8Components(src.Row(y + k + srcRowOffset))
			d[k] = pixfmt.U8Components(dst.RowMut(y + k))
		}
		horizFourRowsU8NEON(n, nc, maxv, s, d, w)
	}
	for ; y < h; y++ {
		horizRowU8NEON(n, nc, maxv, pixfmt.U8Components(src.Row(y+srcRowOffset)), pixfmt.U8Components(dst.RowMut(y)), w)
	}
}

func horizFourRowsU8NEON(n coeffs.Normalizer16, nc int, maxv int32, s [4][]uint8, d [4][]uint8, width int) {
	s0, s1, s2, s3 := s[0], s[1], s[2], s[3]
	d0, d1, d2, d3 := d[0], d[1], d[2], d[3]
	bias := n.Bias()
	for x := 0; x < width; x++ {
		st, wv := n.Chunk(x)
		for c := 0; c < nc; c++ {
			off := st*nc + c
			a0, a1, a2, a3 := bias, bias, bias, bias
			j := 0
			for ; j+8 <= len(wv); j += 8 {
				o := off + j*nc
				w0, w1, w2, w3 := int32(wv[j]), int32(wv[j+1]), int32(wv[j+2]), int32(wv[j+3])
				w4, w5, w6, w7 := int32(wv[j+4]), int32(wv[j+5]), int32(wv[j+6]), int32(wv[j+7])
				a0 += w0*int32(s0[o]) + w1*int32(s0[o+nc]) + w2*int32(s0[o+2*nc]) + w3*int32(s0[o+3*nc])
				a0 += w4*int32(s0[o+4*nc]) + w5*int32(s0[o+5*nc]) + w6*int32(s0[o+6*nc]) + w7*int32(s0[o+7*nc])
				a1 += w0*int32(s1[o]) + w1*int32(s1[o+nc]) + w2*int32(s1[o+2*nc]) + w3*int32(s1[o+3*nc])
				a1 += w4*int32(s1[o+4*nc]) + w5*int32(s1[o+5*nc]) + w6*int32(s1[o+6*nc]) + w7*int32(s1[o+7*nc])
				a2 += w0*int32(s2[o]) + w1*int32(s2[o+nc]) + w2*int32(s2[o+2*nc]) + w3*int32(s2[o+3*nc])
				a2 += w4*int32(s2[o+4*nc]) + w5*int32(s2[o+5*nc]) + w6*int32(s2[o+6*nc]) + w7*int32(s2[o+7*nc])
				a3 += w0*int32(s3[o]) + w1*int32(s3[o+nc]) + w2*int32(s3[o+2*nc]) + w3*int32(s3[o+3*nc])
				a3 += w4*int32(s3[o+4*nc]) + w5*int32(s3[o+5*nc]) + w6*int32(s3[o+6*nc]) + w7*int32(s3[o+7*nc])
			}
			for ; j+4 <= len(wv); j += 4 {
				o := off + j*nc
				w0, w1, w2, w3 := int32(wv[j]), int32(wv[j+1]), int32(wv[j+2]), int32(wv[j+3])
				a0 += w0*int32(s0[o]) + w1*int32(s0[o+nc]) + w2*int32(s0[o+2*nc]) + w3*int32(s0[o+3*nc])
				a1 += w0*int32(s1[o]) + w1*int32(s1[o+nc]) + w2*int32(s1[o+2*nc]) + w3*int32(s1[o+3*nc])
				a2 += w0*int32(s2[o]) + w1*int32(s2[o+nc]) + w2*int32(s2[o+2*nc]) + w3*int32(s2[o+3*nc])
				a3 += w0*int32(s3[o]) + w1*int32(s3[o+nc]) + w2*int32(s3[o+2*nc]) + w3*int32(s3[o+3*nc])
			}
			for ; j+2 <= len(wv); j += 2 {
				o := off + j*nc
				w0, w1 := int32(wv[j]), int32(wv[j+1])
				a0 += w0*int32(s0[o]) + w1*int32(s0[o+nc])
				a1 += w0*int32(s1[o]) + w1*int32(s1[o+nc])
				a2 += w0*int32(s2[o]) + w1*int32(s2[o+nc])
				a3 += w0*int32(s3[o]) + w1*int32(s3[o+nc])
			}
			for ; j < len(wv); j++ {
				o := off + j*nc
				wt := int32(wv[j])
				a0 += wt * int32(s0[o])
				a1 += wt * int32(s1[o])
				a2 += wt * int32(s2[o])
				a3 += wt * int32(s3[o])
			}
			di := x*nc + c
			d0[di] = uint8(n.Clip(a0, maxv))
			d1[di] = uint8(n.Clip(a1, maxv))
			d2[di] = uint8(n.Clip(a2, maxv))
			d3[di] = uint8(n.Clip(a3, maxv))
		}
	}
}

func horizRowU8NEON(n coeffs.Normalizer16, nc int, maxv int32, s []uint8, d []uint8, width int) {
	bias := n.Bias()
	for x := 0; x < width; x++ {
		st, wv := n.Chunk(x)
		for c := 0; c < nc; c++ {
			off := st*nc + c
			a := bias
			j := 0
			for ; j+8 <= len(wv); j += 8 {
				o := off + j*nc
				w0, w1, w2, w3 := int32(wv[j]), int32(wv[j+1]), int32(wv[j+2]), int32(wv[j+3])
				w4, w5, w6, w7 := int32(wv[j+4]), int32(wv[j+5]), int32(wv[j+6]), int32(wv[j+7])
				a += w0*int32(s[o]) + w1*int32(s[o+nc]) + w2*int32(s[o+2*nc]) + w3*int32(s[o+3*nc])
				a += w4*int32(s[o+4*nc]) + w5*int32(s[o+5*nc]) + w6*int32(s[o+6*nc]) + w7*int32(s[o+7*nc])
			}
			for ; j+4 <= len(wv); j += 4 {
				o := off + j*nc
				w0, w1, w2, w3 := int32(wv[j]), int32(wv[j+1]), int32(wv[j+2]), int32(wv[j+3])
				a += w0*int32(s[o]) + w1*int32(s[o+nc]) + w2*int32(s[o+2*nc]) + w3*int32(s[o+3*nc])
			}
			for ; j+2 <= len(wv); j += 2 {
				o := off + j*nc
				w0, w1 := int32(wv[j]), int32(wv[j+1])
				a += w0*int32(s[o]) + w1*int32(s[o+nc])
			}
			for ; j < len(wv); j++ {
				o := off + j*nc
				wt := int32(wv[j])
				a += wt * int32(s[o])
			}
			d[x*nc+c] = uint8(n.Clip(a, maxv))
		}
	}
}

func vertU8NEON(src imageview.View, dst imageview.MutableView, srcColOffset int, n coeffs.Normalizer16, nc int, maxv int32) {
	rows := make([][]uint8, src.Height())
	for y := range rows {
		rows[y] = pixfmt.U8Components(src.Row(y))
	}
	total := dst.Width() * nc
	co := srcColOffset * nc
	bias := n.Bias()
	for i := 0; i < dst.Height(); i++ {
		st, wv := n.Chunk(i)
		d := pixfmt.U8Components(dst.RowMut(i))
		x := 0
		for ; x+8 <= total; x += 8 {
			a0, a1, a2, a3 := bias, bias, bias, bias
			a4, a5, a6, a7 := bias, bias, bias, bias
			for j, w := range wv {
				r := rows[st+j]
				o := co + x
				wt := int32(w)
				a0 += wt * int32(r[o])
				a1 += wt * int32(r[o+1])
				a2 += wt * int32(r[o+2])
				a3 += wt * int32(r[o+3])
				a4 += wt * int32(r[o+4])
				a5 += wt * int32(r[o+5])
				a6 += wt * int32(r[o+6])
				a7 += wt * int32(r[o+7])
			}
			d[x] = uint8(n.Clip(a0, maxv))
			d[x+1] = uint8(n.Clip(a1, maxv))
			d[x+2] = uint8(n.Clip(a2, maxv))
			d[x+3] = uint8(n.Clip(a3, maxv))
			d[x+4] = uint8(n.Clip(a4, maxv))
			d[x+5] = uint8(n.Clip(a5, maxv))
			d[x+6] = uint8(n.Clip(a6, maxv))
			d[x+7] = uint8(n.Clip(a7, maxv))
		}
		for ; x+4 <= total; x += 4 {
			a0, a1, a2, a3 := bias, bias, bias, bias
			for j, w := range wv {
				r := rows[st+j]
				o := co + x
				wt := int32(w)
				a0 += wt * int32(r[o])
				a1 += wt * int32(r[o+1])
				a2 += wt * int32(r[o+2])
				a3 += wt * int32(r[o+3])
			}
			d[x] = uint8(n.Clip(a0, maxv))
			d[x+1] = uint8(n.Clip(a1, maxv))
			d[x+2] = uint8(n.Clip(a2, maxv))
			d[x+3] = uint8(n.Clip(a3, maxv))
		}
		for ; x < total; x++ {
			a := bias
			for j, w := range wv {
				a += int32(w) * int32(rows[st+j][co+x])
			}
			d[x] = uint8(n.Clip(a, maxv))
		}
	}
}
