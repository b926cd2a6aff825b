package convolution

import (
	"math"

	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

// F32 and I32 formats have no fixed-point normalizer: each destination component is a plain
// float64 dot product of the real-valued weights and the source components, cast on store
// (f32) or rounded to nearest even (i32). Float accumulation is order-sensitive, so every
// tier walks taps in the same order through this single path instead of reassociating the
// sum per tile; that keeps tier outputs identical rather than merely close.

func horizontalF32(src imageview.View, dst imageview.MutableView, srcRowOffset int, chunks []coeffs.Chunk) error {
	nc := src.Format().ComponentCount()
	for y := 0; y < dst.Height(); y++ {
		srcPix := pixfmt.F32Components(src.Row(y + srcRowOffset))
		dstRow := dst.RowMut(y)
		dstPix := pixfmt.F32Components(dstRow)
		for i, c := range chunks {
			for comp := 0; comp < nc; comp++ {
				acc := 0.0
				for j, w := range c.Values {
					acc += w * float64(srcPix[(c.Start+j)*nc+comp])
				}
				dstPix[i*nc+comp] = float32(acc)
			}
		}
		pixfmt.PutF32Components(dstRow, dstPix)
	}
	return nil
}

func verticalF32(src imageview.View, dst imageview.MutableView, srcColOffset int, chunks []coeffs.Chunk) error {
	nc := src.Format().ComponentCount()
	width := dst.Width()
	rows := make([][]float32, src.Height())
	for y := range rows {
		rows[y] = pixfmt.F32Components(src.Row(y))
	}
	for i, c := range chunks {
		dstRow := dst.RowMut(i)
		dstPix := pixfmt.F32Components(dstRow)
		for x := 0; x < width; x++ {
			srcCol := (x + srcColOffset) * nc
			for comp := 0; comp < nc; comp++ {
				acc := 0.0
				for j, w := range c.Values {
					acc += w * float64(rows[c.Start+j][srcCol+comp])
				}
				dstPix[x*nc+comp] = float32(acc)
			}
		}
		pixfmt.PutF32Components(dstRow, dstPix)
	}
	return nil
}

func horizontalI32(src imageview.View, dst imageview.MutableView, srcRowOffset int, chunks []coeffs.Chunk) error {
	nc := src.Format().ComponentCount()
	for y := 0; y < dst.Height(); y++ {
		srcPix := pixfmt.I32Components(src.Row(y + srcRowOffset))
		dstRow := dst.RowMut(y)
		dstPix := pixfmt.I32Components(dstRow)
		for i, c := range chunks {
			for comp := 0; comp < nc; comp++ {
				acc := 0.0
				for j, w := range c.Values {
					acc += w * float64(srcPix[(c.Start+j)*nc+comp])
				}
				dstPix[i*nc+comp] = int32(math.RoundToEven(acc))
			}
		}
		pixfmt.PutI32Components(dstRow, dstPix)
	}
	return nil
}

func verticalI32(src imageview.View, dst imageview.MutableView, srcColOffset int, chunks []coeffs.Chunk) error {
	nc := src.Format().ComponentCount()
	width := dst.Width()
	rows := make([][]int32, src.Height())
	for y := range rows {
		rows[y] = pixfmt.I32Components(src.Row(y))
	}
	for i, c := range chunks {
		dstRow := dst.RowMut(i)
		dstPix := pixfmt.I32Components(dstRow)
		for x := 0; x < width; x++ {
			srcCol := (x + srcColOffset) * nc
			for comp := 0; comp < nc; comp++ {
				acc := 0.0
				for j, w := range c.Values {
					acc += w * float64(rows[c.Start+j][srcCol+comp])
				}
				dstPix[x*nc+comp] = int32(math.RoundToEven(acc))
			}
		}
		pixfmt.PutI32Components(dstRow, dstPix)
	}
	return nil
}
