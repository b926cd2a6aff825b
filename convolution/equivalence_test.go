package convolution_test

import (
	"bytes"
	"testing"

	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/convolution"
	"github.com/rasterkit/fir/cputier"
	"github.com/rasterkit/fir/filter"
	"github.com/rasterkit/fir/pixfmt"
)

var allTiers = []cputier.Tier{
	cputier.Scalar, cputier.SSE41, cputier.AVX2, cputier.NEON, cputier.WASMSIMD128,
}

// fillPattern writes a deterministic per-format component pattern into a pixel buffer.
func fillPattern(f pixfmt.Format, w, h int) []byte {
	n := w * h * f.ComponentCount()
	pix := make([]byte, w*h*f.BytesPerPixel())
	switch f.ComponentType() {
	case pixfmt.U8:
		for i := 0; i < n; i++ {
			pix[i] = byte(7 + i*13)
		}
	case pixfmt.U16:
		vals := make([]uint16, n)
		for i := range vals {
			vals[i] = uint16(11 + i*2654)
		}
		pixfmt.PutU16Components(pix, vals)
	case pixfmt.I32:
		vals := make([]int32, n)
		for i := range vals {
			vals[i] = int32(i*9901 - 4000)
		}
		pixfmt.PutI32Components(pix, vals)
	case pixfmt.F32:
		vals := make([]float32, n)
		for i := range vals {
			vals[i] = float32(i%251) / 250
		}
		pixfmt.PutF32Components(pix, vals)
	}
	return pix
}

func runTwoPass(t *testing.T, f pixfmt.Format, fn filter.Function, tier cputier.Tier,
	srcW, srcH, dstW, dstH int, pix []byte) []byte {
	t.Helper()
	src := mustView(t, srcW, srcH, f, pix)
	mid := mustViewMut(t, dstW, srcH, f)
	dst := mustViewMut(t, dstW, dstH, f)

	hChunks := coeffs.Build(srcW, 0, float64(srcW), dstW, fn)
	if err := convolution.HorizontalConvolution(src, mid, 0, hChunks, tier); err != nil {
		t.Fatalf("%s/%s/%s horizontal: %v", f, fn, tier, err)
	}
	vChunks := coeffs.Build(srcH, 0, float64(srcH), dstH, fn)
	if err := convolution.VerticalConvolution(mid, dst, 0, vChunks, tier); err != nil {
		t.Fatalf("%s/%s/%s vertical: %v", f, fn, tier, err)
	}
	out := make([]byte, 0, dstH*dstW*f.BytesPerPixel())
	for y := 0; y < dstH; y++ {
		out = append(out, dst.Row(y)...)
	}
	return out
}

// Every enabled tier must produce output identical to the scalar tier, for every pixel format
// and filter, across downscales, upscales and a heavy shrink whose coefficient windows are
// wide enough to engage every tile size of the unroll chains.
func TestTierEquivalenceAcrossFormats(t *testing.T) {
	geometries := []struct {
		name                   string
		srcW, srcH, dstW, dstH int
	}{
		{"downscale", 13, 9, 7, 6},
		{"upscale", 9, 7, 17, 11},
		{"heavy-shrink", 97, 61, 5, 6},
	}
	filters := []filter.Function{filter.Box, filter.Bilinear, filter.CatmullRom, filter.Lanczos3}

	for _, f := range pixfmt.All {
		for _, fn := range filters {
			for _, g := range geometries {
				pix := fillPattern(f, g.srcW, g.srcH)
				want := runTwoPass(t, f, fn, cputier.Scalar, g.srcW, g.srcH, g.dstW, g.dstH, pix)
				for _, tier := range allTiers[1:] {
					got := runTwoPass(t, f, fn, tier, g.srcW, g.srcH, g.dstW, g.dstH, pix)
					if !bytes.Equal(got, want) {
						t.Errorf("%s/%s/%s on %s: output differs from scalar", f, fn, tier, g.name)
					}
				}
			}
		}
	}
}

// The four-row horizontal kernels must agree with the one-row tail for every row, not just for
// heights divisible by four: heights 1 through 5 cover both sides of the unroll.
func TestFourRowKernelMatchesTail(t *testing.T) {
	f := pixfmt.FormatU8x3
	for h := 1; h <= 5; h++ {
		pix := fillPattern(f, 16, h)
		var want []byte
		for _, tier := range allTiers {
			got := runTwoPass(t, f, filter.CatmullRom, tier, 16, h, 9, h, pix)
			if want == nil {
				want = got
				continue
			}
			if !bytes.Equal(got, want) {
				t.Errorf("height %d, tier %s: output differs from scalar", h, tier)
			}
		}
	}
}

// Convolving a separable image factorizes: the two-pass result equals the outer product of
// the independently convolved 1-D profiles, up to the float32 storage rounding between the
// passes.
func TestTwoPassSeparability(t *testing.T) {
	const srcW, srcH, dstW, dstH = 12, 10, 5, 4
	fx := func(x int) float64 { return 0.1 + 0.07*float64(x) }
	gy := func(y int) float64 { return 0.2 + 0.05*float64(y) }

	f := pixfmt.FormatF32
	vals := make([]float32, srcW*srcH)
	for y := 0; y < srcH; y++ {
		for x := 0; x < srcW; x++ {
			vals[y*srcW+x] = float32(fx(x) * gy(y))
		}
	}
	pix := make([]byte, len(vals)*4)
	pixfmt.PutF32Components(pix, vals)

	got := runTwoPass(t, f, filter.CatmullRom, cputier.Scalar, srcW, srcH, dstW, dstH, pix)
	gotVals := pixfmt.F32Components(got)

	hChunks := coeffs.Build(srcW, 0, srcW, dstW, filter.CatmullRom)
	vChunks := coeffs.Build(srcH, 0, srcH, dstH, filter.CatmullRom)
	hProfile := make([]float64, dstW)
	for i, c := range hChunks {
		for j, w := range c.Values {
			hProfile[i] += w * fx(c.Start+j)
		}
	}
	vProfile := make([]float64, dstH)
	for i, c := range vChunks {
		for j, w := range c.Values {
			vProfile[i] += w * gy(c.Start+j)
		}
	}

	for k := 0; k < dstH; k++ {
		for i := 0; i < dstW; i++ {
			want := hProfile[i] * vProfile[k]
			diff := float64(gotVals[k*dstW+i]) - want
			if diff > 1e-4 || diff < -1e-4 {
				t.Errorf("dst[%d][%d] = %v, want %v", k, i, gotVals[k*dstW+i], want)
			}
		}
	}
}
