package alpha_test

import (
	"bytes"
	"testing"

	"github.com/rasterkit/fir/alpha"
	"github.com/rasterkit/fir/cputier"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

var allTiers = []cputier.Tier{
	cputier.Scalar, cputier.SSE41, cputier.AVX2, cputier.NEON, cputier.WASMSIMD128,
}

func alphaPattern(f pixfmt.Format, w, h int) []byte {
	n := w * h * f.ComponentCount()
	pix := make([]byte, w*h*f.BytesPerPixel())
	switch f.ComponentType() {
	case pixfmt.U8:
		for i := 0; i < n; i++ {
			pix[i] = byte(3 + i*37)
		}
	case pixfmt.U16:
		vals := make([]uint16, n)
		for i := range vals {
			vals[i] = uint16(5 + i*9949)
		}
		pixfmt.PutU16Components(pix, vals)
	}
	return pix
}

// Wide tiles and the per-pixel tail must agree with the scalar tier exactly. Width 13 leaves a
// tail after every tile size in use; a few rows exercise the row loop.
func TestAlphaTierEquivalence(t *testing.T) {
	formats := []pixfmt.Format{
		pixfmt.FormatU8x2, pixfmt.FormatU8x4, pixfmt.FormatU16x2, pixfmt.FormatU16x4,
	}
	ops := []struct {
		name string
		run  func(m *alpha.MulDiv, src imageview.View, dst imageview.MutableView) error
	}{
		{"multiply", func(m *alpha.MulDiv, src imageview.View, dst imageview.MutableView) error {
			return m.MultiplyAlpha(src, dst)
		}},
		{"divide", func(m *alpha.MulDiv, src imageview.View, dst imageview.MutableView) error {
			return m.DivideAlpha(src, dst)
		}},
	}

	for _, f := range formats {
		pix := alphaPattern(f, 13, 3)
		src := mustView(t, 13, 3, f, pix)
		for _, op := range ops {
			var want []byte
			for _, tier := range allTiers {
				dst := mustViewMut(t, 13, 3, f, make([]byte, len(pix)))
				var m alpha.MulDiv
				m.SetUnsafeTier(cputier.Force(tier))
				if err := op.run(&m, src, dst); err != nil {
					t.Fatalf("%s %s on %s: %v", op.name, f, tier, err)
				}
				got := make([]byte, 0, len(pix))
				for y := 0; y < 3; y++ {
					got = append(got, dst.Row(y)...)
				}
				if want == nil {
					want = got
					continue
				}
				if !bytes.Equal(got, want) {
					t.Errorf("%s %s on %s: output differs from scalar", op.name, f, tier)
				}
			}
		}
	}
}

func TestMultiplyAlphaU16(t *testing.T) {
	f := pixfmt.FormatU16x4
	pix := make([]byte, f.BytesPerPixel())
	pixfmt.PutU16Components(pix, []uint16{52000, 30000, 10000, 32768})
	src := mustView(t, 1, 1, f, pix)
	dst := mustViewMut(t, 1, 1, f, make([]byte, len(pix)))
	if err := alpha.MultiplyAlpha(src, dst); err != nil {
		t.Fatalf("MultiplyAlpha: %v", err)
	}
	got := pixfmt.U16Components(dst.Row(0))
	// round(c * 32768 / 65535) for each color component; alpha unchanged.
	want := []uint16{26000, 15000, 5000, 32768}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("component %d = %d, want %d", i, got[i], want[i])
		}
	}
}

// Multiply-then-divide round-trips within one unit per component. The reconstruction error
// grows as max/alpha, so the bound is asserted on pixels whose alpha stays in the upper half
// of the range.
func TestRoundTripU16(t *testing.T) {
	f := pixfmt.FormatU16x4
	pix := make([]byte, 4*f.BytesPerPixel())
	pixfmt.PutU16Components(pix, []uint16{
		65535, 40000, 20000, 65535,
		30000, 20000, 10000, 40000,
		12345, 2345, 345, 54321,
		400, 200, 100, 45000,
	})
	src := mustView(t, 4, 1, f, pix)
	mid := mustViewMut(t, 4, 1, f, make([]byte, len(pix)))
	back := mustViewMut(t, 4, 1, f, make([]byte, len(pix)))

	if err := alpha.MultiplyAlpha(src, mid); err != nil {
		t.Fatalf("MultiplyAlpha: %v", err)
	}
	if err := alpha.DivideAlpha(mid, back); err != nil {
		t.Fatalf("DivideAlpha: %v", err)
	}
	srcVals := pixfmt.U16Components(src.Row(0))
	gotVals := pixfmt.U16Components(back.Row(0))
	for px := 0; px < 4; px++ {
		a := int64(srcVals[px*4+3])
		for k := 0; k < 3; k++ {
			want := srcVals[px*4+k]
			got := gotVals[px*4+k]
			if d := int64(got) - int64(want); a > 0 && (d > 1 || d < -1) {
				t.Errorf("pixel %d component %d = %d, want within 1 of %d", px, k, got, want)
			}
		}
	}
}
