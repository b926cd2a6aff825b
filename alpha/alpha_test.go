package alpha_test

import (
	"errors"
	"math"
	"testing"

	"github.com/rasterkit/fir/alpha"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

func mustView(t *testing.T, w, h int, f pixfmt.Format, pix []byte) *imageview.Buffer {
	t.Helper()
	v, err := imageview.New(w, h, f, w*f.BytesPerPixel(), pix)
	if err != nil {
		t.Fatalf("imageview.New: %v", err)
	}
	return v
}

func mustViewMut(t *testing.T, w, h int, f pixfmt.Format, pix []byte) *imageview.BufferMut {
	t.Helper()
	v, err := imageview.NewMut(w, h, f, w*f.BytesPerPixel(), pix)
	if err != nil {
		t.Fatalf("imageview.NewMut: %v", err)
	}
	return v
}

// Alpha multiply, U8x4: (200,150,100,128) -> (100,75,50,128).
func TestMultiplyAlphaU8(t *testing.T) {
	src := mustView(t, 1, 1, pixfmt.FormatU8x4, []byte{200, 150, 100, 128})
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU8x4, make([]byte, 4))
	if err := alpha.MultiplyAlpha(src, dst); err != nil {
		t.Fatalf("MultiplyAlpha: %v", err)
	}
	want := []byte{100, 75, 50, 128}
	got := dst.Row(0)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("component %d = %d, want %d", i, got[i], want[i])
		}
	}
}

// Alpha divide, U8x4: (50,25,0,100) -> color within one unit of (128,64,0), alpha kept at 100.
func TestDivideAlphaU8(t *testing.T) {
	src := mustView(t, 1, 1, pixfmt.FormatU8x4, []byte{50, 25, 0, 100})
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU8x4, make([]byte, 4))
	if err := alpha.DivideAlpha(src, dst); err != nil {
		t.Fatalf("DivideAlpha: %v", err)
	}
	got := dst.Row(0)
	want := []int{128, 64, 0}
	for i, w := range want {
		if d := int(got[i]) - w; d > 1 || d < -1 {
			t.Errorf("component %d = %d, want within 1 of %d", i, got[i], w)
		}
	}
	if got[3] != 100 {
		t.Errorf("alpha = %d, want 100 unchanged", got[3])
	}
}

func TestDivideAlphaZeroAlphaGuard(t *testing.T) {
	src := mustView(t, 1, 1, pixfmt.FormatU8x4, []byte{10, 20, 30, 0})
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU8x4, make([]byte, 4))
	if err := alpha.DivideAlpha(src, dst); err != nil {
		t.Fatalf("DivideAlpha: %v", err)
	}
	want := []byte{0, 0, 0, 0}
	got := dst.Row(0)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("component %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRoundTripFloat(t *testing.T) {
	pix := make([]byte, pixfmt.FormatF32x4.BytesPerPixel())
	pixfmt.PutF32Components(pix, []float32{0.4, 0.6, 0.2, 0.5})
	src := mustView(t, 1, 1, pixfmt.FormatF32x4, pix)
	mid := mustViewMut(t, 1, 1, pixfmt.FormatF32x4, make([]byte, len(pix)))
	back := mustViewMut(t, 1, 1, pixfmt.FormatF32x4, make([]byte, len(pix)))

	if err := alpha.MultiplyAlpha(src, mid); err != nil {
		t.Fatalf("MultiplyAlpha: %v", err)
	}
	if err := alpha.DivideAlpha(mid, back); err != nil {
		t.Fatalf("DivideAlpha: %v", err)
	}
	srcVals := pixfmt.F32Components(src.Row(0))
	gotVals := pixfmt.F32Components(back.Row(0))
	for i, want := range srcVals {
		if math.Abs(float64(gotVals[i]-want)) > 1e-6 {
			t.Errorf("component %d = %v, want %v", i, gotVals[i], want)
		}
	}
}

func TestInPlaceMatchesOutOfPlace(t *testing.T) {
	data := []byte{200, 150, 100, 128}
	out := mustViewMut(t, 1, 1, pixfmt.FormatU8x4, make([]byte, 4))
	src := mustView(t, 1, 1, pixfmt.FormatU8x4, append([]byte(nil), data...))
	if err := alpha.MultiplyAlpha(src, out); err != nil {
		t.Fatalf("MultiplyAlpha: %v", err)
	}

	inplace := mustViewMut(t, 1, 1, pixfmt.FormatU8x4, append([]byte(nil), data...))
	if err := alpha.MultiplyAlphaInPlace(inplace); err != nil {
		t.Fatalf("MultiplyAlphaInPlace: %v", err)
	}
	for i, b := range out.Row(0) {
		if inplace.Row(0)[i] != b {
			t.Errorf("component %d = %d, want %d", i, inplace.Row(0)[i], b)
		}
	}
}

func TestRejectsPixelFormatWithoutAlpha(t *testing.T) {
	src := mustView(t, 1, 1, pixfmt.FormatU8x3, []byte{1, 2, 3})
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU8x3, make([]byte, 3))
	err := alpha.MultiplyAlpha(src, dst)
	if !errors.Is(err, alpha.ErrPixelFormatUnsupported) {
		t.Errorf("got %v, want ErrPixelFormatUnsupported", err)
	}
}

func TestRejectsDimensionMismatch(t *testing.T) {
	src := mustView(t, 1, 1, pixfmt.FormatU8x4, []byte{1, 2, 3, 4})
	dst := mustViewMut(t, 2, 1, pixfmt.FormatU8x4, make([]byte, 8))
	err := alpha.MultiplyAlpha(src, dst)
	if !errors.Is(err, alpha.ErrDimensionsDiffer) {
		t.Errorf("got %v, want ErrDimensionsDiffer", err)
	}
}

// The reciprocal table trades true division for a bounded rounding error: across every
// feasible (alpha, color) pair the approximation stays within two units of the rounded
// division, and the accumulated error is nonzero, so the bound is tight enough to notice a
// formula regression in either direction.
func TestReciprocalTableErrorIsBounded(t *testing.T) {
	recip := alpha.Recip8()
	var total int
	for a := 1; a < 256; a++ {
		for c := 0; c <= a; c++ {
			approx := (c * int(recip.Values[a])) >> recip.Precision
			if approx > 255 {
				approx = 255
			}
			exact := int(math.Round(float64(c) * 255 / float64(a)))
			if exact > 255 {
				exact = 255
			}
			d := approx - exact
			if d < 0 {
				d = -d
			}
			if d > 2 {
				t.Fatalf("a=%d c=%d: approx=%d exact=%d, error %d exceeds bound", a, c, approx, exact, d)
			}
			total += d
		}
	}
	if total <= 0 {
		t.Fatalf("expected a nonzero accumulated rounding error, got %d", total)
	}
}
