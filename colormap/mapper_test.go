package colormap_test

import (
	"errors"
	"testing"

	"github.com/rasterkit/fir/colormap"
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

// sRGB round-trip is an identity at these canonical byte values, for all three channels of a
// U8x3 pixel.
func TestSRGBRoundTripIdentity(t *testing.T) {
	mapper := colormap.SRGB()
	for _, b := range []byte{0, 64, 128, 192, 255} {
		src := mustView(t, 1, 1, pixfmt.FormatU8x3, []byte{b, b, b})
		mid := mustViewMut(t, 1, 1, pixfmt.FormatU8x3, make([]byte, 3))
		back := mustViewMut(t, 1, 1, pixfmt.FormatU8x3, make([]byte, 3))

		if err := mapper.ForwardMap(src, mid); err != nil {
			t.Fatalf("ForwardMap(%d): %v", b, err)
		}
		if err := mapper.BackwardMap(mid, back); err != nil {
			t.Fatalf("BackwardMap(%d): %v", b, err)
		}
		for i, got := range back.Row(0) {
			if got != b {
				t.Errorf("channel %d: round trip of %d = %d", i, b, got)
			}
		}
	}
}

func TestGamma22IsMonotonic(t *testing.T) {
	mapper := colormap.Gamma22()
	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}
	srcView := mustView(t, 256, 1, pixfmt.FormatU8, src)
	dstView := mustViewMut(t, 256, 1, pixfmt.FormatU8, make([]byte, 256))
	if err := mapper.ForwardMap(srcView, dstView); err != nil {
		t.Fatalf("ForwardMap: %v", err)
	}
	row := dstView.Row(0)
	for i := 1; i < len(row); i++ {
		if row[i] < row[i-1] {
			t.Errorf("forward gamma curve not monotonic at %d: %d < %d", i, row[i], row[i-1])
		}
	}
}

func TestAlphaPassthroughWithBitDepthConversion(t *testing.T) {
	mapper := colormap.Gamma22()
	src := mustView(t, 1, 1, pixfmt.FormatU8x2, []byte{128, 200})
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU16x2, make([]byte, 4))
	if err := mapper.ForwardMap(src, dst); err != nil {
		t.Fatalf("ForwardMap: %v", err)
	}
	alpha := pixfmt.U16Components(dst.Row(0))[1]
	if want := uint16(200) * 257; alpha != want {
		t.Errorf("alpha = %d, want %d", alpha, want)
	}
}

func TestRejectsUnsupportedFormat(t *testing.T) {
	mapper := colormap.Gamma22()
	src := mustView(t, 1, 1, pixfmt.FormatF32, []byte{0, 0, 0, 0})
	dst := mustViewMut(t, 1, 1, pixfmt.FormatF32, make([]byte, 4))
	err := mapper.ForwardMap(src, dst)
	if !errors.Is(err, colormap.ErrPixelFormatUnsupported) {
		t.Errorf("got %v, want ErrPixelFormatUnsupported", err)
	}
}

func TestRejectsDimensionMismatch(t *testing.T) {
	mapper := colormap.Gamma22()
	src := mustView(t, 1, 1, pixfmt.FormatU8, []byte{10})
	dst := mustViewMut(t, 2, 1, pixfmt.FormatU8, make([]byte, 2))
	err := mapper.ForwardMap(src, dst)
	if !errors.Is(err, colormap.ErrDimensionsDiffer) {
		t.Errorf("got %v, want ErrDimensionsDiffer", err)
	}
}

func TestRejectsComponentCountMismatch(t *testing.T) {
	mapper := colormap.Gamma22()
	src := mustView(t, 1, 1, pixfmt.FormatU8x3, []byte{10, 20, 30})
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU8x4, make([]byte, 4))
	err := mapper.ForwardMap(src, dst)
	if !errors.Is(err, colormap.ErrComponentCountMismatch) {
		t.Errorf("got %v, want ErrComponentCountMismatch", err)
	}
}
