package resize_test

import (
	"errors"
	"testing"

	"github.com/rasterkit/fir/filter"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
	"github.com/rasterkit/fir/resize"
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

// Identical dimensions, no crop: the resize degenerates to an exact row copy.
func TestResizeIdentity(t *testing.T) {
	pix := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	src := mustView(t, 3, 3, pixfmt.FormatU8, pix)
	dst := mustViewMut(t, 3, 3, pixfmt.FormatU8, make([]byte, 9))

	r := resize.New(resize.ConvolutionAlgorithm(filter.Box))
	if err := r.Resize(src, dst, nil); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for i, b := range dst.Row(0) {
		if b != pix[i] {
			t.Errorf("row 0[%d] = %d, want %d", i, b, pix[i])
		}
	}
}

// Two-axis downscale: exercises the cached intermediate-buffer path.
func TestResizeTwoAxisDownscale(t *testing.T) {
	pix := make([]byte, 8*8)
	for i := range pix {
		pix[i] = byte(i * 3)
	}
	src := mustView(t, 8, 8, pixfmt.FormatU8, pix)
	dst := mustViewMut(t, 4, 4, pixfmt.FormatU8, make([]byte, 16))

	r := resize.New(resize.ConvolutionAlgorithm(filter.Mitchell))
	if err := r.Resize(src, dst, nil); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if r.SizeOfInternalBuffers() == 0 {
		t.Errorf("expected a cached intermediate buffer after a two-axis resize")
	}
	r.ResetInternalBuffers()
	if r.SizeOfInternalBuffers() != 0 {
		t.Errorf("ResetInternalBuffers did not release the cache")
	}
}

// A 2x2 -> 1x1 nearest resize lands the sampled index on an exact tie: ratio 2.0 puts the
// center fraction at exactly 1.0 on both axes. The floor-based rule resolves the tie toward
// the higher index on each axis, picking source pixel (1, 1).
func TestResizeNearestOnEvenSplit(t *testing.T) {
	pix := make([]byte, 2*2*4)
	rows := [][]byte{
		{0, 0, 0, 255, 100, 100, 100, 255},
		{200, 200, 200, 255, 50, 50, 50, 255},
	}
	copy(pix[0:8], rows[0])
	copy(pix[8:16], rows[1])
	src := mustView(t, 2, 2, pixfmt.FormatU8x4, pix)
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU8x4, make([]byte, 4))

	r := resize.New(resize.NearestAlgorithm())
	if err := r.Resize(src, dst, nil); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	want := []byte{50, 50, 50, 255}
	got := dst.Row(0)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("component %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestResizeNearestAsymmetric(t *testing.T) {
	// A non-tied 3x1 -> 1x1 case: center fraction is 1.5, unambiguously index 1.
	pix := []byte{10, 20, 30}
	src := mustView(t, 3, 1, pixfmt.FormatU8, pix)
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU8, make([]byte, 1))
	r := resize.New(resize.NearestAlgorithm())
	if err := r.Resize(src, dst, nil); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if got := dst.Row(0)[0]; got != 20 {
		t.Errorf("got %d, want 20", got)
	}
}

func TestResizeRejectsFormatMismatch(t *testing.T) {
	src := mustView(t, 2, 2, pixfmt.FormatU8, []byte{1, 2, 3, 4})
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU16, make([]byte, 2))
	r := resize.New(resize.ConvolutionAlgorithm(filter.Box))
	err := r.Resize(src, dst, nil)
	if !errors.Is(err, resize.ErrPixelFormatsDiffer) {
		t.Errorf("got %v, want ErrPixelFormatsDiffer", err)
	}
}

func TestResizeRejectsInvalidCrop(t *testing.T) {
	src := mustView(t, 2, 2, pixfmt.FormatU8, []byte{1, 2, 3, 4})
	dst := mustViewMut(t, 1, 1, pixfmt.FormatU8, make([]byte, 1))
	r := resize.New(resize.ConvolutionAlgorithm(filter.Box))
	bad := resize.CropBox{Left: 0, Top: 0, Width: 10, Height: 10}
	err := r.Resize(src, dst, &bad)
	if !errors.Is(err, resize.ErrCropBoxOutOfBounds) {
		t.Errorf("got %v, want ErrCropBoxOutOfBounds", err)
	}
}

func TestResizeSuperSamplingFallsBackBelowThreshold(t *testing.T) {
	pix := make([]byte, 8*8)
	for i := range pix {
		pix[i] = byte(i)
	}
	src := mustView(t, 8, 8, pixfmt.FormatU8, pix)
	dst := mustViewMut(t, 4, 4, pixfmt.FormatU8, make([]byte, 16))

	// ratio is 2, below the 1.2*multiplicity=2.4 threshold for multiplicity=2, so this must
	// fall back straight to plain convolution rather than pre-shrinking.
	r := resize.New(resize.SuperSamplingAlgorithm(filter.Lanczos3, 2))
	if err := r.Resize(src, dst, nil); err != nil {
		t.Fatalf("Resize: %v", err)
	}
}

func TestResizeSuperSamplingPreShrinks(t *testing.T) {
	pix := make([]byte, 64*64)
	for i := range pix {
		pix[i] = byte(i)
	}
	src := mustView(t, 64, 64, pixfmt.FormatU8, pix)
	dst := mustViewMut(t, 4, 4, pixfmt.FormatU8, make([]byte, 16))

	r := resize.New(resize.SuperSamplingAlgorithm(filter.Lanczos3, 2))
	if err := r.Resize(src, dst, nil); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if r.SizeOfInternalBuffers() == 0 {
		t.Errorf("expected internal buffers to be populated by the super-sampling pre-shrink")
	}
}

// A convolving resize premultiplies alpha-channel formats so that fully transparent pixels
// contribute no color. Averaging opaque red with transparent blue must yield red at half
// alpha, not purple; disabling the wrap reproduces the naive straight-alpha mix.
func TestResizeConvolutionPremultipliesAlpha(t *testing.T) {
	pix := []byte{255, 0, 0, 255, 0, 0, 255, 0}
	src := mustView(t, 2, 1, pixfmt.FormatU8x4, pix)

	dst := mustViewMut(t, 1, 1, pixfmt.FormatU8x4, make([]byte, 4))
	r := resize.New(resize.ConvolutionAlgorithm(filter.Box))
	if err := r.Resize(src, dst, nil); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	want := []byte{255, 0, 0, 128}
	got := dst.Row(0)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("premultiplied: component %d = %d, want %d", i, got[i], want[i])
		}
	}

	straight := mustViewMut(t, 1, 1, pixfmt.FormatU8x4, make([]byte, 4))
	r2 := resize.New(resize.ConvolutionAlgorithm(filter.Box))
	r2.DisableAlphaMulDiv = true
	if err := r2.Resize(src, straight, nil); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if g := straight.Row(0); g[2] != 128 {
		t.Errorf("straight-alpha blue = %d, want 128", g[2])
	}
}

func TestResizeIdentityAlphaFormatIsExact(t *testing.T) {
	pix := []byte{10, 20, 30, 4, 200, 150, 100, 255}
	src := mustView(t, 2, 1, pixfmt.FormatU8x4, pix)
	dst := mustViewMut(t, 2, 1, pixfmt.FormatU8x4, make([]byte, len(pix)))
	r := resize.New(resize.ConvolutionAlgorithm(filter.Lanczos3))
	if err := r.Resize(src, dst, nil); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	for i, b := range dst.Row(0) {
		if b != pix[i] {
			t.Errorf("component %d = %d, want %d", i, b, pix[i])
		}
	}
}

func TestResizeRejectsMultiplicityOutOfRange(t *testing.T) {
	src := mustView(t, 8, 8, pixfmt.FormatU8, make([]byte, 64))
	dst := mustViewMut(t, 4, 4, pixfmt.FormatU8, make([]byte, 16))
	for _, m := range []int{0, 1, 9, -3} {
		r := resize.New(resize.SuperSamplingAlgorithm(filter.Box, m))
		err := r.Resize(src, dst, nil)
		if !errors.Is(err, resize.ErrMultiplicityOutOfRange) {
			t.Errorf("multiplicity %d: got %v, want ErrMultiplicityOutOfRange", m, err)
		}
	}
}
