package imgio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/internal/imgio"
	"github.com/rasterkit/fir/pixfmt"
)

func TestFromImageNRGBAFastPath(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{10, 20, 30, 255})
	src.Set(1, 0, color.NRGBA{40, 50, 60, 128})

	buf := imgio.FromImage(src)
	if !buf.Format().Equal(pixfmt.FormatU8x4) {
		t.Fatalf("Format() = %s, want U8x4", buf.Format())
	}
	row := buf.Row(0)
	if row[0] != 10 || row[1] != 20 || row[2] != 30 || row[3] != 255 {
		t.Errorf("pixel 0 = %v, want (10,20,30,255)", row[:4])
	}
	if row[4] != 40 || row[5] != 50 || row[6] != 60 || row[7] != 128 {
		t.Errorf("pixel 1 = %v, want (40,50,60,128)", row[4:8])
	}
}

func TestFromImageGenericPathUnpremultiplies(t *testing.T) {
	// image.RGBA stores premultiplied color; FromImage must straighten it back out.
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{200, 100, 50, 128})

	buf := imgio.FromImage(src)
	row := buf.Row(0)
	if row[3] != 128 {
		t.Fatalf("alpha = %d, want 128", row[3])
	}
	for i, want := range []byte{200, 100, 50} {
		if diff := int(row[i]) - int(want); diff < -1 || diff > 1 {
			t.Errorf("component %d = %d, want ~%d", i, row[i], want)
		}
	}
}

func TestRoundTripDecodeEncodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range src.Pix {
		src.Pix[i] = byte(i * 17)
	}
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, src); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}

	buf, err := imgio.Decode(&encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if buf.Width() != 3 || buf.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", buf.Width(), buf.Height())
	}

	back, err := imgio.ToImage(buf)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}
	var out bytes.Buffer
	if err := imgio.Encode(&out, back, "png"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("Encode produced empty output")
	}
}

func TestToImageRejectsUnsupportedFormat(t *testing.T) {
	pix := make([]byte, 4)
	v, err := imageview.New(1, 1, pixfmt.FormatF32, 4, pix)
	if err != nil {
		t.Fatalf("imageview.New: %v", err)
	}
	if _, err := imgio.ToImage(v); err == nil {
		t.Fatal("ToImage: want error for unsupported format, got nil")
	}
}
