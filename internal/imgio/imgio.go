// Package imgio adapts the standard image.Image decoders to imageview.View, so cmd/resizecli
// can hand decoded raster files to resize.Resizer without the resize packages ever importing
// image/color.
package imgio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

// Decode reads an encoded raster image from r and converts it to a U8x4 (RGBA, alpha last)
// imageview.Buffer. The blank imports extend image.Decode's registry with webp, bmp and tiff
// alongside the standard library's gif, jpeg and png.
func Decode(r io.Reader) (*imageview.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image.Image into a U8x4 Buffer, straightening any color model
// into non-premultiplied 8-bit RGBA row by row.
func FromImage(img image.Image) *imageview.Buffer {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	stride := width * pixfmt.FormatU8x4.BytesPerPixel()
	pix := make([]byte, stride*height)

	if src, ok := img.(*image.NRGBA); ok && src.Rect == b {
		for y := 0; y < height; y++ {
			copy(pix[y*stride:(y+1)*stride], src.Pix[y*src.Stride:y*src.Stride+stride])
		}
	} else {
		for y := 0; y < height; y++ {
			row := pix[y*stride : (y+1)*stride]
			for x := 0; x < width; x++ {
				r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				row[x*4+0] = unpremultiply(r, a)
				row[x*4+1] = unpremultiply(g, a)
				row[x*4+2] = unpremultiply(bl, a)
				row[x*4+3] = uint8(a >> 8)
			}
		}
	}

	buf, err := imageview.New(width, height, pixfmt.FormatU8x4, stride, pix)
	if err != nil {
		// width, height and stride are all derived from img.Bounds() and satisfy New's
		// invariants by construction.
		panic(fmt.Sprintf("imgio: impossible buffer construction failure: %v", err))
	}
	return buf
}

func unpremultiply(c, a uint32) uint8 {
	if a == 0 {
		return 0
	}
	v := c * 0xffff / a
	if v > 0xffff {
		v = 0xffff
	}
	return uint8(v >> 8)
}

// ToImage converts a U8x3 or U8x4 view back into a standard image.Image (image.NRGBA), for
// encoding with the standard library's image/png, image/jpeg or image/gif writers.
func ToImage(v imageview.View) (*image.NRGBA, error) {
	format := v.Format()
	if !format.Equal(pixfmt.FormatU8x3) && !format.Equal(pixfmt.FormatU8x4) {
		return nil, fmt.Errorf("imgio: ToImage supports U8x3 and U8x4, got %s", format)
	}
	width, height := v.Width(), v.Height()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	nc := format.ComponentCount()
	for y := 0; y < height; y++ {
		src := v.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			dst[x*4+0] = src[x*nc+0]
			dst[x*4+1] = src[x*nc+1]
			dst[x*4+2] = src[x*nc+2]
			if nc == 4 {
				dst[x*4+3] = src[x*nc+3]
			} else {
				dst[x*4+3] = 0xff
			}
		}
	}
	return img, nil
}

// Encode writes img to w using the named format ("png", "jpeg" or "gif"), the three the standard
// library encodes without an additional dependency.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, nil)
	case "gif":
		return gif.Encode(w, img, nil)
	default:
		return fmt.Errorf("imgio: unsupported encode format %q", format)
	}
}
