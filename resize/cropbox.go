package resize

import "fmt"

// CropBox is a sub-rectangle of a source image given in fractional source-pixel coordinates.
type CropBox struct {
	Left, Top, Width, Height float64
}

// FullImage returns the crop box covering the entire source image.
func FullImage(srcWidth, srcHeight int) CropBox {
	return CropBox{Left: 0, Top: 0, Width: float64(srcWidth), Height: float64(srcHeight)}
}

// FitSrcIntoDstSize returns the largest sub-rectangle of the source whose aspect ratio matches
// dstWidth/dstHeight, positioned according to centering (default (0.5, 0.5) when nil).
//
// Follows the Pillow ImageOps.fit convention: centering (0,0) crops from the top-left,
// (1,1) from the bottom-right, (0.5,0.5) centers the crop.
func FitSrcIntoDstSize(srcWidth, srcHeight, dstWidth, dstHeight int, centering *[2]float64) CropBox {
	if srcWidth == 0 || srcHeight == 0 || dstWidth == 0 || dstHeight == 0 {
		return CropBox{Width: float64(srcWidth), Height: float64(srcHeight)}
	}

	cx, cy := 0.5, 0.5
	if centering != nil {
		cx, cy = clamp01(centering[0]), clamp01(centering[1])
	}

	width, height := float64(srcWidth), float64(srcHeight)
	imageRatio := width / height
	requiredRatio := float64(dstWidth) / float64(dstHeight)

	var cropWidth, cropHeight float64
	switch {
	case imageRatio == requiredRatio:
		cropWidth, cropHeight = width, height
	case imageRatio >= requiredRatio:
		cropWidth, cropHeight = requiredRatio*height, height
	default:
		cropWidth, cropHeight = width, width/requiredRatio
	}

	return CropBox{
		Left:   (width - cropWidth) * cx,
		Top:    (height - cropHeight) * cy,
		Width:  cropWidth,
		Height: cropHeight,
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Validate checks the crop box against the source dimensions it was taken from, returning
// ErrCropBoxOutOfBounds on any violation.
func (c CropBox) Validate(srcWidth, srcHeight int) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width/height must be positive, got %gx%g", ErrCropBoxOutOfBounds, c.Width, c.Height)
	}
	if c.Left < 0 || c.Top < 0 {
		return fmt.Errorf("%w: negative origin (%g, %g)", ErrCropBoxOutOfBounds, c.Left, c.Top)
	}
	if c.Left+c.Width > float64(srcWidth) || c.Top+c.Height > float64(srcHeight) {
		return fmt.Errorf("%w: (%g,%g)+(%g,%g) exceeds source %dx%d", ErrCropBoxOutOfBounds, c.Left, c.Top, c.Width, c.Height, srcWidth, srcHeight)
	}
	return nil
}
