package resize_test

import (
	"errors"
	"testing"

	"github.com/rasterkit/fir/resize"
)

func TestFitSrcIntoDstSizeWidthCrop(t *testing.T) {
	box := resize.FitSrcIntoDstSize(100, 50, 10, 10, nil)
	if box.Width != 50 || box.Height != 50 || box.Left != 25 || box.Top != 0 {
		t.Errorf("got %+v, want {Left:25 Top:0 Width:50 Height:50}", box)
	}
}

func TestFitSrcIntoDstSizeHeightCrop(t *testing.T) {
	box := resize.FitSrcIntoDstSize(50, 100, 10, 10, nil)
	if box.Width != 50 || box.Height != 50 || box.Left != 0 || box.Top != 25 {
		t.Errorf("got %+v, want {Left:0 Top:25 Width:50 Height:50}", box)
	}
}

func TestFitSrcIntoDstSizeMatchingRatioIsIdentity(t *testing.T) {
	box := resize.FitSrcIntoDstSize(100, 50, 4, 2, nil)
	if box.Width != 100 || box.Height != 50 || box.Left != 0 || box.Top != 0 {
		t.Errorf("got %+v, want full image", box)
	}
}

func TestFitSrcIntoDstSizeCenteringTopLeft(t *testing.T) {
	centering := [2]float64{0, 0}
	box := resize.FitSrcIntoDstSize(100, 50, 10, 10, &centering)
	if box.Left != 0 {
		t.Errorf("Left = %v, want 0 with top-left centering", box.Left)
	}
}

func TestValidateRejectsOutOfBounds(t *testing.T) {
	box := resize.CropBox{Left: 90, Top: 0, Width: 20, Height: 10}
	err := box.Validate(100, 100)
	if !errors.Is(err, resize.ErrCropBoxOutOfBounds) {
		t.Errorf("got %v, want ErrCropBoxOutOfBounds", err)
	}
}

func TestValidateRejectsNonPositiveSize(t *testing.T) {
	box := resize.CropBox{Left: 0, Top: 0, Width: 0, Height: 10}
	err := box.Validate(100, 100)
	if !errors.Is(err, resize.ErrCropBoxOutOfBounds) {
		t.Errorf("got %v, want ErrCropBoxOutOfBounds", err)
	}
}
