// Command resizecli is a thin example driver for the resize engine: decode one raster file,
// resize it to a bounding box, write the result back out.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rasterkit/fir/filter"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/internal/imgio"
	"github.com/rasterkit/fir/resize"
)

func main() {
	width := flag.Int("width", 1200, "Maximum width of the output image.")
	height := flag.Int("height", 1600, "Maximum height of the output image.")
	filterName := flag.String("filter", "CatmullRom", "Resampling filter: Box, Bilinear, Hamming, CatmullRom, Mitchell, Lanczos3.")
	workers := flag.Int("workers", 1, "Intra-call parallelism; 1 disables it.")
	out := flag.String("out", "", "Output path (default: input with .resized.png suffix).")

	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: resizecli [flags] <image>")
		os.Exit(2)
	}
	in := flag.Arg(0)

	f, ok := lookupFilter(*filterName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown filter %q\n", *filterName)
		os.Exit(2)
	}

	if err := run(in, outputPath(in, *out), *width, *height, f, *workers); err != nil {
		fmt.Fprintln(os.Stderr, "resizecli:", err)
		os.Exit(1)
	}
}

func run(in, out string, maxWidth, maxHeight int, f filter.Function, workers int) error {
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	srcView, err := imgio.Decode(src)
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}

	dstWidth, dstHeight := fitWithin(srcView.Width(), srcView.Height(), maxWidth, maxHeight)
	stride := dstWidth * srcView.Format().BytesPerPixel()
	dstPix := make([]byte, stride*dstHeight)
	dstView, err := imageview.NewMut(dstWidth, dstHeight, srcView.Format(), stride, dstPix)
	if err != nil {
		return err
	}

	r := resize.New(resize.ConvolutionAlgorithm(f))
	r.Workers = workers
	if err := r.Resize(srcView, dstView, nil); err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	img, err := imgio.ToImage(dstView)
	if err != nil {
		return fmt.Errorf("convert result: %w", err)
	}

	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	defer dst.Close()

	if err := imgio.Encode(dst, img, "png"); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	return nil
}

func fitWithin(srcWidth, srcHeight, maxWidth, maxHeight int) (int, int) {
	ratio := float64(srcWidth) / float64(srcHeight)
	w, h := maxWidth, int(float64(maxWidth)/ratio)
	if h > maxHeight {
		h = maxHeight
		w = int(float64(maxHeight) * ratio)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func lookupFilter(name string) (filter.Function, bool) {
	switch name {
	case "Box":
		return filter.Box, true
	case "Bilinear":
		return filter.Bilinear, true
	case "Hamming":
		return filter.Hamming, true
	case "CatmullRom":
		return filter.CatmullRom, true
	case "Mitchell":
		return filter.Mitchell, true
	case "Lanczos3":
		return filter.Lanczos3, true
	default:
		return filter.Function{}, false
	}
}

func outputPath(in, out string) string {
	if out != "" {
		return out
	}
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + ".resized.png"
}
