package resize

import (
	"fmt"

	"github.com/rasterkit/fir/alpha"
	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/cputier"
	"github.com/rasterkit/fir/filter"
	"github.com/rasterkit/fir/imageview"
	"github.com/rasterkit/fir/pixfmt"
)

// Resizer executes full resizes under a chosen Algorithm, caching the intermediate buffers a
// two-pass convolution needs across successive calls. Buffers grow on demand and persist
// until ResetInternalBuffers.
type Resizer struct {
	Algorithm Algorithm

	// Workers enables intra-call parallelism across destination rows. Zero or one keeps each
	// pass single-threaded.
	Workers int

	// DisableAlphaMulDiv skips the premultiply/divide wrapping that the convolving algorithms
	// otherwise apply to alpha-channel formats, for callers whose pixels are already
	// premultiplied.
	DisableAlphaMulDiv bool

	unsafeTier       *cputier.Unsafe
	mulDiv           alpha.MulDiv
	convolutionBuf   []byte
	superSamplingBuf []byte
	mulDivBuf        []byte
}

// New builds a Resizer for the given algorithm.
func New(algo Algorithm) *Resizer {
	return &Resizer{Algorithm: algo}
}

// SetUnsafeTier forces the SIMD tier Resize dispatches to, overriding runtime detection.
// Requesting a tier the hardware doesn't support is undefined behavior; constructing the
// override is itself the caller's opt-in.
func (r *Resizer) SetUnsafeTier(u cputier.Unsafe) {
	r.unsafeTier = &u
	r.mulDiv.SetUnsafeTier(u)
}

func (r *Resizer) tier() cputier.Tier { return cputier.Resolve(r.unsafeTier) }

// SizeOfInternalBuffers reports the combined byte capacity of the cached intermediate buffers.
func (r *Resizer) SizeOfInternalBuffers() int {
	return cap(r.convolutionBuf) + cap(r.superSamplingBuf) + cap(r.mulDivBuf)
}

// ResetInternalBuffers releases the cached intermediate buffers.
func (r *Resizer) ResetInternalBuffers() {
	r.convolutionBuf = nil
	r.superSamplingBuf = nil
	r.mulDivBuf = nil
}

// Resize runs r.Algorithm against src, writing the result to dst. crop may be nil, meaning the
// entire source image; otherwise it must satisfy CropBox.Validate against src's dimensions.
func (r *Resizer) Resize(src imageview.View, dst imageview.MutableView, crop *CropBox) error {
	if !src.Format().Equal(dst.Format()) {
		return fmt.Errorf("%w: src %s, dst %s", ErrPixelFormatsDiffer, src.Format(), dst.Format())
	}
	box := FullImage(src.Width(), src.Height())
	if crop != nil {
		box = *crop
	}
	if err := box.Validate(src.Width(), src.Height()); err != nil {
		return err
	}
	if r.Algorithm.Kind == SuperSampling {
		if m := r.Algorithm.Multiplicity; m < 2 || m > 8 {
			return fmt.Errorf("%w: got %d, want 2 to 8", ErrMultiplicityOutOfRange, m)
		}
	}

	// Identity geometry is a row copy no matter the algorithm; taking it before the alpha
	// wrap keeps the copy byte-exact for alpha formats as well.
	if box.Left == 0 && box.Top == 0 &&
		box.Width == float64(src.Width()) && box.Height == float64(src.Height()) &&
		src.Width() == dst.Width() && src.Height() == dst.Height() {
		return copyRows(src, dst)
	}

	// Convolving algorithms mix neighboring pixels, so alpha-channel formats are premultiplied
	// first and divided back after the passes; Nearest copies whole pixels and needs neither.
	useAlpha := !r.DisableAlphaMulDiv && src.Format().HasAlpha() && r.Algorithm.Kind != Nearest
	if useAlpha {
		pre := r.acquireBuffer(&r.mulDivBuf, src.Width(), src.Height(), src.Format())
		if err := r.mulDiv.MultiplyAlpha(src, pre); err != nil {
			return err
		}
		src = pre
	}

	var err error
	switch r.Algorithm.Kind {
	case Nearest:
		err = resampleNearest(src, dst, box)
	case Convolution:
		err = r.resampleConvolution(src, dst, box, r.Algorithm.Filter)
	case SuperSampling:
		err = r.resampleSuperSampling(src, dst, box, r.Algorithm.Filter, r.Algorithm.Multiplicity)
	default:
		err = fmt.Errorf("resize: unknown algorithm kind %d", r.Algorithm.Kind)
	}
	if err != nil {
		return err
	}
	if useAlpha {
		return r.mulDiv.DivideAlphaInPlace(dst)
	}
	return nil
}

func resampleNearest(src imageview.View, dst imageview.MutableView, box CropBox) error {
	bpp := src.Format().BytesPerPixel()
	for y := 0; y < dst.Height(); y++ {
		sy := clampInt(int(box.Top+(float64(y)+0.5)*box.Height/float64(dst.Height())), 0, src.Height()-1)
		srcRow, dstRow := src.Row(sy), dst.RowMut(y)
		for x := 0; x < dst.Width(); x++ {
			sx := clampInt(int(box.Left+(float64(x)+0.5)*box.Width/float64(dst.Width())), 0, src.Width()-1)
			copy(dstRow[x*bpp:(x+1)*bpp], srcRow[sx*bpp:(sx+1)*bpp])
		}
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r *Resizer) resampleConvolution(src imageview.View, dst imageview.MutableView, box CropBox, f filter.Function) error {
	tier := r.tier()
	widthUnchanged := src.Width() == dst.Width() && box.Left == 0 && box.Width == float64(src.Width())
	heightUnchanged := src.Height() == dst.Height() && box.Top == 0 && box.Height == float64(src.Height())

	switch {
	case widthUnchanged && heightUnchanged:
		return copyRows(src, dst)
	case heightUnchanged:
		hChunks := coeffs.Build(src.Width(), box.Left, box.Width, dst.Width(), f)
		return r.runHorizontal(src, dst, 0, hChunks, tier)
	case widthUnchanged:
		vChunks := coeffs.Build(src.Height(), box.Top, box.Height, dst.Height(), f)
		return r.runVertical(src, dst, 0, vChunks, tier)
	default:
		hChunks := coeffs.Build(src.Width(), box.Left, box.Width, dst.Width(), f)
		vChunks := coeffs.Build(src.Height(), box.Top, box.Height, dst.Height(), f)
		first, last := chunkRowRange(vChunks)

		buf := r.acquireBuffer(&r.convolutionBuf, dst.Width(), last-first, src.Format())
		if err := r.runHorizontal(src, buf, first, hChunks, tier); err != nil {
			return err
		}
		return r.runVertical(buf, dst, 0, rebaseChunks(vChunks, first), tier)
	}
}

func (r *Resizer) resampleSuperSampling(src imageview.View, dst imageview.MutableView, box CropBox, f filter.Function, multiplicity int) error {
	minAxisRatio := box.Width / float64(dst.Width())
	if r := box.Height / float64(dst.Height()); r < minAxisRatio {
		minAxisRatio = r
	}
	if minAxisRatio < 1.2*float64(multiplicity) {
		return r.resampleConvolution(src, dst, box, f)
	}

	midWidth := dst.Width() * multiplicity
	midHeight := dst.Height() * multiplicity
	if float64(midWidth) > box.Width {
		midWidth = int(box.Width)
	}
	if float64(midHeight) > box.Height {
		midHeight = int(box.Height)
	}
	if midWidth < 1 {
		midWidth = 1
	}
	if midHeight < 1 {
		midHeight = 1
	}

	mid := r.acquireBuffer(&r.superSamplingBuf, midWidth, midHeight, src.Format())
	if err := resampleNearest(src, mid, box); err != nil {
		return err
	}
	return r.resampleConvolution(mid, dst, FullImage(midWidth, midHeight), f)
}

func (r *Resizer) acquireBuffer(store *[]byte, w, h int, format pixfmt.Format) *imageview.BufferMut {
	stride := w * format.BytesPerPixel()
	need := stride * h
	if cap(*store) < need {
		*store = make([]byte, need)
	} else {
		*store = (*store)[:need]
	}
	buf, err := imageview.NewMut(w, h, format, stride, *store)
	if err != nil {
		panic(fmt.Sprintf("resize: internal buffer invariant violated: %v", err))
	}
	return buf
}

func copyRows(src imageview.View, dst imageview.MutableView) error {
	for y := 0; y < dst.Height(); y++ {
		copy(dst.RowMut(y), src.Row(y))
	}
	return nil
}

func chunkRowRange(chunks []coeffs.Chunk) (first, last int) {
	first = chunks[0].Start
	last = chunks[0].Start + len(chunks[0].Values)
	for _, c := range chunks[1:] {
		if c.Start < first {
			first = c.Start
		}
		if end := c.Start + len(c.Values); end > last {
			last = end
		}
	}
	return first, last
}

func rebaseChunks(chunks []coeffs.Chunk, delta int) []coeffs.Chunk {
	out := make([]coeffs.Chunk, len(chunks))
	for i, c := range chunks {
		out[i] = coeffs.Chunk{Start: c.Start - delta, Values: c.Values}
	}
	return out
}
