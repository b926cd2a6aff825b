package resize_test

import (
	"testing"

	"github.com/rasterkit/fir/filter"
	"github.com/rasterkit/fir/pixfmt"
	"github.com/rasterkit/fir/resize"
)

// Parallel and sequential execution must produce identical output.
func TestResizeParallelMatchesSequential(t *testing.T) {
	pix := make([]byte, 16*16)
	for i := range pix {
		pix[i] = byte(i * 7)
	}
	src := mustView(t, 16, 16, pixfmt.FormatU8, pix)

	seqDst := mustViewMut(t, 6, 6, pixfmt.FormatU8, make([]byte, 36))
	seq := resize.New(resize.ConvolutionAlgorithm(filter.CatmullRom))
	if err := seq.Resize(src, seqDst, nil); err != nil {
		t.Fatalf("sequential Resize: %v", err)
	}

	parDst := mustViewMut(t, 6, 6, pixfmt.FormatU8, make([]byte, 36))
	par := resize.New(resize.ConvolutionAlgorithm(filter.CatmullRom))
	par.Workers = 4
	if err := par.Resize(src, parDst, nil); err != nil {
		t.Fatalf("parallel Resize: %v", err)
	}

	for y := 0; y < 6; y++ {
		s, p := seqDst.Row(y), parDst.Row(y)
		for x := range s {
			if s[x] != p[x] {
				t.Errorf("row %d col %d: sequential=%d parallel=%d", y, x, s[x], p[x])
			}
		}
	}
}
