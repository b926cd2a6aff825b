package resize

import (
	"golang.org/x/sync/errgroup"

	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/convolution"
	"github.com/rasterkit/fir/cputier"
	"github.com/rasterkit/fir/imageview"
)

// Workers controls intra-call parallelism. Zero or one, or a pass with fewer destination rows
// than Workers, runs the pass on the calling goroutine; otherwise the destination rows are cut
// into bands of ceil(rows/Workers) rows, each on its own errgroup goroutine (at most Workers
// of them), each one finishing its rows before returning, so no reader ever observes a partially
// written row. The per-tile kernels themselves stay sequential.
func (r *Resizer) runHorizontal(src imageview.View, dst imageview.MutableView, srcRowOffset int, chunks []coeffs.Chunk, tier cputier.Tier) error {
	if r.Workers <= 1 || dst.Height() < r.Workers {
		return convolution.HorizontalConvolution(src, dst, srcRowOffset, chunks, tier)
	}
	var g errgroup.Group
	n := dst.Height()
	step := (n + r.Workers - 1) / r.Workers
	for lo := 0; lo < n; lo += step {
		lo := lo
		hi := lo + step
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			sub := imageview.SubMut(dst, lo, hi-lo)
			return convolution.HorizontalConvolution(src, sub, srcRowOffset+lo, chunks, tier)
		})
	}
	return g.Wait()
}

func (r *Resizer) runVertical(src imageview.View, dst imageview.MutableView, srcColOffset int, chunks []coeffs.Chunk, tier cputier.Tier) error {
	if r.Workers <= 1 || dst.Height() < r.Workers {
		return convolution.VerticalConvolution(src, dst, srcColOffset, chunks, tier)
	}
	var g errgroup.Group
	n := dst.Height()
	step := (n + r.Workers - 1) / r.Workers
	for lo := 0; lo < n; lo += step {
		lo := lo
		hi := lo + step
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			sub := imageview.SubMut(dst, lo, hi-lo)
			return convolution.VerticalConvolution(src, sub, srcColOffset, chunks[lo:hi], tier)
		})
	}
	return g.Wait()
}
