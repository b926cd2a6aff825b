// Package coeffs precomputes the per-destination-pixel convolution weights for one axis and
// converts them to fixed-point integer weights for the convolution kernels.
package coeffs

import (
	"math"

	"github.com/rasterkit/fir/filter"
)

// Chunk is the per-destination-pixel record produced by the precomputer: the zero-based source
// index of the first contributing pixel, and the ordered real-valued weights for each
// contributing pixel from Start onward.
type Chunk struct {
	Start  int
	Values []float64
}

// Build computes one Chunk per destination pixel along one axis.
//
// srcLength is the length of the source axis; cropStart/cropLength describe the crop interval
// [cropStart, cropStart+cropLength) in source coordinates; dstLength is the destination axis
// length; f is the filter function to sample.
func Build(srcLength int, cropStart, cropLength float64, dstLength int, f filter.Function) []Chunk {
	ratio := cropLength / float64(dstLength)
	scale := math.Max(1, ratio)
	effectiveSupport := f.Support * scale
	windowSize := int(math.Ceil(2*effectiveSupport)) + 1

	chunks := make([]Chunk, dstLength)
	weights := make([]float64, 0, windowSize)
	for i := 0; i < dstLength; i++ {
		center := cropStart + (float64(i)+0.5)*ratio

		left := int(math.Floor(center - effectiveSupport + 0.5))
		if left < 0 {
			left = 0
		}
		right := left + windowSize
		if right > srcLength {
			right = srcLength
		}
		if right < left {
			right = left
		}

		weights = weights[:0]
		sum := 0.0
		for j := left; j < right; j++ {
			w := f.At((float64(j) + 0.5 - center) / scale)
			weights = append(weights, w)
			sum += w
		}

		if sum == 0 {
			for idx := range weights {
				weights[idx] = 0
			}
			if len(weights) > 0 {
				weights[0] = 1
			}
		} else {
			inv := 1 / sum
			for idx := range weights {
				weights[idx] *= inv
			}
		}

		start, values := trimZeros(left, weights)
		chunks[i] = Chunk{Start: start, Values: append([]float64(nil), values...)}
	}
	return chunks
}

// trimZeros removes leading and trailing exactly-zero weights, adjusting start accordingly.
func trimZeros(start int, weights []float64) (int, []float64) {
	lo, hi := 0, len(weights)
	for lo < hi && weights[lo] == 0 {
		lo++
	}
	for hi > lo && weights[hi-1] == 0 {
		hi--
	}
	return start + lo, weights[lo:hi]
}
