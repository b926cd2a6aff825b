package coeffs

import "math"

// ChunkIndex is a normalized chunk's location within the flat Weights slice.
type ChunkIndex struct {
	Start  int // source index, as in Chunk.Start
	Offset int // offset into Weights
	Length int
}

// Normalizer16 is the fixed-point representation used for 8-bit-component pixel formats: i16
// weights accumulated in i32.
type Normalizer16 struct {
	Precision uint
	Weights   []int16
	Chunks    []ChunkIndex
}

// Normalizer32 is the fixed-point representation used for 16-bit-component pixel formats: i32
// weights accumulated in i64.
type Normalizer32 struct {
	Precision uint
	Weights   []int32
	Chunks    []ChunkIndex
}

const (
	maxPrecision16 = 22
	maxPrecision32 = 38
)

// maxima scans every chunk's weights for the single largest absolute weight and the largest
// per-chunk sum of absolute weights. Precision selection is driven by the latter, the
// worst-case accumulator magnitude, not merely by the largest single weight.
func maxima(chunks []Chunk) (maxAbsWeight, maxAbsSum float64) {
	for _, c := range chunks {
		sum := 0.0
		for _, w := range c.Values {
			a := math.Abs(w)
			if a > maxAbsWeight {
				maxAbsWeight = a
			}
			sum += a
		}
		if sum > maxAbsSum {
			maxAbsSum = sum
		}
	}
	return
}

// choosePrecision picks the largest P in [0, maxP] such that every weight fits in a signed
// integer of the given bit width once scaled by 2^P, and the worst-case accumulator sum (scaled
// weights times componentMax) fits within accumBits.
func choosePrecision(maxAbsWeight, maxAbsSum, componentMax float64, maxP uint, weightBits, accumBits uint) uint {
	weightLimit := float64(int64(1)<<(weightBits-1)) - 1
	accumLimit := math.Ldexp(1, int(accumBits-1)) - 1
	for p := maxP; ; p-- {
		scale := math.Pow(2, float64(p))
		if maxAbsWeight*scale <= weightLimit && maxAbsSum*scale*componentMax <= accumLimit {
			return p
		}
		if p == 0 {
			return 0
		}
	}
}

// NewNormalizer16 derives fixed-point 16-bit coefficients from a real-valued coefficient table.
func NewNormalizer16(chunks []Chunk, componentMax float64) Normalizer16 {
	maxW, maxSum := maxima(chunks)
	p := choosePrecision(maxW, maxSum, componentMax, maxPrecision16, 16, 32)
	return Normalizer16{
		Precision: p,
		Weights:   quantize16(chunks, p),
		Chunks:    chunkIndex(chunks),
	}
}

// NewNormalizer32 derives fixed-point 32-bit coefficients from a real-valued coefficient table.
func NewNormalizer32(chunks []Chunk, componentMax float64) Normalizer32 {
	maxW, maxSum := maxima(chunks)
	p := choosePrecision(maxW, maxSum, componentMax, maxPrecision32, 32, 64)
	return Normalizer32{
		Precision: p,
		Weights:   quantize32(chunks, p),
		Chunks:    chunkIndex(chunks),
	}
}

func chunkIndex(chunks []Chunk) []ChunkIndex {
	out := make([]ChunkIndex, len(chunks))
	offset := 0
	for i, c := range chunks {
		out[i] = ChunkIndex{Start: c.Start, Offset: offset, Length: len(c.Values)}
		offset += len(c.Values)
	}
	return out
}

func quantize16(chunks []Chunk, p uint) []int16 {
	scale := math.Pow(2, float64(p))
	out := make([]int16, 0, totalLen(chunks))
	for _, c := range chunks {
		for _, w := range c.Values {
			out = append(out, int16(math.Round(w*scale)))
		}
	}
	return out
}

func quantize32(chunks []Chunk, p uint) []int32 {
	scale := math.Pow(2, float64(p))
	out := make([]int32, 0, totalLen(chunks))
	for _, c := range chunks {
		for _, w := range c.Values {
			out = append(out, int32(math.Round(w*scale)))
		}
	}
	return out
}

func totalLen(chunks []Chunk) int {
	n := 0
	for _, c := range chunks {
		n += len(c.Values)
	}
	return n
}

// Bias is the pre-rounding constant kernels seed their accumulators with, realizing
// round-half-up once Clip shifts the accumulated sum back down.
// Zero precision means truncation; the bias degenerates to 0.
func (n Normalizer16) Bias() int32 { return int32(1) << (n.Precision - 1) }
func (n Normalizer32) Bias() int64 { return int64(1) << (n.Precision - 1) }

// Clip implements the Normalizer16 clip function: arithmetic-shift right by the precision,
// clamp to [0, max]. The accumulator is expected to have been seeded with Bias().
func (n Normalizer16) Clip(acc int32, max int32) int32 {
	v := acc >> n.Precision
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Clip implements the Normalizer32 clip function, as Normalizer16.Clip.
func (n Normalizer32) Clip(acc int64, max int64) int64 {
	v := acc >> n.Precision
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Chunk returns the normalized weights for destination pixel i, and its source start index.
func (n Normalizer16) Chunk(i int) (start int, weights []int16) {
	ci := n.Chunks[i]
	return ci.Start, n.Weights[ci.Offset : ci.Offset+ci.Length]
}

// Chunk returns the normalized weights for destination pixel i, and its source start index.
func (n Normalizer32) Chunk(i int) (start int, weights []int32) {
	ci := n.Chunks[i]
	return ci.Start, n.Weights[ci.Offset : ci.Offset+ci.Length]
}

// Rebase shifts every chunk's Start by -delta, used when the vertical pass consumes an
// intermediate buffer whose row 0 corresponds to source row delta.
func (n *Normalizer16) Rebase(delta int) {
	for i := range n.Chunks {
		n.Chunks[i].Start -= delta
	}
}

// Rebase shifts every chunk's Start by -delta, as Normalizer16.Rebase.
func (n *Normalizer32) Rebase(delta int) {
	for i := range n.Chunks {
		n.Chunks[i].Start -= delta
	}
}
