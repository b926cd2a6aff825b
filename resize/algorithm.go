package resize

import "github.com/rasterkit/fir/filter"

// Kind distinguishes the three resize algorithms a caller may select.
type Kind uint8

const (
	Nearest Kind = iota
	Convolution
	SuperSampling
)

// Algorithm selects how Resizer.Resize produces its output.
type Algorithm struct {
	Kind         Kind
	Filter       filter.Function
	Multiplicity int // only meaningful for SuperSampling; must be in [2, 8]
}

// NearestAlgorithm selects the plain nearest-neighbor path.
func NearestAlgorithm() Algorithm { return Algorithm{Kind: Nearest} }

// ConvolutionAlgorithm selects the full separable-convolution resampler with the given filter.
func ConvolutionAlgorithm(f filter.Function) Algorithm {
	return Algorithm{Kind: Convolution, Filter: f}
}

// SuperSamplingAlgorithm pre-shrinks with Nearest before convolving, trading quality for speed
// on large downscales. multiplicity must be in [2, 8]; Resize rejects anything else with
// ErrMultiplicityOutOfRange.
func SuperSamplingAlgorithm(f filter.Function, multiplicity int) Algorithm {
	return Algorithm{Kind: SuperSampling, Filter: f, Multiplicity: multiplicity}
}
