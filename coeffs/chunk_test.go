package coeffs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rasterkit/fir/coeffs"
	"github.com/rasterkit/fir/filter"
)

// Box on 4x1 -> 2x1: destination pixel 0 averages source pixels 0-1 (weights 0.5/0.5,
// start=0); destination pixel 1 averages source pixels 2-3 (weights 0.5/0.5, start=2).
func TestBuildBoxDownscale(t *testing.T) {
	chunks := coeffs.Build(4, 0, 4, 2, filter.Box)
	want := []coeffs.Chunk{
		{Start: 0, Values: []float64{0.5, 0.5}},
		{Start: 2, Values: []float64{0.5, 0.5}},
	}
	if diff := cmp.Diff(want, chunks, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

// Bilinear on 3x1 -> 6x1, traced by hand from the center/support formulas.
func TestBuildBilinearUpscale(t *testing.T) {
	chunks := coeffs.Build(3, 0, 3, 6, filter.Bilinear)
	want := []coeffs.Chunk{
		{Start: 0, Values: []float64{1}},
		{Start: 0, Values: []float64{0.75, 0.25}},
		{Start: 0, Values: []float64{0.25, 0.75}},
		{Start: 1, Values: []float64{0.75, 0.25}},
		{Start: 1, Values: []float64{0.25, 0.75}},
		{Start: 2, Values: []float64{1}},
	}
	if diff := cmp.Diff(want, chunks, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestWeightsSumToOne(t *testing.T) {
	for _, f := range filter.All {
		chunks := coeffs.Build(37, 0, 37, 91, f)
		for i, c := range chunks {
			sum := 0.0
			for _, w := range c.Values {
				sum += w
			}
			if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("%s chunk %d sums to %v, want 1", f.Name, i, sum)
			}
		}
	}
}

func TestIdentityResizeIsPassthrough(t *testing.T) {
	// Same src/dst size, no crop: every chunk is a single unit tap.
	chunks := coeffs.Build(10, 0, 10, 10, filter.Box)
	for i, c := range chunks {
		if len(c.Values) != 1 || c.Values[0] != 1 || c.Start != i {
			t.Errorf("chunk %d = %+v, want identity tap at %d", i, c, i)
		}
	}
}

func TestWindowShrinksAtEdges(t *testing.T) {
	chunks := coeffs.Build(4, 0, 4, 2, filter.Box)
	for _, c := range chunks {
		if c.Start+len(c.Values) > 4 {
			t.Errorf("chunk %+v exceeds src length", c)
		}
	}
}

func TestBuildNeverProducesEmptyWeights(t *testing.T) {
	for _, f := range filter.All {
		chunks := coeffs.Build(5, 0, 5, 17, f)
		for i, c := range chunks {
			if len(c.Values) == 0 {
				t.Errorf("%s chunk %d has no contributing weights", f.Name, i)
			}
		}
	}
}
