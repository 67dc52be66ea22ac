package colorspace

import (
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// roundTripTol is the tolerance every conversion pair must hold.
const roundTripTol = 1e-9

// floatNear reports whether a and b are within tolerance.
func floatNear(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// approx compares floats in structs with an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// unitGrid returns n evenly spaced values in [0, 1].
func unitGrid(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// sampleSRGB is a spread of in-gamut colors away from the sRGB curve knee.
var sampleSRGB = []SRGB{
	{R: 0, G: 0, B: 0},
	{R: 1, G: 1, B: 1},
	{R: 0.5, G: 0.5, B: 0.5},
	{R: 1, G: 0, B: 0},
	{R: 0, G: 1, B: 0},
	{R: 0, G: 0, B: 1},
	{R: 0.2, G: 0.4, B: 0.6},
	{R: 0.9, G: 0.1, B: 0.3},
	{R: 0.1, G: 0.8, B: 0.2},
	{R: 0.95, G: 0.9, B: 0.2},
	{R: 0.01, G: 0.02, B: 0.03},
	{R: 0.7, G: 0.3, B: 0.9},
}
