package colorspace

import "math"

// NormalizeHue wraps a hue expressed as a fraction of a full turn into [0, 1).
// Negative hues wrap from the top: -0.25 becomes 0.75.
func NormalizeHue(h float64) float64 {
	h -= math.Floor(h)
	if h >= 1 {
		// -tiny - floor(-tiny) rounds to 1.
		return 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
