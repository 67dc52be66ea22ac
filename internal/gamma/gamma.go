// Package gamma implements the companding curves between linear light and
// encoded channel values.
//
// Two curves are provided:
//   - the piecewise sRGB curve (IEC 61966-2-1), linear segment near black
//   - a pure power law, used by Adobe RGB (1998) with exponent 2.2
//
// References:
//   - sRGB standard: https://www.w3.org/Graphics/Color/sRGB
//   - Adobe RGB (1998) Color Image Encoding, section 4.3.1.2
package gamma

import "math"

const (
	// sRGBDecodeThreshold is the encoded value below which the linear segment applies.
	sRGBDecodeThreshold = 0.04045
	// sRGBEncodeThreshold is the linear value below which the linear segment applies.
	sRGBEncodeThreshold = 0.0031308

	// AdobeRGB is the exponent of the Adobe RGB (1998) transfer function.
	AdobeRGB = 2.2
)

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= sRGBDecodeThreshold {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= sRGBEncodeThreshold {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// PowerToLinear decodes v with a pure power law: v^gamma.
// Negative inputs are mirrored so that out-of-range values stay finite.
func PowerToLinear(v, gamma float64) float64 {
	if v < 0 {
		return -math.Pow(-v, gamma)
	}
	return math.Pow(v, gamma)
}

// LinearToPower encodes v with a pure power law: v^(1/gamma).
// Negative inputs are mirrored so that out-of-range values stay finite.
func LinearToPower(v, gamma float64) float64 {
	if v < 0 {
		return -math.Pow(-v, 1/gamma)
	}
	return math.Pow(v, 1/gamma)
}

// To8Bit maps a [0,1] component to [0,255]: multiply by 255, round to the
// nearest integer and clamp.
func To8Bit(v float64) int {
	n := math.Round(v * 255)
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	if n > 255 {
		return 255
	}
	return int(n)
}

// From8Bit maps an integer component to [0,1] by dividing by 255.
// Values outside [0,255] are not clamped.
func From8Bit(n int) float64 {
	return float64(n) / 255
}
