package gamma

import "math"

// Lookup tables for 8-bit sRGB companding.
//
// The tables replace math.Pow calls with array lookups for the common case of
// 8-bit encoded input or output.

// sRGBToLinearLUT converts sRGB byte [0-255] to linear [0.0-1.0].
var sRGBToLinearLUT [256]float64

// linearToSRGBLUT converts linear [0.0-1.0] to sRGB byte [0-255].
// 4096 entries give 12-bit precision, sufficient for 8-bit sRGB.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := 0; i < 256; i++ {
		sRGBToLinearLUT[i] = SRGBToLinear(float64(i) / 255.0)
	}
	for i := 0; i < 4096; i++ {
		//nolint:gosec // G115: To8Bit clamps to [0,255]
		linearToSRGBLUT[i] = uint8(To8Bit(LinearToSRGB(float64(i) / 4095.0)))
	}
}

// SRGB8ToLinear converts an sRGB byte to a linear component using the lookup table.
//
// Example:
//
//	r := SRGB8ToLinear(128) // ~0.2159 (not 0.5!)
func SRGB8ToLinear(s uint8) float64 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGB8 converts a linear component to an sRGB byte using the lookup table.
//
// Input is clamped to [0.0, 1.0]. The 12-bit table can differ from the exact
// computation by one code value.
//
// Example:
//
//	s := LinearToSRGB8(0.5) // 188 (not 128!)
func LinearToSRGB8(l float64) uint8 {
	if l < 0 || math.IsNaN(l) {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	index := int(l*4095.0 + 0.5)
	if index > 4095 {
		index = 4095
	}
	return linearToSRGBLUT[index]
}
