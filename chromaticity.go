package colorspace

import "math"

// Chromaticity is a color in CIE xyY coordinates: the chromaticity (x, y)
// and the luminance Y. White points and illuminants are given this way,
// usually with Luminance 1.
type Chromaticity struct {
	X, Y      float64 // chromaticity coordinates x and y
	Luminance float64 // luminance Y
}

// XYZ returns the tristimulus value of the chromaticity:
//
//	X = x*Y/y, Y = Y, Z = (1-x-y)*Y/y
//
// A chromaticity with y = 0 has no defined tristimulus value and maps to zero.
func (c Chromaticity) XYZ() XYZ {
	if c.Y == 0 {
		return XYZ{}
	}
	scale := c.Luminance / c.Y
	return XYZ{
		X: c.X * scale,
		Y: c.Luminance,
		Z: (1 - c.X - c.Y) * scale,
	}
}

// ChromaticityFromXYZ returns the xyY coordinates of a tristimulus value.
// Black (X+Y+Z = 0) maps to the chromaticity of D65 with zero luminance.
func ChromaticityFromXYZ(xyz XYZ) Chromaticity {
	sum := xyz.X + xyz.Y + xyz.Z
	if sum == 0 {
		return Chromaticity{X: D65.X, Y: D65.Y, Luminance: 0}
	}
	return Chromaticity{X: xyz.X / sum, Y: xyz.Y / sum, Luminance: xyz.Y}
}

// CCT returns the correlated color temperature in Kelvin using
// McCamy's approximation. It is meaningful for near-white chromaticities only.
func (c Chromaticity) CCT() float64 {
	d := 0.1858 - c.Y
	if d == 0 {
		return math.Inf(1)
	}
	n := (c.X - 0.3320) / d
	return 449*n*n*n + 3525*n*n + 6823.3*n + 5520.33
}
