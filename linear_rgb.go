package colorspace

import "github.com/gogpu/colorspace/internal/matrix3"

// LinearRGB is linear-light RGB with sRGB primaries, used as an absolute
// space: it is tied to D65 and converts to XYZ without adaptation.
// Components are nominally in [0, 1] but may leave that range for colors
// outside the sRGB gamut.
type LinearRGB struct {
	R, G, B float64
}

func (LinearRGB) absoluteSpace() {}

// Components returns (R, G, B).
func (c LinearRGB) Components() [3]float64 { return [3]float64{c.R, c.G, c.B} }

// XYZ converts c to CIE XYZ.
func (c LinearRGB) XYZ() XYZ {
	return xyzFromVec(srgbToXYZ.MulVec(matrix3.Vec{c.R, c.G, c.B}))
}

// LinearRGBFromXYZ converts xyz to linear RGB.
func LinearRGBFromXYZ(xyz XYZ) LinearRGB {
	v := srgbFromXYZ.MulVec(xyz.vec())
	return LinearRGB{R: v[0], G: v[1], B: v[2]}
}

// Clamped returns c with every component limited to [0, 1].
func (c LinearRGB) Clamped() LinearRGB {
	return LinearRGB{R: clamp(c.R, 0, 1), G: clamp(c.G, 0, 1), B: clamp(c.B, 0, 1)}
}

// InGamut reports whether every component lies in [0, 1] within tolerance tol.
func (c LinearRGB) InGamut(tol float64) bool {
	return inUnitRange(c.R, tol) && inUnitRange(c.G, tol) && inUnitRange(c.B, tol)
}

func inUnitRange(v, tol float64) bool {
	return v >= -tol && v <= 1+tol
}
