package colorspace

import "github.com/gogpu/colorspace/internal/matrix3"

// XYZ is a CIE 1931 tristimulus value. Y is the luminance; the white of the
// RGB spaces in this package has Y = 1.
type XYZ struct {
	X, Y, Z float64
}

func (XYZ) absoluteSpace() {}

// XYZ returns c unchanged.
func (c XYZ) XYZ() XYZ { return c }

// Components returns (X, Y, Z).
func (c XYZ) Components() [3]float64 { return [3]float64{c.X, c.Y, c.Z} }

// Chromaticity returns the xyY coordinates of c.
func (c XYZ) Chromaticity() Chromaticity { return ChromaticityFromXYZ(c) }

func (c XYZ) vec() matrix3.Vec { return matrix3.Vec{c.X, c.Y, c.Z} }

func xyzFromVec(v matrix3.Vec) XYZ { return XYZ{X: v[0], Y: v[1], Z: v[2]} }
