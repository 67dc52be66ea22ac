package colorspace

import (
	"fmt"

	"github.com/gogpu/colorspace/internal/gamma"
	"github.com/gogpu/colorspace/internal/matrix3"
)

// SRGB is a gamma-encoded sRGB color with components nominally in [0, 1].
type SRGB struct {
	R, G, B float64
}

// LinearSRGB is an sRGB color with the transfer function removed.
type LinearSRGB struct {
	R, G, B float64
}

func (SRGB) relativeSpace()       {}
func (LinearSRGB) relativeSpace() {}

// Components returns (R, G, B).
func (c SRGB) Components() [3]float64 { return [3]float64{c.R, c.G, c.B} }

// Components returns (R, G, B).
func (c LinearSRGB) Components() [3]float64 { return [3]float64{c.R, c.G, c.B} }

// StandardWhitePoint returns D65.
func (SRGB) StandardWhitePoint() Chromaticity { return D65 }

// StandardWhitePoint returns D65.
func (LinearSRGB) StandardWhitePoint() Chromaticity { return D65 }

// Linear removes the sRGB transfer function from each channel.
func (c SRGB) Linear() LinearSRGB {
	return LinearSRGB{
		R: gamma.SRGBToLinear(c.R),
		G: gamma.SRGBToLinear(c.G),
		B: gamma.SRGBToLinear(c.B),
	}
}

// SRGB applies the sRGB transfer function to each channel.
func (c LinearSRGB) SRGB() SRGB {
	return SRGB{
		R: gamma.LinearToSRGB(c.R),
		G: gamma.LinearToSRGB(c.G),
		B: gamma.LinearToSRGB(c.B),
	}
}

// XYZRelativeTo converts c to XYZ, interpreting it relative to wp.
func (c SRGB) XYZRelativeTo(wp Chromaticity) XYZ {
	return c.Linear().XYZRelativeTo(wp)
}

// XYZRelativeTo converts c to XYZ, interpreting it relative to wp.
func (c LinearSRGB) XYZRelativeTo(wp Chromaticity) XYZ {
	xyz := xyzFromVec(srgbToXYZ.MulVec(matrix3.Vec{c.R, c.G, c.B}))
	return fromStandard(xyz, wp)
}

// SRGBFromXYZ converts xyz to sRGB relative to wp.
func SRGBFromXYZ(xyz XYZ, wp Chromaticity) SRGB {
	return LinearSRGBFromXYZ(xyz, wp).SRGB()
}

// LinearSRGBFromXYZ converts xyz to linear sRGB relative to wp.
func LinearSRGBFromXYZ(xyz XYZ, wp Chromaticity) LinearSRGB {
	v := srgbFromXYZ.MulVec(toStandard(xyz, wp).vec())
	return LinearSRGB{R: v[0], G: v[1], B: v[2]}
}

// SRGBFrom8Bit returns the sRGB color with 8-bit channels r, g, b.
func SRGBFrom8Bit(r, g, b int) SRGB {
	return SRGB{
		R: gamma.From8Bit(r),
		G: gamma.From8Bit(g),
		B: gamma.From8Bit(b),
	}
}

// To8Bit returns the channels rounded to 8 bits and clamped to [0, 255].
func (c SRGB) To8Bit() (r, g, b int) {
	return gamma.To8Bit(c.R), gamma.To8Bit(c.G), gamma.To8Bit(c.B)
}

// Hex returns c as a lowercase "#rrggbb" string.
func (c SRGB) Hex() string {
	r, g, b := c.To8Bit()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Clamped returns c with every component limited to [0, 1].
func (c SRGB) Clamped() SRGB {
	return SRGB{R: clamp(c.R, 0, 1), G: clamp(c.G, 0, 1), B: clamp(c.B, 0, 1)}
}

// Clamped returns c with every component limited to [0, 1].
func (c LinearSRGB) Clamped() LinearSRGB {
	return LinearSRGB{R: clamp(c.R, 0, 1), G: clamp(c.G, 0, 1), B: clamp(c.B, 0, 1)}
}

// LinearSRGBFrom8Bit decodes 8-bit sRGB channels to linear light using a
// lookup table.
func LinearSRGBFrom8Bit(r, g, b uint8) LinearSRGB {
	return LinearSRGB{
		R: gamma.SRGB8ToLinear(r),
		G: gamma.SRGB8ToLinear(g),
		B: gamma.SRGB8ToLinear(b),
	}
}

// SRGB8 encodes c to 8-bit sRGB channels using a lookup table. Values
// outside [0, 1] are clamped.
func (c LinearSRGB) SRGB8() (r, g, b uint8) {
	return gamma.LinearToSRGB8(c.R), gamma.LinearToSRGB8(c.G), gamma.LinearToSRGB8(c.B)
}
