package colorspace

import (
	"math"

	"github.com/gogpu/colorspace/internal/gamma"
	"github.com/gogpu/colorspace/internal/matrix3"
)

// AdobeRGB is a gamma-encoded Adobe RGB (1998) color with components
// nominally in [0, 1]. Its gamut is wider than sRGB in the greens and cyans.
type AdobeRGB struct {
	R, G, B float64
}

// LinearAdobeRGB is an Adobe RGB (1998) color with the 2.2 power curve removed.
type LinearAdobeRGB struct {
	R, G, B float64
}

func (AdobeRGB) relativeSpace()       {}
func (LinearAdobeRGB) relativeSpace() {}

// Components returns (R, G, B).
func (c AdobeRGB) Components() [3]float64 { return [3]float64{c.R, c.G, c.B} }

// Components returns (R, G, B).
func (c LinearAdobeRGB) Components() [3]float64 { return [3]float64{c.R, c.G, c.B} }

// StandardWhitePoint returns D65.
func (AdobeRGB) StandardWhitePoint() Chromaticity { return D65 }

// StandardWhitePoint returns D65.
func (LinearAdobeRGB) StandardWhitePoint() Chromaticity { return D65 }

// Linear removes the transfer function. Negative components keep their sign.
func (c AdobeRGB) Linear() LinearAdobeRGB {
	return LinearAdobeRGB{
		R: gamma.PowerToLinear(c.R, gamma.AdobeRGB),
		G: gamma.PowerToLinear(c.G, gamma.AdobeRGB),
		B: gamma.PowerToLinear(c.B, gamma.AdobeRGB),
	}
}

// AdobeRGB applies the transfer function. Negative components keep their sign.
func (c LinearAdobeRGB) AdobeRGB() AdobeRGB {
	return AdobeRGB{
		R: gamma.LinearToPower(c.R, gamma.AdobeRGB),
		G: gamma.LinearToPower(c.G, gamma.AdobeRGB),
		B: gamma.LinearToPower(c.B, gamma.AdobeRGB),
	}
}

// XYZRelativeTo converts c to XYZ, interpreting it relative to wp.
func (c AdobeRGB) XYZRelativeTo(wp Chromaticity) XYZ {
	return c.Linear().XYZRelativeTo(wp)
}

// XYZRelativeTo converts c to XYZ, interpreting it relative to wp.
func (c LinearAdobeRGB) XYZRelativeTo(wp Chromaticity) XYZ {
	xyz := xyzFromVec(adobeRGBToXYZ.MulVec(matrix3.Vec{c.R, c.G, c.B}))
	return fromStandard(xyz, wp)
}

// AdobeRGBFromXYZ converts xyz to Adobe RGB relative to wp.
func AdobeRGBFromXYZ(xyz XYZ, wp Chromaticity) AdobeRGB {
	return LinearAdobeRGBFromXYZ(xyz, wp).AdobeRGB()
}

// linearResidue bounds the rounding left in a channel that should be exactly
// zero after the matrix path. The 1/2.2 power has infinite slope at zero and
// would turn it into an error near 1e-7, so such channels are snapped to zero.
const linearResidue = 1e-14

// LinearAdobeRGBFromXYZ converts xyz to linear Adobe RGB relative to wp.
// Channels with magnitude below 1e-14 are returned as zero.
func LinearAdobeRGBFromXYZ(xyz XYZ, wp Chromaticity) LinearAdobeRGB {
	v := adobeRGBFromXYZ.MulVec(toStandard(xyz, wp).vec())
	return LinearAdobeRGB{R: snapResidue(v[0]), G: snapResidue(v[1]), B: snapResidue(v[2])}
}

func snapResidue(v float64) float64 {
	if math.Abs(v) < linearResidue {
		return 0
	}
	return v
}

// AdobeRGBFrom8Bit returns the Adobe RGB color with 8-bit channels r, g, b.
func AdobeRGBFrom8Bit(r, g, b int) AdobeRGB {
	return AdobeRGB{
		R: gamma.From8Bit(r),
		G: gamma.From8Bit(g),
		B: gamma.From8Bit(b),
	}
}

// To8Bit returns the channels rounded to 8 bits and clamped to [0, 255].
func (c AdobeRGB) To8Bit() (r, g, b int) {
	return gamma.To8Bit(c.R), gamma.To8Bit(c.G), gamma.To8Bit(c.B)
}

// Clamped returns c with every component limited to [0, 1].
func (c AdobeRGB) Clamped() AdobeRGB {
	return AdobeRGB{R: clamp(c.R, 0, 1), G: clamp(c.G, 0, 1), B: clamp(c.B, 0, 1)}
}

// Clamped returns c with every component limited to [0, 1].
func (c LinearAdobeRGB) Clamped() LinearAdobeRGB {
	return LinearAdobeRGB{R: clamp(c.R, 0, 1), G: clamp(c.G, 0, 1), B: clamp(c.B, 0, 1)}
}

// SRGB converts c to sRGB through XYZ at D65. Colors outside the sRGB gamut
// produce components outside [0, 1]; use [SRGB.Clamped] to display them.
func (c AdobeRGB) SRGB() SRGB {
	return SRGBFromXYZ(c.XYZRelativeTo(D65), D65)
}

// AdobeRGBFromSRGB converts an sRGB color to Adobe RGB through XYZ at D65.
func AdobeRGBFromSRGB(c SRGB) AdobeRGB {
	return AdobeRGBFromXYZ(c.XYZRelativeTo(D65), D65)
}
