package colorspace

import "math"

// HSL is a hue/saturation/lightness rendition of sRGB. All components are
// in [0, 1]; the hue is a fraction of a full turn with red at 0.
type HSL struct {
	H, S, L float64
}

// HSB is a hue/saturation/brightness rendition of sRGB, also known as HSV.
// All components are in [0, 1].
type HSB struct {
	H, S, B float64
}

func (HSL) relativeSpace() {}
func (HSB) relativeSpace() {}

// Components returns (H, S, L).
func (c HSL) Components() [3]float64 { return [3]float64{c.H, c.S, c.L} }

// Components returns (H, S, B).
func (c HSB) Components() [3]float64 { return [3]float64{c.H, c.S, c.B} }

// StandardWhitePoint returns D65.
func (HSL) StandardWhitePoint() Chromaticity { return D65 }

// StandardWhitePoint returns D65.
func (HSB) StandardWhitePoint() Chromaticity { return D65 }

// SRGB converts c to sRGB. Hues outside [0, 1) wrap around.
func (c HSL) SRGB() SRGB {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	m := c.L - chroma/2
	r, g, b := hueSector(c.H, chroma)
	return SRGB{R: r + m, G: g + m, B: b + m}
}

// SRGB converts c to sRGB. Hues outside [0, 1) wrap around.
func (c HSB) SRGB() SRGB {
	chroma := c.B * c.S
	m := c.B - chroma
	r, g, b := hueSector(c.H, chroma)
	return SRGB{R: r + m, G: g + m, B: b + m}
}

// HSLFromSRGB converts an sRGB color to HSL. Saturation is 0 for grays and
// for pure black and white.
func HSLFromSRGB(c SRGB) HSL {
	hi := math.Max(c.R, math.Max(c.G, c.B))
	lo := math.Min(c.R, math.Min(c.G, c.B))
	chroma := hi - lo
	l := (hi + lo) / 2

	var s float64
	if chroma != 0 && l != 0 && l != 1 {
		s = chroma / (1 - math.Abs(2*l-1))
	}
	return HSL{H: hueOf(c, hi, chroma), S: s, L: l}
}

// HSBFromSRGB converts an sRGB color to HSB. Saturation is 0 for black.
func HSBFromSRGB(c SRGB) HSB {
	hi := math.Max(c.R, math.Max(c.G, c.B))
	lo := math.Min(c.R, math.Min(c.G, c.B))
	chroma := hi - lo

	var s float64
	if hi != 0 {
		s = chroma / hi
	}
	return HSB{H: hueOf(c, hi, chroma), S: s, B: hi}
}

// XYZRelativeTo converts c to XYZ, interpreting it relative to wp.
func (c HSL) XYZRelativeTo(wp Chromaticity) XYZ { return c.SRGB().XYZRelativeTo(wp) }

// XYZRelativeTo converts c to XYZ, interpreting it relative to wp.
func (c HSB) XYZRelativeTo(wp Chromaticity) XYZ { return c.SRGB().XYZRelativeTo(wp) }

// HSLFromXYZ converts xyz to HSL relative to wp.
func HSLFromXYZ(xyz XYZ, wp Chromaticity) HSL { return HSLFromSRGB(SRGBFromXYZ(xyz, wp)) }

// HSBFromXYZ converts xyz to HSB relative to wp.
func HSBFromXYZ(xyz XYZ, wp Chromaticity) HSB { return HSBFromSRGB(SRGBFromXYZ(xyz, wp)) }

// hueSector returns the RGB offsets for hue h (wrapped to [0, 1)) and
// chroma, before the lightness term is added.
func hueSector(h, chroma float64) (r, g, b float64) {
	h6 := NormalizeHue(h) * 6
	x := chroma * (1 - math.Abs(math.Mod(h6, 2)-1))
	switch {
	case h6 < 1:
		return chroma, x, 0
	case h6 < 2:
		return x, chroma, 0
	case h6 < 3:
		return 0, chroma, x
	case h6 < 4:
		return 0, x, chroma
	case h6 < 5:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

// hueOf returns the hue of c in [0, 1) given its largest channel and chroma.
// Grays have hue 0.
func hueOf(c SRGB, hi, chroma float64) float64 {
	if chroma == 0 {
		return 0
	}
	var h float64
	switch hi {
	case c.R:
		h = math.Mod((c.G-c.B)/chroma, 6)
	case c.G:
		h = (c.B-c.R)/chroma + 2
	default:
		h = (c.R-c.G)/chroma + 4
	}
	return NormalizeHue(h / 6)
}
