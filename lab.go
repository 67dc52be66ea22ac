package colorspace

import "math"

// Lab is a CIE L*a*b* color. L is in [0, 100]; a and b are unbounded but
// typically lie in [-128, 127].
//
// WhitePoint is the reference white the value is relative to. The zero
// value means D65, so Lab{L: 50} is a valid D65 color.
type Lab struct {
	L, A, B    float64
	WhitePoint Chromaticity
}

// NewLab returns a Lab color relative to D65.
func NewLab(l, a, b float64) Lab {
	return Lab{L: l, A: a, B: b, WhitePoint: D65}
}

func (Lab) absoluteSpace() {}

// White returns the reference white of c, resolving the zero value to D65.
func (c Lab) White() Chromaticity {
	if c.WhitePoint == (Chromaticity{}) {
		return D65
	}
	return c.WhitePoint
}

// Components returns (L, a, b).
func (c Lab) Components() [3]float64 { return [3]float64{c.L, c.A, c.B} }

// XYZ converts c to CIE XYZ.
func (c Lab) XYZ() XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	w := c.White().XYZ()
	return XYZ{
		X: labFInv(fx) * w.X,
		Y: labFInv(fy) * w.Y,
		Z: labFInv(fz) * w.Z,
	}
}

// LabFromXYZ converts xyz to Lab relative to D65.
func LabFromXYZ(xyz XYZ) Lab {
	return LabFromXYZRelativeTo(xyz, D65)
}

// LabFromXYZRelativeTo converts xyz to Lab relative to the white point wp.
// No chromatic adaptation is applied: xyz is only normalized by the
// tristimulus value of wp.
func LabFromXYZRelativeTo(xyz XYZ, wp Chromaticity) Lab {
	w := wp.XYZ()
	fx := labF(ratio(xyz.X, w.X))
	fy := labF(ratio(xyz.Y, w.Y))
	fz := labF(ratio(xyz.Z, w.Z))
	return Lab{
		L:          116*fy - 16,
		A:          500 * (fx - fy),
		B:          200 * (fy - fz),
		WhitePoint: wp,
	}
}

// Clamped returns c with L limited to [0, 100] and a, b to [-128, 127].
func (c Lab) Clamped() Lab {
	c.L = clamp(c.L, 0, 100)
	c.A = clamp(c.A, -128, 127)
	c.B = clamp(c.B, -128, 127)
	return c
}

// LCh returns the cylindrical form of c: chroma and hue angle in degrees [0, 360).
func (c Lab) LCh() (l, chroma, hue float64) {
	return c.L, math.Hypot(c.A, c.B), NormalizeHue(math.Atan2(c.B, c.A)/(2*math.Pi)) * 360
}

func labF(t float64) float64 {
	if t > cieEpsilon {
		return math.Cbrt(t)
	}
	return (cieKappa*t + 16) / 116
}

func labFInv(f float64) float64 {
	if f > cieDelta {
		return f * f * f
	}
	return (116*f - 16) / cieKappa
}
