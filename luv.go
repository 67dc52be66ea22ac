package colorspace

import "math"

// Luv is a CIE L*u*v* color. L is in [0, 100]; u and v are unbounded.
//
// Luv always uses the reference white of the sRGB primaries (D65), which
// keeps the achromatic axis exactly inside the sRGB gamut for HSLuv.
type Luv struct {
	L, U, V float64
}

func (Luv) absoluteSpace() {}

// Components returns (L, u, v).
func (c Luv) Components() [3]float64 { return [3]float64{c.L, c.U, c.V} }

var luvRefU, luvRefV = uvPrime(rgbWhite)

// uvPrime returns the CIE 1976 chromaticity (u', v') of xyz.
func uvPrime(xyz XYZ) (u, v float64) {
	d := xyz.X + 15*xyz.Y + 3*xyz.Z
	if d == 0 {
		return 0, 0
	}
	return 4 * xyz.X / d, 9 * xyz.Y / d
}

// LuvFromXYZ converts xyz to Luv.
func LuvFromXYZ(xyz XYZ) Luv {
	l := yToL(xyz.Y / rgbWhite.Y)
	d := xyz.X + 15*xyz.Y + 3*xyz.Z
	if l == 0 || d == 0 {
		return Luv{L: l}
	}
	u, v := uvPrime(xyz)
	return Luv{
		L: l,
		U: 13 * l * (u - luvRefU),
		V: 13 * l * (v - luvRefV),
	}
}

// XYZ converts c to CIE XYZ. Black (L = 0) maps to zero.
func (c Luv) XYZ() XYZ {
	if c.L == 0 {
		return XYZ{}
	}
	u := c.U/(13*c.L) + luvRefU
	v := c.V/(13*c.L) + luvRefV
	y := lToY(c.L) * rgbWhite.Y
	if v == 0 {
		return XYZ{Y: y}
	}
	return XYZ{
		X: y * 9 * u / (4 * v),
		Y: y,
		Z: y * (12 - 3*u - 20*v) / (4 * v),
	}
}

// LCh returns the cylindrical form of c: chroma and hue angle in degrees [0, 360).
func (c Luv) LCh() (l, chroma, hue float64) {
	return c.L, math.Hypot(c.U, c.V), NormalizeHue(math.Atan2(c.V, c.U)/(2*math.Pi)) * 360
}
