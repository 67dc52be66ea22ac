package colorspace

import "math"

// HSLuv is a human-friendly alternative to HSL built on Luv. Saturation is
// expressed as a fraction of the largest chroma the sRGB gamut allows at the
// given lightness and hue, so every (H, S, L) in [0, 1]^3 is displayable.
//
// H is the hue as a fraction of a full turn, S and L are in [0, 1].
type HSLuv struct {
	H, S, L float64
}

func (HSLuv) absoluteSpace() {}

// Components returns (H, S, L).
func (c HSLuv) Components() [3]float64 { return [3]float64{c.H, c.S, c.L} }

// Lightness limits outside of which a color is treated as pure white or black.
const (
	hsluvWhite = 0.9999999
	hsluvBlack = 0.0000001

	// below this chroma the hue is undefined and reported as 0
	achromatic = 0.00000001
)

// Luv converts c to Luv.
func (c HSLuv) Luv() Luv {
	if c.L > hsluvWhite {
		return Luv{L: 100}
	}
	if c.L < hsluvBlack {
		return Luv{}
	}
	l := c.L * 100
	chroma := c.S * MaxChromaForLH(l, c.H*360)
	sin, cos := math.Sincos(c.H * 2 * math.Pi)
	return Luv{L: l, U: chroma * cos, V: chroma * sin}
}

// XYZ converts c to CIE XYZ.
func (c HSLuv) XYZ() XYZ { return c.Luv().XYZ() }

// HSLuvFromLuv converts luv to HSLuv.
func HSLuvFromLuv(luv Luv) HSLuv {
	l := luv.L / 100
	if l > hsluvWhite {
		return HSLuv{L: 1}
	}
	if l < hsluvBlack {
		return HSLuv{}
	}
	chroma := math.Hypot(luv.U, luv.V)
	var h float64
	if chroma >= achromatic {
		h = NormalizeHue(math.Atan2(luv.V, luv.U) / (2 * math.Pi))
	}
	return HSLuv{
		H: h,
		S: ratio(chroma, MaxChromaForLH(luv.L, h*360)),
		L: l,
	}
}

// HSLuvFromXYZ converts xyz to HSLuv.
func HSLuvFromXYZ(xyz XYZ) HSLuv { return HSLuvFromLuv(LuvFromXYZ(xyz)) }

// gamutLine is one edge of the sRGB gamut in the (u, v) plane at a fixed
// lightness: v = slope*u + intercept.
type gamutLine struct {
	slope, intercept float64
}

// gamutBounds returns the six lines along which one linear sRGB channel
// equals 0 or 1 at lightness l. Lines parallel to the v axis are omitted.
func gamutBounds(l float64) []gamutLine {
	y := lToY(l) * rgbWhite.Y
	lines := make([]gamutLine, 0, 6)
	for row := range 3 {
		m := srgbFromXYZ.Row(row)
		a := y * (9*m[0] - 3*m[2])
		k := 12 * m[2] * y
		for _, t := range [2]float64{0, 1} {
			b := y*(4*m[1]-20*m[2]) - 4*t
			if b == 0 {
				continue
			}
			lines = append(lines, gamutLine{
				slope:     -a / b,
				intercept: -13 * l * (a*luvRefU + b*luvRefV + k) / b,
			})
		}
	}
	return lines
}

// MaxChromaForLH returns the largest Luv chroma that stays inside the sRGB
// gamut at lightness l (0-100) and hue h (degrees).
func MaxChromaForLH(l, h float64) float64 {
	sin, cos := math.Sincos(h / 360 * 2 * math.Pi)
	best := math.Inf(1)
	for _, line := range gamutBounds(l) {
		length := line.intercept / (sin - line.slope*cos)
		if length >= 0 && length < best {
			best = length
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// burnoutHues are the Luv hues, in turns, sampled by MaxSafeChromaForL:
// every 60 degrees, with 0 and 1 both included.
var burnoutHues = [...]float64{0, 1.0 / 6, 1.0 / 3, 1.0 / 2, 2.0 / 3, 5.0 / 6, 1}

// MaxSafeChromaForL returns the smallest of the maximum Luv chromas at
// lightness l (0-100) over the burnout hues. It approximates the chroma that
// is in gamut for every hue and may exceed the true minimum by about 1%.
func MaxSafeChromaForL(l float64) float64 {
	best := math.Inf(1)
	for _, h := range burnoutHues {
		best = math.Min(best, MaxChromaForLH(l, h*360))
	}
	return best
}
