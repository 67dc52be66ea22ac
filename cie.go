package colorspace

import "math"

// CIE constants for the L* curve shared by Lab and Luv.
const (
	cieEpsilon = 216.0 / 24389.0 // (6/29)^3
	cieKappa   = 24389.0 / 27.0  // (29/3)^3
	cieDelta   = 6.0 / 29.0      // cube root of cieEpsilon
	cieLStar   = 8.0             // cieKappa * cieEpsilon
)

// yToL maps relative luminance Y/Yn to lightness L* in [0, 100].
func yToL(y float64) float64 {
	if y <= cieEpsilon {
		return cieKappa * y
	}
	return 116*math.Cbrt(y) - 16
}

// lToY is the inverse of yToL.
func lToY(l float64) float64 {
	if l <= cieLStar {
		return l / cieKappa
	}
	f := (l + 16) / 116
	return f * f * f
}

// ratio returns a/b, or 0 when b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
