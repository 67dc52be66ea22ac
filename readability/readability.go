package readability

import (
	"math"

	"github.com/gogpu/colorspace"
)

// ContrastRatio returns the WCAG-style contrast ratio of two colors, using
// Lab lightness in place of relative luminance. The result is in [1, 21]
// for lightness in [0, 100].
func ContrastRatio(a, b colorspace.Lab) float64 {
	hi := math.Max(a.L, b.L) / 100
	lo := math.Min(a.L, b.L) / 100
	return (hi + 0.05) / (lo + 0.05)
}

// ColorDifference returns a simplified CIEDE2000-style distance between two
// colors: lightness, chroma and hue differences weighted by the chroma of a.
func ColorDifference(a, b colorspace.Lab) float64 {
	dL := b.L - a.L
	dA := b.A - a.A
	dB := b.B - a.B
	c1 := math.Hypot(a.A, a.B)
	c2 := math.Hypot(b.A, b.B)
	dC := c2 - c1
	// rounding can push the radicand slightly below zero
	dH := math.Sqrt(math.Max(0, dA*dA+dB*dB-dC*dC))

	sC := 1 + 0.045*c1
	sH := 1 + 0.015*c1
	return math.Sqrt(dL*dL + (dC/sC)*(dC/sC) + (dH/sH)*(dH/sH))
}

// scoreLab is the readability score of two Lab colors.
func scoreLab(text, background colorspace.Lab) float64 {
	contrast := (ContrastRatio(text, background) - 1) / 20
	difference := ColorDifference(text, background) / 100
	return 0.6*clamp01(contrast) + 0.4*clamp01(difference)
}

// Score returns the readability of text on background, conventionally in
// [0, 1]. Black on white scores 1; identical colors score 0.
func Score(text, background colorspace.Absolute) float64 {
	return scoreLab(colorspace.ToLab(text), colorspace.ToLab(background))
}

// Suggest returns a text color for background in the same color space.
// The seed is taken from the background per the preference and strategy,
// then refined with the same search as [Adjust].
func Suggest[T colorspace.Absolute](background T, opts ...Option) T {
	o := resolveOptions(opts)
	bg := colorspace.ToLab(background)
	text, _ := adjustLab(seedLab(bg, o), bg, o)
	return colorspace.ConvertAbsolute[T](text)
}

// Adjust moves text toward the preferred lightness until it scores at least
// the target against background, for at most MaxIterations steps. The best
// candidate is returned in the color space of text even if the target is
// not reached.
func Adjust[T colorspace.Absolute](text T, background colorspace.Absolute, opts ...Option) T {
	o := resolveOptions(opts)
	out, _ := adjustLab(colorspace.ToLab(text), colorspace.ToLab(background), o)
	return colorspace.ConvertAbsolute[T](out)
}

// seedLab returns the starting candidate for Suggest, relative to the white
// point of bg.
func seedLab(bg colorspace.Lab, o options) colorspace.Lab {
	var l float64
	switch o.preference {
	case Light:
		l = 90
	case Dark:
		l = 10
	default:
		if bg.L > 50 {
			l = 10
		} else {
			l = 90
		}
	}
	a, b := bg.A, bg.B
	if o.strategy == Contrast {
		l, a, b = 100-l, -a, -b
	}
	if !o.constrainHue {
		a *= seedChromaBoost
		b *= seedChromaBoost
	}
	return colorspace.Lab{L: l, A: a, B: b, WhitePoint: bg.White()}
}

// lighten reports whether the search raises lightness.
func (p Preference) lighten(bg colorspace.Lab) bool {
	switch p {
	case Light:
		return true
	case Dark:
		return false
	default:
		return bg.L <= 50
	}
}

// adjustLab hill-climbs text lightness and returns the final candidate and
// the number of steps taken.
func adjustLab(text, bg colorspace.Lab, o options) (colorspace.Lab, int) {
	candidate := text
	score := scoreLab(candidate, bg)
	lighten := o.preference.lighten(bg)

	iterations := 0
	for score < o.target && iterations < MaxIterations {
		l := candidate.L
		if lighten {
			l = math.Min(l+Step, 100)
		} else {
			l = math.Max(l-Step, 0)
		}
		a, b := candidate.A, candidate.B
		if !o.constrainHue {
			a *= chromaDrift
			b *= chromaDrift
		}
		candidate.L, candidate.A, candidate.B = l, a, b
		score = scoreLab(candidate, bg)
		iterations++
	}

	if score < o.target {
		colorspace.Logger().Debug("readability: target not reached",
			"target", o.target,
			"score", score,
			"iterations", iterations,
			"preference", o.preference,
		)
	}
	return candidate, iterations
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
