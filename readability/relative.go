package readability

import "github.com/gogpu/colorspace"

// whitePointOr returns the configured white point or the fallback.
func (o options) whitePointOr(fallback colorspace.Chromaticity) colorspace.Chromaticity {
	if o.whitePoint != nil {
		return *o.whitePoint
	}
	return fallback
}

// ScoreRelative is [Score] for relative colors. Each color is interpreted
// against the white point from [WithWhitePoint], or its own standard white
// point.
func ScoreRelative(text, background colorspace.Relative, opts ...Option) float64 {
	o := resolveOptions(opts)
	return Score(relativeXYZ(text, o), relativeXYZ(background, o))
}

// SuggestRelative is [Suggest] for relative colors.
func SuggestRelative[T colorspace.Relative](background T, opts ...Option) T {
	o := resolveOptions(opts)
	wp := o.whitePointOr(background.StandardWhitePoint())
	bg := colorspace.LabFromXYZ(background.XYZRelativeTo(wp))
	text, _ := adjustLab(seedLab(bg, o), bg, o)
	return colorspace.RelativeFromXYZ[T](text.XYZ(), wp)
}

// AdjustRelative is [Adjust] for relative colors. The result is in the
// color space of text and relative to the same white point.
func AdjustRelative[T colorspace.Relative](text T, background colorspace.Relative, opts ...Option) T {
	o := resolveOptions(opts)
	wp := o.whitePointOr(text.StandardWhitePoint())
	t := colorspace.LabFromXYZ(text.XYZRelativeTo(wp))
	bg := colorspace.LabFromXYZ(relativeXYZ(background, o))
	out, _ := adjustLab(t, bg, o)
	return colorspace.RelativeFromXYZ[T](out.XYZ(), wp)
}

func relativeXYZ(c colorspace.Relative, o options) colorspace.XYZ {
	return c.XYZRelativeTo(o.whitePointOr(c.StandardWhitePoint()))
}
