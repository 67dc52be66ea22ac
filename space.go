package colorspace

import (
	"fmt"
	"strings"
)

// Color is a value in any of the color spaces of this package.
type Color interface {
	// Components returns the three channel values in declaration order.
	Components() [3]float64
}

// Space identifies a color space.
type Space int

// Color spaces.
const (
	SpaceInvalid Space = iota
	SpaceXYZ
	SpaceLab
	SpaceLuv
	SpaceHSLuv
	SpaceLinearRGB
	SpaceSRGB
	SpaceLinearSRGB
	SpaceAdobeRGB
	SpaceLinearAdobeRGB
	SpaceHSL
	SpaceHSB
	spaceCount
)

var spaceNames = [spaceCount]string{
	SpaceInvalid:        "invalid",
	SpaceXYZ:            "xyz",
	SpaceLab:            "lab",
	SpaceLuv:            "luv",
	SpaceHSLuv:          "hsluv",
	SpaceLinearRGB:      "linear-rgb",
	SpaceSRGB:           "srgb",
	SpaceLinearSRGB:     "linear-srgb",
	SpaceAdobeRGB:       "adobe-rgb",
	SpaceLinearAdobeRGB: "linear-adobe-rgb",
	SpaceHSL:            "hsl",
	SpaceHSB:            "hsb",
}

// spaceAliases maps folded names to spaces.
var spaceAliases = map[string]Space{
	"xyz":            SpaceXYZ,
	"ciexyz":         SpaceXYZ,
	"lab":            SpaceLab,
	"cielab":         SpaceLab,
	"luv":            SpaceLuv,
	"cieluv":         SpaceLuv,
	"hsluv":          SpaceHSLuv,
	"linearrgb":      SpaceLinearRGB,
	"srgb":           SpaceSRGB,
	"rgb":            SpaceSRGB,
	"linearsrgb":     SpaceLinearSRGB,
	"adobergb":       SpaceAdobeRGB,
	"linearadobergb": SpaceLinearAdobeRGB,
	"hsl":            SpaceHSL,
	"hsb":            SpaceHSB,
	"hsv":            SpaceHSB,
}

// String returns the canonical name of s.
func (s Space) String() string {
	if s < 0 || s >= spaceCount {
		return fmt.Sprintf("Space(%d)", int(s))
	}
	return spaceNames[s]
}

// Valid reports whether s names a color space.
func (s Space) Valid() bool { return s > SpaceInvalid && s < spaceCount }

// Absolute reports whether s is an absolute space.
func (s Space) Absolute() bool { return s >= SpaceXYZ && s <= SpaceLinearRGB }

// Relative reports whether s is a relative space.
func (s Space) Relative() bool { return s >= SpaceSRGB && s <= SpaceHSB }

// Spaces returns all valid color spaces in declaration order.
func Spaces() []Space {
	out := make([]Space, 0, spaceCount-1)
	for s := SpaceXYZ; s < spaceCount; s++ {
		out = append(out, s)
	}
	return out
}

// ParseSpace returns the space with the given name. Matching is
// case-insensitive and ignores spaces, hyphens and underscores, and a few
// aliases are accepted ("rgb", "hsv", "cielab").
func ParseSpace(name string) (Space, error) {
	if s, ok := spaceAliases[foldName(name)]; ok {
		return s, nil
	}
	return SpaceInvalid, fmt.Errorf("%w: %q", ErrUnknownSpace, name)
}

// New returns a color of space s with the given components. Lab values are
// relative to D65.
func (s Space) New(c [3]float64) (Color, error) {
	switch s {
	case SpaceXYZ:
		return XYZ{X: c[0], Y: c[1], Z: c[2]}, nil
	case SpaceLab:
		return NewLab(c[0], c[1], c[2]), nil
	case SpaceLuv:
		return Luv{L: c[0], U: c[1], V: c[2]}, nil
	case SpaceHSLuv:
		return HSLuv{H: c[0], S: c[1], L: c[2]}, nil
	case SpaceLinearRGB:
		return LinearRGB{R: c[0], G: c[1], B: c[2]}, nil
	case SpaceSRGB:
		return SRGB{R: c[0], G: c[1], B: c[2]}, nil
	case SpaceLinearSRGB:
		return LinearSRGB{R: c[0], G: c[1], B: c[2]}, nil
	case SpaceAdobeRGB:
		return AdobeRGB{R: c[0], G: c[1], B: c[2]}, nil
	case SpaceLinearAdobeRGB:
		return LinearAdobeRGB{R: c[0], G: c[1], B: c[2]}, nil
	case SpaceHSL:
		return HSL{H: c[0], S: c[1], L: c[2]}, nil
	case SpaceHSB:
		return HSB{H: c[0], S: c[1], B: c[2]}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownSpace, s)
}

// SpaceOf returns the space of c, or SpaceInvalid for a foreign type.
func SpaceOf(c Color) Space {
	switch c.(type) {
	case XYZ:
		return SpaceXYZ
	case Lab:
		return SpaceLab
	case Luv:
		return SpaceLuv
	case HSLuv:
		return SpaceHSLuv
	case LinearRGB:
		return SpaceLinearRGB
	case SRGB:
		return SpaceSRGB
	case LinearSRGB:
		return SpaceLinearSRGB
	case AdobeRGB:
		return SpaceAdobeRGB
	case LinearAdobeRGB:
		return SpaceLinearAdobeRGB
	case HSL:
		return SpaceHSL
	case HSB:
		return SpaceHSB
	}
	return SpaceInvalid
}

// Convert converts c to the space to. Crossing between the absolute and the
// relative family goes through XYZ relative to the white point from
// [WithWhitePoint], which defaults to the standard white point of the
// relative side (D65 for every space in this package).
func Convert(c Color, to Space, opts ...Option) (Color, error) {
	from := SpaceOf(c)
	if !from.Valid() {
		return nil, fmt.Errorf("%w: %T", ErrUnknownSpace, c)
	}
	switch to {
	case SpaceXYZ:
		return toAbsolute[XYZ](c, opts), nil
	case SpaceLab:
		return toAbsolute[Lab](c, opts), nil
	case SpaceLuv:
		return toAbsolute[Luv](c, opts), nil
	case SpaceHSLuv:
		return toAbsolute[HSLuv](c, opts), nil
	case SpaceLinearRGB:
		return toAbsolute[LinearRGB](c, opts), nil
	case SpaceSRGB:
		return toRelative[SRGB](c, opts), nil
	case SpaceLinearSRGB:
		return toRelative[LinearSRGB](c, opts), nil
	case SpaceAdobeRGB:
		return toRelative[AdobeRGB](c, opts), nil
	case SpaceLinearAdobeRGB:
		return toRelative[LinearAdobeRGB](c, opts), nil
	case SpaceHSL:
		return toRelative[HSL](c, opts), nil
	case SpaceHSB:
		return toRelative[HSB](c, opts), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownSpace, to)
}

// toAbsolute converts c, which must be one of the package types, to T.
func toAbsolute[T Absolute](c Color, opts []Option) T {
	switch v := c.(type) {
	case Absolute:
		return ConvertAbsolute[T](v)
	case Relative:
		o := resolveOptions(v.StandardWhitePoint(), opts)
		return AbsoluteFromXYZ[T](v.XYZRelativeTo(o.whitePoint))
	}
	panic(fmt.Sprintf("colorspace: unsupported color %T", c))
}

// toRelative converts c, which must be one of the package types, to T.
func toRelative[T Relative](c Color, opts []Option) T {
	switch v := c.(type) {
	case Relative:
		return ConvertRelative[T](v, opts...)
	case Absolute:
		var zero T
		o := resolveOptions(zero.StandardWhitePoint(), opts)
		return RelativeFromXYZ[T](v.XYZ(), o.whitePoint)
	}
	panic(fmt.Sprintf("colorspace: unsupported color %T", c))
}

// Format returns c as "space(c0, c1, c2)" with the given precision.
func Format(c Color, prec int) string {
	comps := c.Components()
	parts := make([]string, len(comps))
	for i, v := range comps {
		parts[i] = fmt.Sprintf("%.*f", prec, v)
	}
	return fmt.Sprintf("%s(%s)", SpaceOf(c), strings.Join(parts, ", "))
}
