package colorspace

import "fmt"

// Relative is a device-dependent color space that needs a white point to
// convert to and from XYZ: SRGB, LinearSRGB, AdobeRGB, LinearAdobeRGB, HSL
// and HSB.
//
// The set is closed; types outside this package cannot implement it.
type Relative interface {
	Color
	// StandardWhitePoint is the white point the space is defined against.
	StandardWhitePoint() Chromaticity
	// XYZRelativeTo converts the color to XYZ, interpreting it relative to wp.
	XYZRelativeTo(wp Chromaticity) XYZ
	relativeSpace()
}

// ConvertRelative converts c to the relative space T. A value that already
// has type T is returned unchanged. Conversions within the sRGB family
// (SRGB, LinearSRGB, HSL, HSB) and within the Adobe RGB family do not
// depend on the white point and skip XYZ; everything else goes through XYZ
// relative to the white point from [WithWhitePoint], which defaults to the
// standard white point of c.
//
// T must be one of the relative value types; any other type argument panics.
func ConvertRelative[T Relative](c Relative, opts ...Option) T {
	if same, ok := c.(T); ok {
		return same
	}
	if s, ok := srgbOf(c); ok {
		if out, ok := fromSRGBFamily[T](s); ok {
			return out
		}
	}
	if a, ok := c.(AdobeRGB); ok {
		if out, ok := fromAdobeFamily[T](a.Linear()); ok {
			return out
		}
	}
	if a, ok := c.(LinearAdobeRGB); ok {
		if out, ok := fromAdobeFamily[T](a); ok {
			return out
		}
	}
	o := resolveOptions(c.StandardWhitePoint(), opts)
	return RelativeFromXYZ[T](c.XYZRelativeTo(o.whitePoint), o.whitePoint)
}

// RelativeFromXYZ constructs the relative space T from xyz, interpreted
// relative to wp.
func RelativeFromXYZ[T Relative](xyz XYZ, wp Chromaticity) T {
	var out Relative
	var zero T
	switch any(zero).(type) {
	case SRGB:
		out = SRGBFromXYZ(xyz, wp)
	case LinearSRGB:
		out = LinearSRGBFromXYZ(xyz, wp)
	case AdobeRGB:
		out = AdobeRGBFromXYZ(xyz, wp)
	case LinearAdobeRGB:
		out = LinearAdobeRGBFromXYZ(xyz, wp)
	case HSL:
		out = HSLFromXYZ(xyz, wp)
	case HSB:
		out = HSBFromXYZ(xyz, wp)
	default:
		panic(fmt.Sprintf("colorspace: unsupported relative space %T", zero))
	}
	return out.(T)
}

// srgbOf returns c as sRGB when c belongs to the sRGB family.
func srgbOf(c Relative) (SRGB, bool) {
	switch v := c.(type) {
	case SRGB:
		return v, true
	case LinearSRGB:
		return v.SRGB(), true
	case HSL:
		return v.SRGB(), true
	case HSB:
		return v.SRGB(), true
	}
	return SRGB{}, false
}

func fromSRGBFamily[T Relative](s SRGB) (T, bool) {
	var out Relative
	var zero T
	switch any(zero).(type) {
	case SRGB:
		out = s
	case LinearSRGB:
		out = s.Linear()
	case HSL:
		out = HSLFromSRGB(s)
	case HSB:
		out = HSBFromSRGB(s)
	default:
		return zero, false
	}
	return out.(T), true
}

func fromAdobeFamily[T Relative](l LinearAdobeRGB) (T, bool) {
	var out Relative
	var zero T
	switch any(zero).(type) {
	case AdobeRGB:
		out = l.AdobeRGB()
	case LinearAdobeRGB:
		out = l
	default:
		return zero, false
	}
	return out.(T), true
}

// ToSRGB converts c to sRGB.
func ToSRGB(c Relative, opts ...Option) SRGB { return ConvertRelative[SRGB](c, opts...) }

// ToLinearSRGB converts c to linear sRGB.
func ToLinearSRGB(c Relative, opts ...Option) LinearSRGB {
	return ConvertRelative[LinearSRGB](c, opts...)
}

// ToAdobeRGB converts c to Adobe RGB.
func ToAdobeRGB(c Relative, opts ...Option) AdobeRGB { return ConvertRelative[AdobeRGB](c, opts...) }

// ToLinearAdobeRGB converts c to linear Adobe RGB.
func ToLinearAdobeRGB(c Relative, opts ...Option) LinearAdobeRGB {
	return ConvertRelative[LinearAdobeRGB](c, opts...)
}

// ToHSL converts c to HSL.
func ToHSL(c Relative, opts ...Option) HSL { return ConvertRelative[HSL](c, opts...) }

// ToHSB converts c to HSB.
func ToHSB(c Relative, opts ...Option) HSB { return ConvertRelative[HSB](c, opts...) }
