package colorspace

import "fmt"

// Absolute is a color space whose values denote a definite color with no
// further context: XYZ, Lab, Luv, HSLuv and LinearRGB.
//
// The set is closed; types outside this package cannot implement it.
type Absolute interface {
	Color
	// XYZ converts the color to CIE XYZ.
	XYZ() XYZ
	absoluteSpace()
}

// ConvertAbsolute converts c to the absolute space T, going through XYZ.
// A value that already has type T is returned unchanged. Luv and HSLuv
// convert between each other directly.
//
// T must be one of the value types XYZ, Lab, Luv, HSLuv or LinearRGB;
// any other type argument panics.
func ConvertAbsolute[T Absolute](c Absolute) T {
	if same, ok := c.(T); ok {
		return same
	}
	var zero T
	switch any(zero).(type) {
	case Luv:
		if h, ok := c.(HSLuv); ok {
			return any(h.Luv()).(T)
		}
	case HSLuv:
		if l, ok := c.(Luv); ok {
			return any(HSLuvFromLuv(l)).(T)
		}
	}
	return AbsoluteFromXYZ[T](c.XYZ())
}

// AbsoluteFromXYZ constructs the absolute space T from xyz. Lab is built
// relative to D65.
func AbsoluteFromXYZ[T Absolute](xyz XYZ) T {
	var out Absolute
	var zero T
	switch any(zero).(type) {
	case XYZ:
		out = xyz
	case Lab:
		out = LabFromXYZ(xyz)
	case Luv:
		out = LuvFromXYZ(xyz)
	case HSLuv:
		out = HSLuvFromXYZ(xyz)
	case LinearRGB:
		out = LinearRGBFromXYZ(xyz)
	default:
		panic(fmt.Sprintf("colorspace: unsupported absolute space %T", zero))
	}
	return out.(T)
}

// ToXYZ converts c to XYZ.
func ToXYZ(c Absolute) XYZ { return c.XYZ() }

// ToLab converts c to Lab relative to D65. A Lab input is returned unchanged.
func ToLab(c Absolute) Lab { return ConvertAbsolute[Lab](c) }

// ToLuv converts c to Luv.
func ToLuv(c Absolute) Luv { return ConvertAbsolute[Luv](c) }

// ToHSLuv converts c to HSLuv.
func ToHSLuv(c Absolute) HSLuv { return ConvertAbsolute[HSLuv](c) }

// ToLinearRGB converts c to absolute linear RGB.
func ToLinearRGB(c Absolute) LinearRGB { return ConvertAbsolute[LinearRGB](c) }
