// Package colorspace converts colors between device-dependent and
// device-independent color spaces.
//
// # Overview
//
// Every conversion pivots through CIE XYZ. Color spaces fall into two
// families:
//
//   - Absolute: XYZ, Lab, Luv, HSLuv and LinearRGB. A value names a definite
//     color and converts to XYZ without further context.
//   - Relative: SRGB, LinearSRGB, AdobeRGB, LinearAdobeRGB, HSL and HSB. A
//     value needs a white point to become a definite color.
//
// # Quick Start
//
//	import "github.com/gogpu/colorspace"
//
//	c, _ := colorspace.ParseSRGB("#336699")
//	lab := colorspace.LabFromXYZ(c.XYZRelativeTo(colorspace.D65))
//	hsl := colorspace.ToHSL(c)
//
//	// Generic conversion within a family
//	luv := colorspace.ConvertAbsolute[colorspace.Luv](lab)
//
//	// Conversion by space identifier
//	out, err := colorspace.Convert(c, colorspace.SpaceHSLuv)
//
// # White Points
//
// Relative spaces are defined against D65. Passing [WithWhitePoint] makes a
// conversion interpret relative values against another white point; the XYZ
// values are then adapted with the Bradford transform. A catalog of CIE
// illuminants, RGB encoding whites and common light sources is provided,
// see [ParseWhitePoint].
//
// # Ranges
//
// No input validation is performed. Values outside the conventional ranges
// are carried through arithmetically, and singular points (black, white,
// zero chroma) resolve to defined values rather than NaN. Use the Clamped
// methods to obtain display-safe values.
//
// # Concurrency
//
// All conversions are pure functions and safe for concurrent use.
package colorspace

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
