package colorspace

import "errors"

// Parsing errors. The conversion math itself never fails; these are only
// returned at the string boundaries (hex codes, names).
var (
	// ErrInvalidHex is returned when a hex color string cannot be parsed.
	ErrInvalidHex = errors.New("colorspace: invalid hex color")

	// ErrUnknownColorName is returned when a name is neither hex nor a CSS color name.
	ErrUnknownColorName = errors.New("colorspace: unknown color name")

	// ErrUnknownSpace is returned for an unrecognized color space name or value.
	ErrUnknownSpace = errors.New("colorspace: unknown color space")

	// ErrUnknownWhitePoint is returned for an unrecognized white point name.
	ErrUnknownWhitePoint = errors.New("colorspace: unknown white point")
)
