package colorspace

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseHex parses a hex color string in one of the forms "#RGB", "#RGBA",
// "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional) and returns the
// sRGB color and its alpha in [0, 1].
func ParseHex(hex string) (SRGB, float64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHexDigits(s[0:1], &r) && parseHexDigits(s[1:2], &g) && parseHexDigits(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHexDigits(s[0:1], &r) && parseHexDigits(s[1:2], &g) &&
			parseHexDigits(s[2:3], &b) && parseHexDigits(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHexDigits(s[0:2], &r) && parseHexDigits(s[2:4], &g) && parseHexDigits(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHexDigits(s[0:2], &r) && parseHexDigits(s[2:4], &g) &&
			parseHexDigits(s[4:6], &b) && parseHexDigits(s[6:8], &a)
	}
	if !ok {
		return SRGB{}, 0, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return SRGBFrom8Bit(int(r), int(g), int(b)), float64(a) / 255, nil
}

// parseHexDigits parses s as a hexadecimal number into val and reports
// whether every character was a hex digit.
func parseHexDigits(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// ParseSRGB parses a hex color or an SVG 1.1 / CSS color name such as
// "darkorchid" or "Light Slate Gray". Alpha in hex input is discarded.
func ParseSRGB(s string) (SRGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, _, err := ParseHex(s)
		return c, err
	}
	if named, ok := colornames.Map[foldName(s)]; ok {
		return SRGBFrom8Bit(int(named.R), int(named.G), int(named.B)), nil
	}
	if c, _, err := ParseHex(s); err == nil {
		return c, nil
	}
	return SRGB{}, fmt.Errorf("%w: %q", ErrUnknownColorName, s)
}

// SRGBFromColor converts a standard library color to sRGB and straight
// (non-premultiplied) alpha. The color's channels are taken to be sRGB
// encoded, as is conventional for image/color. Fully transparent colors
// return black.
func SRGBFromColor(c color.Color) (SRGB, float64) {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	if n.A == 0 {
		return SRGB{}, 0
	}
	return SRGB{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
	}, float64(n.A) / 0xffff
}

// NRGBA returns c with the given alpha as a standard library color.
// Channels are clamped to [0, 1].
func (c SRGB) NRGBA(alpha float64) color.NRGBA {
	r, g, b := c.To8Bit()
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(clamp(alpha, 0, 1)*255 + 0.5)}
}
