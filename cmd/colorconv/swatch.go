package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/colorspace"
)

var swatchStyle = lipgloss.NewStyle().Padding(0, 1)

// swatch renders label in the fg color on the bg color, both hex codes.
func swatch(fg, bg, label string) string {
	return swatchStyle.
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Render(label)
}

// hexOf returns the displayable sRGB hex code of c.
func hexOf(c colorspace.Color, opts []colorspace.Option) (string, error) {
	out, err := colorspace.Convert(c, colorspace.SpaceSRGB, opts...)
	if err != nil {
		return "", err
	}
	return out.(colorspace.SRGB).Clamped().Hex(), nil
}
