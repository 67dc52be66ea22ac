package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/colorspace"
	"github.com/jessevdk/go-flags"
)

// SpaceFlag is a color space given by name.
type SpaceFlag colorspace.Space

// UnmarshalFlag parses a space name such as "srgb" or "hsluv".
func (f *SpaceFlag) UnmarshalFlag(value string) error {
	s, err := colorspace.ParseSpace(value)
	if err != nil {
		return err
	}
	*f = SpaceFlag(s)
	return nil
}

// Space returns the parsed space.
func (f SpaceFlag) Space() colorspace.Space {
	return colorspace.Space(f)
}

// Complete lists the space names starting with match.
func (f *SpaceFlag) Complete(match string) []flags.Completion {
	var comps []flags.Completion
	for _, s := range colorspace.Spaces() {
		if strings.HasPrefix(s.String(), match) {
			comps = append(comps, flags.Completion{Item: s.String()})
		}
	}
	return comps
}

// WhitePointFlag is a white point given by catalog name.
type WhitePointFlag struct {
	Name         string
	Chromaticity colorspace.Chromaticity
}

// UnmarshalFlag parses a catalog name such as "d50" or "Cool White LED".
func (f *WhitePointFlag) UnmarshalFlag(value string) error {
	wp, err := colorspace.ParseWhitePoint(value)
	if err != nil {
		return err
	}
	f.Name = value
	f.Chromaticity = wp
	return nil
}

// Set reports whether a white point was given.
func (f WhitePointFlag) Set() bool {
	return f.Name != ""
}

// Complete lists the catalog names starting with match.
func (f *WhitePointFlag) Complete(match string) []flags.Completion {
	var comps []flags.Completion
	for _, name := range colorspace.WhitePointNames() {
		if strings.HasPrefix(name, strings.ToLower(match)) {
			comps = append(comps, flags.Completion{Item: name})
		}
	}
	return comps
}

// parseColor reads a color in space. A token of three comma-separated
// numbers gives the components directly; anything else is parsed as an sRGB
// hex code or CSS color name and converted into space.
func parseColor(space colorspace.Space, token string, opts ...colorspace.Option) (colorspace.Color, error) {
	if parts := strings.Split(token, ","); len(parts) == 3 {
		var comps [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("component %d of %q: %w", i+1, token, err)
			}
			comps[i] = v
		}
		return space.New(comps)
	}

	c, err := colorspace.ParseSRGB(token)
	if err != nil {
		return nil, err
	}
	return colorspace.Convert(c, space, opts...)
}
