package main

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/colorspace"
)

func TestSpaceFlag(t *testing.T) {
	var f SpaceFlag
	if err := f.UnmarshalFlag("HSLuv"); err != nil || f.Space() != colorspace.SpaceHSLuv {
		t.Errorf("UnmarshalFlag(HSLuv) = %v, %v", f.Space(), err)
	}
	if err := f.UnmarshalFlag("cmyk"); !errors.Is(err, colorspace.ErrUnknownSpace) {
		t.Errorf("UnmarshalFlag(cmyk) error = %v", err)
	}

	comps := f.Complete("linear")
	if len(comps) != 3 {
		t.Errorf("Complete(linear) = %v, want 3 spaces", comps)
	}
}

func TestWhitePointFlag(t *testing.T) {
	var f WhitePointFlag
	if f.Set() {
		t.Error("zero flag reports set")
	}
	if err := f.UnmarshalFlag("Illuminant D50"); err != nil {
		t.Fatal(err)
	}
	if !f.Set() || f.Chromaticity != colorspace.D50 {
		t.Errorf("flag = %+v, want D50", f)
	}
	if err := f.UnmarshalFlag("moonlight"); !errors.Is(err, colorspace.ErrUnknownWhitePoint) {
		t.Errorf("UnmarshalFlag(moonlight) error = %v", err)
	}
	for _, c := range f.Complete("d") {
		if c.Item[0] != 'd' {
			t.Errorf("Complete(d) returned %q", c.Item)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := parseColor(colorspace.SpaceHSL, "0.2, 0.4,0.6")
	if err != nil {
		t.Fatal(err)
	}
	if want := (colorspace.HSL{H: 0.2, S: 0.4, L: 0.6}); c != want {
		t.Errorf("parseColor(hsl) = %+v, want %+v", c, want)
	}

	c, err = parseColor(colorspace.SpaceLab, "red")
	if err != nil {
		t.Fatal(err)
	}
	lab, ok := c.(colorspace.Lab)
	if !ok || math.Abs(lab.L-53.2408) > 1e-3 {
		t.Errorf("parseColor(lab, red) = %+v", c)
	}

	if _, err := parseColor(colorspace.SpaceSRGB, "1,x,3"); err == nil {
		t.Error("bad component: want error")
	}
	if _, err := parseColor(colorspace.SpaceSRGB, "1,2"); !errors.Is(err, colorspace.ErrUnknownColorName) {
		t.Errorf("two components error = %v", err)
	}
}

func TestSwatch(t *testing.T) {
	got := swatch("#000000", "#ffffff", "sample")
	if !strings.Contains(got, "sample") {
		t.Errorf("swatch() = %q", got)
	}
	hex, err := hexOf(colorspace.NewLab(100, 0, 0), nil)
	if err != nil || hex != "#ffffff" {
		t.Errorf("hexOf(white) = %q, %v", hex, err)
	}
}
