package colorspace

import (
	"errors"
	"slices"
	"testing"
)

func TestParseWhitePoint(t *testing.T) {
	tests := []struct {
		name string
		want Chromaticity
	}{
		{"D65", D65},
		{"d50", D50},
		{"  D75 ", D75},
		{"A", IlluminantA},
		{"Illuminant A", IlluminantA},
		{"illuminant-f11", IlluminantF11},
		{"ProPhoto", WhiteProPhoto},
		{"DCI-P3", WhiteDCIP3},
		{"Cool White LED", LightCoolWhiteLED},
		{"cool_white_led", LightCoolWhiteLED},
		{"coolWhiteLED", LightCoolWhiteLED},
		{"HIGH PRESSURE SODIUM", LightHighPressureSodium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWhitePoint(tt.name)
			if err != nil {
				t.Fatalf("ParseWhitePoint(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseWhitePoint(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseWhitePointUnknown(t *testing.T) {
	for _, name := range []string{"", "D66", "moonlight"} {
		_, err := ParseWhitePoint(name)
		if !errors.Is(err, ErrUnknownWhitePoint) {
			t.Errorf("ParseWhitePoint(%q) error = %v, want ErrUnknownWhitePoint", name, err)
		}
	}
}

func TestWhitePointNames(t *testing.T) {
	names := WhitePointNames()
	if !slices.IsSorted(names) {
		t.Error("WhitePointNames() is not sorted")
	}
	if len(names) != len(whitePoints) {
		t.Errorf("len(WhitePointNames()) = %d, want %d", len(names), len(whitePoints))
	}
	for _, name := range names {
		wp, err := ParseWhitePoint(name)
		if err != nil {
			t.Errorf("ParseWhitePoint(%q) error: %v", name, err)
			continue
		}
		if wp.Luminance != 1 {
			t.Errorf("%s: luminance = %v, want 1", name, wp.Luminance)
		}
		if wp.X <= 0 || wp.Y <= 0 || wp.X+wp.Y >= 1 {
			t.Errorf("%s: chromaticity (%v, %v) outside the spectral locus bounds", name, wp.X, wp.Y)
		}
	}
}

func TestStandardWhitePointsAreD65(t *testing.T) {
	spaces := []Relative{SRGB{}, LinearSRGB{}, AdobeRGB{}, LinearAdobeRGB{}, HSL{}, HSB{}}
	for _, s := range spaces {
		if got := s.StandardWhitePoint(); got != D65 {
			t.Errorf("%T.StandardWhitePoint() = %+v, want D65", s, got)
		}
	}
}
