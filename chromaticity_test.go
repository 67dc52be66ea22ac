package colorspace

import (
	"math"
	"testing"
)

func TestChromaticityXYZ(t *testing.T) {
	tests := []struct {
		name string
		c    Chromaticity
		want XYZ
	}{
		{"D65", D65, XYZ{X: 0.3127 / 0.3290, Y: 1, Z: (1 - 0.3127 - 0.3290) / 0.3290}},
		{"E", IlluminantE, XYZ{X: 1, Y: 1, Z: 1}},
		{"half luminance", Chromaticity{X: 0.3127, Y: 0.3290, Luminance: 0.5}, XYZ{X: 0.5 * 0.3127 / 0.3290, Y: 0.5, Z: 0.5 * (1 - 0.3127 - 0.3290) / 0.3290}},
		{"y zero", Chromaticity{X: 0.5, Y: 0, Luminance: 1}, XYZ{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.XYZ()
			if !floatNear(got.X, tt.want.X, 1e-12) || !floatNear(got.Y, tt.want.Y, 1e-12) || !floatNear(got.Z, tt.want.Z, 1e-12) {
				t.Errorf("XYZ() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChromaticityFromXYZ(t *testing.T) {
	for _, wp := range []Chromaticity{D50, D65, IlluminantA, LightCandle} {
		got := ChromaticityFromXYZ(wp.XYZ())
		if !floatNear(got.X, wp.X, 1e-12) || !floatNear(got.Y, wp.Y, 1e-12) || !floatNear(got.Luminance, 1, 1e-12) {
			t.Errorf("ChromaticityFromXYZ(%+v.XYZ()) = %+v", wp, got)
		}
	}

	black := ChromaticityFromXYZ(XYZ{})
	if black.X != D65.X || black.Y != D65.Y || black.Luminance != 0 {
		t.Errorf("ChromaticityFromXYZ(black) = %+v, want D65 chromaticity with zero luminance", black)
	}
}

func TestCCT(t *testing.T) {
	tests := []struct {
		name string
		wp   Chromaticity
		want float64
		tol  float64
	}{
		{"D65", D65, 6504, 10},
		{"D50", D50, 5003, 10},
		{"A", IlluminantA, 2856, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.wp.CCT(); !floatNear(got, tt.want, tt.tol) {
				t.Errorf("CCT() = %v, want %v±%v", got, tt.want, tt.tol)
			}
		})
	}

	if got := (Chromaticity{X: 0.3, Y: 0.1858}).CCT(); !math.IsInf(got, 1) {
		t.Errorf("CCT at the singular y = %v, want +Inf", got)
	}
}
