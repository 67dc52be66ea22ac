package gamma

import (
	"math"
	"testing"
)

func floatNear(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// TestSRGBToLinearEdgeCases tests edge cases for sRGB to linear conversion.
func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, math.Pow((0.04046+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{"negative stays linear", -0.1, -0.1 / 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestLinearToSRGBEdgeCases tests edge cases for linear to sRGB conversion.
func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, 1.055*math.Pow(0.0031309, 1.0/2.4) - 0.055},
		{"mid gray linear", 0.21404, 1.055*math.Pow(0.21404, 1.0/2.4) - 0.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestRoundTripSRGBLinear checks encode(decode(v)) == v to floating point precision.
func TestRoundTripSRGBLinear(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		got := LinearToSRGB(SRGBToLinear(v))
		if !floatNear(got, v, 1e-12) {
			t.Errorf("round trip %v: got %v", v, got)
		}
	}
}

func TestPowerCurve(t *testing.T) {
	tests := []struct {
		name string
		v    float64
	}{
		{"zero", 0},
		{"one", 1},
		{"mid", 0.5},
		{"small", 0.001},
		{"above range", 1.3},
		{"negative", -0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lin := PowerToLinear(tt.v, AdobeRGB)
			if math.IsNaN(lin) {
				t.Fatalf("PowerToLinear(%v) = NaN", tt.v)
			}
			if got := LinearToPower(lin, AdobeRGB); !floatNear(got, tt.v, 1e-12) {
				t.Errorf("LinearToPower(PowerToLinear(%v)) = %v", tt.v, got)
			}
		})
	}
	if got := PowerToLinear(0.5, AdobeRGB); !floatNear(got, math.Pow(0.5, 2.2), 1e-15) {
		t.Errorf("PowerToLinear(0.5) = %v", got)
	}
}

func TestTo8Bit(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{0.499, 127},
		{-0.2, 0},
		{1.7, 255},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := To8Bit(tt.v); got != tt.want {
			t.Errorf("To8Bit(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestFrom8BitRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		if got := To8Bit(From8Bit(i)); got != i {
			t.Errorf("To8Bit(From8Bit(%d)) = %d", i, got)
		}
	}
}
