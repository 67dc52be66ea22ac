package colorspace

import (
	"testing"

	"github.com/gogpu/colorspace/internal/matrix3"
	"github.com/google/go-cmp/cmp"
)

func TestAdaptXYZSameWhitePoint(t *testing.T) {
	xyz := XYZ{X: 0.3, Y: 0.4, Z: 0.5}
	if got := AdaptXYZ(xyz, D50, D50); got != xyz {
		t.Errorf("AdaptXYZ with equal white points = %+v, want %+v", got, xyz)
	}
}

func TestAdaptXYZMapsWhiteToWhite(t *testing.T) {
	pairs := []struct {
		name     string
		from, to Chromaticity
	}{
		{"D65 to D50", D65, D50},
		{"D50 to D65", D50, D65},
		{"D65 to A", D65, IlluminantA},
		{"F2 to D75", IlluminantF2, D75},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			got := AdaptXYZ(p.from.XYZ(), p.from, p.to)
			if diff := cmp.Diff(p.to.XYZ(), got, approx(1e-12)); diff != "" {
				t.Errorf("source white not mapped to destination white (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdaptXYZRoundTrip(t *testing.T) {
	xyz := XYZ{X: 0.2, Y: 0.3, Z: 0.1}
	for _, wp := range []Chromaticity{D50, IlluminantA, LightCandle, WhiteDCIP3} {
		back := AdaptXYZ(AdaptXYZ(xyz, D65, wp), wp, D65)
		if diff := cmp.Diff(xyz, back, approx(1e-12)); diff != "" {
			t.Errorf("round trip via %+v (-want +got):\n%s", wp, diff)
		}
	}
}

func TestBradfordInverse(t *testing.T) {
	got := bradford.Mul(bradfordInverse)
	want := matrix3.Identity()
	for i := range 3 {
		for j := range 3 {
			if !floatNear(got[i][j], want[i][j], 1e-12) {
				t.Fatalf("bradford * inverse = %v, want identity", got)
			}
		}
	}
}

func BenchmarkAdaptXYZ(b *testing.B) {
	xyz := XYZ{X: 0.2, Y: 0.3, Z: 0.1}
	for b.Loop() {
		_ = AdaptXYZ(xyz, D65, D50)
	}
}
