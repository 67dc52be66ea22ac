package colorspace

import (
	"testing"

	"github.com/gogpu/colorspace/internal/matrix3"
)

func TestFromXYZMatchesPublished(t *testing.T) {
	tests := []struct {
		name      string
		got, want matrix3.Matrix
		tolerance float64
	}{
		{
			name: "sRGB",
			got:  srgbFromXYZ,
			want: matrix3.Matrix{
				{3.2404542, -1.5371385, -0.4985314},
				{-0.9692660, 1.8760108, 0.0415560},
				{0.0556434, -0.2040259, 1.0572252},
			},
			tolerance: 6.4e-7,
		},
		{
			name: "Adobe RGB",
			got:  adobeRGBFromXYZ,
			want: matrix3.Matrix{
				{2.0413690, -0.5649464, -0.3446944},
				{-0.9692660, 1.8760108, 0.0415560},
				{0.0134474, -0.1183897, 1.0154096},
			},
			tolerance: 1.6e-7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range 3 {
				for j := range 3 {
					if !floatNear(tt.got[i][j], tt.want[i][j], tt.tolerance) {
						t.Errorf("[%d][%d] = %.9f, want %.7f", i, j, tt.got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestRGBWhite(t *testing.T) {
	want := XYZ{X: 0.95047, Y: 1, Z: 1.08883}
	if !floatNear(rgbWhite.X, want.X, 1e-6) || rgbWhite.Y != 1 || !floatNear(rgbWhite.Z, want.Z, 1e-6) {
		t.Errorf("rgbWhite = %+v, want %+v", rgbWhite, want)
	}
}
