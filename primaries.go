package colorspace

import "github.com/gogpu/colorspace/internal/matrix3"

// RGB -> XYZ matrices for D65 primaries (IEC 61966-2-1 and Adobe RGB (1998)).
// The XYZ -> RGB directions are the exact inverses, so that a round trip
// through XYZ reproduces the input to floating point precision. They differ
// from the published XYZ -> RGB tables by at most 6.4e-7 (sRGB) and 1.6e-7
// (Adobe RGB) per coefficient.
var (
	srgbToXYZ = matrix3.Matrix{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	srgbFromXYZ = srgbToXYZ.Inverse()

	adobeRGBToXYZ = matrix3.Matrix{
		{0.5767309, 0.1855540, 0.1881852},
		{0.2973769, 0.6273491, 0.0752741},
		{0.0270343, 0.0706872, 0.9911085},
	}
	adobeRGBFromXYZ = adobeRGBToXYZ.Inverse()
)

// rgbWhite is the tristimulus value of RGB (1, 1, 1) for the sRGB
// primaries, normalized to Y = 1.
var rgbWhite = func() XYZ {
	w := xyzFromVec(srgbToXYZ.MulVec(matrix3.Vec{1, 1, 1}))
	return XYZ{X: w.X / w.Y, Y: 1, Z: w.Z / w.Y}
}()

// fromStandard adapts xyz from the D65 frame of the RGB primaries into wp.
func fromStandard(xyz XYZ, wp Chromaticity) XYZ { return AdaptXYZ(xyz, D65, wp) }

// toStandard adapts xyz relative to wp back into the D65 frame.
func toStandard(xyz XYZ, wp Chromaticity) XYZ { return AdaptXYZ(xyz, wp, D65) }
