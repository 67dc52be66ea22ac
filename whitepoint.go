package colorspace

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// CIE standard illuminants (2° observer), normalized to Luminance 1.
var (
	IlluminantA   = Chromaticity{X: 0.44757, Y: 0.40745, Luminance: 1}
	IlluminantB   = Chromaticity{X: 0.34842, Y: 0.35161, Luminance: 1}
	IlluminantC   = Chromaticity{X: 0.31006, Y: 0.31616, Luminance: 1}
	D50           = Chromaticity{X: 0.34567, Y: 0.35850, Luminance: 1}
	D55           = Chromaticity{X: 0.33242, Y: 0.34743, Luminance: 1}
	D65           = Chromaticity{X: 0.3127, Y: 0.3290, Luminance: 1}
	D75           = Chromaticity{X: 0.29902, Y: 0.31485, Luminance: 1}
	IlluminantE   = Chromaticity{X: 1.0 / 3.0, Y: 1.0 / 3.0, Luminance: 1}
	IlluminantF1  = Chromaticity{X: 0.3131, Y: 0.3371, Luminance: 1}
	IlluminantF2  = Chromaticity{X: 0.3721, Y: 0.3751, Luminance: 1}
	IlluminantF7  = Chromaticity{X: 0.3129, Y: 0.3292, Luminance: 1}
	IlluminantF11 = Chromaticity{X: 0.3805, Y: 0.3769, Luminance: 1}
)

// White points of common RGB encodings.
var (
	WhiteSRGB       = D65
	WhiteAdobeRGB   = D65
	WhiteAppleP3    = D65
	WhiteBT2020     = D65
	WhiteProPhoto   = D50
	WhiteNTSC1953   = IlluminantC
	WhiteDCIP3      = Chromaticity{X: 0.314, Y: 0.351, Luminance: 1}
	WhiteACES       = Chromaticity{X: 0.32168, Y: 0.33767, Luminance: 1}
	WhiteCIERGB     = Chromaticity{X: 0.3333, Y: 0.3333, Luminance: 1}
	WhiteCIE1931    = Chromaticity{X: 0.3101, Y: 0.3162, Luminance: 1}
	WhiteJapaneseTV = Chromaticity{X: 0.3127, Y: 0.3293, Luminance: 1}
)

// Typical real-world light sources.
var (
	LightIncandescent       = Chromaticity{X: 0.4476, Y: 0.4074, Luminance: 1}
	LightHalogen            = Chromaticity{X: 0.4234, Y: 0.3990, Luminance: 1}
	LightFluorescent        = Chromaticity{X: 0.3131, Y: 0.3371, Luminance: 1}
	LightCoolWhiteLED       = Chromaticity{X: 0.2883, Y: 0.3101, Luminance: 1}
	LightWarmWhiteLED       = Chromaticity{X: 0.4585, Y: 0.4103, Luminance: 1}
	LightDirectSunlight     = Chromaticity{X: 0.3324, Y: 0.3474, Luminance: 1}
	LightOvercastSky        = Chromaticity{X: 0.3101, Y: 0.3162, Luminance: 1}
	LightClearBlueSky       = Chromaticity{X: 0.2471, Y: 0.2530, Luminance: 1}
	LightCandle             = Chromaticity{X: 0.5268, Y: 0.4200, Luminance: 1}
	LightSodiumVapor        = Chromaticity{X: 0.5669, Y: 0.4231, Luminance: 1}
	LightMetalHalide        = Chromaticity{X: 0.3723, Y: 0.3768, Luminance: 1}
	LightHighPressureSodium = Chromaticity{X: 0.5216, Y: 0.4356, Luminance: 1}
	LightTungstenHalogen    = Chromaticity{X: 0.4478, Y: 0.4070, Luminance: 1}
	LightCarbonArc          = Chromaticity{X: 0.3101, Y: 0.3162, Luminance: 1}
	LightXenon              = Chromaticity{X: 0.3249, Y: 0.3614, Luminance: 1}
)

// whitePoints maps folded catalog names to chromaticities.
var whitePoints = map[string]Chromaticity{
	"a":   IlluminantA,
	"b":   IlluminantB,
	"c":   IlluminantC,
	"d50": D50,
	"d55": D55,
	"d65": D65,
	"d75": D75,
	"e":   IlluminantE,
	"f1":  IlluminantF1,
	"f2":  IlluminantF2,
	"f7":  IlluminantF7,
	"f11": IlluminantF11,

	"srgb":       WhiteSRGB,
	"adobergb":   WhiteAdobeRGB,
	"applep3":    WhiteAppleP3,
	"bt2020":     WhiteBT2020,
	"prophoto":   WhiteProPhoto,
	"ntsc1953":   WhiteNTSC1953,
	"dcip3":      WhiteDCIP3,
	"aces":       WhiteACES,
	"ciergb":     WhiteCIERGB,
	"cie1931":    WhiteCIE1931,
	"japanesetv": WhiteJapaneseTV,

	"incandescent":       LightIncandescent,
	"halogen":            LightHalogen,
	"fluorescent":        LightFluorescent,
	"coolwhiteled":       LightCoolWhiteLED,
	"warmwhiteled":       LightWarmWhiteLED,
	"directsunlight":     LightDirectSunlight,
	"overcastsky":        LightOvercastSky,
	"clearbluesky":       LightClearBlueSky,
	"candle":             LightCandle,
	"sodiumvapor":        LightSodiumVapor,
	"metalhalide":        LightMetalHalide,
	"highpressuresodium": LightHighPressureSodium,
	"tungstenhalogen":    LightTungstenHalogen,
	"carbonarc":          LightCarbonArc,
	"xenon":              LightXenon,
}

// foldName case-folds a catalog name and drops separators, so that
// "Cool White LED", "cool-white-led" and "coolWhiteLED" are equal.
func foldName(name string) string {
	name = cases.Fold().String(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '.':
			return -1
		}
		return r
	}, name)
}

// ParseWhitePoint looks up a white point by name. Names are matched
// case-insensitively and ignore spaces, hyphens and underscores. The
// "illuminant" prefix is optional ("Illuminant A" and "A" are the same).
func ParseWhitePoint(name string) (Chromaticity, error) {
	key := foldName(name)
	key = strings.TrimPrefix(key, "illuminant")
	if wp, ok := whitePoints[key]; ok {
		return wp, nil
	}
	return Chromaticity{}, fmt.Errorf("%w: %q", ErrUnknownWhitePoint, name)
}

// WhitePointNames returns the catalog names accepted by [ParseWhitePoint], sorted.
func WhitePointNames() []string {
	return slices.Sorted(maps.Keys(whitePoints))
}
