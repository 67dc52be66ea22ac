// Package readability scores and tunes text colors against a background.
//
// Both colors are compared in CIE Lab. The score blends a contrast ratio,
// which uses Lab lightness as a stand-in for luminance, with a simplified
// CIEDE2000-style color difference:
//
//	score = 0.6*clamp((contrast-1)/20, 0, 1) + 0.4*clamp(difference/100, 0, 1)
//
// [Suggest] seeds a text color from the background and [Adjust] hill-climbs
// lightness until the score reaches the target or the iteration cap is hit.
// Neither ever fails; they return their best candidate.
//
// Example:
//
//	bg := colorspace.NewLab(95, 0, 5)
//	text := readability.Suggest(bg, readability.WithPreference(readability.Dark))
//	score := readability.Score(text, bg)
package readability
