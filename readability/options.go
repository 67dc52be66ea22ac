package readability

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/colorspace"
)

// Search parameters.
const (
	// DefaultTarget is the score Suggest and Adjust aim for.
	DefaultTarget = 0.7

	// MaxIterations caps the number of adjustment steps.
	MaxIterations = 100

	// Step is the change in Lab lightness per iteration.
	Step = 1.0

	// chromaDrift scales a and b on every iteration unless the hue is constrained.
	chromaDrift = 1.01

	// seedChromaBoost scales a and b of a suggested seed unless the hue is constrained.
	seedChromaBoost = 1.2
)

// Parsing errors.
var (
	ErrUnknownPreference = errors.New("readability: unknown preference")
	ErrUnknownStrategy   = errors.New("readability: unknown strategy")
)

// Preference is the direction in which text lightness may move.
type Preference int

const (
	// Neutral moves away from the background: darker text on light
	// backgrounds, lighter text on dark ones.
	Neutral Preference = iota
	// Light prefers light text.
	Light
	// Dark prefers dark text.
	Dark
)

// String returns the lowercase name of p.
func (p Preference) String() string {
	switch p {
	case Neutral:
		return "neutral"
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("Preference(%d)", int(p))
}

// ParsePreference parses "neutral", "light" or "dark", ignoring case.
func ParsePreference(s string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "neutral", "":
		return Neutral, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Neutral, fmt.Errorf("%w: %q", ErrUnknownPreference, s)
}

// Strategy selects how Suggest seeds its candidate.
type Strategy int

const (
	// Contrast seeds with the inverted background hue.
	Contrast Strategy = iota
	// Similar seeds with the background hue.
	Similar
)

// String returns the lowercase name of s.
func (s Strategy) String() string {
	switch s {
	case Contrast:
		return "contrast"
	case Similar:
		return "similar"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses "contrast" or "similar", ignoring case.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contrast", "":
		return Contrast, nil
	case "similar":
		return Similar, nil
	}
	return Contrast, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Option configures Suggest and Adjust.
//
// Example:
//
//	text := readability.Adjust(text, bg,
//	    readability.WithTarget(0.8),
//	    readability.WithConstrainHue(true),
//	)
type Option func(*options)

// options holds the search configuration.
type options struct {
	preference   Preference
	target       float64
	strategy     Strategy
	constrainHue bool
	whitePoint   *colorspace.Chromaticity
}

// defaultOptions returns the default search configuration.
func defaultOptions() options {
	return options{
		preference: Neutral,
		target:     DefaultTarget,
		strategy:   Contrast,
	}
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithPreference sets the direction lightness moves in. Default: Neutral.
func WithPreference(p Preference) Option {
	return func(o *options) {
		o.preference = p
	}
}

// WithTarget sets the score to reach. Default: DefaultTarget.
func WithTarget(target float64) Option {
	return func(o *options) {
		o.target = target
	}
}

// WithStrategy sets how Suggest seeds its candidate. Default: Contrast.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithConstrainHue keeps the a and b channels fixed while searching.
// Default: false, which lets chroma drift upward.
func WithConstrainHue(constrain bool) Option {
	return func(o *options) {
		o.constrainHue = constrain
	}
}

// WithWhitePoint sets the white point relative colors are interpreted
// against. It only affects the Relative variants. Default: the standard
// white point of the input color.
func WithWhitePoint(wp colorspace.Chromaticity) Option {
	return func(o *options) {
		o.whitePoint = &wp
	}
}
