package colorspace

// Option configures a relative color space conversion.
// Use functional options to override defaults.
//
// Example:
//
//	// Convert relative to the space's standard white point (D65)
//	hsl := colorspace.ToHSL(srgb)
//
//	// Convert relative to D50
//	hsl := colorspace.ToHSL(srgb, colorspace.WithWhitePoint(colorspace.D50))
type Option func(*options)

// options holds optional configuration for conversions.
type options struct {
	whitePoint Chromaticity
}

// defaultOptions returns the default options for a conversion whose
// relative side declares the given standard white point.
func defaultOptions(standard Chromaticity) options {
	return options{
		whitePoint: standard,
	}
}

// resolveOptions applies opts on top of the defaults.
func resolveOptions(standard Chromaticity, opts []Option) options {
	o := defaultOptions(standard)
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithWhitePoint sets the white point that relative color values are
// interpreted against. The same white point must be used for the forward and
// the inverse conversion, otherwise the round trip does not reproduce the input.
//
// The default is the standard white point of the relative space involved.
func WithWhitePoint(wp Chromaticity) Option {
	return func(o *options) {
		o.whitePoint = wp
	}
}
