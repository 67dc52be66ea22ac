package main

import (
	"fmt"

	"github.com/gogpu/colorspace"
	"github.com/gogpu/colorspace/readability"
)

// SearchOptions are the flags shared by suggest and adjust.
type SearchOptions struct {
	Preference   string  `long:"preference" choice:"neutral" choice:"light" choice:"dark" default:"neutral" description:"Direction text lightness may move in"`
	Target       float64 `long:"target" default:"0.7" description:"Readability score to reach"`
	ConstrainHue bool    `long:"constrain-hue" description:"Keep the hue and chroma of the text fixed"`
}

func (o SearchOptions) options() ([]readability.Option, error) {
	pref, err := readability.ParsePreference(o.Preference)
	if err != nil {
		return nil, err
	}
	return []readability.Option{
		readability.WithPreference(pref),
		readability.WithTarget(o.Target),
		readability.WithConstrainHue(o.ConstrainHue),
	}, nil
}

// ScoreCommand prints the readability of text on a background.
type ScoreCommand struct {
	Space  SpaceFlag `short:"s" long:"space" default:"srgb" description:"Color space of comma-separated components"`
	Target float64   `long:"target" default:"0.7" description:"Score counted as readable"`

	Args struct {
		Text       string `positional-arg-name:"TEXT" description:"Text color"`
		Background string `positional-arg-name:"BACKGROUND" description:"Background color"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the command.
func (command *ScoreCommand) Execute([]string) error {
	opts := Colorconv.options()

	text, err := parseLab(command.Space.Space(), command.Args.Text, opts)
	if err != nil {
		return err
	}
	bg, err := parseLab(command.Space.Space(), command.Args.Background, opts)
	if err != nil {
		return err
	}

	score := readability.Score(text, bg)
	fmt.Fprintf(stdout, "score:      %.4f\n", score)
	fmt.Fprintf(stdout, "contrast:   %.2f:1\n", readability.ContrastRatio(text, bg))
	fmt.Fprintf(stdout, "difference: %.2f\n", readability.ColorDifference(text, bg))
	if score >= command.Target {
		fmt.Fprintln(stdout, "readable")
	} else {
		fmt.Fprintln(stdout, "not readable")
	}
	return printPreview(text, bg, opts)
}

// SuggestCommand prints a readable text color for a background.
type SuggestCommand struct {
	Space     SpaceFlag `short:"s" long:"space" default:"srgb" description:"Color space of the input and the result"`
	Strategy  string    `long:"strategy" choice:"contrast" choice:"similar" default:"contrast" description:"Seed from the inverted or the same hue as the background"`
	Precision int       `short:"p" long:"precision" default:"4" description:"Digits after the decimal point"`

	SearchOptions

	Args struct {
		Background string `positional-arg-name:"BACKGROUND" description:"Background color"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the command.
func (command *SuggestCommand) Execute([]string) error {
	opts := Colorconv.options()

	bg, err := parseLab(command.Space.Space(), command.Args.Background, opts)
	if err != nil {
		return err
	}
	ropts, err := command.SearchOptions.options()
	if err != nil {
		return err
	}
	strategy, err := readability.ParseStrategy(command.Strategy)
	if err != nil {
		return err
	}
	ropts = append(ropts, readability.WithStrategy(strategy))

	text := readability.Suggest(bg, ropts...)
	return printResult(command.Space.Space(), text, bg, command.Precision, opts)
}

// AdjustCommand moves a text color until it is readable on a background.
type AdjustCommand struct {
	Space     SpaceFlag `short:"s" long:"space" default:"srgb" description:"Color space of the input and the result"`
	Precision int       `short:"p" long:"precision" default:"4" description:"Digits after the decimal point"`

	SearchOptions

	Args struct {
		Text       string `positional-arg-name:"TEXT" description:"Text color"`
		Background string `positional-arg-name:"BACKGROUND" description:"Background color"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the command.
func (command *AdjustCommand) Execute([]string) error {
	opts := Colorconv.options()

	text, err := parseLab(command.Space.Space(), command.Args.Text, opts)
	if err != nil {
		return err
	}
	bg, err := parseLab(command.Space.Space(), command.Args.Background, opts)
	if err != nil {
		return err
	}
	ropts, err := command.SearchOptions.options()
	if err != nil {
		return err
	}

	adjusted := readability.Adjust(text, bg, ropts...)
	return printResult(command.Space.Space(), adjusted, bg, command.Precision, opts)
}

// parseLab parses a color in space and converts it to Lab.
func parseLab(space colorspace.Space, token string, opts []colorspace.Option) (colorspace.Lab, error) {
	c, err := parseColor(space, token, opts...)
	if err != nil {
		return colorspace.Lab{}, err
	}
	lab, err := colorspace.Convert(c, colorspace.SpaceLab, opts...)
	if err != nil {
		return colorspace.Lab{}, err
	}
	return lab.(colorspace.Lab), nil
}

// printResult prints text converted back into space, its hex code and its
// score against bg.
func printResult(space colorspace.Space, text, bg colorspace.Lab, prec int, opts []colorspace.Option) error {
	out, err := colorspace.Convert(text, space, opts...)
	if err != nil {
		return err
	}
	hex, err := hexOf(text, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, colorspace.Format(out, prec))
	fmt.Fprintf(stdout, "hex:   %s\n", hex)
	fmt.Fprintf(stdout, "score: %.4f\n", readability.Score(text, bg))
	return printPreview(text, bg, opts)
}

func printPreview(text, bg colorspace.Lab, opts []colorspace.Option) error {
	if Colorconv.NoColor {
		return nil
	}
	fg, err := hexOf(text, opts)
	if err != nil {
		return err
	}
	back, err := hexOf(bg, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, swatch(fg, back, "The quick brown fox"))
	return nil
}
