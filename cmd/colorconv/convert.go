package main

import (
	"fmt"

	"github.com/gogpu/colorspace"
)

// ConvertCommand converts a color into each requested space.
type ConvertCommand struct {
	From      SpaceFlag   `short:"f" long:"from" default:"srgb" description:"Color space of the input components"`
	To        []SpaceFlag `short:"t" long:"to" required:"true" description:"Target color space (repeatable)"`
	Precision int         `short:"p" long:"precision" default:"4" description:"Digits after the decimal point"`

	Args struct {
		Color string `positional-arg-name:"COLOR" description:"Hex code, CSS name or comma-separated components"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the command.
func (command *ConvertCommand) Execute([]string) error {
	opts := Colorconv.options()

	c, err := parseColor(command.From.Space(), command.Args.Color, opts...)
	if err != nil {
		return err
	}

	for _, to := range command.To {
		out, err := colorspace.Convert(c, to.Space(), opts...)
		if err != nil {
			return err
		}
		colorspace.Logger().Debug("converted",
			"from", colorspace.SpaceOf(c),
			"to", to.Space(),
			"in", c.Components(),
			"out", out.Components(),
		)
		fmt.Fprintln(stdout, colorspace.Format(out, command.Precision))
	}

	if !Colorconv.NoColor {
		hex, err := hexOf(c, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, swatch(hex, hex, "      "))
	}
	return nil
}
