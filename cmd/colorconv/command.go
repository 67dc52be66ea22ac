package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/colorspace"
	"github.com/jessevdk/go-flags"
)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

// ColorconvCommand holds the global flags and the subcommands.
type ColorconvCommand struct {
	Version func() `short:"v" long:"version" description:"Print the version and exit"`

	WhitePoint WhitePointFlag `short:"w" long:"white-point" env:"COLORCONV_WHITE_POINT" description:"White point relative colors are interpreted against (default: the space's own)"`
	Verbose    bool           `long:"verbose" env:"COLORCONV_VERBOSE" description:"Log conversion details to stderr"`
	NoColor    bool           `long:"no-color" env:"COLORCONV_NO_COLOR" description:"Do not print color swatches"`

	Convert     ConvertCommand     `command:"convert" alias:"c" description:"Convert a color to one or more color spaces"`
	Score       ScoreCommand       `command:"score" alias:"s" description:"Score the readability of text on a background"`
	Suggest     SuggestCommand     `command:"suggest" alias:"sg" description:"Suggest a readable text color for a background"`
	Adjust      AdjustCommand      `command:"adjust" alias:"a" description:"Adjust a text color until it is readable on a background"`
	WhitePoints WhitePointsCommand `command:"whitepoints" alias:"wp" description:"List the known white points"`
}

// Colorconv is the parsed command line.
var Colorconv ColorconvCommand

// Version returns the version of the colorspace library.
func Version() string {
	return colorspace.Version
}

func newParser(cmd *ColorconvCommand) *flags.Parser {
	parser := flags.NewParser(cmd, flags.HelpFlag|flags.PassDoubleDash)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		cmd.configureLogging(os.Stderr)
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}
	return parser
}

// configureLogging routes library logs to w when --verbose is set.
func (c *ColorconvCommand) configureLogging(w io.Writer) {
	if !c.Verbose {
		colorspace.SetLogger(nil)
		return
	}
	colorspace.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// options returns the conversion options selected by the global flags.
func (c *ColorconvCommand) options() []colorspace.Option {
	if !c.WhitePoint.Set() {
		return nil
	}
	return []colorspace.Option{colorspace.WithWhitePoint(c.WhitePoint.Chromaticity)}
}
