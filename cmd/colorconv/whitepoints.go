package main

import (
	"fmt"
	"math"

	"github.com/gogpu/colorspace"
)

// WhitePointsCommand lists the white point catalog.
type WhitePointsCommand struct {
	CCT bool `long:"cct" description:"Also print the correlated color temperature"`
}

// Execute runs the command.
func (command *WhitePointsCommand) Execute([]string) error {
	for _, name := range colorspace.WhitePointNames() {
		wp, err := colorspace.ParseWhitePoint(name)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%-20s x=%.5f y=%.5f", name, wp.X, wp.Y)
		if command.CCT {
			if cct := wp.CCT(); !math.IsInf(cct, 0) {
				line += fmt.Sprintf(" %6.0fK", cct)
			}
		}
		fmt.Fprintln(stdout, line)
	}
	return nil
}
