// Command colorconv converts colors between color spaces and checks text
// readability from the command line.
//
// Usage:
//
//	colorconv convert --to lab --to hsluv '#336699'
//	colorconv convert --from lab --to srgb 53.2,80.1,67.2
//	colorconv score black white
//	colorconv suggest --preference dark '#f4efe1'
//	colorconv adjust --constrain-hue teal white
//	colorconv whitepoints
//
// Defaults for the global flags may be set in the environment or in a .env
// file in the working directory.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	Colorconv.Version = func() {
		fmt.Fprintln(stdout, Version())
		os.Exit(0)
	}

	parser := newParser(&Colorconv)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
