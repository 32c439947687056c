// Huepack - a packed-colour encoding and conversion toolkit
//
// Huepack converts between packed 32-bit RGBA colours, float-bit-pattern
// encodings, perceptual Oklab coordinates and descriptive colour text,
// and generates the fixed engine palette.
package main

import (
	"os"

	"github.com/huepack/huepack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
