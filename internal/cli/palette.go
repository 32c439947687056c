package cli

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/huepack/huepack/internal/colour"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
)

var (
	paletteOutput  string
	palettePNG     string
	paletteCellPx  int
	paletteShowRGB bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate the fixed engine palette",
	Long: `Generate the deterministic engine palette and emit it as a literal array.

The palette is a fixed lattice of hue, saturation and lightness samples:
index 0 is always the transparent sentinel, bounded by achromatic runs at
both ends. Length and per-index values never change between runs, so the
emitted literal is safe to paste into generated listings.

Examples:
  # Print the palette literal to stdout
  huepack palette

  # Write the literal to a file
  huepack palette --output palette.txt

  # Render a swatch strip image
  huepack palette --png palette.png --cell 24`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().StringVarP(&paletteOutput, "output", "o", "", "output file for the literal (default: stdout)")
	paletteCmd.Flags().StringVar(&palettePNG, "png", "", "also render the palette as a PNG swatch strip")
	paletteCmd.Flags().IntVar(&paletteCellPx, "cell", 16, "swatch cell size in pixels for --png")
	paletteCmd.Flags().BoolVar(&paletteShowRGB, "preview", false, "show colour swatches in the terminal")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	entries := colour.GeneratePalette()
	logger.Debug("generated palette", "entries", len(entries))

	if paletteShowRGB {
		for i, p := range entries {
			cmd.Printf("%2d %s %s\n", i, swatch(p), p)
		}
	}

	literal := colour.FormatPaletteLiteral(entries)
	if paletteOutput != "" {
		if err := os.WriteFile(paletteOutput, []byte(literal+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write palette literal: %w", err)
		}
		logger.Debug("wrote palette literal", "path", paletteOutput)
	} else if !paletteShowRGB {
		cmd.Println(literal)
	}

	if palettePNG != "" {
		if err := writePaletteStrip(palettePNG, entries, paletteCellPx); err != nil {
			return fmt.Errorf("failed to render palette strip: %w", err)
		}
		logger.Debug("wrote palette strip", "path", palettePNG, "cell", paletteCellPx)
	}

	return nil
}

// writePaletteStrip renders one pixel per palette entry and scales the
// strip up to the requested cell size with nearest-neighbour so swatch
// edges stay crisp.
func writePaletteStrip(path string, entries []colour.Packed, cell int) error {
	if cell < 1 {
		cell = 1
	}

	strip := image.NewNRGBA(image.Rect(0, 0, len(entries), 1))
	for i, p := range entries {
		r, g, b, a := p.RGBA8888()
		strip.SetNRGBA(i, 0, color.NRGBA{R: r, G: g, B: b, A: a})
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, len(entries)*cell, cell))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), strip, strip.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, scaled); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
