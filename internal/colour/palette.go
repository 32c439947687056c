package colour

import (
	"strings"

	"github.com/samber/lo"
)

// Palette generation samples a fixed lattice of cylindrical coordinates so
// that the output is a literal, audit-able sequence: consumers persist
// palette indices, so length and per-index values must never change.

// latticePoint is one sampled coordinate: a hue offset added to its band's
// base hue, plus saturation and lightness.
type latticePoint struct {
	HueOffset float64
	Sat       float64
	Lit       float64
}

// hueBands are the four base hues of the lattice, in turns.
var hueBands = [4]float64{0, 0.25, 0.5, 0.75}

// bandVariants is the per-band saturation/lightness traversal. The order
// snakes through the (sat, lit) plane so consecutive palette indices stay
// perceptually close.
var bandVariants = [8]latticePoint{
	{0.000, 1.00, 0.35},
	{0.000, 1.00, 0.50},
	{0.020, 1.00, 0.65},
	{0.020, 0.65, 0.65},
	{0.000, 0.65, 0.50},
	{0.000, 0.65, 0.35},
	{0.040, 0.35, 0.40},
	{0.040, 0.35, 0.60},
}

// litBias scales the hue-dependent lightness correction: equal-lightness
// hues are not perceived equally bright, so each sample is nudged by
// SinTurns(hue)*litBias before conversion.
const litBias = 0.15

// PaletteLen is the fixed output length of GeneratePalette.
const PaletteLen = 3 + len(hueBands)*len(bandVariants) + 2

// GeneratePalette produces the fixed palette: index 0 is the Transparent
// sentinel, followed by black and near-black, the four hue bands, then
// near-white and white. Output is deterministic; per-index values are
// stable across runs.
func GeneratePalette() []Packed {
	out := make([]Packed, 0, PaletteLen)
	out = append(out,
		Transparent,
		FromHSL(0, 0, 0, 1),
		FromHSL(0, 0, 0.15, 1),
	)
	for _, band := range hueBands {
		for _, v := range bandVariants {
			hue := band + v.HueOffset
			lit := v.Lit + SinTurns(hue)*litBias
			out = append(out, FromHSL(hue, v.Sat, lit, 1))
		}
	}
	out = append(out,
		FromHSL(0, 0, 0.85, 1),
		FromHSL(0, 0, 1, 1),
	)
	return out
}

// FormatPaletteLiteral serialises entries in the generated-listing layout:
// wrapped in braces, comma-and-space separated, with a line break after
// every 8th entry. Existing generated listings depend on this exact
// layout.
func FormatPaletteLiteral(entries []Packed) string {
	lines := lo.Map(lo.Chunk(entries, 8), func(chunk []Packed, _ int) string {
		hexes := lo.Map(chunk, func(p Packed, _ int) string {
			return p.String()
		})
		return strings.Join(hexes, ", ")
	})
	return "{\n" + strings.Join(lines, ",\n") + "\n}"
}
