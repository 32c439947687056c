package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/huepack/huepack/internal/colour"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>...",
	Short: "Show every encoding of a colour",
	Long: `Convert a colour between all engine representations.

Accepts a packed 0xRRGGBBAA value, a CSS-style #rrggbb hex string, or a
free-text description. Prints the packed form, the 8-bit channels, the
Oklab sample, cylindrical hue/saturation/lightness in turns, and both
float-bit-pattern encodings.

Examples:
  huepack convert 0xFF8000FF
  huepack convert "#1a2b3c"
  huepack convert light blue`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	input := strings.Join(args, " ")
	packed, err := resolveColour(input)
	if err != nil {
		return err
	}
	logger.Debug("resolved colour", "input", input, "packed", packed.String())

	r, g, b, a := packed.RGBA8888()
	rf, gf, bf, af := float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255

	o := colour.RGBToOklab(rf, gf, bf)
	hsl := o.ToHSL()

	cmd.Printf("packed     %s\n", packed)
	cmd.Printf("rgba8888   %d %d %d %d\n", r, g, b, a)
	cmd.Printf("oklab      L=%.4f a=%+.4f b=%+.4f\n", o.L, o.A, o.B)
	cmd.Printf("hsl-turns  hue=%.4f sat=%.4f lit=%.4f\n", hsl.Hue, hsl.Sat, hsl.Lit)
	cmd.Printf("float-sign    0x%08X\n", colour.PackFloatSignAlpha(rf, gf, bf, af))
	cmd.Printf("float-rounded 0x%08X\n", colour.PackFloatRoundedAlpha(rf, gf, bf, af))
	return nil
}

// resolveColour turns a command-line colour argument into a packed value.
// Packed 0xRRGGBBAA literals and #rrggbb hex are parsed strictly;
// anything else goes through the fail-open descriptive parser, where an
// unresolvable description yields the transparent sentinel rather than an
// error.
func resolveColour(input string) (colour.Packed, error) {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		v, err := strconv.ParseUint(trimmed[2:], 16, 32)
		if err != nil {
			return colour.Transparent, fmt.Errorf("invalid packed colour %q: %w", trimmed, err)
		}
		return colour.Packed(v), nil
	}

	if strings.HasPrefix(trimmed, "#") {
		c, err := colorful.Hex(trimmed)
		if err != nil {
			return colour.Transparent, fmt.Errorf("invalid hex colour %q: %w", trimmed, err)
		}
		r, g, b := c.RGB255()
		return colour.PackRGBA8888(r, g, b, 0xFF), nil
	}

	return colour.ParseDescription(trimmed), nil
}
