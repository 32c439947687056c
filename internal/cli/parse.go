package cli

import (
	"fmt"
	"strings"

	"github.com/huepack/huepack/internal/colour"
	"github.com/spf13/cobra"
)

var parseShowPreview bool

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <description>...",
	Short: "Resolve a descriptive colour phrase to a packed colour",
	Long: `Resolve a free-text colour description into a packed 0xRRGGBBAA value.

Descriptions combine base colour names with modifier adjectives. Matched
base colours are averaged; modifiers apply left to right. Unrecognised
words are ignored, and a description with no base colour resolves to the
transparent sentinel 0x00000000.

Examples:
  # A single base colour
  huepack parse gray

  # Lightness and saturation modifiers
  huepack parse light blue
  huepack parse muted warm red

  # Averaging two base colours
  huepack parse teal navy

  # Show a terminal swatch alongside the value
  huepack parse --preview deep violet`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseShowPreview, "preview", false, "show a colour swatch in the terminal")
}

// runParse executes the parse command.
func runParse(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	text := strings.Join(args, " ")
	logger.Debug("parsing description", "text", text)

	packed := colour.ParseDescription(text)
	if packed.IsTransparent() {
		logger.Debug("no base colour matched", "text", text)
	}

	out := packed.String()
	if parseShowPreview && !packed.IsTransparent() {
		out = fmt.Sprintf("%s %s", swatch(packed), out)
	}
	cmd.Println(out)
	return nil
}
