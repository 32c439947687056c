package cli

import (
	"fmt"
	"os"

	"github.com/huepack/huepack/internal/colour"
	"golang.org/x/term"
)

// swatch returns a truecolor terminal block for the packed colour, or an
// empty placeholder when stdout is not a terminal (piped output must stay
// machine-readable).
func swatch(p colour.Packed) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "  "
	}
	r, g, b, _ := p.RGBA8888()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
}
