// Package colour implements the packed-colour encoding and colour-space
// conversion engine: a compact 32-bit RGBA representation, an alternate
// float-bit-pattern encoding used by rendering pipelines, Oklab and
// cylindrical hue/saturation/lightness conversions, descriptive colour
// parsing, and deterministic palette generation.
package colour

import (
	"fmt"
	"image/color"
)

// Packed is a 32-bit packed colour with byte layout R,G,B,A from most to
// least significant (canonical 0xRRGGBBAA).
type Packed uint32

// Transparent is the reserved sentinel meaning "no colour / fully
// transparent". It is distinct from any other colour with alpha zero.
const Transparent Packed = 0

// PackRGBA8888 packs four 8-bit channels into a Packed value.
func PackRGBA8888(r, g, b, a uint8) Packed {
	return Packed(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGBA8888 unpacks the four 8-bit channels. It is the exact inverse of
// PackRGBA8888 for all byte tuples.
func (p Packed) RGBA8888() (r, g, b, a uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// String returns the canonical textual form: 0x followed by 8 uppercase hex
// digits, e.g. "0xFF8000FF".
func (p Packed) String() string {
	return fmt.Sprintf("0x%08X", uint32(p))
}

// RGBA implements image/color.Color. Packed stores straight alpha, so the
// channels are premultiplied on the way out, matching color.NRGBA.
func (p Packed) RGBA() (r, g, b, a uint32) {
	pr, pg, pb, pa := p.RGBA8888()
	return color.NRGBA{R: pr, G: pg, B: pb, A: pa}.RGBA()
}

// IsTransparent reports whether p is the reserved sentinel.
func (p Packed) IsTransparent() bool {
	return p == Transparent
}

// PackedFromColor converts any image/color.Color to a Packed value.
func PackedFromColor(c color.Color) Packed {
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return PackRGBA8888(rgba.R, rgba.G, rgba.B, rgba.A)
}

// clamp01 clamps v to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
