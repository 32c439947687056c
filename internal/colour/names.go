package colour

import "strings"

// NamedColour is one entry of the fixed base-colour table: a lower-case
// name and its canonical packed value.
type NamedColour struct {
	Name  string
	Value Packed
}

// baseColours is the fixed base-colour table. Alias names map to the same
// canonical value as their primary entry. The table is built into lookup
// maps once at package init and never mutated afterwards, so concurrent
// lookups need no locking.
var baseColours = []NamedColour{
	{"black", 0x000000FF},
	{"white", 0xFFFFFFFF},
	{"gray", 0x808080FF},
	{"grey", 0x808080FF},
	{"silver", 0xC0C0C0FF},
	{"red", 0xE02020FF},
	{"scarlet", 0xE02020FF},
	{"orange", 0xF08020FF},
	{"amber", 0xF0A820FF},
	{"yellow", 0xF0E020FF},
	{"olive", 0x808020FF},
	{"lime", 0x60E020FF},
	{"green", 0x20A030FF},
	{"teal", 0x208080FF},
	{"cyan", 0x20D0D0FF},
	{"aqua", 0x20D0D0FF},
	{"blue", 0x2040D0FF},
	{"navy", 0x202070FF},
	{"indigo", 0x4020A0FF},
	{"purple", 0x8020A0FF},
	{"violet", 0xA040E0FF},
	{"magenta", 0xD020D0FF},
	{"fuchsia", 0xD020D0FF},
	{"pink", 0xF0A0C0FF},
	{"salmon", 0xF08070FF},
	{"brown", 0x906030FF},
	{"maroon", 0x802020FF},
	{"tan", 0xD0B080FF},
	{"beige", 0xE0D8C0FF},
	{"gold", 0xE0C030FF},
}

// modifierKind selects which axis of the Oklab sample a modifier adjusts.
type modifierKind int

const (
	modLightness modifierKind = iota // additive on L
	modChroma                        // multiplicative on a,b
	modHueShift                      // additive rotation, in turns
)

type modifier struct {
	kind   modifierKind
	amount float64
}

// modifiers is the fixed adjective effect table.
var modifiers = map[string]modifier{
	"light":  {modLightness, 0.12},
	"pale":   {modLightness, 0.20},
	"bright": {modLightness, 0.08},
	"dark":   {modLightness, -0.12},
	"deep":   {modLightness, -0.20},
	"dim":    {modLightness, -0.08},

	"vivid":  {modChroma, 1.4},
	"rich":   {modChroma, 1.25},
	"muted":  {modChroma, 0.6},
	"dull":   {modChroma, 0.5},
	"pastel": {modChroma, 0.45},

	"warm": {modHueShift, -0.04},
	"cool": {modHueShift, 0.04},
}

// baseByName is the case-folded lookup map, built once at init.
var baseByName = func() map[string]Packed {
	m := make(map[string]Packed, len(baseColours))
	for _, e := range baseColours {
		m[e.Name] = e.Value
	}
	return m
}()

// BaseColours returns the fixed base-colour table.
func BaseColours() []NamedColour {
	return baseColours
}

// ParseDescription resolves a free-text colour description into a packed
// colour. The text is split on whitespace; each token, case-folded, is
// either a base-colour name, a modifier adjective, or unknown. Unknown
// tokens are silently skipped, never an error. All matched base colours
// are averaged with equal weight in Oklab, then modifiers are applied in
// token order. When no token names a base colour the reserved Transparent
// sentinel is returned, modifiers or not.
func ParseDescription(text string) Packed {
	var (
		sum    Oklab
		count  int
		mods   []modifier
		single Packed
	)
	for _, tok := range strings.Fields(text) {
		tok = strings.ToLower(tok)
		if v, ok := baseByName[tok]; ok {
			r, g, b, _ := v.RGBA8888()
			o := RGBToOklab(float64(r)/255, float64(g)/255, float64(b)/255)
			sum.L += o.L
			sum.A += o.A
			sum.B += o.B
			count++
			single = v
			continue
		}
		if m, ok := modifiers[tok]; ok {
			mods = append(mods, m)
		}
		// Anything else is ignored: partial or garbage input still
		// produces a best-effort result.
	}
	if count == 0 {
		return Transparent
	}
	if count == 1 && len(mods) == 0 {
		// A lone base name returns its canonical value exactly, without
		// a round trip through Oklab quantisation.
		return single
	}

	o := Oklab{
		L: sum.L / float64(count),
		A: sum.A / float64(count),
		B: sum.B / float64(count),
	}
	for _, m := range mods {
		switch m.kind {
		case modLightness:
			o.L += m.amount
		case modChroma:
			o.A *= m.amount
			o.B *= m.amount
		case modHueShift:
			cosT, sinT := CosTurns(m.amount), SinTurns(m.amount)
			o.A, o.B = o.A*cosT-o.B*sinT, o.A*sinT+o.B*cosT
		}
	}
	// Out-of-gamut samples are clamped inside the RGB conversion, not
	// here: intermediate values may legitimately leave the gamut.
	return o.Packed(1)
}
