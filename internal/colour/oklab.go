package colour

import "math"

// Oklab is a perceptually-motivated colour sample: lightness L nominally in
// [0,1] and chroma axes A,B nominally in [-1,1]. Transient out-of-gamut
// values are permitted mid-computation; conversion back to RGB clamps.
type Oklab struct {
	L float64
	A float64
	B float64
}

// HSL is a cylindrical colour sample: hue in turns [0,1), saturation and
// lightness in [0,1].
type HSL struct {
	Hue float64
	Sat float64
	Lit float64
}

// maxChroma is the chroma radius reached at full saturation. It is chosen
// so every hue at mid lightness stays inside the sRGB gamut.
const maxChroma = 0.125

// RGBToOklab converts normalised sRGB channels to an Oklab sample. Inputs
// are clamped to [0,1] at this boundary. The chain is: piecewise sRGB
// linearisation, a fixed 3x3 transform to cone response, component-wise
// cube root, and a second fixed 3x3 transform to L/a/b.
func RGBToOklab(r, g, b float64) Oklab {
	lr := srgbToLinear(clamp01(r))
	lg := srgbToLinear(clamp01(g))
	lb := srgbToLinear(clamp01(b))

	l := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	m := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	s := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	// Negative cone responses are clamped before the root to avoid NaN.
	lp := math.Cbrt(math.Max(l, 0))
	mp := math.Cbrt(math.Max(m, 0))
	sp := math.Cbrt(math.Max(s, 0))

	return Oklab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// RGB converts the sample back to normalised sRGB. The inverse chain runs
// in full before any clamping: clamping the intermediate values would
// distort hue, so each channel is clamped to [0,1] only at the end.
func (o Oklab) RGB() (r, g, b float64) {
	lp := o.L + 0.3963377774*o.A + 0.2158037573*o.B
	mp := o.L - 0.1055613458*o.A - 0.0638541728*o.B
	sp := o.L - 0.0894841775*o.A - 1.2914855480*o.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	lr := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	r = clamp01(linearToSRGB(lr))
	g = clamp01(linearToSRGB(lg))
	b = clamp01(linearToSRGB(lb))
	return r, g, b
}

// Packed quantises the sample to 8-bit channels with the given alpha
// (clamped to [0,1]).
func (o Oklab) Packed(alpha float64) Packed {
	r, g, b := o.RGB()
	return PackRGBA8888(
		uint8(math.Round(r*255)),
		uint8(math.Round(g*255)),
		uint8(math.Round(b*255)),
		uint8(math.Round(clamp01(alpha)*255)),
	)
}

// FromHSL maps cylindrical coordinates into Oklab and packs the result.
// Hue is wrapped into [0,1); sat, lit and alpha are clamped to [0,1] at
// this boundary. Lightness is compressed toward mid-range as saturation
// grows so fully saturated colours cannot leave the gamut before the final
// clamp. When sat is zero the result is an achromatic grey at lit,
// independent of hue.
func FromHSL(hue, sat, lit, alpha float64) Packed {
	hue = hue - math.Floor(hue)
	sat = clamp01(sat)
	lit = clamp01(lit)

	c := maxChroma * sat
	o := Oklab{
		L: lit + sat*(0.15-0.3*lit),
		A: c * CosTurns(hue),
		B: c * SinTurns(hue),
	}
	return o.Packed(alpha)
}

// ToHSL projects the sample onto the cylindrical coordinates used by
// FromHSL. Chroma beyond maxChroma saturates at 1.
func (o Oklab) ToHSL() HSL {
	c := math.Hypot(o.A, o.B)
	sat := clamp01(c / maxChroma)
	hue := math.Atan2(o.B, o.A) / (2 * math.Pi)
	if hue < 0 {
		hue++
	}
	// Invert the saturation-dependent lightness compression applied by
	// FromHSL. The denominator is at least 0.7, never zero.
	lit := (o.L - 0.15*sat) / (1 - 0.3*sat)
	return HSL{Hue: hue, Sat: sat, Lit: clamp01(lit)}
}

// srgbToLinear removes the piecewise sRGB gamma from one channel.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB re-applies the piecewise sRGB gamma to one channel.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}
