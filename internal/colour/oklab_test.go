package colour

import (
	"math"
	"testing"
)

func TestRGBToOklabAnchors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		wantL   float64
	}{
		{"black has zero lightness", 0, 0, 0, 0},
		{"white has unit lightness", 1, 1, 1, 1},
		{"mid grey lands near 0.6", 0.5, 0.5, 0.5, 0.598},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := RGBToOklab(tt.r, tt.g, tt.b)
			if math.Abs(o.L-tt.wantL) > 5e-3 {
				t.Errorf("L = %v, want about %v", o.L, tt.wantL)
			}
			if tt.r == tt.g && tt.g == tt.b {
				if math.Abs(o.A) > 1e-6 || math.Abs(o.B) > 1e-6 {
					t.Errorf("grey input has chroma (a=%v, b=%v)", o.A, o.B)
				}
			}
		})
	}
}

func TestOklabRoundTripStability(t *testing.T) {
	// After one trip through the gamut clamp, further round trips must be
	// fixed-point stable: the second trip may move each channel by less
	// than 1e-4.
	for r := 0.0; r <= 1.0; r += 0.2 {
		for g := 0.0; g <= 1.0; g += 0.2 {
			for b := 0.0; b <= 1.0; b += 0.2 {
				r1, g1, b1 := RGBToOklab(r, g, b).RGB()
				r2, g2, b2 := RGBToOklab(r1, g1, b1).RGB()
				if math.Abs(r2-r1) > 1e-4 || math.Abs(g2-g1) > 1e-4 || math.Abs(b2-b1) > 1e-4 {
					t.Fatalf("unstable at (%v,%v,%v): (%v,%v,%v) -> (%v,%v,%v)",
						r, g, b, r1, g1, b1, r2, g2, b2)
				}
			}
		}
	}
}

func TestRGBToOklabClampsInput(t *testing.T) {
	over := RGBToOklab(1.5, -0.5, 0.5)
	ref := RGBToOklab(1, 0, 0.5)
	if over != ref {
		t.Errorf("out-of-range input not clamped at boundary: %+v vs %+v", over, ref)
	}
}

func TestOklabRGBClampsOutput(t *testing.T) {
	// A wildly out-of-gamut sample must still land in [0,1]^3.
	r, g, b := Oklab{L: 1.2, A: 0.6, B: -0.6}.RGB()
	for _, v := range []float64{r, g, b} {
		if v < 0 || v > 1 {
			t.Fatalf("channel %v outside [0,1]", v)
		}
	}
}

func TestFromHSLAchromaticInvariant(t *testing.T) {
	// With zero saturation the result must not depend on hue at all.
	want := FromHSL(0, 0, 0.5, 1)
	for hue := 0.0; hue < 1.0; hue += 0.05 {
		if got := FromHSL(hue, 0, 0.5, 1); got != want {
			t.Fatalf("hue %v: got %v, want %v", hue, got, want)
		}
	}
}

func TestFromHSLEndpoints(t *testing.T) {
	tests := []struct {
		name             string
		hue, sat, lit, a float64
		want             Packed
	}{
		{"black", 0, 0, 0, 1, 0x000000FF},
		{"white", 0, 0, 1, 1, 0xFFFFFFFF},
		{"transparent black", 0.3, 0, 0, 0, 0x00000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHSL(tt.hue, tt.sat, tt.lit, tt.a); got != tt.want {
				t.Errorf("FromHSL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromHSLHueWrap(t *testing.T) {
	// Hue is periodic in turns: h and h+1 are the same direction.
	for _, hue := range []float64{0.1, 0.6, 0.9} {
		a := FromHSL(hue, 0.8, 0.5, 1)
		b := FromHSL(hue+1, 0.8, 0.5, 1)
		c := FromHSL(hue-1, 0.8, 0.5, 1)
		if a != b || a != c {
			t.Fatalf("hue %v: %v, %v, %v differ", hue, a, b, c)
		}
	}
}

func TestFromHSLClampsSaturation(t *testing.T) {
	if FromHSL(0.3, 1.7, 0.5, 1) != FromHSL(0.3, 1, 0.5, 1) {
		t.Error("saturation above 1 not clamped at boundary")
	}
	if FromHSL(0.3, -0.2, 0.5, 1) != FromHSL(0.3, 0, 0.5, 1) {
		t.Error("saturation below 0 not clamped at boundary")
	}
}

func TestFromHSLSaturatedStaysInGamut(t *testing.T) {
	// The lightness compression must keep every fully saturated lattice
	// point renderable without the final clamp crushing it to an
	// achromatic extreme.
	for hue := 0.0; hue < 1.0; hue += 0.1 {
		p := FromHSL(hue, 1, 0.5, 1)
		r, g, b, _ := p.RGBA8888()
		if r == g && g == b {
			t.Fatalf("hue %v: fully saturated colour collapsed to grey %v", hue, p)
		}
	}
}

func TestOklabToHSLInvertsFromHSL(t *testing.T) {
	tests := []struct {
		name          string
		hue, sat, lit float64
	}{
		{"warm band", 0.05, 0.7, 0.5},
		{"green band", 0.3, 0.5, 0.6},
		{"blue band", 0.65, 0.9, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := maxChroma * tt.sat
			o := Oklab{
				L: tt.lit + tt.sat*(0.15-0.3*tt.lit),
				A: c * CosTurns(tt.hue),
				B: c * SinTurns(tt.hue),
			}
			got := o.ToHSL()
			if math.Abs(got.Hue-tt.hue) > 1e-9 {
				t.Errorf("hue = %v, want %v", got.Hue, tt.hue)
			}
			if math.Abs(got.Sat-tt.sat) > 1e-9 {
				t.Errorf("sat = %v, want %v", got.Sat, tt.sat)
			}
			if math.Abs(got.Lit-tt.lit) > 1e-9 {
				t.Errorf("lit = %v, want %v", got.Lit, tt.lit)
			}
		})
	}
}

func TestTurnsContract(t *testing.T) {
	// The engine only assumes sin(2πx)/cos(2πx) within 1e-3, the
	// tolerance a quantised table implementation would honour.
	for x := -2.0; x <= 2.0; x += 0.01 {
		if d := math.Abs(SinTurns(x) - math.Sin(2*math.Pi*x)); d > 1e-3 {
			t.Fatalf("SinTurns(%v) off by %v", x, d)
		}
		if d := math.Abs(CosTurns(x) - math.Cos(2*math.Pi*x)); d > 1e-3 {
			t.Fatalf("CosTurns(%v) off by %v", x, d)
		}
	}
}
