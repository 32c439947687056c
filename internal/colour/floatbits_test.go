package colour

import (
	"math"
	"testing"
)

// The two float-bit encodings have different, documented fidelity:
//
//   - Rounded alpha: RGB exact for 8-bit-quantised input, alpha within
//     1/255 for any 8-bit-quantised input. This is the full-fidelity path.
//   - Sign-bit alpha: RGB exact for 8-bit-quantised input, alpha exact
//     only for the fully opaque and fully transparent endpoints; all
//     fractional alpha collapses to 0 by design.

func TestPackFloatRoundedAlphaRoundTrip(t *testing.T) {
	for k := 0; k < 256; k += 5 {
		v := float64(k) / 255
		bits := PackFloatRoundedAlpha(v, 1-v, v/2, v)
		r, g, b, a := UnpackFloatRoundedAlpha(bits)

		if r != v {
			t.Fatalf("k=%d: r = %v, want %v", k, r, v)
		}
		if math.Abs(g-(1-v)) > 1e-9 {
			t.Fatalf("k=%d: g = %v, want %v", k, g, 1-v)
		}
		// v/2 is not 8-bit-quantised; the decoder returns the quantised
		// value, at most half a step away. Odd k puts the input exactly
		// on the rounding boundary, so compare against the quantised
		// expectation rather than the raw half-step bound.
		wantB := math.Round(v/2*255) / 255
		if b != wantB {
			t.Fatalf("k=%d: b = %v, want %v", k, b, wantB)
		}
		if math.Abs(b-v/2) > 0.5/255+1e-12 {
			t.Fatalf("k=%d: b error %v above half a step", k, math.Abs(b-v/2))
		}
		if math.Abs(a-v) >= 1.0/255 {
			t.Fatalf("k=%d: alpha error %v, want < 1/255", k, math.Abs(a-v))
		}
	}
}

func TestPackFloatRoundedAlphaNeverNaN(t *testing.T) {
	// Top byte must stay at or below 0xFE so the bit pattern is a valid
	// finite float even with all mantissa bits set.
	bits := PackFloatRoundedAlpha(1, 1, 1, 1)
	if top := bits >> 24; top > 0xFE {
		t.Fatalf("top byte = %#x, want <= 0xFE", top)
	}
	if f := math.Float32frombits(bits); math.IsNaN(float64(f)) {
		t.Fatal("encoded pattern is NaN")
	}
}

func TestPackFloatSignAlpha(t *testing.T) {
	tests := []struct {
		name    string
		alpha   float64
		wantA   float64
		wantTop uint32
	}{
		{"fully opaque sets sign bit", 1.0, 1, 0x80},
		{"fully transparent clears sign bit", 0.0, 0, 0x00},
		{"fractional alpha collapses to zero", 0.5, 0, 0x00},
		{"near-opaque is not opaque", 0.999, 0, 0x00},
		{"above range clamps to opaque", 1.5, 1, 0x80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bits := PackFloatSignAlpha(0.2, 0.4, 0.6, tt.alpha)
			if top := bits >> 24; top != tt.wantTop {
				t.Errorf("top byte = %#x, want %#x", top, tt.wantTop)
			}
			_, _, _, a := UnpackFloatSignAlpha(bits)
			if a != tt.wantA {
				t.Errorf("decoded alpha = %v, want %v", a, tt.wantA)
			}
		})
	}
}

func TestPackFloatSignAlphaRGBExact(t *testing.T) {
	for k := 0; k < 256; k += 7 {
		v := float64(k) / 255
		bits := PackFloatSignAlpha(v, v, v, 1)
		r, g, b, _ := UnpackFloatSignAlpha(bits)
		if r != v || g != v || b != v {
			t.Fatalf("k=%d: rgb = (%v,%v,%v), want %v", k, r, g, b, v)
		}
	}
}

func TestFloatBitsChannelLayout(t *testing.T) {
	// Low 24 bits are B,G,R from high to low byte.
	bits := PackFloatRoundedAlpha(1, 0, 0, 0)
	if bits&0x00FFFFFF != 0x0000FF {
		t.Errorf("red lands at %#06x, want 0x0000FF", bits&0x00FFFFFF)
	}
	bits = PackFloatRoundedAlpha(0, 0, 1, 0)
	if bits&0x00FFFFFF != 0xFF0000 {
		t.Errorf("blue lands at %#06x, want 0xFF0000", bits&0x00FFFFFF)
	}
}

func TestFloatBitsClampAtBoundary(t *testing.T) {
	bits := PackFloatRoundedAlpha(-0.5, 2.0, 0.5, -1)
	r, g, b, a := UnpackFloatRoundedAlpha(bits)
	if r != 0 || g != 1 || a != 0 {
		t.Errorf("clamped decode = (%v,%v,%v,%v)", r, g, b, a)
	}
}
