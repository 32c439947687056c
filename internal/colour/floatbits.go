package colour

import "math"

// Float-bit colour encoding.
//
// Rendering pipelines that pass a colour through a single float vertex
// attribute store the quantised channels directly in the float's bit
// pattern: the low 24 bits (mantissa) hold B,G,R and the top byte holds
// alpha. The top byte cannot be used freely: 0xFF with a non-zero mantissa
// is an IEEE-754 NaN, which GPUs are allowed to canonicalise, destroying
// the colour. The two encodings below are the two alpha strategies in use;
// they trade fidelity differently and are kept as separate operations.

// PackFloatSignAlpha encodes r,g,b,a (each clamped to [0,1]) into a
// float-bit pattern where alpha occupies only the sign bit: bit 31 set
// means fully opaque. The exponent byte stays zero so the pattern is a
// finite denormal float. Fractional alpha is lossy by design: only
// "fully opaque vs not" survives.
func PackFloatSignAlpha(r, g, b, a float64) uint32 {
	bits := packBGR24(r, g, b)
	if clamp01(a) >= 1 {
		bits |= 1 << 31
	}
	return bits
}

// UnpackFloatSignAlpha inverts PackFloatSignAlpha. Alpha decodes to
// exactly 1 when the sign bit is set and 0 otherwise.
func UnpackFloatSignAlpha(bits uint32) (r, g, b, a float64) {
	r, g, b = unpackBGR24(bits)
	if bits&(1<<31) != 0 {
		a = 1
	}
	return r, g, b, a
}

// PackFloatRoundedAlpha encodes r,g,b,a (each clamped to [0,1]) into a
// float-bit pattern where the top byte holds alpha rounded with a 254/255
// scale factor. The rescale keeps the top byte at or below 0xFE, so the
// pattern can never be a NaN, and corrects the off-by-one the sign-bit
// scheme's decoder exhibits on fractional alpha.
func PackFloatRoundedAlpha(r, g, b, a float64) uint32 {
	bits := packBGR24(r, g, b)
	top := uint32(math.Round(clamp01(a) * 254))
	return bits | top<<24
}

// UnpackFloatRoundedAlpha inverts PackFloatRoundedAlpha. Alpha is
// reconstructed as topByte/254, exact for 0 and 1 and within 1/255 for
// any 8-bit-quantised input.
func UnpackFloatRoundedAlpha(bits uint32) (r, g, b, a float64) {
	r, g, b = unpackBGR24(bits)
	a = float64(bits>>24) / 254
	return r, g, b, a
}

// packBGR24 quantises r,g,b to 8 bits each and packs them into the low 24
// bits as B,G,R from high to low byte. Inputs are clamped here; this is
// the single clamp point for the float-bit encoders.
func packBGR24(r, g, b float64) uint32 {
	rq := uint32(math.Round(clamp01(r) * 255))
	gq := uint32(math.Round(clamp01(g) * 255))
	bq := uint32(math.Round(clamp01(b) * 255))
	return bq<<16 | gq<<8 | rq
}

// unpackBGR24 recovers the normalised r,g,b channels from the low 24 bits.
func unpackBGR24(bits uint32) (r, g, b float64) {
	r = float64(bits&0xFF) / 255
	g = float64(bits>>8&0xFF) / 255
	b = float64(bits>>16&0xFF) / 255
	return r, g, b
}
