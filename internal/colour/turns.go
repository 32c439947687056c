package colour

import "math"

// Turn-based trigonometry. The engine measures hue as a fraction of a full
// rotation, so the conversion core depends only on the contract
// SinTurns(x) == sin(2πx) and CosTurns(x) == cos(2πx), within 1e-3. A
// renderer may substitute a quantised table as long as it honours that
// tolerance.

// SinTurns returns sin(2π·x) for x in turns.
func SinTurns(x float64) float64 {
	return math.Sin(2 * math.Pi * x)
}

// CosTurns returns cos(2π·x) for x in turns.
func CosTurns(x float64) float64 {
	return math.Cos(2 * math.Pi * x)
}
