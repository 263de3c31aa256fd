package sim

import "math"

// Wrap folds v into the half-open interval [-bound, bound).
// It is equivalent to repeatedly adding or subtracting 2*bound until v is in
// range, but runs in constant time. bound must be positive.
func Wrap(v, bound float64) float64 {
	if v >= -bound && v < bound {
		return v
	}

	span := 2 * bound
	w := math.Mod(v+bound, span)
	if w < 0 {
		w += span
	}

	r := w - bound
	// rounding in the subtraction can land exactly on the open edge
	if r >= bound {
		r -= span
	}
	return r
}

// WrapVector wraps both components of v independently.
func WrapVector(v Vector2, bound float64) Vector2 {
	return Vector2{X: Wrap(v.X, bound), Y: Wrap(v.Y, bound)}
}
