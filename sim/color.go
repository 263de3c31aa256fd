package sim

import (
	"image/color"
	"math"
)

// Color is a straight-alpha RGBA colour with components in [0, 1].
type Color [4]float32

var (
	White = Color{1, 1, 1, 1}
	Black = Color{0, 0, 0, 1}
	Red   = Color{1, 0, 0, 1}
)

// RGBA converts c to an 8-bit premultiplied colour, clamping out of range components.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c[3])
	return color.RGBA{
		R: to8(clamp01(c[0]) * a),
		G: to8(clamp01(c[1]) * a),
		B: to8(clamp01(c[2]) * a),
		A: to8(a),
	}
}

// SRGB returns c with its colour channels encoded with the sRGB transfer
// function. Alpha is left untouched.
func (c Color) SRGB() Color {
	return Color{encodeSRGB(c[0]), encodeSRGB(c[1]), encodeSRGB(c[2]), c[3]}
}

func encodeSRGB(v float32) float32 {
	v = clamp01(v)
	if v <= 0.0031308 {
		return v * 12.92
	}
	return float32(1.055*math.Pow(float64(v), 1/2.4) - 0.055)
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}

func to8(v float32) uint8 {
	return uint8(v*255 + 0.5)
}
