package sim

// Viewport is the pixel rectangle available for drawing in the current frame.
type Viewport struct {
	Width  float64
	Height float64
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Center returns the pixel coordinates of the viewport centre.
func (v Viewport) Center() Vector2 {
	return Vector2{X: v.Width / 2, Y: v.Height / 2}
}

// Scale returns pixels per world unit so that the shorter side spans
// normalization world units.
func (v Viewport) Scale(normalization float64) float64 {
	return min(v.Width, v.Height) / normalization
}

// Square is a filled square in screen space, centred on Center and rotated by
// Rotation radians about its centre.
type Square struct {
	Center   Vector2
	Side     float64
	Rotation float64
}

// Surface is the drawing target provided by the platform layer.
type Surface interface {
	Clear(c Color)
	FillSquare(sq Square, c Color)
}
