package platform

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/drift/sim"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whitePixel returns a 1x1 white image cut from the middle of a 3x3 one so
// that scaled draws never sample its transparent border.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Surface draws onto an Ebiten image.
type Surface struct {
	dst  *ebiten.Image
	srgb bool
}

// NewSurface wraps dst. When srgb is set, colours are gamma-encoded before drawing.
func NewSurface(dst *ebiten.Image, srgb bool) *Surface {
	return &Surface{dst: dst, srgb: srgb}
}

// Viewport returns the pixel size of the destination image.
func (s *Surface) Viewport() sim.Viewport {
	b := s.dst.Bounds()
	return sim.Viewport{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (s *Surface) Clear(c sim.Color) {
	s.dst.Fill(s.encode(c).RGBA())
}

func (s *Surface) FillSquare(sq sim.Square, c sim.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = SquareGeoM(sq)
	op.ColorScale.ScaleWithColor(s.encode(c).RGBA())
	s.dst.DrawImage(whitePixel(), op)
}

func (s *Surface) encode(c sim.Color) sim.Color {
	if s.srgb {
		return c.SRGB()
	}
	return c
}

// SquareGeoM maps the unit square [0,1]x[0,1] onto sq.
func SquareGeoM(sq sim.Square) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-0.5, -0.5)
	g.Scale(sq.Side, sq.Side)
	g.Rotate(sq.Rotation)
	g.Translate(sq.Center.X, sq.Center.Y)
	return g
}
