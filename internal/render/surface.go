//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface is a Surface backed by an offscreen ebiten image.
type ImageSurface struct {
	img *ebiten.Image
}

// NewImageSurface allocates an offscreen w*h surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: ebiten.NewImage(w, h)}
}

// Size returns the dimensions of the underlying image.
func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear resets the image to transparent.
func (s *ImageSurface) Clear() { s.img.Clear() }

// FillCircle draws an anti-aliased filled circle.
func (s *ImageSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

// Blit draws the surface onto dst with its top-left corner at (x, y).
func (s *ImageSurface) Blit(dst *ebiten.Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(s.img, op)
}
