package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleKappa is the cubic Bézier control distance for a unit quarter circle.
const circleKappa = 0.5522847498

// Raster is a headless Surface backed by an RGBA image.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRaster allocates a transparent w*h raster.
func NewRaster(w, h int) *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(1, 1),
	}
}

// Size returns the raster dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear resets the raster to transparent.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// FillCircle paints an anti-aliased disc over the existing pixels.
func (r *Raster) FillCircle(cx, cy, radius float64, c color.Color) {
	area := image.Rect(
		int(math.Floor(cx-radius)), int(math.Floor(cy-radius)),
		int(math.Ceil(cx+radius)), int(math.Ceil(cy+radius)),
	).Intersect(r.img.Bounds())
	if area.Empty() {
		return
	}
	r.z.Reset(area.Dx(), area.Dy())

	x := float32(cx - float64(area.Min.X))
	y := float32(cy - float64(area.Min.Y))
	rad := float32(radius)
	k := float32(circleKappa) * rad
	r.z.MoveTo(x+rad, y)
	r.z.CubeTo(x+rad, y+k, x+k, y+rad, x, y+rad)
	r.z.CubeTo(x-k, y+rad, x-rad, y+k, x-rad, y)
	r.z.CubeTo(x-rad, y-k, x-k, y-rad, x, y-rad)
	r.z.CubeTo(x+k, y-rad, x+rad, y-k, x+rad, y)
	r.z.ClosePath()
	r.z.Draw(r.img, area, image.NewUniform(c), image.Point{})
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Composite returns a copy of the raster flattened over an opaque background.
func (r *Raster) Composite(bg color.Color) *image.RGBA {
	b := r.img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, b, r.img, b.Min, draw.Over)
	return out
}
