//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"log"

	"lifedots/internal/core"
	"lifedots/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Update reads the mouse and forwards the resulting event to d.
func (b *Bar) Update(d Dispatcher) {
	x, y := ebiten.CursorPosition()
	p := PointerState{
		X:           x,
		Y:           y,
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	if err := b.Pointer(p, d); err != nil {
		log.Printf("control bar: %v", err)
	}
}

// Draw paints the strip using the palette of the active theme.
func (b *Bar) Draw(screen *ebiten.Image, theme core.Theme, label string) {
	pal := render.PaletteFor(theme)
	fillRect(screen, b.Rect, pal.Panel)

	for _, btn := range b.Buttons {
		drawButton(screen, btn, pal.Button, pal.ButtonText)
	}
	for _, btn := range b.Themes {
		bg := pal.Button
		if btn.Data["theme"] == theme.String() {
			bg = pal.Selected
		}
		drawButton(screen, btn, bg, pal.ButtonText)
	}

	s := b.Speed
	mid := s.Rect.Min.Y + s.Rect.Dy()/2
	fillRect(screen, image.Rect(s.Rect.Min.X, mid-2, s.Rect.Max.X, mid+2), pal.Track)
	kx := s.KnobX()
	fillRect(screen, image.Rect(kx-4, s.Rect.Min.Y+4, kx+4, s.Rect.Max.Y-4), pal.Knob)

	text.Draw(screen, label, basicfont.Face7x13, b.LabelAt.X, b.LabelAt.Y, pal.Text)
}

func drawButton(screen *ebiten.Image, btn Button, bg, fg color.Color) {
	fillRect(screen, btn.Rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, btn.Label)
	x := btn.Rect.Min.X + (btn.Rect.Dx()-bounds.Dx())/2
	y := btn.Rect.Min.Y + (btn.Rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, btn.Label, face, x, y, fg)
}

func fillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}
