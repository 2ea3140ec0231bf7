package render

import (
	"image/color"

	"lifedots/internal/core"
)

// Palette holds the presentation colours of a theme.
type Palette struct {
	Background color.RGBA
	Panel      color.RGBA
	Text       color.RGBA
	Button     color.RGBA
	ButtonText color.RGBA
	Selected   color.RGBA
	Track      color.RGBA
	Knob       color.RGBA
}

var (
	lightPalette = Palette{
		Background: color.RGBA{R: 245, G: 245, B: 247, A: 255},
		Panel:      color.RGBA{R: 228, G: 228, B: 234, A: 255},
		Text:       color.RGBA{R: 30, G: 30, B: 36, A: 255},
		Button:     color.RGBA{R: 206, G: 208, B: 216, A: 255},
		ButtonText: color.RGBA{R: 20, G: 20, B: 26, A: 255},
		Selected:   color.RGBA{R: 150, G: 170, B: 210, A: 255},
		Track:      color.RGBA{R: 186, G: 188, B: 198, A: 255},
		Knob:       color.RGBA{R: 70, G: 82, B: 110, A: 255},
	}
	darkPalette = Palette{
		Background: color.RGBA{R: 24, G: 24, B: 28, A: 255},
		Panel:      color.RGBA{R: 16, G: 16, B: 20, A: 255},
		Text:       color.RGBA{R: 220, G: 220, B: 230, A: 255},
		Button:     color.RGBA{R: 54, G: 56, B: 64, A: 255},
		ButtonText: color.RGBA{R: 230, G: 230, B: 240, A: 255},
		Selected:   color.RGBA{R: 80, G: 96, B: 140, A: 255},
		Track:      color.RGBA{R: 70, G: 72, B: 80, A: 255},
		Knob:       color.RGBA{R: 200, G: 200, B: 210, A: 255},
	}
)

// PaletteFor returns the colours used to present theme t.
func PaletteFor(t core.Theme) Palette {
	if t == core.ThemeDark {
		return darkPalette
	}
	return lightPalette
}
