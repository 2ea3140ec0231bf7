//go:build ebiten

package app

import (
	"lifedots/internal/core"
	"lifedots/internal/life"
	"lifedots/internal/render"
	"lifedots/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life controller to the ebiten.Game interface.
type Game struct {
	ctrl   *life.Controller
	canvas *render.ImageSurface
	bar    *ui.Bar

	width, height int
}

// New constructs a Game from validated configuration.
func New(cfg *Config) (*Game, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	w, h := cfg.CanvasSize()
	canvas := render.NewImageSurface(w, h)
	renderer := render.NewRenderer(core.NewRNG(core.TimeSeed()))
	ctrl, err := life.NewController(opts, renderer, canvas)
	if err != nil {
		return nil, err
	}
	return &Game{
		ctrl:   ctrl,
		canvas: canvas,
		bar:    ui.NewBar(w, h, ctrl.Speed()),
		width:  w,
		height: h + ui.BarHeight,
	}, nil
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) { return g.width, g.height }

// Update handles input and fires the generation tick when it is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.Running() {
			g.ctrl.Pause()
		} else {
			g.ctrl.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}

	g.bar.Update(g.ctrl)
	g.ctrl.Update()
	return nil
}

// Draw composes the themed page, the board and the control bar.
func (g *Game) Draw(screen *ebiten.Image) {
	theme := g.ctrl.Theme()
	screen.Fill(render.PaletteFor(theme).Background)
	g.canvas.Blit(screen, 0, 0)
	g.bar.Draw(screen, theme, g.ctrl.SpeedLabel())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
