package ui

import (
	"image"
	"math"

	"lifedots/internal/core"
	"lifedots/internal/life"
)

// Dispatcher receives the events produced by the control bar.
type Dispatcher interface {
	Dispatch(life.Event) error
}

// Button is a clickable control. Class names the action of the transport
// buttons; theme buttons carry the theme name in Data["theme"].
type Button struct {
	Label string
	Class string
	Data  map[string]string
	Rect  image.Rectangle
}

// Slider maps a horizontal pointer position onto a quantized value.
type Slider struct {
	Rect  image.Rectangle
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

// ValueAt returns the step-aligned value under pointer column x.
func (s *Slider) ValueAt(x int) float64 {
	frac := 0.0
	if w := s.Rect.Dx(); w > 0 {
		frac = float64(x-s.Rect.Min.X) / float64(w)
	}
	frac = math.Max(0, math.Min(1, frac))
	return s.quantize(s.Min + frac*(s.Max-s.Min))
}

// KnobX returns the pointer column that corresponds to the current value.
func (s *Slider) KnobX() int {
	span := s.Max - s.Min
	if span <= 0 {
		return s.Rect.Min.X
	}
	frac := math.Max(0, math.Min(1, (s.Value-s.Min)/span))
	return s.Rect.Min.X + int(math.Round(frac*float64(s.Rect.Dx())))
}

func (s *Slider) quantize(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		// Strip binary noise so 0.1+4*0.1 reads back as 0.5.
		p := math.Pow(10, float64(decimals(s.Step)))
		v = math.Round(v*p) / p
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

func decimals(step float64) int {
	d := 0
	for s := step; d < 6 && math.Abs(s-math.Round(s)) > 1e-9; d++ {
		s *= 10
	}
	return d
}

// PointerState is a snapshot of the primary pointer button.
type PointerState struct {
	X, Y        int
	JustPressed bool
	Pressed     bool
}

// Bar is the control strip under the board: start, pause and reset buttons,
// the speed slider with its label, and the theme selector.
type Bar struct {
	Rect    image.Rectangle
	Buttons []Button
	Themes  []Button
	Speed   Slider
	LabelAt image.Point

	dragging bool
}

const (
	// BarHeight is the height of the control strip in pixels.
	BarHeight = 48

	barPadding   = 12
	barGap       = 8
	buttonWidth  = 64
	buttonHeight = 28
	sliderWidth  = 160
	themeWidth   = 56
	textBaseline = 18

	// SpeedMin, SpeedMax and SpeedStep bound the speed slider, in seconds.
	SpeedMin  = 0.1
	SpeedMax  = 2.0
	SpeedStep = 0.1
)

// NewBar lays out a control strip of the given width whose top edge is at y=top.
func NewBar(width, top int, speed float64) *Bar {
	b := &Bar{Rect: image.Rect(0, top, width, top+BarHeight)}
	y := top + (BarHeight-buttonHeight)/2
	x := barPadding
	for _, def := range []struct{ label, class string }{
		{"Start", "start"},
		{"Pause", "pause"},
		{"Reset", "reset"},
	} {
		b.Buttons = append(b.Buttons, Button{
			Label: def.label,
			Class: def.class,
			Rect:  image.Rect(x, y, x+buttonWidth, y+buttonHeight),
		})
		x += buttonWidth + barGap
	}

	x += barGap
	b.Speed = Slider{
		Rect:  image.Rect(x, y, x+sliderWidth, y+buttonHeight),
		Min:   SpeedMin,
		Max:   SpeedMax,
		Step:  SpeedStep,
		Value: speed,
	}
	x += sliderWidth + barGap
	b.LabelAt = image.Pt(x, y+textBaseline)

	tx := width - barPadding - 2*themeWidth - barGap
	for _, t := range []core.Theme{core.ThemeLight, core.ThemeDark} {
		name := t.String()
		b.Themes = append(b.Themes, Button{
			Label: themeLabel(t),
			Class: "theme",
			Data:  map[string]string{"theme": name},
			Rect:  image.Rect(tx, y, tx+themeWidth, y+buttonHeight),
		})
		tx += themeWidth + barGap
	}
	return b
}

func themeLabel(t core.Theme) string {
	if t == core.ThemeDark {
		return "Dark"
	}
	return "Light"
}

// Press handles a pointer press at (x, y).
func (b *Bar) Press(x, y int) (life.Event, bool) {
	pt := image.Pt(x, y)
	for _, btn := range b.Buttons {
		if !pt.In(btn.Rect) {
			continue
		}
		switch btn.Class {
		case "start":
			return life.Start(), true
		case "pause":
			return life.Pause(), true
		case "reset":
			return life.Reset(), true
		}
		return life.Event{}, false
	}
	for _, btn := range b.Themes {
		if !pt.In(btn.Rect) {
			continue
		}
		theme, err := core.ParseTheme(btn.Data["theme"])
		if err != nil {
			return life.Event{}, false
		}
		return life.ThemeChange(theme), true
	}
	if pt.In(b.Speed.Rect) {
		b.dragging = true
		return b.Drag(x)
	}
	return life.Event{}, false
}

// Drag moves the slider knob while a press that started on the slider is
// held. It emits a speed change only when the value changes.
func (b *Bar) Drag(x int) (life.Event, bool) {
	if !b.dragging {
		return life.Event{}, false
	}
	v := b.Speed.ValueAt(x)
	if v == b.Speed.Value {
		return life.Event{}, false
	}
	b.Speed.Value = v
	return life.SpeedChange(v), true
}

// Release ends a slider drag.
func (b *Bar) Release() { b.dragging = false }

// Dragging reports whether the slider is being dragged.
func (b *Bar) Dragging() bool { return b.dragging }

// Pointer routes one frame of pointer input and dispatches the resulting event.
func (b *Bar) Pointer(p PointerState, d Dispatcher) error {
	var (
		ev life.Event
		ok bool
	)
	switch {
	case p.JustPressed:
		ev, ok = b.Press(p.X, p.Y)
	case p.Pressed:
		ev, ok = b.Drag(p.X)
	default:
		b.Release()
	}
	if !ok {
		return nil
	}
	return d.Dispatch(ev)
}
