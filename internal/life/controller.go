// Package life drives a Game of Life board from UI events: it owns the grid,
// the running flag, the speed and the theme, and advances the board on a
// self-rescheduling tick while running.
package life

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"lifedots/internal/core"
	"lifedots/internal/render"
)

// ErrInvalidSpeed is returned for non-positive or non-finite speeds.
var ErrInvalidSpeed = errors.New("life: speed must be a positive number of seconds")

// Mode is the controller state.
type Mode uint8

const (
	// Stopped means no generation is scheduled to be shown.
	Stopped Mode = iota
	// Running means the board advances every Speed seconds.
	Running
)

func (m Mode) String() string {
	if m == Running {
		return "running"
	}
	return "stopped"
}

// Options configures a Controller.
type Options struct {
	Rows    int
	Cols    int
	Density float64
	// Speed is the delay between generations in seconds.
	Speed float64
	Theme core.Theme
	Seed  int64
	// Clock defaults to the system clock.
	Clock core.Clock
}

// DefaultOptions returns a 40x80 board seeded at 20% density, advancing every
// half second.
func DefaultOptions() Options {
	return Options{
		Rows:    40,
		Cols:    80,
		Density: core.DefaultDensity,
		Speed:   0.5,
		Theme:   core.ThemeLight,
	}
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if o.Rows <= 0 || o.Cols <= 0 {
		return fmt.Errorf("life: invalid board size %dx%d", o.Rows, o.Cols)
	}
	if o.Density < 0 || o.Density > 1 {
		return fmt.Errorf("life: density %v outside [0,1]", o.Density)
	}
	return checkSpeed(o.Speed)
}

// State is the simulation state owned by a Controller.
type State struct {
	Grid       *core.Grid
	Running    bool
	Speed      float64
	Theme      core.Theme
	Generation int
}

// Controller maps UI events onto State and keeps the surface up to date.
type Controller struct {
	opts     Options
	state    State
	rng      *core.RNG
	renderer *render.Renderer
	surface  render.Surface
	clock    core.Clock
	tick     core.Deferred
	handlers map[EventKind]func(Event) error
}

// NewController seeds a board, renders it once onto surface and returns a
// stopped controller.
func NewController(opts Options, renderer *render.Renderer, surface render.Surface) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	c := &Controller{
		opts:     opts,
		rng:      core.NewRNG(opts.Seed),
		renderer: renderer,
		surface:  surface,
		clock:    clock,
		state: State{
			Speed: opts.Speed,
			Theme: opts.Theme,
		},
	}
	c.handlers = map[EventKind]func(Event) error{
		EventStart: func(Event) error { c.Start(); return nil },
		EventPause: func(Event) error { c.Pause(); return nil },
		EventReset: func(Event) error { c.Reset(); return nil },
		EventSpeed: func(ev Event) error { return c.SetSpeed(ev.Speed) },
		EventTheme: func(ev Event) error { c.SetTheme(ev.Theme); return nil },
	}
	c.state.Grid = c.seed()
	c.render()
	return c, nil
}

// Dispatch applies a UI event.
func (c *Controller) Dispatch(ev Event) error {
	h, ok := c.handlers[ev.Kind]
	if !ok {
		return fmt.Errorf("life: unknown event %v", ev.Kind)
	}
	return h(ev)
}

// Start begins the generation loop. The first generation is shown
// immediately. Starting a running controller is a no-op.
func (c *Controller) Start() {
	if c.state.Running {
		return
	}
	c.state.Running = true
	// A tick left over from before the last pause would start a second loop.
	c.tick.Stop()
	c.step()
}

// Pause stops the loop. A tick that is already scheduled still fires but
// finds the flag cleared and does nothing.
func (c *Controller) Pause() {
	c.state.Running = false
}

// Reset stops the loop, reseeds the board and redraws it.
func (c *Controller) Reset() {
	c.state.Running = false
	c.state.Grid = c.seed()
	c.state.Generation = 0
	c.render()
}

// SetSpeed changes the delay used when scheduling future ticks. A tick that
// is already pending keeps its due time.
func (c *Controller) SetSpeed(seconds float64) error {
	if err := checkSpeed(seconds); err != nil {
		return err
	}
	c.state.Speed = seconds
	return nil
}

// SetTheme changes the presentation theme only.
func (c *Controller) SetTheme(t core.Theme) {
	c.state.Theme = t
}

// Update fires the pending tick if it is due. Call it from the main loop.
func (c *Controller) Update() {
	c.tick.Poll(c.clock.Now())
}

// Stop drops a pending tick outright, in addition to pausing.
func (c *Controller) Stop() {
	c.Pause()
	c.tick.Stop()
}

func (c *Controller) onTick() {
	if !c.state.Running {
		return
	}
	c.step()
}

func (c *Controller) step() {
	c.state.Grid = core.Advance(c.state.Grid)
	c.state.Generation++
	c.render()
	c.tick.Schedule(c.clock.Now().Add(secondsToDuration(c.state.Speed)), c.onTick)
}

func (c *Controller) seed() *core.Grid {
	return core.RandomGrid(c.opts.Rows, c.opts.Cols, c.opts.Density, c.rng)
}

func (c *Controller) render() {
	if c.renderer == nil || c.surface == nil {
		return
	}
	c.renderer.Render(c.surface, c.state.Grid)
}

// State returns a copy of the current state. The grid is shared and must not
// be modified.
func (c *Controller) State() State { return c.state }

// Grid returns the current generation.
func (c *Controller) Grid() *core.Grid { return c.state.Grid }

// Mode reports whether the loop is running.
func (c *Controller) Mode() Mode {
	if c.state.Running {
		return Running
	}
	return Stopped
}

// Running reports whether the loop is active.
func (c *Controller) Running() bool { return c.state.Running }

// Speed returns the delay between generations in seconds.
func (c *Controller) Speed() float64 { return c.state.Speed }

// Theme returns the presentation theme.
func (c *Controller) Theme() core.Theme { return c.state.Theme }

// Generation returns the number of generations since the last reset.
func (c *Controller) Generation() int { return c.state.Generation }

// TickPending reports whether a tick is scheduled.
func (c *Controller) TickPending() bool { return c.tick.Pending() }

// SpeedLabel formats the speed exactly as it was set, e.g. "Speed: 0.5s".
func (c *Controller) SpeedLabel() string {
	return SpeedLabel(c.state.Speed)
}

// SpeedLabel formats seconds with the shortest decimal that round-trips.
func SpeedLabel(seconds float64) string {
	return "Speed: " + strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}

func checkSpeed(seconds float64) error {
	// NaN fails the comparison too.
	if !(seconds > 0) || seconds > maxSpeed {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, seconds)
	}
	return nil
}

// maxSpeed keeps secondsToDuration inside the int64 nanosecond range.
const maxSpeed = float64(time.Hour*24) / float64(time.Second)

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
