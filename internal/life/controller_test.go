package life

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"lifedots/internal/core"
	"lifedots/internal/render"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type countingSurface struct{ clears int }

func (s *countingSurface) Size() (int, int)                          { return 800, 400 }
func (s *countingSurface) Clear()                                    { s.clears++ }
func (s *countingSurface) FillCircle(_, _, _ float64, _ color.Color) {}

func newTestController(t *testing.T) (*Controller, *fakeClock, *countingSurface) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	surface := &countingSurface{}
	opts := DefaultOptions()
	opts.Seed = 42
	opts.Clock = clock
	c, err := NewController(opts, render.NewRenderer(core.NewRNG(1)), surface)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c, clock, surface
}

func TestNewControllerRendersInitialBoard(t *testing.T) {
	c, _, surface := newTestController(t)
	if surface.clears != 1 {
		t.Fatalf("expected one initial render, got %d", surface.clears)
	}
	if c.Mode() != Stopped || c.TickPending() {
		t.Fatal("new controller should be stopped with nothing scheduled")
	}
	if g := c.Grid(); g.Rows() != 40 || g.Cols() != 80 {
		t.Fatalf("unexpected board %dx%d", g.Rows(), g.Cols())
	}
	if c.SpeedLabel() != "Speed: 0.5s" {
		t.Fatalf("unexpected initial label %q", c.SpeedLabel())
	}
}

func TestStartAdvancesAndSchedules(t *testing.T) {
	c, clock, surface := newTestController(t)
	initial := c.Grid()

	c.Start()
	if c.Generation() != 1 || !c.Grid().Equal(core.Advance(initial)) {
		t.Fatal("Start should show the next generation immediately")
	}
	if surface.clears != 2 {
		t.Fatalf("expected a render on start, got %d renders", surface.clears)
	}
	if !c.TickPending() {
		t.Fatal("Start should schedule the next tick")
	}

	clock.Advance(499 * time.Millisecond)
	c.Update()
	if c.Generation() != 1 {
		t.Fatal("tick fired before the delay elapsed")
	}

	clock.Advance(time.Millisecond)
	c.Update()
	if c.Generation() != 2 {
		t.Fatalf("expected generation 2 after the delay, got %d", c.Generation())
	}
	if !c.TickPending() {
		t.Fatal("tick should re-arm itself while running")
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	c, clock, _ := newTestController(t)
	c.Start()
	c.Start()
	if c.Generation() != 1 {
		t.Fatalf("second Start advanced the board, generation=%d", c.Generation())
	}
	clock.Advance(time.Second)
	c.Update()
	c.Update()
	if c.Generation() != 2 {
		t.Fatalf("expected a single loop, generation=%d", c.Generation())
	}
}

func TestPauseSuppressesPendingTick(t *testing.T) {
	c, clock, surface := newTestController(t)
	c.Start()
	if !c.TickPending() {
		t.Fatal("expected a pending tick")
	}
	renders := surface.clears
	grid := c.Grid()

	c.Pause()
	if c.Mode() != Stopped {
		t.Fatal("Pause should stop the controller")
	}
	clock.Advance(time.Second)
	c.Update()

	if c.Generation() != 1 || c.Grid() != grid {
		t.Fatal("a paused controller advanced the board")
	}
	if surface.clears != renders {
		t.Fatal("a paused controller rendered again")
	}
	if c.TickPending() {
		t.Fatal("the suppressed tick should not re-arm")
	}
}

func TestPauseThenStartRunsSingleLoop(t *testing.T) {
	c, clock, _ := newTestController(t)
	c.Start()
	clock.Advance(100 * time.Millisecond)
	c.Pause()
	c.Start()
	if c.Generation() != 2 {
		t.Fatalf("restart should advance immediately, generation=%d", c.Generation())
	}
	// The tick from the first run would have been due at 500ms.
	clock.Advance(450 * time.Millisecond)
	c.Update()
	if c.Generation() != 2 {
		t.Fatal("stale tick from the earlier run fired")
	}
	clock.Advance(50 * time.Millisecond)
	c.Update()
	if c.Generation() != 3 {
		t.Fatalf("expected generation 3, got %d", c.Generation())
	}
}

func TestResetStopsAndReseeds(t *testing.T) {
	c, clock, surface := newTestController(t)
	c.Start()
	before := surface.clears

	c.Reset()
	if c.Running() {
		t.Fatal("Reset should stop the loop")
	}
	if surface.clears != before+1 {
		t.Fatal("Reset should render immediately")
	}
	if g := c.Grid(); g.Rows() != 40 || g.Cols() != 80 {
		t.Fatalf("Reset produced a %dx%d board", g.Rows(), g.Cols())
	}
	if c.Generation() != 0 {
		t.Fatalf("Reset should clear the generation counter, got %d", c.Generation())
	}

	grid := c.Grid()
	clock.Advance(time.Second)
	c.Update()
	if c.Grid() != grid {
		t.Fatal("board advanced after Reset")
	}
}

func TestSetSpeedAffectsOnlyFutureTicks(t *testing.T) {
	c, clock, _ := newTestController(t)
	c.Start()
	due := c.tick.Due()

	if err := c.SetSpeed(2); err != nil {
		t.Fatal(err)
	}
	if !c.tick.Due().Equal(due) {
		t.Fatal("SetSpeed rescheduled the pending tick")
	}
	if c.SpeedLabel() != "Speed: 2s" {
		t.Fatalf("unexpected label %q", c.SpeedLabel())
	}

	clock.Advance(500 * time.Millisecond)
	c.Update()
	if c.Generation() != 2 {
		t.Fatal("pending tick should keep the delay it was scheduled with")
	}
	if want := clock.now.Add(2 * time.Second); !c.tick.Due().Equal(want) {
		t.Fatalf("next tick due %v, expected %v", c.tick.Due(), want)
	}
}

func TestSpeedLabelKeepsValue(t *testing.T) {
	cases := map[float64]string{
		0.1:  "Speed: 0.1s",
		0.5:  "Speed: 0.5s",
		1:    "Speed: 1s",
		1.25: "Speed: 1.25s",
	}
	for v, want := range cases {
		if got := SpeedLabel(v); got != want {
			t.Fatalf("SpeedLabel(%v) = %q, expected %q", v, got, want)
		}
	}
}

func TestSetSpeedRejectsInvalid(t *testing.T) {
	c, _, _ := newTestController(t)
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if err := c.SetSpeed(v); !errors.Is(err, ErrInvalidSpeed) {
			t.Fatalf("SetSpeed(%v) error = %v, expected ErrInvalidSpeed", v, err)
		}
	}
	if c.Speed() != 0.5 {
		t.Fatalf("rejected speed changed the setting to %v", c.Speed())
	}
}

func TestThemeChangeLeavesBoard(t *testing.T) {
	c, _, surface := newTestController(t)
	grid := c.Grid().Clone()
	renders := surface.clears

	if err := c.Dispatch(ThemeChange(core.ThemeDark)); err != nil {
		t.Fatal(err)
	}
	if c.Theme() != core.ThemeDark {
		t.Fatal("theme not applied")
	}
	if !c.Grid().Equal(grid) || c.Running() || surface.clears != renders {
		t.Fatal("theme change touched simulation state")
	}
}

func TestDispatchRoutesEvents(t *testing.T) {
	c, _, _ := newTestController(t)
	steps := []struct {
		ev      Event
		running bool
	}{
		{Start(), true},
		{SpeedChange(1.5), true},
		{Pause(), false},
		{Start(), true},
		{Reset(), false},
	}
	for i, s := range steps {
		if err := c.Dispatch(s.ev); err != nil {
			t.Fatalf("step %d (%v): %v", i, s.ev.Kind, err)
		}
		if c.Running() != s.running {
			t.Fatalf("step %d (%v): running=%v, expected %v", i, s.ev.Kind, c.Running(), s.running)
		}
	}
	if c.Speed() != 1.5 {
		t.Fatalf("speed event not applied, got %v", c.Speed())
	}
	if err := c.Dispatch(SpeedChange(0)); !errors.Is(err, ErrInvalidSpeed) {
		t.Fatalf("expected ErrInvalidSpeed, got %v", err)
	}
	if err := c.Dispatch(Event{}); err == nil {
		t.Fatal("expected error for an unknown event")
	}
}

func TestStopDropsPendingTick(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Start()
	c.Stop()
	if c.Running() || c.TickPending() {
		t.Fatal("Stop should pause and drop the pending tick")
	}
}

func TestOptionsValidate(t *testing.T) {
	bad := []Options{
		{Rows: 0, Cols: 80, Density: 0.2, Speed: 0.5},
		{Rows: 40, Cols: 80, Density: 1.2, Speed: 0.5},
		{Rows: 40, Cols: 80, Density: 0.2, Speed: 0},
	}
	for i, o := range bad {
		if _, err := NewController(o, nil, nil); err == nil {
			t.Fatalf("options %d should be rejected", i)
		}
	}
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
}
