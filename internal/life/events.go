package life

import "lifedots/internal/core"

// EventKind identifies a UI action.
type EventKind uint8

const (
	EventStart EventKind = iota + 1
	EventPause
	EventReset
	EventSpeed
	EventTheme
)

var eventNames = map[EventKind]string{
	EventStart: "start",
	EventPause: "pause",
	EventReset: "reset",
	EventSpeed: "speed",
	EventTheme: "theme",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single UI action. Speed and Theme are only read by the matching
// kinds.
type Event struct {
	Kind  EventKind
	Speed float64
	Theme core.Theme
}

// Start returns a start event.
func Start() Event { return Event{Kind: EventStart} }

// Pause returns a pause event.
func Pause() Event { return Event{Kind: EventPause} }

// Reset returns a reset event.
func Reset() Event { return Event{Kind: EventReset} }

// SpeedChange returns an event that sets the delay between generations.
func SpeedChange(seconds float64) Event { return Event{Kind: EventSpeed, Speed: seconds} }

// ThemeChange returns an event that switches the presentation theme.
func ThemeChange(t core.Theme) Event { return Event{Kind: EventTheme, Theme: t} }
