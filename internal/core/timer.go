package core

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// Deferred holds at most one pending callback due at a fixed instant. It never
// fires on its own: the owner polls it from its main loop, so the callback runs
// on the polling goroutine.
type Deferred struct {
	due   time.Time
	fn    func()
	armed bool
}

// Schedule arms the callback to fire at the given instant, replacing any
// pending one.
func (d *Deferred) Schedule(at time.Time, fn func()) {
	d.due = at
	d.fn = fn
	d.armed = fn != nil
}

// Stop drops the pending callback. It reports whether one was pending.
func (d *Deferred) Stop() bool {
	was := d.armed
	d.armed = false
	d.fn = nil
	return was
}

// Pending reports whether a callback is armed.
func (d *Deferred) Pending() bool { return d.armed }

// Due returns the instant the pending callback fires at.
func (d *Deferred) Due() time.Time { return d.due }

// Poll runs the pending callback if it is due at now. The callback is disarmed
// before it runs so it may schedule itself again.
func (d *Deferred) Poll(now time.Time) bool {
	if !d.armed || now.Before(d.due) {
		return false
	}
	fn := d.fn
	d.Stop()
	fn()
	return true
}
