package component

import "time"

// Timer measures a duration against frame-supplied time. A timer that was
// never started is not running and never expires.
type Timer struct {
	Duration time.Duration

	start   time.Duration
	running bool
}

func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// Start (re)arms the timer at now.
func (t *Timer) Start(now time.Duration) {
	if t == nil {
		return
	}
	t.start = now
	t.running = true
}

func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.running = false
}

func (t *Timer) Running() bool {
	return t != nil && t.running
}

// Expired reports whether a running timer has reached its duration.
func (t *Timer) Expired(now time.Duration) bool {
	if !t.Running() {
		return false
	}
	return now-t.start >= t.Duration
}

// StopIfExpired stops the timer once it has expired and reports whether it did.
func (t *Timer) StopIfExpired(now time.Duration) bool {
	if !t.Expired(now) {
		return false
	}
	t.running = false
	return true
}

// StartedAt returns the time of the last Start.
func (t *Timer) StartedAt() time.Duration {
	if t == nil {
		return 0
	}
	return t.start
}
