package tui

import "time"

// HoldTracker approximates "key is down" for terminals, which only report
// presses and auto-repeats.
//
// A key counts as held until no press has been seen for the hold window.
// Presses arriving within the repeat delay of the previous one belong to
// the same hold, so the keyboard's first auto-repeat does not flap again.
// Between the hold window and the first repeat the key reads as up.
type HoldTracker struct {
	window time.Duration
	delay  time.Duration
	last   time.Time
	down   bool
	active bool // Some press has been seen and not released
}

// NewHoldTracker creates a tracker. window is the allowed gap between
// repeats; delay is the allowed wait for the first repeat.
func NewHoldTracker(window, delay time.Duration) HoldTracker {
	return HoldTracker{window: window, delay: max(delay, window)}
}

// Press records a key press at now. It returns true when the press starts
// a new hold rather than continuing one through auto-repeat.
func (h *HoldTracker) Press(now time.Time) bool {
	edge := !h.active || now.Sub(h.last) > h.delay
	h.last = now
	h.down = true
	h.active = true
	return edge
}

// Held reports whether the key is still considered down at now.
func (h *HoldTracker) Held(now time.Time) bool {
	if !h.down {
		return false
	}
	if now.Sub(h.last) > h.window {
		h.down = false
	}
	return h.down
}

// Release forgets any hold in progress.
func (h *HoldTracker) Release() {
	h.down = false
	h.active = false
}
