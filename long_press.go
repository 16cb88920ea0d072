package tview

import (
	"time"

	"github.com/xqrs/tview-reorder/reorder"
)

// Scheduler runs a function on the UI goroutine after a delay. The returned
// function stops the timer and reports whether it was still pending.
// *Application implements it.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// GestureFunc receives the phases of a recognized gesture.
type GestureFunc func(phase reorder.Phase, p reorder.Point)

type longPressState int

const (
	longPressIdle longPressState = iota
	// The button is down and the hold timer is armed.
	longPressPossible
	longPressRecognized
)

// LongPressRecognizer turns mouse input into a long-press drag gesture. The
// left button must be held for a minimum duration without moving more than
// the allowable movement before the gesture begins; after that every move
// is reported until the button is released.
type LongPressRecognizer struct {
	scheduler Scheduler
	minimum   time.Duration
	allowable int
	handler   GestureFunc

	state          longPressState
	startX, startY int
	x, y           int
	stop           func() bool
	// Bumped on every reset so a timer that already fired does nothing.
	generation uint64
}

// NewLongPressRecognizer returns a recognizer that reports phases to
// handler. A minimum of zero begins the gesture on the next event loop
// iteration after the press.
func NewLongPressRecognizer(scheduler Scheduler, minimum time.Duration, handler GestureFunc) *LongPressRecognizer {
	return &LongPressRecognizer{
		scheduler: scheduler,
		minimum:   minimum,
		allowable: 1,
		handler:   handler,
	}
}

// SetAllowableMovement sets how many cells the pointer may move while the
// button is held before recognition is abandoned.
func (r *LongPressRecognizer) SetAllowableMovement(cells int) *LongPressRecognizer {
	r.allowable = max(cells, 0)
	return r
}

// Tracking reports whether the button is held, recognized or not.
func (r *LongPressRecognizer) Tracking() bool {
	return r.state != longPressIdle
}

// Active reports whether a gesture has begun and not yet ended.
func (r *LongPressRecognizer) Active() bool {
	return r.state == longPressRecognized
}

// HandleMouse feeds a mouse action at cell (x, y) to the recognizer. It
// reports whether the action was consumed.
func (r *LongPressRecognizer) HandleMouse(action MouseAction, x, y int) bool {
	switch action {
	case MouseLeftDown:
		if r.state != longPressIdle {
			return true
		}
		r.state = longPressPossible
		r.startX, r.startY = x, y
		r.x, r.y = x, y
		generation := r.generation
		r.stop = r.scheduler.AfterFunc(r.minimum, func() { r.fire(generation) })
		return true

	case MouseMove:
		switch r.state {
		case longPressPossible:
			r.x, r.y = x, y
			if abs(x-r.startX) > r.allowable || abs(y-r.startY) > r.allowable {
				r.reset()
				return false
			}
			return true
		case longPressRecognized:
			r.x, r.y = x, y
			r.handler(reorder.PhaseChanged, cellCenter(x, y))
			return true
		}

	case MouseLeftUp:
		switch r.state {
		case longPressPossible:
			r.reset()
			return false
		case longPressRecognized:
			r.reset()
			r.handler(reorder.PhaseEnded, cellCenter(x, y))
			return true
		}

	case MouseMiddleDown, MouseRightDown:
		switch r.state {
		case longPressPossible:
			r.reset()
		case longPressRecognized:
			r.reset()
			r.handler(reorder.PhaseFailed, cellCenter(r.x, r.y))
			return true
		}
	}
	return false
}

// Cancel ends a recognized gesture with the cancelled phase. A press that
// was not recognized yet is dropped silently.
func (r *LongPressRecognizer) Cancel() {
	switch r.state {
	case longPressPossible:
		r.reset()
	case longPressRecognized:
		r.reset()
		r.handler(reorder.PhaseCancelled, cellCenter(r.x, r.y))
	}
}

func (r *LongPressRecognizer) fire(generation uint64) {
	if generation != r.generation || r.state != longPressPossible {
		return
	}
	r.stop = nil
	r.state = longPressRecognized
	r.handler(reorder.PhaseBegan, cellCenter(r.x, r.y))
}

func (r *LongPressRecognizer) reset() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
	r.state = longPressIdle
	r.generation++
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
