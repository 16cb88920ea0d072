package tview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xqrs/tview-reorder/reorder"
)

func newTestRecognizer() (*LongPressRecognizer, *fakeScheduler, *gestureRecorder) {
	scheduler := &fakeScheduler{}
	recorder := &gestureRecorder{}
	return NewLongPressRecognizer(scheduler, 500*time.Millisecond, recorder.handle), scheduler, recorder
}

func TestLongPress_Drag(t *testing.T) {
	r, scheduler, recorder := newTestRecognizer()

	assert.True(t, r.HandleMouse(MouseLeftDown, 4, 3))
	assert.True(t, r.Tracking())
	assert.False(t, r.Active())
	require.Len(t, scheduler.timers, 1)
	assert.Equal(t, 500*time.Millisecond, scheduler.timers[0].d)

	scheduler.fire()
	assert.True(t, r.Active())

	r.HandleMouse(MouseMove, 4, 5)
	r.HandleMouse(MouseLeftUp, 4, 6)

	assert.False(t, r.Tracking())
	assert.Equal(t, []gestureEvent{
		{reorder.PhaseBegan, reorder.Point{X: 4.5, Y: 3.5}},
		{reorder.PhaseChanged, reorder.Point{X: 4.5, Y: 5.5}},
		{reorder.PhaseEnded, reorder.Point{X: 4.5, Y: 6.5}},
	}, recorder.events)
}

func TestLongPress_SmallMovementAllowed(t *testing.T) {
	r, scheduler, recorder := newTestRecognizer()

	r.HandleMouse(MouseLeftDown, 4, 3)
	assert.True(t, r.HandleMouse(MouseMove, 5, 4))
	scheduler.fire()

	require.Len(t, recorder.events, 1)
	assert.Equal(t, reorder.Point{X: 5.5, Y: 4.5}, recorder.events[0].p)
}

func TestLongPress_MovedTooFar(t *testing.T) {
	r, scheduler, recorder := newTestRecognizer()

	r.HandleMouse(MouseLeftDown, 4, 3)
	assert.False(t, r.HandleMouse(MouseMove, 4, 5))
	assert.False(t, r.Tracking())
	assert.Zero(t, scheduler.pending())

	scheduler.fire()
	assert.Empty(t, recorder.events)
}

func TestLongPress_ReleasedEarly(t *testing.T) {
	r, scheduler, recorder := newTestRecognizer()

	r.HandleMouse(MouseLeftDown, 4, 3)
	assert.False(t, r.HandleMouse(MouseLeftUp, 4, 3))

	scheduler.fire()
	assert.Empty(t, recorder.events)
}

func TestLongPress_StaleTimer(t *testing.T) {
	r, scheduler, recorder := newTestRecognizer()

	r.HandleMouse(MouseLeftDown, 4, 3)
	stale := scheduler.timers[0].f
	r.HandleMouse(MouseLeftUp, 4, 3)
	r.HandleMouse(MouseLeftDown, 8, 8)

	// A timer from an earlier press that already left the scheduler.
	stale()
	assert.Empty(t, recorder.events)

	scheduler.fire()
	require.Len(t, recorder.events, 1)
	assert.Equal(t, reorder.Point{X: 8.5, Y: 8.5}, recorder.events[0].p)
}

func TestLongPress_Cancel(t *testing.T) {
	r, scheduler, recorder := newTestRecognizer()

	// Before recognition a cancel is silent.
	r.HandleMouse(MouseLeftDown, 4, 3)
	r.Cancel()
	assert.False(t, r.Tracking())
	assert.Empty(t, recorder.events)

	r.HandleMouse(MouseLeftDown, 4, 3)
	scheduler.fire()
	r.HandleMouse(MouseMove, 4, 7)
	r.Cancel()

	assert.False(t, r.Tracking())
	assert.Equal(t, []reorder.Phase{reorder.PhaseBegan, reorder.PhaseChanged, reorder.PhaseCancelled}, recorder.phases())
	assert.Equal(t, reorder.Point{X: 4.5, Y: 7.5}, recorder.events[2].p)

	r.Cancel()
	assert.Len(t, recorder.events, 3)
}

func TestLongPress_OtherButtonFails(t *testing.T) {
	r, scheduler, recorder := newTestRecognizer()

	r.HandleMouse(MouseLeftDown, 4, 3)
	scheduler.fire()
	assert.True(t, r.HandleMouse(MouseRightDown, 4, 3))

	assert.False(t, r.Tracking())
	assert.Equal(t, []reorder.Phase{reorder.PhaseBegan, reorder.PhaseFailed}, recorder.phases())

	// The release that follows is not part of any gesture.
	assert.False(t, r.HandleMouse(MouseLeftUp, 4, 3))
	assert.Len(t, recorder.events, 2)
}

func TestLongPress_AllowableMovement(t *testing.T) {
	r, scheduler, recorder := newTestRecognizer()
	r.SetAllowableMovement(0)

	r.HandleMouse(MouseLeftDown, 4, 3)
	r.HandleMouse(MouseMove, 5, 3)
	scheduler.fire()
	assert.Empty(t, recorder.events)

	r.SetAllowableMovement(-3)
	assert.Equal(t, 0, r.allowable)
}
