package tview

import (
	"errors"
	"fmt"

	"github.com/xqrs/tview-reorder/reorder"
)

// DefaultRowHitTestMargin is the crossing margin used by AttachReordering.
// Pointers sit at cell centres, so a margin above half a cell is needed for
// one-line rows to be crossed at all.
const DefaultRowHitTestMargin = 0.75

// ErrNilList is returned by AttachReordering when no list is given.
var ErrNilList = errors.New("tview: nil section list")

// Clock schedules timers and animations on the event loop. *Application
// implements it.
type Clock interface {
	Scheduler
	reorder.Animator
}

var _ Clock = (*Application)(nil)

// AttachReordering makes the rows of list draggable. A long press on a row
// lifts it; dragging moves it within its section. The returned controller can
// be used to cancel a drag or to swap the listener.
//
// Options default to reorder.DefaultOptions with a row hit-test margin of
// DefaultRowHitTestMargin.
func AttachReordering(clock Clock, list *SectionList, listener reorder.Listener, opts ...reorder.Option) (*reorder.Controller, error) {
	if list == nil {
		return nil, fmt.Errorf("attach reordering: %w", ErrNilList)
	}
	if clock == nil {
		return nil, fmt.Errorf("attach reordering: %w", reorder.ErrNilAnimator)
	}

	opts = append([]reorder.Option{reorder.WithRowHitTestMargin(DefaultRowHitTestMargin)}, opts...)
	controller, err := reorder.NewController(list, clock, listener, opts...)
	if err != nil {
		return nil, fmt.Errorf("attach reordering: %w", err)
	}

	recognizer := NewLongPressRecognizer(clock, controller.Options().MinimumPressDuration, controller.Handle)
	list.SetGestureRecognizer(recognizer)
	return controller, nil
}
