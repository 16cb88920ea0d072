package tview

import (
	"time"

	"github.com/gdamore/tcell/v3"
)

// DoubleClickInterval is the longest gap between two clicks of the same
// button that still counts as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is a logical mouse action derived from raw tcell mouse events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var mouseButtons = []struct {
	button                   tcell.ButtonMask
	down, up, click, dbClick MouseAction
}{
	{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
	{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
	{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
}

var mouseWheels = []struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

// mouseTracker turns the button state reported with every tcell mouse event
// into actions. A release is a click only if the pointer has not moved since
// the press, so a drag never ends in a click.
type mouseTracker struct {
	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
	lastClick    time.Time
}

// actions returns the actions for a mouse event at (x, y) with buttons held,
// in the order they happened: a move first, then presses and releases, then
// wheel steps.
func (m *mouseTracker) actions(x, y int, buttons tcell.ButtonMask, now time.Time) []MouseAction {
	var out []MouseAction
	if x != m.x || y != m.y {
		out = append(out, MouseMove)
		m.x, m.y = x, y
	}

	changed := buttons ^ m.buttons
	moved := x != m.downX || y != m.downY
	pressed := false
	for _, b := range mouseButtons {
		switch {
		case changed&b.button == 0:
		case buttons&b.button != 0:
			out = append(out, b.down)
			pressed = true
		default:
			out = append(out, b.up)
			if moved {
				break
			}
			if now.Sub(m.lastClick) < DoubleClickInterval {
				out = append(out, b.dbClick)
				m.lastClick = time.Time{}
			} else {
				out = append(out, b.click)
				m.lastClick = now
			}
		}
	}

	for _, w := range mouseWheels {
		if buttons&w.button != 0 {
			out = append(out, w.action)
		}
	}

	m.buttons = buttons
	if pressed {
		m.downX, m.downY = x, y
	}
	return out
}
