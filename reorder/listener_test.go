package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopListener(t *testing.T) {
	var l Listener = NopListener{}

	assert.True(t, l.StartReorderingRow(RowIndex{0, 0}))
	assert.False(t, l.StartReorderingRow(RowIndex{0, -1}))
	assert.True(t, l.AllowChangingRow(RowIndex{1, 4}))
}

func TestListenerFuncs(t *testing.T) {
	var finished [2]RowIndex
	var header RowIndex
	l := &ListenerFuncs{
		OnStartReorderingRow: func(i RowIndex) bool { return i.Row != 3 },
		OnReorderFinished:    func(initial, final RowIndex) { finished = [2]RowIndex{initial, final} },
		OnGestureEndedOnHeader: func(initial RowIndex) {
			header = initial
		},
	}

	assert.False(t, l.StartReorderingRow(RowIndex{0, 3}))
	assert.True(t, l.StartReorderingRow(RowIndex{0, 2}))
	assert.True(t, l.AllowChangingRow(RowIndex{0, 1}))

	l.ReorderFinished(RowIndex{0, 1}, RowIndex{0, 2})
	l.GestureEndedOnHeader(RowIndex{0, 5})
	l.PositionChanged(RowIndex{0, 1}, RowIndex{0, 2})
	l.OverlappedIndex(nil, nil, nil, false)
	l.GestureEndedOnIndex(RowIndex{}, RowIndex{})

	assert.Equal(t, [2]RowIndex{{0, 1}, {0, 2}}, finished)
	assert.Equal(t, RowIndex{0, 5}, header)
}

func TestListenerFuncs_Defaults(t *testing.T) {
	l := &ListenerFuncs{}

	assert.False(t, l.StartReorderingRow(RowIndex{-1, 0}))
	assert.True(t, l.AllowChangingRow(RowIndex{0, 0}))
}

func TestListenerFuncs_DrivesController(t *testing.T) {
	host := newFakeHostRows(4)
	var moved []RowIndex
	l := &ListenerFuncs{
		OnPositionChanged: func(_, proposed RowIndex) { moved = append(moved, proposed) },
	}
	ctrl, anim := newTestController(t, host, l)

	ctrl.Handle(PhaseBegan, at(host, RowIndex{0, 0}, 5))
	anim.finishAll()
	ctrl.Handle(PhaseChanged, at(host, RowIndex{0, 1}, 9))
	ctrl.Handle(PhaseEnded, at(host, RowIndex{0, 1}, 9))

	assert.Equal(t, []RowIndex{{0, 1}}, moved)
}
