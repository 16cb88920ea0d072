package reorder

// Listener is the set of hooks a Controller invokes during a drag. Embed
// NopListener to override only the hooks you need, or use ListenerFuncs.
type Listener interface {
	// StartReorderingRow is asked when a drag is about to begin on index.
	// Returning false vetoes the drag; no session is created and no further
	// hooks fire for the gesture.
	StartReorderingRow(index RowIndex) bool

	// AllowChangingRow is asked before the dragged row may move onto index.
	// Returning false skips the move for the current tick only.
	AllowChangingRow(index RowIndex) bool

	// PositionChanged is called right before the host is asked to move the
	// dragged row from current to proposed.
	PositionChanged(current, proposed RowIndex)

	// ReorderFinished is called once per session when the gesture ends,
	// is cancelled or fails.
	ReorderFinished(initial, final RowIndex)

	// OverlappedIndex is called on every gesture tick, including ticks
	// without an active session. Nil arguments mean "none".
	OverlappedIndex(initial, current, hovered *RowIndex, overHeader bool)

	// GestureEndedOnIndex is called when the gesture ended over a row other
	// than the dragged row's position and the crossing rule held for it.
	GestureEndedOnIndex(initial, end RowIndex)

	// GestureEndedOnHeader is called when the gesture ended over the header
	// of the section the drag started in.
	GestureEndedOnHeader(initial RowIndex)
}

// NopListener implements Listener with permissive defaults.
type NopListener struct{}

var _ Listener = NopListener{}

// StartReorderingRow allows any non-negative index.
func (NopListener) StartReorderingRow(index RowIndex) bool {
	return index.Valid()
}

// AllowChangingRow always allows the move.
func (NopListener) AllowChangingRow(RowIndex) bool {
	return true
}

func (NopListener) PositionChanged(_, _ RowIndex)             {}
func (NopListener) ReorderFinished(_, _ RowIndex)             {}
func (NopListener) OverlappedIndex(_, _, _ *RowIndex, _ bool) {}
func (NopListener) GestureEndedOnIndex(_, _ RowIndex)         {}
func (NopListener) GestureEndedOnHeader(RowIndex)             {}

// ListenerFuncs adapts optional callback fields to a Listener. Nil fields
// fall back to the NopListener behaviour.
type ListenerFuncs struct {
	OnStartReorderingRow   func(index RowIndex) bool
	OnAllowChangingRow     func(index RowIndex) bool
	OnPositionChanged      func(current, proposed RowIndex)
	OnReorderFinished      func(initial, final RowIndex)
	OnOverlappedIndex      func(initial, current, hovered *RowIndex, overHeader bool)
	OnGestureEndedOnIndex  func(initial, end RowIndex)
	OnGestureEndedOnHeader func(initial RowIndex)
}

var _ Listener = (*ListenerFuncs)(nil)

func (f *ListenerFuncs) StartReorderingRow(index RowIndex) bool {
	if f.OnStartReorderingRow == nil {
		return NopListener{}.StartReorderingRow(index)
	}
	return f.OnStartReorderingRow(index)
}

func (f *ListenerFuncs) AllowChangingRow(index RowIndex) bool {
	if f.OnAllowChangingRow == nil {
		return true
	}
	return f.OnAllowChangingRow(index)
}

func (f *ListenerFuncs) PositionChanged(current, proposed RowIndex) {
	if f.OnPositionChanged != nil {
		f.OnPositionChanged(current, proposed)
	}
}

func (f *ListenerFuncs) ReorderFinished(initial, final RowIndex) {
	if f.OnReorderFinished != nil {
		f.OnReorderFinished(initial, final)
	}
}

func (f *ListenerFuncs) OverlappedIndex(initial, current, hovered *RowIndex, overHeader bool) {
	if f.OnOverlappedIndex != nil {
		f.OnOverlappedIndex(initial, current, hovered, overHeader)
	}
}

func (f *ListenerFuncs) GestureEndedOnIndex(initial, end RowIndex) {
	if f.OnGestureEndedOnIndex != nil {
		f.OnGestureEndedOnIndex(initial, end)
	}
}

func (f *ListenerFuncs) GestureEndedOnHeader(initial RowIndex) {
	if f.OnGestureEndedOnHeader != nil {
		f.OnGestureEndedOnHeader(initial)
	}
}
