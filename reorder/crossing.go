package reorder

// Crosses reports whether the dragged row, currently at current, has passed
// the hovered row whose frame is cell, for a pointer at pointerY and a
// hysteresis margin.
//
// Moving up is confirmed when cell.Top() > pointerY-margin and hovered lies
// above current; moving down when cell.Bottom() < pointerY+margin and hovered
// lies below current. Otherwise the pointer is inside the hysteresis band and
// no crossing happens.
func Crosses(current, hovered RowIndex, cell Rect, pointerY, margin float64) bool {
	if cell.Top() > pointerY-margin && hovered.Row < current.Row {
		return true
	}
	if cell.Bottom() < pointerY+margin && hovered.Row > current.Row {
		return true
	}
	return false
}

// HeaderContains reports whether p lies in header after shrinking it by
// margin on both vertical edges.
func HeaderContains(header Rect, p Point, margin float64) bool {
	return header.InsetVertical(margin).Contains(p)
}
