package reorder

import "time"

// Host is the list the controller operates on. All coordinates are in the
// same units as the points passed to Controller.Handle.
type Host interface {
	// IndexAt resolves a pointer position to the row under it. Section
	// headers and empty space resolve to no row.
	IndexAt(p Point) (RowIndex, bool)
	// RowFrame returns the frame of the row at index. It reports false when
	// the row is not laid out (for example scrolled away or recycled).
	RowFrame(index RowIndex) (Rect, bool)
	// HeaderFrame returns the frame of a section's header.
	HeaderFrame(section int) (Rect, bool)

	// MoveRow moves a row. It never changes the number of rows.
	MoveRow(from, to RowIndex)

	// Snapshot creates a detached visual copy of the row at index, positioned
	// over the row's current frame.
	Snapshot(index RowIndex) (ProxyView, bool)
	// AddOverlay shows a proxy above the rows.
	AddOverlay(view ProxyView)
	// RemoveOverlay removes and releases a proxy.
	RemoveOverlay(view ProxyView)

	// SetRowHidden hides or shows the row at index.
	SetRowHidden(index RowIndex, hidden bool)
	// SetRowAlpha sets the row's opacity in [0, 1].
	SetRowAlpha(index RowIndex, alpha float64)
}

// ProxyView is the drag proxy created by Host.Snapshot.
type ProxyView interface {
	// Frame returns the unscaled frame of the proxy.
	Frame() Rect
	SetCenter(p Point)
	SetAlpha(alpha float64)
	SetScale(scale float64)
}

// Animator runs tweens. step receives the eased progress in [0, 1] and must
// be called with 1 before completion. Both callbacks must run on the same
// goroutine as Controller.Handle.
type Animator interface {
	Animate(duration time.Duration, step func(progress float64), completion func())
}
