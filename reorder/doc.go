// Package reorder implements the drag-and-drop row reordering state machine
// used by sectioned lists.
//
// A Controller consumes the phases of a long-press-and-drag gesture
// (began, changed, ended, cancelled, failed) together with the pointer
// position, resolves them against the geometry reported by a Host, and turns
// them into discrete row moves plus visual feedback on a detached drag proxy.
// The controller never adds or removes rows; it only asks the host to move a
// row from one index to another within the same section.
//
// Hosts customise and observe a drag through a Listener:
//
//	type pinned struct{ reorder.NopListener }
//
//	func (pinned) StartReorderingRow(index reorder.RowIndex) bool {
//		return index.Row > 0 // The first row of every section stays put.
//	}
//
//	ctrl, err := reorder.NewController(host, animator, pinned{},
//		reorder.WithPopOutScale(reorder.PopOutBig),
//		reorder.WithRowHitTestMargin(0.75),
//	)
//
// All methods must be called from a single goroutine (the UI event loop).
// Animation completions are expected to be delivered on that same goroutine.
package reorder
