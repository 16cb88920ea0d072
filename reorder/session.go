package reorder

// session is the state of one drag. A Controller holds at most one session;
// a nil session means Idle, so its fields are always either all present or
// all absent.
type session struct {
	id string

	initial RowIndex
	current RowIndex

	proxy  ProxyView
	origin Rect
	// pointer is the latest pointer position, used as the lift target.
	pointer Point
	// Last values applied to the proxy, the starting point of the drop.
	proxyAlpha float64
	proxyScale float64

	// proxyAnimating is true until the lift animation completes.
	proxyAnimating bool
	// pendingReveal is set when the gesture ended before the lift completed;
	// the lift completion then performs the reveal.
	pendingReveal bool
	// revealed guards against revealing the row twice.
	revealed bool
	// fading is true while the reveal fade-in runs.
	fading bool
	// dropping is set once the drop animation owns the proxy.
	dropping bool
	// settled is set when a newer drag takes over. Animation callbacks of a
	// settled session no longer touch the host, since its indexes may now
	// name other rows.
	settled bool
}

func (s *session) proxyAlive() bool {
	return s.proxy != nil
}
