package reorder

import (
	"fmt"

	"github.com/google/uuid"
)

// Controller turns long-press-and-drag gesture phases into row moves on a
// Host. Each controller owns its own drag session; controllers attached to
// different lists never interfere.
type Controller struct {
	host     Host
	animator Animator
	listener Listener
	opts     Options
	logger   Logger

	// session is nil while idle.
	session *session
	// retiring is the last ended session. Its animations may still be
	// running; it is settled when the next drag begins.
	retiring *session
	// vetoed swallows the remaining ticks of a gesture whose start was
	// refused by the listener.
	vetoed bool
}

// NewController returns a controller for host. A nil listener is replaced by
// NopListener.
func NewController(host Host, animator Animator, listener Listener, opts ...Option) (*Controller, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if animator == nil {
		return nil, ErrNilAnimator
	}
	if listener == nil {
		listener = NopListener{}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = nopLogger{}
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("new reorder controller: %w", err)
	}

	return &Controller{
		host:     host,
		animator: animator,
		listener: listener,
		opts:     o,
		logger:   o.Logger,
	}, nil
}

// Options returns the controller's effective options.
func (c *Controller) Options() Options {
	return c.opts
}

// SetListener replaces the listener. A nil listener restores NopListener.
func (c *Controller) SetListener(listener Listener) *Controller {
	if listener == nil {
		listener = NopListener{}
	}
	c.listener = listener
	return c
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// InitialPosition returns the index the active drag started at.
func (c *Controller) InitialPosition() (RowIndex, bool) {
	if c.session == nil {
		return RowIndex{}, false
	}
	return c.session.initial, true
}

// CurrentPosition returns the index currently occupied by the dragged row.
func (c *Controller) CurrentPosition() (RowIndex, bool) {
	if c.session == nil {
		return RowIndex{}, false
	}
	return c.session.current, true
}

// Cancel ends an active drag as if the gesture had been cancelled at the last
// known pointer position.
func (c *Controller) Cancel() {
	if s := c.session; s != nil {
		c.Handle(PhaseCancelled, s.pointer)
	}
}

// Handle processes one gesture tick.
func (c *Controller) Handle(phase Phase, p Point) {
	if phase == PhaseBegan {
		c.vetoed = false
	}
	if c.vetoed {
		if phase.Terminal() {
			c.vetoed = false
		}
		return
	}

	hovered, onRow := c.host.IndexAt(p)
	c.notifyOverlap(p, hovered, onRow)

	switch {
	case phase == PhaseBegan:
		c.begin(p, hovered, onRow)
	case phase == PhaseChanged:
		c.change(p, hovered, onRow)
	case phase.Terminal():
		c.end(phase, p, hovered, onRow)
	}
}

func (c *Controller) notifyOverlap(p Point, hovered RowIndex, onRow bool) {
	var initial, current, hover *RowIndex
	section := -1
	if s := c.session; s != nil {
		i, cur := s.initial, s.current
		initial, current = &i, &cur
		section = s.initial.Section
	}
	if onRow {
		h := hovered
		hover = &h
		if section < 0 {
			section = hovered.Section
		}
	}
	if section < 0 {
		section = c.headerAt(p)
	}
	c.listener.OverlappedIndex(initial, current, hover, c.overHeader(section, p))
}

// headerAt returns the section whose header contains p, or -1. Headers are
// probed in order until the host reports no more sections.
func (c *Controller) headerAt(p Point) int {
	for section := 0; ; section++ {
		header, ok := c.host.HeaderFrame(section)
		if !ok {
			return -1
		}
		if HeaderContains(header, p, c.opts.RowHitTestMargin) {
			return section
		}
	}
}

func (c *Controller) overHeader(section int, p Point) bool {
	if section < 0 {
		return false
	}
	header, ok := c.host.HeaderFrame(section)
	return ok && HeaderContains(header, p, c.opts.RowHitTestMargin)
}

func (c *Controller) begin(p Point, index RowIndex, onRow bool) {
	if c.session != nil {
		c.logger.Warn("gesture began while a drag is active", "session", c.session.id)
		return
	}
	if !onRow {
		c.logger.Debug("drag not started: no row under pointer", "x", p.X, "y", p.Y)
		return
	}
	if !c.listener.StartReorderingRow(index) {
		c.vetoed = true
		c.logger.Debug("drag vetoed by listener", "index", index.String())
		return
	}
	// Finish the previous drag before indexes start moving again. Only one
	// proxy may be live at a time.
	c.retire()

	frame, ok := c.host.RowFrame(index)
	if !ok {
		c.logger.Warn("drag not started: row is not laid out", "index", index.String())
		return
	}
	proxy, ok := c.host.Snapshot(index)
	if !ok || proxy == nil {
		c.logger.Warn("drag not started: row snapshot failed", "index", index.String())
		return
	}

	s := &session{
		id:             uuid.NewString(),
		initial:        index,
		current:        index,
		proxy:          proxy,
		origin:         frame,
		pointer:        p,
		proxyAnimating: true,
	}
	start := frame.Center()
	c.placeProxy(s, start, 0, 1)
	c.host.AddOverlay(proxy)
	c.session = s
	c.logger.Debug("drag began", "session", s.id, "index", index.String())

	scale := float64(c.opts.PopOutScale)
	c.animator.Animate(c.opts.LiftDuration, func(t float64) {
		if s.settled {
			return
		}
		if s.proxyAlive() && !s.dropping {
			c.placeProxy(s, lerpPoint(start, c.follow(s), t), t, lerp(1, scale, t))
		}
		if !s.pendingReveal && !s.revealed {
			c.host.SetRowAlpha(s.current, 1-t)
		}
	}, func() {
		c.liftFinished(s)
	})
}

func (c *Controller) liftFinished(s *session) {
	s.proxyAnimating = false
	if s.settled {
		return
	}
	if s.pendingReveal {
		s.pendingReveal = false
		c.logger.Debug("lift finished after drop; revealing row", "session", s.id)
		c.reveal(s)
		return
	}
	if !s.revealed {
		c.host.SetRowHidden(s.current, true)
	}
}

func (c *Controller) change(p Point, hovered RowIndex, onRow bool) {
	s := c.session
	if s == nil {
		return
	}
	s.pointer = p
	if s.proxyAlive() {
		c.placeProxy(s, c.follow(s), s.proxyAlpha, s.proxyScale)
	}

	if !onRow {
		return
	}
	if !c.listener.AllowChangingRow(hovered) {
		c.logger.Debug("move refused by listener", "session", s.id, "index", hovered.String())
		return
	}
	if hovered.Section != s.initial.Section || hovered == s.current {
		return
	}
	cell, ok := c.host.RowFrame(hovered)
	if !ok || !Crosses(s.current, hovered, cell, p.Y, c.opts.RowHitTestMargin) {
		return
	}

	c.listener.PositionChanged(s.current, hovered)
	c.host.MoveRow(s.current, hovered)
	c.logger.Debug("row moved", "session", s.id, "from", s.current.String(), "to", hovered.String())
	s.current = hovered
}

func (c *Controller) end(phase Phase, p Point, hovered RowIndex, onRow bool) {
	s := c.session
	if s == nil {
		return
	}
	c.session = nil
	s.pointer = p
	c.logger.Debug("drag ended", "session", s.id, "phase", phase.String(),
		"initial", s.initial.String(), "final", s.current.String())

	if s.proxyAnimating {
		s.pendingReveal = true
	} else {
		c.reveal(s)
	}

	s.dropping = true
	c.retiring = s
	if target, ok := c.host.RowFrame(s.current); ok {
		from := s.proxy.Frame().Center()
		fromAlpha, fromScale := s.proxyAlpha, s.proxyScale
		c.animator.Animate(c.opts.DropDuration, func(t float64) {
			if !s.settled && s.proxyAlive() {
				c.placeProxy(s, lerpPoint(from, target.Center(), t), lerp(fromAlpha, 0, t), lerp(fromScale, 1, t))
			}
		}, func() {
			c.discardProxy(s)
		})
	} else {
		c.logger.Warn("row frame unavailable at drop", "session", s.id, "index", s.current.String())
		c.discardProxy(s)
	}

	c.listener.ReorderFinished(s.initial, s.current)

	if phase != PhaseEnded {
		return
	}
	if c.overHeader(s.initial.Section, p) {
		c.listener.GestureEndedOnHeader(s.initial)
		return
	}
	if onRow && hovered != s.current {
		if cell, ok := c.host.RowFrame(hovered); ok && Crosses(s.current, hovered, cell, p.Y, c.opts.RowHitTestMargin) {
			c.listener.GestureEndedOnIndex(s.initial, hovered)
		}
	}
}

// reveal makes the dragged row visible again and fades it in. It runs at most
// once per session.
func (c *Controller) reveal(s *session) {
	if s.revealed {
		return
	}
	s.revealed = true
	s.fading = true
	index := s.current
	c.host.SetRowHidden(index, false)
	c.host.SetRowAlpha(index, 0)
	c.animator.Animate(c.opts.DropDuration, func(t float64) {
		if !s.settled {
			c.host.SetRowAlpha(index, t)
		}
	}, func() {
		s.fading = false
	})
}

// follow returns where the proxy centre should be for the latest pointer.
func (c *Controller) follow(s *session) Point {
	if c.opts.RestrictMovementAxis {
		return Point{X: s.origin.Center().X, Y: s.pointer.Y}
	}
	return s.pointer
}

func (c *Controller) placeProxy(s *session, center Point, alpha, scale float64) {
	s.proxyAlpha, s.proxyScale = alpha, scale
	s.proxy.SetCenter(center)
	s.proxy.SetAlpha(alpha)
	s.proxy.SetScale(scale)
}

func (c *Controller) discardProxy(s *session) {
	if s.proxy == nil {
		return
	}
	c.host.RemoveOverlay(s.proxy)
	s.proxy = nil
}

// retire settles the last ended session: a reveal still waiting for the lift
// happens now, a running fade-in jumps to full alpha and the proxy goes away.
func (c *Controller) retire() {
	s := c.retiring
	if s == nil {
		return
	}
	c.retiring = nil
	s.settled = true
	if !s.revealed || s.fading {
		if !s.revealed {
			c.logger.Debug("revealing row of previous drag early", "session", s.id)
			c.host.SetRowHidden(s.current, false)
		}
		s.revealed, s.pendingReveal, s.fading = true, false, false
		c.host.SetRowAlpha(s.current, 1)
	}
	c.discardProxy(s)
}
