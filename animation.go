package tview

import "time"

// AfterFunc runs f on the event loop once d has elapsed and redraws the
// screen afterwards. The returned function cancels the timer; it reports false
// if f was already handed to the event loop.
func (a *Application) AfterFunc(d time.Duration, f func()) (stop func() bool) {
	timer := time.AfterFunc(d, func() {
		a.post(queuedUpdate{f: f, draw: true})
	})
	return timer.Stop
}

// Animate calls step with a progress in [0, 1] about 30 times per second for
// duration d, then step(1) followed by completion. Every call happens on the
// event loop and is followed by a redraw. A non-positive duration finishes
// synchronously. Nothing is called once the application stops.
func (a *Application) Animate(d time.Duration, step func(progress float64), completion func()) {
	finish := func() {
		if step != nil {
			step(1)
		}
		if completion != nil {
			completion()
		}
	}
	if d <= 0 {
		finish()
		return
	}

	go func() {
		start := time.Now()
		ticker := time.NewTicker(animationFrame)
		defer ticker.Stop()
		for {
			select {
			case <-a.done:
				return
			case now := <-ticker.C:
				progress := float64(now.Sub(start)) / float64(d)
				if progress >= 1 {
					a.post(queuedUpdate{f: finish, draw: true})
					return
				}
				if step != nil && !a.post(queuedUpdate{f: func() { step(progress) }, draw: true}) {
					return
				}
			}
		}
	}()
}
