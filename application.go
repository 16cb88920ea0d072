package tview

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	updatesQueueSize = 100
	// Resizes arriving faster than this are coalesced into one more redraw.
	redrawPause    = 50 * time.Millisecond
	animationFrame = time.Second / 30
)

// queuedUpdate is a function to run on the event loop. done, if set, is
// signalled after f returns; draw redraws the screen after f.
type queuedUpdate struct {
	f    func()
	done chan struct{}
	draw bool
}

// Application owns the screen and runs the event loop. Key, paste and mouse
// events go to the root primitive; timers, animations and QueueUpdate calls
// are serialized onto the same goroutine, so primitives never need locks.
//
//	app := tview.NewApplication().EnableMouse(true).SetRoot(root)
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
type Application struct {
	sync.RWMutex

	screen      tcell.Screen
	root        Primitive
	focus       Primitive
	enableMouse bool
	forceRedraw bool

	updates chan queuedUpdate
	// done is closed by Stop.
	done    chan struct{}
	stopped bool

	// Event loop state, only touched by Run.
	mouse     mouseTracker
	capture   Primitive
	paste     *strings.Builder
	lastDraw  time.Time
	drawTimer *time.Timer
}

// NewApplication returns an application without a screen. Run creates one.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updatesQueueSize),
		done:    make(chan struct{}),
	}
}

// SetScreen makes the application draw to screen instead of creating a
// terminal screen in Run. It has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// EnableMouse asks the terminal to report mouse events, which dragging rows
// needs. Call it before Run.
func (a *Application) EnableMouse(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enableMouse = enable
	return a
}

// Run initializes the screen and handles events until Stop is called. The
// terminal is owned by the application while it runs, so log to a file.
func (a *Application) Run() error {
	screen, err := a.initScreen()
	if err != nil {
		return err
	}
	// A panic would leave the terminal in raw mode.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()
	events := screen.EventQ()
	for {
		select {
		case event := <-events:
			if event == nil {
				return nil
			}
			if err, ok := event.(*tcell.EventError); ok {
				a.Stop()
				return err
			}
			if a.handleEvent(event) {
				a.draw()
			}
		case update := <-a.updates:
			update.f()
			if update.draw {
				a.draw()
			}
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}
}

func (a *Application) initScreen() (tcell.Screen, error) {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		if err := screen.Init(); err != nil {
			return nil, err
		}
		a.screen = screen
	}
	if a.enableMouse {
		a.screen.EnableMouse()
	}
	return a.screen, nil
}

// handleEvent dispatches one terminal event and reports whether to redraw.
func (a *Application) handleEvent(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventKey:
		if a.paste != nil {
			a.collectPaste(event)
			return false
		}
		if root := a.focusedRoot(); root != nil {
			return a.executeCommand(root.InputHandler(event))
		}
	case *tcell.EventPaste:
		if event.Start() {
			a.paste = &strings.Builder{}
			return false
		}
		text := ""
		if a.paste != nil {
			text = a.paste.String()
		}
		a.paste = nil
		if root := a.focusedRoot(); root != nil && text != "" {
			return a.executeCommand(root.PasteHandler(text))
		}
	case *tcell.EventResize:
		a.handleResize()
		return true
	case *tcell.EventMouse:
		x, y := event.Position()
		redraw := false
		for _, action := range a.mouse.actions(x, y, event.Buttons(), time.Now()) {
			if a.fireMouse(action, event) {
				redraw = true
			}
		}
		return redraw
	}
	return false
}

func (a *Application) collectPaste(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		a.paste.WriteString(event.Str())
	case tcell.KeyEnter:
		a.paste.WriteByte('\n')
	case tcell.KeyTab:
		a.paste.WriteByte('\t')
	}
}

func (a *Application) focusedRoot() Primitive {
	a.RLock()
	defer a.RUnlock()
	if a.root == nil || !a.root.HasFocus() {
		return nil
	}
	return a.root
}

// handleResize forces a full redraw and, when resizes arrive in a burst,
// schedules one more so the last size is drawn after the burst settles.
func (a *Application) handleResize() {
	a.Lock()
	a.forceRedraw = true
	a.Unlock()
	if time.Since(a.lastDraw) < redrawPause {
		if a.drawTimer != nil {
			a.drawTimer.Stop()
		}
		a.drawTimer = time.AfterFunc(redrawPause, func() {
			a.post(queuedUpdate{f: func() {}, draw: true})
		})
	}
	a.lastDraw = time.Now()
}

// fireMouse sends action to the capturing primitive or, without one, to the
// root. The handler's capture replaces the current one.
func (a *Application) fireMouse(action MouseAction, event *tcell.EventMouse) bool {
	target := a.capture
	if target == nil {
		a.RLock()
		target = a.root
		a.RUnlock()
	}
	if target == nil {
		return false
	}
	capture, cmd := target.MouseHandler(action, event)
	a.capture = capture
	return a.executeCommand(cmd)
}

// Stop ends Run and restores the terminal. Pending timers and animations are
// dropped.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if !a.stopped {
		a.stopped = true
		close(a.done)
	}
	if a.screen != nil {
		a.screen.Fini()
		a.screen = nil
	}
}

// draw lays the root out over the whole screen and draws it.
func (a *Application) draw() {
	a.Lock()
	screen, root, full := a.screen, a.root, a.forceRedraw
	a.forceRedraw = false
	a.Unlock()
	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// tcell only sends changed cells on Show, so a clear is kept for forced
	// redraws.
	if full {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// Sync redraws the whole terminal on the next loop iteration, for when its
// contents got corrupted.
func (a *Application) Sync() *Application {
	a.post(queuedUpdate{f: func() {
		a.Lock()
		screen := a.screen
		a.forceRedraw = true
		a.Unlock()
		if screen != nil {
			screen.Sync()
		}
	}})
	return a
}

// SetRoot sets the primitive that fills the screen and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	a.forceRedraw = a.screen != nil
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus blurs the focused primitive and focuses p. p may pass focus on to
// a child through the delegate it is given.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	previous := a.focus
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()

	if previous != nil {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(child Primitive) {
			a.SetFocus(child)
		})
	}
	return a
}

// GetFocus returns the focused primitive, or nil.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and waits for it, or for the
// application to stop. Use it to touch primitives from other goroutines.
func (a *Application) QueueUpdate(f func()) *Application {
	a.queueAndWait(queuedUpdate{f: f})
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws afterwards.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	a.queueAndWait(queuedUpdate{f: f, draw: true})
	return a
}

func (a *Application) queueAndWait(update queuedUpdate) {
	update.done = make(chan struct{}, 1)
	if !a.post(update) {
		return
	}
	select {
	case <-update.done:
	case <-a.done:
	}
}

// post queues update without waiting for it. It reports false if the
// application stopped first.
func (a *Application) post(update queuedUpdate) bool {
	select {
	case <-a.done:
		return false
	default:
	}
	select {
	case a.updates <- update:
		return true
	case <-a.done:
		return false
	}
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			redraw = a.executeCommand(item) || redraw
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil || a.GetFocus() == c.Target {
			return false
		}
		a.SetFocus(c.Target)
		return true
	case SetTitleCommand:
		a.RLock()
		screen := a.screen
		a.RUnlock()
		if screen != nil {
			screen.SetTitle(string(c))
		}
	}
	return false
}
