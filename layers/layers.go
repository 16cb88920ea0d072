// Package layers stacks primitives on top of each other, such as a help
// popup over a list.
package layers

import (
	"slices"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/tview-reorder"
)

// layer is one primitive in the stack and how it is placed.
type layer struct {
	name    string
	item    tview.Primitive
	resize  bool // Fill the container's inner rect on every draw.
	visible bool
	enabled bool // Receives focus and input.
	overlay bool // Styles the layers behind it while visible.

	// Size of a centred layer. Zero means the layer keeps its own rect.
	width, height int
}

// Layers is a container for primitives drawn on top of each other from back
// to front. A visible overlay layer applies a background style to the layers
// behind it and blocks their mouse input.
type Layers struct {
	*tview.Box

	layers               []*layer
	backgroundLayerStyle tcell.Style

	// Delegate passed to Focus, used to move focus when layers change.
	setFocus func(p tview.Primitive)
}

// Option configures a layer on AddLayer.
type Option func(*layer)

// WithName names the layer for ShowLayer, HideLayer and GetLayer.
func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithResize makes the layer fill the container's inner rect.
func WithResize(resize bool) Option {
	return func(l *layer) {
		l.resize = resize
	}
}

// WithCentered sizes the layer to width x height, centred in the
// container and clamped to it.
func WithCentered(width, height int) Option {
	return func(l *layer) {
		l.resize = false
		l.width, l.height = width, height
	}
}

// WithVisible sets whether the layer starts out shown.
func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

// WithEnabled sets whether the layer takes focus, keys and mouse events. A
// disabled overlay is drawn but leaves the keyboard to the layer below.
func WithEnabled(enabled bool) Option {
	return func(l *layer) {
		l.enabled = enabled
	}
}

// WithOverlay makes the layer style and block the layers behind it while it
// is visible.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// New returns a new Layers object. Layers behind an overlay are dimmed by
// default.
func New() *Layers {
	return &Layers{
		Box:                  tview.NewBox(),
		backgroundLayerStyle: tcell.StyleDefault.Dim(true),
	}
}

// AddLayer adds a layer for item on top of the existing ones. A layer with
// the same name is replaced.
func (l *Layers) AddLayer(item tview.Primitive, opts ...Option) *Layers {
	newLayer := &layer{item: item, visible: true, enabled: true}
	for _, opt := range opts {
		if opt != nil {
			opt(newLayer)
		}
	}
	if newLayer.name != "" {
		l.layers = slices.DeleteFunc(l.layers, func(existing *layer) bool {
			return existing.name == newLayer.name
		})
	}
	l.layers = append(l.layers, newLayer)
	l.refocus()
	return l
}

// ShowLayer makes a layer visible.
func (l *Layers) ShowLayer(name string) *Layers {
	return l.setVisible(name, true)
}

// HideLayer hides a layer.
func (l *Layers) HideLayer(name string) *Layers {
	return l.setVisible(name, false)
}

// ToggleLayer flips a layer's visibility.
func (l *Layers) ToggleLayer(name string) *Layers {
	return l.setVisible(name, !l.GetVisible(name))
}

func (l *Layers) setVisible(name string, visible bool) *Layers {
	if layer := l.find(name); layer != nil && layer.visible != visible {
		layer.visible = visible
		l.refocus()
	}
	return l
}

// GetVisible reports whether the named layer is shown.
func (l *Layers) GetVisible(name string) bool {
	layer := l.find(name)
	return layer != nil && layer.visible
}

// GetLayer returns the primitive of the named layer, or nil.
func (l *Layers) GetLayer(name string) tview.Primitive {
	if layer := l.find(name); layer != nil {
		return layer.item
	}
	return nil
}

// SetBackgroundLayerStyle sets the style applied to layers behind a visible
// overlay layer.
func (l *Layers) SetBackgroundLayerStyle(style tcell.Style) *Layers {
	l.backgroundLayerStyle = style
	return l
}

func (l *Layers) find(name string) *layer {
	for _, layer := range l.layers {
		if layer.name == name {
			return layer
		}
	}
	return nil
}

// refocus hands focus to the top layer if this container holds it.
func (l *Layers) refocus() {
	if l.setFocus != nil && l.HasFocus() {
		l.Focus(l.setFocus)
	}
}

// HasFocus reports whether an enabled layer or the container has focus.
func (l *Layers) HasFocus() bool {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return true
		}
	}
	return l.Box.HasFocus()
}

// Focus passes focus to the front-most visible, enabled layer.
func (l *Layers) Focus(delegate func(p tview.Primitive)) {
	if delegate == nil {
		return
	}
	l.setFocus = delegate
	if top := l.topLayer(); top != nil {
		if !top.item.HasFocus() {
			delegate(top.item)
		}
		return
	}
	l.Box.Focus(delegate)
}

// Draw places and draws the visible layers from back to front.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	overlayIndex := l.overlayIndex()
	for i, layer := range l.layers {
		if !layer.visible {
			continue
		}
		switch {
		case layer.resize:
			layer.item.SetRect(x, y, width, height)
		case layer.width > 0 && layer.height > 0:
			w, h := min(layer.width, width), min(layer.height, height)
			layer.item.SetRect(x+(width-w)/2, y+(height-h)/2, w, h)
		}
		if i < overlayIndex {
			layer.item.Draw(&overlayScreen{Screen: screen, overlay: l.backgroundLayerStyle})
		} else {
			layer.item.Draw(screen)
		}
	}
}

// MouseHandler passes mouse events to the front-most layer that handles
// them. Layers behind a visible overlay get nothing.
func (l *Layers) MouseHandler(action tview.MouseAction, event *tcell.EventMouse) (tview.Primitive, tview.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}

	overlayIndex := l.overlayIndex()
	for index := len(l.layers) - 1; index >= 0 && index >= overlayIndex; index-- {
		layer := l.layers[index]
		if !layer.visible || !layer.enabled {
			continue
		}
		if capture, cmd := layer.item.MouseHandler(action, event); capture != nil || cmd != nil {
			return capture, cmd
		}
	}
	if overlayIndex >= 0 {
		return nil, tview.ConsumeEventCommand{}
	}
	return nil, nil
}

// InputHandler passes key events to the focused layer.
func (l *Layers) InputHandler(event *tcell.EventKey) tview.Command {
	if layer := l.focusedLayer(); layer != nil {
		return layer.item.InputHandler(event)
	}
	return nil
}

// PasteHandler passes pasted text to the focused layer.
func (l *Layers) PasteHandler(text string) tview.Command {
	if layer := l.focusedLayer(); layer != nil {
		return layer.item.PasteHandler(text)
	}
	return nil
}

func (l *Layers) focusedLayer() *layer {
	for _, layer := range l.layers {
		if layer.enabled && layer.item.HasFocus() {
			return layer
		}
	}
	return nil
}

func (l *Layers) topLayer() *layer {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.enabled {
			return layer
		}
	}
	return nil
}

// overlayIndex returns the index of the top-most visible overlay layer, or
// -1. Only one overlay is applied at a time.
func (l *Layers) overlayIndex() int {
	for index := len(l.layers) - 1; index >= 0; index-- {
		layer := l.layers[index]
		if layer.visible && layer.overlay {
			return index
		}
	}
	return -1
}

// overlayScreen restyles everything drawn through it.
type overlayScreen struct {
	tcell.Screen
	overlay tcell.Style
}

func (s *overlayScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, applyBackgroundStyle(style, s.overlay))
}

func (s *overlayScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	return s.Screen.Put(x, y, str, applyBackgroundStyle(style, s.overlay))
}

func (s *overlayScreen) PutStr(x, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *overlayScreen) PutStrStyled(x, y int, str string, style tcell.Style) {
	s.Screen.PutStrStyled(x, y, str, applyBackgroundStyle(style, s.overlay))
}

// applyBackgroundStyle layers overlay on top of base. Colors replace only
// when set and attributes are only ever added.
func applyBackgroundStyle(base tcell.Style, overlay tcell.Style) tcell.Style {
	if fg := overlay.GetForeground(); fg != tcell.ColorDefault {
		base = base.Foreground(fg)
	}
	if bg := overlay.GetBackground(); bg != tcell.ColorDefault {
		base = base.Background(bg)
	}
	if overlay.HasBold() {
		base = base.Bold(true)
	}
	if overlay.HasDim() {
		base = base.Dim(true)
	}
	if overlay.HasItalic() {
		base = base.Italic(true)
	}
	if overlay.HasReverse() {
		base = base.Reverse(true)
	}
	return base
}
