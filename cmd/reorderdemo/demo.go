package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/tview-reorder"
	"github.com/xqrs/tview-reorder/help"
	"github.com/xqrs/tview-reorder/keybind"
	"github.com/xqrs/tview-reorder/layers"
	"github.com/xqrs/tview-reorder/reorder"
)

const (
	appName   = "reorderdemo"
	mainLayer = "main"
	helpLayer = "help"
)

// newDemo builds the root primitive: the main view with a help popup layered
// above it.
func newDemo(app *tview.Application, cfg Config, logger reorder.Logger) (*layers.Layers, error) {
	list := tview.NewSectionList().
		SetHeaderHeight(cfg.List.HeaderHeight).
		SetShowSecondaryText(cfg.List.ShowSecondaryText).
		SetShowScrollBar(cfg.List.ScrollBar).
		SetKeyMap(cfg.Keys.List)
	list.SetSections(cfg.ListSections())
	if borderSet := borderSets[strings.ToLower(cfg.List.Border)]; borderSet != nil {
		list.SetBorders(tview.BordersAll)
		list.SetBorderSet(borderSet())
	}
	list.SetTitle(" hold a row to drag it ")
	list.SetMovedFunc(func(from, to reorder.RowIndex) {
		logger.Info("row moved", "from", from.String(), "to", to.String())
	})

	root := layers.New()
	v := &view{
		Box:    tview.NewBox(),
		app:    app,
		list:   list,
		help:   help.New(help.Merge(cfg.Keys.App, cfg.Keys.List)),
		layers: root,
		keys:   cfg.Keys.App,
		status: "ready",
	}
	listener := &tracker{
		list:   list,
		locked: cfg.Locked(),
		logger: logger,
		status: v.setStatus,
	}

	opts, err := cfg.Reorder.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, reorder.WithLogger(logger))
	if _, err := tview.AttachReordering(app, list, listener, opts...); err != nil {
		return nil, err
	}

	fullHelp := help.New(help.Merge(cfg.Keys.App, cfg.Keys.List)).SetShowAll(true)
	fullHelp.SetBorders(tview.BordersAll)
	fullHelp.SetBorderSet(tview.BorderSetRound())
	fullHelp.SetBorderPadding(0, 0, 1, 1)
	fullHelp.SetTitle(" keys ")
	width, height := popupSize(fullHelp)

	root.AddLayer(v, layers.WithName(mainLayer), layers.WithResize(true))
	root.AddLayer(fullHelp,
		layers.WithName(helpLayer),
		layers.WithCentered(width, height),
		layers.WithVisible(false),
		layers.WithEnabled(false),
		layers.WithOverlay(),
	)
	return root, nil
}

// popupSize returns the size the full help needs, including its border and
// padding.
func popupSize(h *help.Help) (width, height int) {
	lines := h.Lines(0)
	for _, line := range lines {
		width = max(width, tview.StringWidth(line))
	}
	return width + 4, len(lines) + 2
}

// view is the main layer: the list, a status line and a one-line help bar.
type view struct {
	*tview.Box

	app    *tview.Application
	list   *tview.SectionList
	help   *help.Help
	layers *layers.Layers
	keys   AppKeys
	status string
}

func (v *view) setStatus(status string) {
	v.status = status
}

// Draw draws this primitive onto the screen.
func (v *view) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)

	x, y, width, height := v.GetInnerRect()
	v.list.SetRect(x, y, width, max(height-2, 0))
	v.list.Draw(screen)
	if height < 2 {
		return
	}

	statusStyle := tcell.StyleDefault.Foreground(tview.Styles.TertiaryTextColor)
	tview.PrintWithStyle(screen, v.status, x+1, y+height-2, width-2, tview.AlignmentLeft, statusStyle)

	v.help.SetRect(x+1, y+height-1, width-2, 1)
	v.help.Draw(screen)
}

func (v *view) HasFocus() bool {
	return v.list.HasFocus() || v.Box.HasFocus()
}

func (v *view) Focus(delegate func(p tview.Primitive)) {
	delegate(v.list)
}

// InputHandler handles the demo's own keys and passes the rest to the list.
func (v *view) InputHandler(event *tcell.EventKey) tview.Command {
	switch {
	case keybind.Matches(event, v.keys.Quit):
		return tview.QuitCommand{}
	case keybind.Matches(event, v.keys.Help):
		v.layers.ToggleLayer(helpLayer)
		return tview.AppendCommand(tview.RedrawCommand{}, v.title())
	case keybind.Matches(event, v.keys.Redraw):
		v.app.Sync()
		return tview.RedrawCommand{}
	}

	if cmd := v.list.InputHandler(event); cmd != nil {
		return cmd
	}
	// Cancel closes the help popup when no drag is active.
	if v.layers.GetVisible(helpLayer) && keybind.Matches(event, v.list.KeyMap().Cancel) {
		v.layers.HideLayer(helpLayer)
		return tview.AppendCommand(tview.RedrawCommand{}, v.title())
	}
	return nil
}

// title names the terminal window after what is on screen.
func (v *view) title() tview.SetTitleCommand {
	if v.layers.GetVisible(helpLayer) {
		return appName + ": keys"
	}
	return appName
}

func (v *view) MouseHandler(action tview.MouseAction, event *tcell.EventMouse) (tview.Primitive, tview.Command) {
	if !v.InRect(event.Position()) {
		return nil, nil
	}
	return v.list.MouseHandler(action, event)
}

// tracker reports drag events on the status line and keeps locked rows in
// place.
type tracker struct {
	reorder.NopListener

	list   *tview.SectionList
	locked map[string]bool
	logger reorder.Logger
	status func(string)
}

func (t *tracker) text(index reorder.RowIndex) string {
	row, _ := t.list.Row(index)
	return row.MainText
}

func (t *tracker) StartReorderingRow(index reorder.RowIndex) bool {
	if !t.NopListener.StartReorderingRow(index) {
		return false
	}
	if text := t.text(index); t.locked[text] {
		t.status(fmt.Sprintf("%q is locked", text))
		return false
	}
	t.status(fmt.Sprintf("lifted %q", t.text(index)))
	return true
}

// AllowChangingRow keeps the dragged row from displacing a locked one.
func (t *tracker) AllowChangingRow(index reorder.RowIndex) bool {
	return !t.locked[t.text(index)]
}

func (t *tracker) PositionChanged(current, proposed reorder.RowIndex) {
	t.status(fmt.Sprintf("%q %s → %s", t.text(current), current, proposed))
}

func (t *tracker) ReorderFinished(initial, final reorder.RowIndex) {
	text := t.text(final)
	if initial == final {
		t.status(fmt.Sprintf("%q dropped in place", text))
		return
	}
	t.status(fmt.Sprintf("%q moved %s → %s", text, initial, final))
}

func (t *tracker) GestureEndedOnHeader(initial reorder.RowIndex) {
	title := t.list.Sections()[initial.Section].Title
	t.status(fmt.Sprintf("dropped on the %q header", title))
}

func (t *tracker) GestureEndedOnIndex(initial, end reorder.RowIndex) {
	t.logger.Info("gesture ended past the last move", "initial", initial.String(), "end", end.String())
}

func (t *tracker) OverlappedIndex(initial, current, hovered *reorder.RowIndex, overHeader bool) {
	if overHeader {
		t.logger.Debug("pointer over section header")
	}
}
