package tview

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
	"github.com/xqrs/tview-reorder/keybind"
	"github.com/xqrs/tview-reorder/reorder"
)

// SectionRow is one row of a SectionList. Rows with secondary text are two
// lines high when secondary text is shown.
type SectionRow struct {
	MainText      string
	SecondaryText string
}

// Section is a titled group of rows.
type Section struct {
	Title string
	Rows  []SectionRow
}

type sectionRow struct {
	SectionRow

	// Set while the row is being dragged; the row leaves a blank gap.
	hidden bool
	// 1 is fully drawn, below 1 draws dimmed, 0 draws nothing.
	alpha float64
}

type section struct {
	title string
	rows  []*sectionRow
}

// SectionListKeyMap holds the key bindings of a SectionList.
type SectionListKeyMap struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Top      keybind.Keybind
	Bottom   keybind.Keybind
	// Cancel aborts an active drag.
	Cancel keybind.Keybind
}

// DefaultSectionListKeyMap returns the default bindings.
func DefaultSectionListKeyMap() SectionListKeyMap {
	return SectionListKeyMap{
		Up:       keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:     keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		PageUp:   keybind.NewKeybind(keybind.WithKeys("pgup"), keybind.WithHelp("pgup", "page up")),
		PageDown: keybind.NewKeybind(keybind.WithKeys("pgdn"), keybind.WithHelp("pgdn", "page down")),
		Top:      keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "first row")),
		Bottom:   keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "last row")),
		Cancel:   keybind.NewKeybind(keybind.WithKeys("esc"), keybind.WithHelp("esc", "cancel drag")),
	}
}

// ShortHelp returns the bindings shown in single-line help.
func (k SectionListKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.Cancel}
}

// FullHelp returns the bindings grouped into help columns.
func (k SectionListKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Cancel},
	}
}

// noCursor is the cursor of a list without a selection.
var noCursor = reorder.RowIndex{Section: -1, Row: -1}

// SectionList displays rows grouped into titled sections. It implements
// reorder.Host, so rows can be dragged into a new order with
// AttachReordering.
type SectionList struct {
	*Box

	sections      []*section
	headerHeight  int
	showSecondary bool

	// Lines scrolled off the top of the inner rect.
	scroll int
	cursor reorder.RowIndex

	keys SectionListKeyMap

	mainStyle      tcell.Style
	secondaryStyle tcell.Style
	headerStyle    tcell.Style
	ruleStyle      tcell.Style
	selectedStyle  tcell.Style
	handleStyle    tcell.Style

	changed func(index reorder.RowIndex)
	moved   func(from, to reorder.RowIndex)

	// Drag proxies, drawn above the rows.
	overlays []*dragProxy
	gesture  *LongPressRecognizer

	scrollBar *ScrollBar // nil when hidden
}

// NewSectionList returns an empty list. Section headers are three lines high:
// a spacer, the title and a rule.
func NewSectionList() *SectionList {
	return &SectionList{
		Box:            NewBox(),
		headerHeight:   3,
		showSecondary:  true,
		cursor:         noCursor,
		keys:           DefaultSectionListKeyMap(),
		mainStyle:      tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		secondaryStyle: tcell.StyleDefault.Foreground(Styles.TertiaryTextColor),
		headerStyle:    tcell.StyleDefault.Foreground(Styles.SecondaryTextColor).Bold(true),
		ruleStyle:      tcell.StyleDefault.Foreground(Styles.GraphicsColor).Dim(true),
		selectedStyle:  tcell.StyleDefault.Background(Styles.ContrastBackgroundColor),
		handleStyle:    tcell.StyleDefault.Foreground(Styles.GraphicsColor).Dim(true),
		scrollBar:      NewScrollBar(),
	}
}

// SetShowScrollBar sets whether a scroll bar is drawn in the rightmost column
// when the content does not fit.
func (l *SectionList) SetShowScrollBar(show bool) *SectionList {
	if !show {
		l.scrollBar = nil
	} else if l.scrollBar == nil {
		l.scrollBar = NewScrollBar()
	}
	return l
}

// SetSections replaces all sections. The cursor and scroll position are reset.
func (l *SectionList) SetSections(sections []Section) *SectionList {
	l.sections = l.sections[:0]
	for _, s := range sections {
		l.AddSection(s.Title, s.Rows...)
	}
	l.cursor = noCursor
	l.scroll = 0
	return l
}

// AddSection appends a section.
func (l *SectionList) AddSection(title string, rows ...SectionRow) *SectionList {
	sec := &section{title: title}
	for _, row := range rows {
		sec.rows = append(sec.rows, &sectionRow{SectionRow: row, alpha: 1})
	}
	l.sections = append(l.sections, sec)
	return l
}

// Sections returns the current sections, in display order.
func (l *SectionList) Sections() []Section {
	out := make([]Section, len(l.sections))
	for s, sec := range l.sections {
		out[s].Title = sec.title
		for _, row := range sec.rows {
			out[s].Rows = append(out[s].Rows, row.SectionRow)
		}
	}
	return out
}

// Row returns the row at index.
func (l *SectionList) Row(index reorder.RowIndex) (SectionRow, bool) {
	row := l.row(index)
	if row == nil {
		return SectionRow{}, false
	}
	return row.SectionRow, true
}

func (l *SectionList) row(index reorder.RowIndex) *sectionRow {
	if index.Section < 0 || index.Section >= len(l.sections) {
		return nil
	}
	rows := l.sections[index.Section].rows
	if index.Row < 0 || index.Row >= len(rows) {
		return nil
	}
	return rows[index.Row]
}

// SetHeaderHeight sets the height of section headers in lines. With one line
// only the title is drawn; with two a rule follows; with more, spacer lines
// come first.
func (l *SectionList) SetHeaderHeight(lines int) *SectionList {
	l.headerHeight = max(lines, 1)
	return l
}

// SetShowSecondaryText sets whether rows show their secondary text on a
// second line.
func (l *SectionList) SetShowSecondaryText(show bool) *SectionList {
	l.showSecondary = show
	return l
}

// SetKeyMap replaces the key bindings.
func (l *SectionList) SetKeyMap(keys SectionListKeyMap) *SectionList {
	l.keys = keys
	return l
}

// KeyMap returns the key bindings.
func (l *SectionList) KeyMap() SectionListKeyMap {
	return l.keys
}

// SetSelectedStyle sets the style of the row under the cursor.
func (l *SectionList) SetSelectedStyle(style tcell.Style) *SectionList {
	l.selectedStyle = style
	return l
}

// SetHeaderStyle sets the style of section titles.
func (l *SectionList) SetHeaderStyle(style tcell.Style) *SectionList {
	l.headerStyle = style
	return l
}

// SetChangedFunc sets a handler that is called when the cursor changes.
func (l *SectionList) SetChangedFunc(handler func(index reorder.RowIndex)) *SectionList {
	l.changed = handler
	return l
}

// SetMovedFunc sets a handler that is called after a row was moved, so the
// application can mirror the new order in its own model.
func (l *SectionList) SetMovedFunc(handler func(from, to reorder.RowIndex)) *SectionList {
	l.moved = handler
	return l
}

// SetGestureRecognizer routes mouse input through recognizer before the
// list's own handling. AttachReordering installs one.
func (l *SectionList) SetGestureRecognizer(recognizer *LongPressRecognizer) *SectionList {
	l.gesture = recognizer
	return l
}

// Cursor returns the selected row, if any.
func (l *SectionList) Cursor() (reorder.RowIndex, bool) {
	return l.cursor, l.row(l.cursor) != nil
}

// SetCursor selects the row at index and scrolls it into view.
func (l *SectionList) SetCursor(index reorder.RowIndex) *SectionList {
	if l.row(index) == nil {
		return l
	}
	if l.cursor != index {
		l.cursor = index
		l.ensureCursorVisible()
		if l.changed != nil {
			l.changed(index)
		}
	}
	return l
}

// NextRow moves the cursor to the next row, crossing into the next section
// when needed.
func (l *SectionList) NextRow() bool {
	order := l.order()
	if len(order) == 0 {
		return false
	}
	pos := l.orderPosition(order)
	if pos+1 >= len(order) {
		return false
	}
	l.SetCursor(order[pos+1])
	return true
}

// PrevRow moves the cursor to the previous row.
func (l *SectionList) PrevRow() bool {
	order := l.order()
	pos := l.orderPosition(order)
	if pos <= 0 {
		return false
	}
	l.SetCursor(order[pos-1])
	return true
}

// order lists every row index in display order.
func (l *SectionList) order() []reorder.RowIndex {
	var order []reorder.RowIndex
	for s, sec := range l.sections {
		for r := range sec.rows {
			order = append(order, reorder.RowIndex{Section: s, Row: r})
		}
	}
	return order
}

func (l *SectionList) orderPosition(order []reorder.RowIndex) int {
	for i, index := range order {
		if index == l.cursor {
			return i
		}
	}
	return -1
}

// ScrollBy scrolls the list by the given number of lines. Positive values
// scroll down.
func (l *SectionList) ScrollBy(lines int) *SectionList {
	_, _, _, height := l.GetInnerRect()
	l.scroll = l.clampScroll(l.scroll+lines, height)
	return l
}

// ScrollOffset returns the number of lines scrolled off the top.
func (l *SectionList) ScrollOffset() int {
	return l.scroll
}

func (l *SectionList) clampScroll(scroll, height int) int {
	return max(min(scroll, l.contentHeight()-height), 0)
}

func (l *SectionList) rowHeight(row *sectionRow) int {
	if l.showSecondary && row.SecondaryText != "" {
		return 2
	}
	return 1
}

// headerTop returns the content line at which a section's header starts.
func (l *SectionList) headerTop(section int) int {
	line := 0
	for s := 0; s < section; s++ {
		line += l.headerHeight
		for _, row := range l.sections[s].rows {
			line += l.rowHeight(row)
		}
	}
	return line
}

// rowSpan returns the first content line and the height of a row.
func (l *SectionList) rowSpan(index reorder.RowIndex) (top, height int) {
	top = l.headerTop(index.Section) + l.headerHeight
	rows := l.sections[index.Section].rows
	for r := 0; r < index.Row; r++ {
		top += l.rowHeight(rows[r])
	}
	return top, l.rowHeight(rows[index.Row])
}

func (l *SectionList) contentHeight() int {
	return l.headerTop(len(l.sections))
}

func (l *SectionList) ensureCursorVisible() {
	if l.row(l.cursor) == nil {
		return
	}
	_, _, _, height := l.GetInnerRect()
	if height <= 0 {
		return
	}
	top, rowHeight := l.rowSpan(l.cursor)
	if l.cursor.Row == 0 {
		// Keep the section title in view with its first row.
		top = l.headerTop(l.cursor.Section)
		rowHeight += l.headerHeight
	}
	if top < l.scroll {
		l.scroll = top
	} else if top+rowHeight > l.scroll+height {
		l.scroll = top + rowHeight - height
	}
	l.scroll = l.clampScroll(l.scroll, height)
}

// Draw draws this primitive onto the screen.
func (l *SectionList) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	l.scroll = l.clampScroll(l.scroll, height)

	clipped := newClippedScreen(screen, x, y, width, height)
	line := y - l.scroll
	for s, sec := range l.sections {
		if line < y+height && line+l.headerHeight > y {
			l.drawHeader(clipped, sec.title, x, line, width)
		}
		line += l.headerHeight
		for r, row := range sec.rows {
			rowHeight := l.rowHeight(row)
			visible := line < y+height && line+rowHeight > y
			if visible && !row.hidden && row.alpha > 0 {
				selected := l.HasFocus() && l.cursor == reorder.RowIndex{Section: s, Row: r}
				l.drawRow(clipped, row, x, line, width, selected, row.alpha < 1)
			}
			line += rowHeight
		}
	}

	if l.scrollBar != nil {
		l.scrollBar.SetLengths(l.contentHeight(), height).SetOffset(l.scroll)
		l.scrollBar.SetRect(x+width-1, y, 1, height)
		l.scrollBar.Draw(screen)
	}

	for _, proxy := range l.overlays {
		proxy.draw(clipped)
	}
}

func (l *SectionList) drawHeader(screen tcell.Screen, title string, x, y, width int) {
	titleY := y
	if l.headerHeight >= 2 {
		ruleY := y + l.headerHeight - 1
		titleY = ruleY - 1
		for i := 0; i < width; i++ {
			screen.Put(x+i, ruleY, BoxDrawingsLightHorizontal, l.ruleStyle)
		}
	}
	printWithStyle(screen, title, x+1, titleY, width-2, AlignmentLeft, l.headerStyle, true)
}

// drawRow draws row with its top-left corner at (x, y). It fills its own
// background so it can be drawn into an empty snapshot buffer.
func (l *SectionList) drawRow(screen tcell.Screen, row *sectionRow, x, y, width int, selected, dimmed bool) {
	background := tcell.StyleDefault.Background(l.background)
	if selected {
		background = l.selectedStyle
	}
	height := l.rowHeight(row)
	for line := y; line < y+height; line++ {
		for i := 0; i < width; i++ {
			screen.Put(x+i, line, " ", background)
		}
	}

	mainStyle, secondaryStyle, handleStyle := l.mainStyle, l.secondaryStyle, l.handleStyle
	if dimmed {
		mainStyle, secondaryStyle, handleStyle = mainStyle.Dim(true), secondaryStyle.Dim(true), handleStyle.Dim(true)
	}
	textWidth := width - 4
	printWithStyle(screen, row.MainText, x+1, y, textWidth, AlignmentLeft, mainStyle, true)
	if height > 1 {
		printWithStyle(screen, row.SecondaryText, x+1, y+1, textWidth, AlignmentLeft, secondaryStyle, true)
	}
	if width >= 3 {
		for line := y; line < y+height; line++ {
			screen.Put(x+width-2, line, BoxDrawingsHeavyQuadrupleDashVertical, handleStyle.Background(background.GetBackground()))
		}
	}
}

// InputHandler handles cursor movement and drag cancellation.
func (l *SectionList) InputHandler(event *tcell.EventKey) Command {
	keys := l.keys
	_, _, _, height := l.GetInnerRect()

	switch {
	case keybind.Matches(event, keys.Cancel):
		if l.gesture == nil || !l.gesture.Active() {
			return nil
		}
		l.gesture.Cancel()
	case keybind.Matches(event, keys.Up):
		l.PrevRow()
	case keybind.Matches(event, keys.Down):
		l.NextRow()
	case keybind.Matches(event, keys.PageUp):
		l.ScrollBy(-max(height, 1))
	case keybind.Matches(event, keys.PageDown):
		l.ScrollBy(max(height, 1))
	case keybind.Matches(event, keys.Top):
		if order := l.order(); len(order) > 0 {
			l.SetCursor(order[0])
		}
	case keybind.Matches(event, keys.Bottom):
		if order := l.order(); len(order) > 0 {
			l.SetCursor(order[len(order)-1])
		}
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler handles clicks, the wheel and, with a gesture recognizer
// installed, long-press drags.
func (l *SectionList) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	return l.handleMouse(action, x, y)
}

func (l *SectionList) handleMouse(action MouseAction, x, y int) (Primitive, Command) {
	// A pressed or dragging pointer is captured, even outside the list.
	if l.gesture != nil && l.gesture.Tracking() {
		l.gesture.HandleMouse(action, x, y)
		if l.gesture.Tracking() {
			return l, RedrawCommand{}
		}
		return nil, RedrawCommand{}
	}

	if !l.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		var capture Primitive
		if l.gesture != nil && l.InInnerRect(x, y) {
			if _, onRow := l.IndexAt(cellCenter(x, y)); onRow {
				l.gesture.HandleMouse(action, x, y)
				capture = l
			}
		}
		return capture, SetFocusCommand{Target: l}
	case MouseLeftClick:
		if index, ok := l.IndexAt(cellCenter(x, y)); ok {
			l.SetCursor(index)
			return nil, RedrawCommand{}
		}
		return nil, ConsumeEventCommand{}
	case MouseScrollUp:
		l.ScrollBy(-3)
		return nil, RedrawCommand{}
	case MouseScrollDown:
		l.ScrollBy(3)
		return nil, RedrawCommand{}
	}

	return nil, nil
}

// Blur cancels an active drag when the list loses focus.
func (l *SectionList) Blur() {
	if l.gesture != nil {
		l.gesture.Cancel()
	}
	l.Box.Blur()
}

var _ Primitive = &SectionList{}

type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}
