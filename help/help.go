// Package help renders the key bindings of one or more key maps, either as a
// single line or as aligned columns.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/tview-reorder"
	"github.com/xqrs/tview-reorder/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// Merge returns a key map listing the bindings of maps in order.
func Merge(maps ...KeyMap) KeyMap {
	return merged(maps)
}

type merged []KeyMap

func (m merged) ShortHelp() []keybind.Keybind {
	var out []keybind.Keybind
	for _, km := range m {
		out = append(out, km.ShortHelp()...)
	}
	return out
}

func (m merged) FullHelp() [][]keybind.Keybind {
	var out [][]keybind.Keybind
	for _, km := range m {
		out = append(out, km.FullHelp()...)
	}
	return out
}

const (
	shortSeparator = " • "
	fullSeparator  = "    "
	ellipsis       = "…"
)

// Help draws key binding hints. In short mode it fills one line; in full mode
// it draws one column per key group.
type Help struct {
	*tview.Box

	styles  Styles
	keyMap  KeyMap
	showAll bool
}

// New returns a help primitive for keyMap.
func New(keyMap KeyMap) *Help {
	return &Help{
		Box:    tview.NewBox(),
		styles: DefaultStyles(),
		keyMap: keyMap,
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetStyles sets help styles.
func (h *Help) SetStyles(styles Styles) *Help {
	h.styles = styles
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	for row, line := range h.lines(width) {
		if row >= height {
			break
		}
		h.drawSegments(screen, x, y+row, width, line)
	}
}

// Lines returns the plain text Draw would render at the given width.
func (h *Help) Lines(width int) []string {
	var lines []string
	for _, line := range h.lines(width) {
		var b strings.Builder
		for _, s := range line {
			b.WriteString(s.text)
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (h *Help) lines(width int) [][]segment {
	if h.keyMap == nil {
		return nil
	}
	if h.showAll {
		return h.columns(h.keyMap.FullHelp(), width)
	}
	if line := h.line(h.keyMap.ShortHelp(), width); len(line) > 0 {
		return [][]segment{line}
	}
	return nil
}

type segment struct {
	text  string
	style tcell.Style
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += tview.StringWidth(s.text)
	}
	return width
}

// line joins bindings with separators until the next one would not fit, then
// appends an ellipsis if there is room for it.
func (h *Help) line(bindings []keybind.Keybind, width int) []segment {
	var out []segment
	for _, kb := range bindings {
		item := h.item(kb)
		if len(item) == 0 {
			continue
		}
		candidate := append([]segment(nil), out...)
		if len(candidate) > 0 {
			candidate = append(candidate, segment{text: shortSeparator, style: h.styles.ShortSeparatorStyle})
		}
		candidate = append(candidate, item...)
		if width > 0 && segmentsWidth(candidate) > width {
			return h.withEllipsis(out, width)
		}
		out = candidate
	}
	return out
}

func (h *Help) item(kb keybind.Keybind) []segment {
	if !kb.Enabled() {
		return nil
	}
	hp := kb.Help()
	var out []segment
	if hp.Key != "" {
		out = append(out, segment{text: hp.Key, style: h.styles.ShortKeyStyle})
	}
	if hp.Key != "" && hp.Desc != "" {
		out = append(out, segment{text: " ", style: h.styles.ShortDescStyle})
	}
	if hp.Desc != "" {
		out = append(out, segment{text: hp.Desc, style: h.styles.ShortDescStyle})
	}
	return out
}

func (h *Help) withEllipsis(line []segment, width int) []segment {
	tail := []segment{{text: " " + ellipsis, style: h.styles.EllipsisStyle}}
	if len(line) > 0 && segmentsWidth(line)+segmentsWidth(tail) <= width {
		return append(line, tail...)
	}
	return line
}

type entry struct {
	key, desc string
}

type column struct {
	entries []entry
	keyW    int
	// Widest "key desc" row, so separators line up.
	width int
}

func (h *Help) columns(groups [][]keybind.Keybind, width int) [][]segment {
	var cols []column
	for _, group := range groups {
		var col column
		for _, kb := range group {
			hp := kb.Help()
			if !kb.Enabled() || (hp.Key == "" && hp.Desc == "") {
				continue
			}
			col.entries = append(col.entries, entry{key: hp.Key, desc: hp.Desc})
			col.keyW = max(col.keyW, tview.StringWidth(hp.Key))
		}
		for _, e := range col.entries {
			col.width = max(col.width, col.keyW+1+tview.StringWidth(e.desc))
		}
		if len(col.entries) > 0 {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return nil
	}

	// Take columns left to right while they fit.
	sepW := tview.StringWidth(fullSeparator)
	included, total := 0, 0
	for i, col := range cols {
		next := col.width
		if i > 0 {
			next += sepW
		}
		if width > 0 && total+next > width {
			break
		}
		included++
		total += next
	}
	if included == 0 {
		return [][]segment{{{text: ellipsis, style: h.styles.EllipsisStyle}}}
	}

	rows := 0
	for _, col := range cols[:included] {
		rows = max(rows, len(col.entries))
	}
	lines := make([][]segment, rows)
	for row := range lines {
		for c, col := range cols[:included] {
			if c > 0 {
				lines[row] = append(lines[row], segment{text: fullSeparator, style: h.styles.FullSeparatorStyle})
			}
			last := c == included-1
			if row >= len(col.entries) {
				if !last {
					lines[row] = append(lines[row], segment{text: strings.Repeat(" ", col.width), style: h.styles.FullDescStyle})
				}
				continue
			}
			e := col.entries[row]
			key := e.key + strings.Repeat(" ", col.keyW-tview.StringWidth(e.key))
			desc := " " + e.desc
			if !last {
				desc += strings.Repeat(" ", col.width-col.keyW-tview.StringWidth(desc))
			}
			lines[row] = append(lines[row],
				segment{text: key, style: h.styles.FullKeyStyle},
				segment{text: desc, style: h.styles.FullDescStyle})
		}
	}
	if included < len(cols) {
		lines[0] = h.withEllipsis(lines[0], width)
	}
	return lines
}

func (h *Help) drawSegments(screen tcell.Screen, x, y, width int, segments []segment) {
	remaining := width
	for _, s := range segments {
		if s.text == "" || remaining <= 0 {
			continue
		}
		_, printed := tview.PrintWithStyle(screen, s.text, x, y, remaining, tview.AlignmentLeft, s.style)
		x += printed
		remaining -= printed
	}
}
