package tview

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/tview-reorder/reorder"
)

var _ reorder.Host = (*SectionList)(nil)

// cellCenter returns the pointer position of a mouse event at cell (x, y).
func cellCenter(x, y int) reorder.Point {
	return reorder.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// IndexAt returns the row under p. Points are in screen cells.
func (l *SectionList) IndexAt(p reorder.Point) (reorder.RowIndex, bool) {
	x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
	if !l.InInnerRect(x, y) {
		return reorder.RowIndex{}, false
	}
	_, innerY, _, _ := l.GetInnerRect()
	target := y - innerY + l.scroll

	line := 0
	for s, sec := range l.sections {
		line += l.headerHeight
		if target < line {
			return reorder.RowIndex{}, false
		}
		for r, row := range sec.rows {
			line += l.rowHeight(row)
			if target < line {
				return reorder.RowIndex{Section: s, Row: r}, true
			}
		}
	}
	return reorder.RowIndex{}, false
}

// RowFrame returns the screen frame of a row. Rows scrolled out of view still
// have a frame above or below the inner rect.
func (l *SectionList) RowFrame(index reorder.RowIndex) (reorder.Rect, bool) {
	if l.row(index) == nil {
		return reorder.Rect{}, false
	}
	top, height := l.rowSpan(index)
	return l.contentRect(top, height), true
}

// HeaderFrame returns the screen frame of a section header.
func (l *SectionList) HeaderFrame(section int) (reorder.Rect, bool) {
	if section < 0 || section >= len(l.sections) {
		return reorder.Rect{}, false
	}
	return l.contentRect(l.headerTop(section), l.headerHeight), true
}

func (l *SectionList) contentRect(top, height int) reorder.Rect {
	x, y, width, _ := l.GetInnerRect()
	return reorder.Rect{
		X:      float64(x),
		Y:      float64(y + top - l.scroll),
		Width:  float64(width),
		Height: float64(height),
	}
}

// MoveRow moves a row within its section. The cursor stays on the row it was
// on.
func (l *SectionList) MoveRow(from, to reorder.RowIndex) {
	if from.Section != to.Section || l.row(from) == nil || l.row(to) == nil || from == to {
		return
	}
	var selected *sectionRow
	if l.cursor.Section == from.Section {
		selected = l.row(l.cursor)
	}

	sec := l.sections[from.Section]
	row := sec.rows[from.Row]
	sec.rows = slices.Delete(sec.rows, from.Row, from.Row+1)
	sec.rows = slices.Insert(sec.rows, to.Row, row)

	if selected != nil {
		l.cursor.Row = slices.Index(sec.rows, selected)
	}
	if l.moved != nil {
		l.moved(from, to)
	}
}

// Snapshot copies the row's cells into a drag proxy placed over the row.
func (l *SectionList) Snapshot(index reorder.RowIndex) (reorder.ProxyView, bool) {
	row := l.row(index)
	if row == nil {
		return nil, false
	}
	frame, _ := l.RowFrame(index)
	width, height := int(frame.Width), int(frame.Height)
	if width <= 0 || height <= 0 {
		return nil, false
	}

	cells := newOffscreen(width, height)
	l.drawRow(cells, row, 0, 0, width, false, false)
	return &dragProxy{cells: cells, frame: frame, alpha: 1, scale: 1}, true
}

// AddOverlay shows a proxy created by Snapshot.
func (l *SectionList) AddOverlay(view reorder.ProxyView) {
	proxy, ok := view.(*dragProxy)
	if !ok || slices.Contains(l.overlays, proxy) {
		return
	}
	l.overlays = append(l.overlays, proxy)
}

// RemoveOverlay removes a proxy.
func (l *SectionList) RemoveOverlay(view reorder.ProxyView) {
	proxy, ok := view.(*dragProxy)
	if !ok {
		return
	}
	l.overlays = slices.DeleteFunc(l.overlays, func(p *dragProxy) bool { return p == proxy })
}

// SetRowHidden hides or shows a row. A hidden row leaves a blank gap.
func (l *SectionList) SetRowHidden(index reorder.RowIndex, hidden bool) {
	if row := l.row(index); row != nil {
		row.hidden = hidden
	}
}

// SetRowAlpha sets a row's opacity. Terminal cells have no opacity, so any
// value below 1 draws the row dimmed and 0 leaves it blank.
func (l *SectionList) SetRowAlpha(index reorder.RowIndex, alpha float64) {
	if row := l.row(index); row != nil {
		row.alpha = max(min(alpha, 1), 0)
	}
}

// dragProxy is a detached copy of a row's cells that follows the pointer.
type dragProxy struct {
	cells *offscreen
	frame reorder.Rect
	alpha float64
	scale float64
}

func (p *dragProxy) Frame() reorder.Rect {
	return p.frame
}

func (p *dragProxy) SetCenter(c reorder.Point) {
	p.frame.X = c.X - p.frame.Width/2
	p.frame.Y = c.Y - p.frame.Height/2
}

func (p *dragProxy) SetAlpha(alpha float64) {
	p.alpha = max(min(alpha, 1), 0)
}

func (p *dragProxy) SetScale(scale float64) {
	p.scale = scale
}

// draw paints the proxy. Scaling widens it around its centre by repeating
// the edge cells' background; it never shrinks below the row width.
func (p *dragProxy) draw(screen tcell.Screen) {
	if p.alpha <= 0 {
		return
	}
	width, height := p.cells.Size()
	scaled := max(int(math.Round(float64(width)*p.scale)), width)
	pad := (scaled - width) / 2
	left := int(math.Round(p.frame.X)) - pad
	top := int(math.Round(p.frame.Y))

	for row := 0; row < height; row++ {
		_, leftStyle, _ := p.cells.Get(0, row)
		_, rightStyle, _ := p.cells.Get(width-1, row)
		for col := 0; col < scaled; col++ {
			src := col - pad
			switch {
			case src < 0:
				screen.Put(left+col, top+row, " ", p.style(leftStyle))
			case src >= width:
				screen.Put(left+col, top+row, " ", p.style(rightStyle))
			default:
				c, ok := p.cells.cellAt(src, row)
				if ok && c.cont {
					continue
				}
				text, style, _ := p.cells.Get(src, row)
				screen.Put(left+col, top+row, text, p.style(style))
			}
		}
	}
}

// style maps the proxy's alpha to a cell style: a lifted proxy is drawn in
// reverse video, a fading one dimmed.
func (p *dragProxy) style(style tcell.Style) tcell.Style {
	if p.alpha >= 0.5 {
		return style.Reverse(true)
	}
	return style.Dim(true)
}
