package tview

import "github.com/gdamore/tcell/v3"

// subcell is the number of thumb steps per cell.
const subcell = 8

// Fractional thumb glyphs, indexed by the number of filled eighths minus one.
var (
	thumbLower = [subcell]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}
	thumbUpper = [subcell]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"}
)

// ScrollBar draws a vertical scroll indicator one cell wide. Only the thumb
// is drawn, so whatever is beneath the track stays visible. It is hidden when
// the content fits.
type ScrollBar struct {
	*Box

	contentLen  int
	viewportLen int
	offset      int

	thumbStyle tcell.Style
}

// NewScrollBar returns a new vertical scroll bar.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.GraphicsColor).Dim(true),
	}
}

// SetLengths sets the content and viewport lengths in lines.
func (s *ScrollBar) SetLengths(content, viewport int) *ScrollBar {
	s.contentLen = max(content, 0)
	s.viewportLen = max(viewport, 0)
	return s
}

// SetOffset sets the number of lines scrolled off the top.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

type scrollMetrics struct {
	trackCells int
	thumbLen   int
	thumbStart int
}

// computeScrollMetrics returns the thumb position in subcell units, or a zero
// thumb when there is nothing to scroll.
func computeScrollMetrics(trackCells, contentLen, viewportLen, offset int) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen <= 0 || contentLen <= viewportLen {
		return scrollMetrics{}
	}

	viewportLen = max(viewportLen, 1)
	maxOffset := contentLen - viewportLen
	offset = min(max(offset, 0), maxOffset)

	// The thumb stays proportional to the visible share of the content but
	// never shrinks below one cell.
	thumbLen := min(max((trackLen*viewportLen)/contentLen, subcell), trackLen)
	thumbStart := ((trackLen - thumbLen) * offset) / maxOffset
	return scrollMetrics{trackCells: trackCells, thumbLen: thumbLen, thumbStart: thumbStart}
}

// cellFill returns which part of cell cellIndex the thumb covers, as a start
// and a length in subcell units.
func cellFill(m scrollMetrics, cellIndex int) (start, fillLen int) {
	cellStart := cellIndex * subcell
	start = max(m.thumbStart, cellStart)
	end := min(m.thumbStart+m.thumbLen, cellStart+subcell)
	if end <= start {
		return 0, 0
	}
	return start - cellStart, end - start
}

func thumbGlyph(start, fillLen int) string {
	if start == 0 && fillLen < subcell {
		return thumbUpper[fillLen-1]
	}
	return thumbLower[fillLen-1]
}

// Draw draws the thumb.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	x, y, _, height := s.GetRect()
	m := computeScrollMetrics(height, s.contentLen, s.viewportLen, s.offset)
	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		if fillLen == 0 {
			continue
		}
		_, existing, _ := screen.Get(x, y+cell)
		screen.Put(x, y+cell, thumbGlyph(start, fillLen), s.thumbStyle.Background(existing.GetBackground()))
	}
}

var _ Primitive = &ScrollBar{}
