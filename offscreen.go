package tview

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type cell struct {
	text  string
	style tcell.Style
	dw    uint8
	cont  bool
	gen   uint32
}

// frame stores one logical render frame.
//
// Cells are generation-tagged, so a new frame can start without physically
// clearing the entire backing slice. A cell is considered present only when its
// generation matches the frame generation.
type frame struct {
	width  int
	height int

	gen   uint32
	cells []cell
}

func newFrame(width, height int) *frame {
	width, height = max(width, 0), max(height, 0)
	return &frame{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		gen:    1,
	}
}

// Clear starts a new generation, dropping every cell written so far.
func (f *frame) Clear() {
	f.gen++
	if f.gen != 0 {
		return
	}
	for i := range f.cells {
		f.cells[i].gen = 0
	}
	f.gen = 1
}

func (f *frame) putCellText(x int, y int, text string, style tcell.Style, dw uint8, cont bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}

	// A narrow write over the lead of a wide grapheme drops its old tail.
	index := y*f.width + x
	prev := f.cells[index]
	if prev.gen == f.gen && !prev.cont && prev.dw > 1 {
		for i := x + 1; i < min(x+int(prev.dw), f.width); i++ {
			f.cells[y*f.width+i] = cell{}
		}
	}

	f.cells[index] = cell{text: text, style: style, dw: dw, cont: cont, gen: f.gen}
}

func (f *frame) cellAt(x, y int) (c cell, ok bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return cell{}, false
	}
	c = f.cells[y*f.width+x]
	if c.gen != f.gen {
		return cell{}, false
	}
	return c, true
}

func widthToCellDW(width int) uint8 {
	if width <= 0 {
		return 1
	}
	if width > 255 {
		return 255
	}
	return uint8(width)
}

// offscreen is a tcell.Screen that renders into a frame instead of a
// terminal. Rows are drawn into one to take the snapshot used as a drag proxy.
// Only the drawing subset of tcell.Screen is implemented; everything else
// falls through to the embedded (nil) screen.
type offscreen struct {
	tcell.Screen
	frame        *frame
	defaultStyle tcell.Style
}

func newOffscreen(width, height int) *offscreen {
	return &offscreen{frame: newFrame(width, height)}
}

func (s *offscreen) Size() (int, int) {
	return s.frame.width, s.frame.height
}

func (s *offscreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	text := string(primary)
	if len(combining) > 0 {
		text += string(combining)
	}
	s.Put(x, y, text, style)
}

func (s *offscreen) Clear() {
	s.frame.Clear()
}

func (s *offscreen) Fill(r rune, style tcell.Style) {
	for y := 0; y < s.frame.height; y++ {
		for x := 0; x < s.frame.width; x++ {
			s.frame.putCellText(x, y, string(r), style, 1, false)
		}
	}
}

func (s *offscreen) SetStyle(style tcell.Style) {
	s.defaultStyle = style
}

func (s *offscreen) ShowCursor(int, int) {}

func (s *offscreen) HideCursor() {}

func (s *offscreen) Get(x, y int) (str string, style tcell.Style, width int) {
	if c, ok := s.frame.cellAt(x, y); ok {
		return c.text, c.style, max(int(c.dw), 1)
	}
	return " ", s.defaultStyle, 1
}

func (s *offscreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if str == "" {
		return "", 0
	}

	cluster, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if cluster == "" {
		r, size := utf8.DecodeRuneInString(str)
		if size == 0 {
			return "", 0
		}
		cluster = string(r)
		remain = str[size:]
		width = 1
	}
	if width <= 0 {
		return remain, 0
	}

	// Match terminal clipping behavior for wide graphemes at the right edge.
	if width > 1 && x == s.frame.width-1 {
		cluster = " "
		width = 1
	}

	s.frame.putCellText(x, y, cluster, style, widthToCellDW(width), false)
	for i := 1; i < width; i++ {
		s.frame.putCellText(x+i, y, "", style, 0, true)
	}

	return remain, width
}

func (s *offscreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, s.defaultStyle)
}

func (s *offscreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" && x < s.frame.width {
		remain, width := s.Put(x, y, str, style)
		if width <= 0 || remain == str {
			return
		}
		x += width
		str = remain
	}
}

// line returns the text of row y, with wide graphemes counted once.
func (s *offscreen) line(y int) string {
	var text []byte
	for x := 0; x < s.frame.width; x++ {
		c, ok := s.frame.cellAt(x, y)
		switch {
		case !ok:
			text = append(text, ' ')
		case c.cont:
		default:
			text = append(text, c.text...)
		}
	}
	return string(text)
}
