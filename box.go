package tview

import "github.com/gdamore/tcell/v3"

// Box is the base of every primitive in this package: a rectangle with a
// background, optional borders, a title and padding. Primitives embed it and
// draw their content inside GetInnerRect.
type Box struct {
	x, y, width, height int

	// Cached inner rect; inner.valid is reset whenever something that
	// affects it changes.
	inner struct {
		valid               bool
		x, y, width, height int
	}

	paddingTop, paddingBottom, paddingLeft, paddingRight int

	background tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title      string
	titleStyle tcell.Style

	hasFocus bool
}

// NewBox returns a borderless box.
func NewBox() *Box {
	return &Box{
		width:       15,
		height:      10,
		background:  Styles.PrimitiveBackgroundColor,
		borderSet:   BorderSetPlain(),
		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		titleStyle:  tcell.StyleDefault.Foreground(Styles.TitleColor),
	}
}

// SetBorderPadding sets the space between the borders and the content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	b.inner.valid = false
	return b
}

// GetRect returns x, y, width and height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the rectangle left for content once borders, title
// and padding are taken away. Width and height are never negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if !b.inner.valid {
		x, y, width, height := b.x, b.y, b.width, b.height
		if b.title != "" || b.borders.Has(BordersTop) {
			y, height = y+1, height-1
		}
		if b.borders.Has(BordersBottom) {
			height--
		}
		if b.borders.Has(BordersLeft) {
			x, width = x+1, width-1
		}
		if b.borders.Has(BordersRight) {
			width--
		}
		b.inner.x = x + b.paddingLeft
		b.inner.y = y + b.paddingTop
		b.inner.width = max(width-b.paddingLeft-b.paddingRight, 0)
		b.inner.height = max(height-b.paddingTop-b.paddingBottom, 0)
		b.inner.valid = true
	}
	return b.inner.x, b.inner.y, b.inner.width, b.inner.height
}

// SetRect places the box.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x, b.y, b.width, b.height = x, y, width, height
		b.inner.valid = false
	}
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler focuses the box on a left press.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// InRect reports whether the cell (x, y) is inside the box.
func (b *Box) InRect(x, y int) bool {
	return within(x, y, b.x, b.y, b.width, b.height)
}

// InInnerRect reports whether the cell (x, y) is inside the content area.
func (b *Box) InInnerRect(x, y int) bool {
	innerX, innerY, width, height := b.GetInnerRect()
	return within(x, y, innerX, innerY, width, height)
}

func within(x, y, rectX, rectY, width, height int) bool {
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(borders Borders) *Box {
	b.borders = borders
	b.inner.valid = false
	return b
}

// SetBorderSet sets the glyphs the borders are drawn with.
func (b *Box) SetBorderSet(set BorderSet) *Box {
	b.borderSet = set
	return b
}

// SetTitle sets the title shown centred in the top line. A title reserves
// the top line even without a top border.
func (b *Box) SetTitle(title string) *Box {
	b.title = title
	b.inner.valid = false
	return b
}

// Draw draws the box.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the box for the primitive p that embeds it. The
// border turns bold while p has focus.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	fill := tcell.StyleDefault.Background(b.background)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.Put(x, y, " ", fill)
		}
	}

	style := b.borderStyle
	if p != nil && p.HasFocus() {
		style = style.Bold(true)
	}
	b.drawBorders(screen, style)

	if b.title != "" && b.width >= 4 {
		if printed, _ := printWithStyle(screen, b.title, b.x+1, b.y, b.width-2, AlignmentCenter, b.titleStyle, true); printed > 0 && printed < len(b.title) {
			_, existing, _ := screen.Get(b.x+b.width-2, b.y)
			Print(screen, SemigraphicsHorizontalEllipsis, b.x+b.width-2, b.y, 1, AlignmentLeft, existing.GetForeground())
		}
	}
}

func (b *Box) drawBorders(screen tcell.Screen, style tcell.Style) {
	if b.borders == BordersNone || b.width < 2 || b.height < 2 {
		return
	}
	left, top := b.x, b.y
	right, bottom := b.x+b.width-1, b.y+b.height-1
	set := b.borderSet

	for x := left + 1; x < right; x++ {
		if b.borders.Has(BordersTop) {
			screen.Put(x, top, set.Top, style)
		}
		if b.borders.Has(BordersBottom) {
			screen.Put(x, bottom, set.Bottom, style)
		}
	}
	for y := top + 1; y < bottom; y++ {
		if b.borders.Has(BordersLeft) {
			screen.Put(left, y, set.Left, style)
		}
		if b.borders.Has(BordersRight) {
			screen.Put(right, y, set.Right, style)
		}
	}

	corners := []struct {
		borders Borders
		x, y    int
		glyph   string
	}{
		{BordersTop | BordersLeft, left, top, set.TopLeft},
		{BordersTop | BordersRight, right, top, set.TopRight},
		{BordersBottom | BordersLeft, left, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders.Has(c.borders) {
			screen.Put(c.x, c.y, c.glyph, style)
		}
	}
}

// Focus marks the box as focused.
func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
}

// Blur marks the box as unfocused.
func (b *Box) Blur() {
	b.hasFocus = false
}

// HasFocus reports whether the box has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}
