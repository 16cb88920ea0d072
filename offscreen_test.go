package tview

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestOffscreen_PutAndGet(t *testing.T) {
	screen := newOffscreen(6, 2)
	style := tcell.StyleDefault.Bold(true)

	screen.PutStrStyled(1, 0, "ab", style)

	text, got, width := screen.Get(1, 0)
	assert.Equal(t, "a", text)
	assert.True(t, got.HasBold())
	assert.Equal(t, 1, width)
	assert.Equal(t, " ab   ", screen.line(0))

	// Out of range writes are dropped.
	screen.Put(10, 0, "x", style)
	screen.Put(0, 5, "x", style)
	assert.Equal(t, "      ", screen.line(1))
}

func TestOffscreen_WideGraphemes(t *testing.T) {
	screen := newOffscreen(4, 1)

	screen.PutStr(0, 0, "界a")
	text, _, width := screen.Get(0, 0)
	assert.Equal(t, "界", text)
	assert.Equal(t, 2, width)
	assert.Equal(t, "界a ", screen.line(0))

	// A narrow write over the lead drops the tail.
	screen.Put(0, 0, "x", tcell.StyleDefault)
	assert.Equal(t, "x a ", screen.line(0))

	// Wide graphemes do not fit in the last column.
	screen.Put(3, 0, "界", tcell.StyleDefault)
	assert.Equal(t, "x a ", screen.line(0))
}

func TestOffscreen_Clear(t *testing.T) {
	screen := newOffscreen(3, 1)
	screen.PutStr(0, 0, "abc")

	screen.Clear()
	assert.Equal(t, "   ", screen.line(0))

	screen.Fill('-', tcell.StyleDefault)
	assert.Equal(t, "---", screen.line(0))

	w, h := screen.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)
}

func TestClippedScreen(t *testing.T) {
	screen := newOffscreen(6, 3)
	clipped := newClippedScreen(screen, 1, 1, 3, 1)

	clipped.PutStr(0, 1, "abcdef")
	clipped.Put(2, 0, "x", tcell.StyleDefault)

	assert.Equal(t, "      ", screen.line(0))
	assert.Equal(t, " bcd  ", screen.line(1))
}
