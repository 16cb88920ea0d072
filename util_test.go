package tview

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintWithStyle(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		width     int
		alignment Alignment
		want      string
		bytes     int
	}{
		{"left", "ab", 6, AlignmentLeft, "ab    ", 2},
		{"left truncated", "abcdef", 3, AlignmentLeft, "abc   ", 3},
		{"right", "abc", 5, AlignmentRight, "  abc ", 3},
		{"right truncated", "abcdef", 3, AlignmentRight, "def   ", 3},
		{"center", "ab", 6, AlignmentCenter, "  ab  ", 2},
		{"center truncated", "abcdef", 4, AlignmentCenter, "bcde  ", 4},
		{"wide cluster does not split", "a界", 2, AlignmentLeft, "a     ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newOffscreen(6, 1)
			bytes, width := PrintWithStyle(screen, tt.text, 0, 0, tt.width, tt.alignment, tcell.StyleDefault)
			assert.Equal(t, tt.want, screen.line(0))
			assert.Equal(t, tt.bytes, bytes)
			assert.Equal(t, StringWidth(tt.text[:bytes]), width)
		})
	}
}

func TestPrint_KeepsBackground(t *testing.T) {
	screen := newOffscreen(4, 1)
	screen.Fill(' ', tcell.StyleDefault.Background(color.Blue))

	Print(screen, "hi", 0, 0, 4, AlignmentLeft, color.Yellow)

	text, style, _ := screen.Get(1, 0)
	assert.Equal(t, "i", text)
	assert.Equal(t, color.Blue, style.GetBackground())
	assert.Equal(t, color.Yellow, style.GetForeground())
}

func TestPrint_OffScreen(t *testing.T) {
	screen := newOffscreen(4, 1)

	bytes, width := Print(screen, "hi", 0, 3, 4, AlignmentLeft, color.Yellow)
	assert.Zero(t, bytes)
	assert.Zero(t, width)

	bytes, _ = Print(screen, "hi", 0, 0, 0, AlignmentLeft, color.Yellow)
	assert.Zero(t, bytes)
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 0, StringWidth(""))
	assert.Equal(t, 3, StringWidth("a界"))
	assert.Len(t, graphemes("éx"), 2)
}
