package tview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScrollMetrics(t *testing.T) {
	assert.Equal(t, scrollMetrics{}, computeScrollMetrics(4, 4, 4, 0))
	assert.Equal(t, scrollMetrics{}, computeScrollMetrics(0, 12, 4, 0))

	m := computeScrollMetrics(4, 12, 4, 0)
	assert.Equal(t, scrollMetrics{trackCells: 4, thumbLen: 10, thumbStart: 0}, m)

	m = computeScrollMetrics(4, 12, 4, 100)
	assert.Equal(t, 22, m.thumbStart)

	// Very long content still gets a full cell of thumb.
	m = computeScrollMetrics(4, 1000, 4, 0)
	assert.Equal(t, subcell, m.thumbLen)
}

func TestSectionList_ScrollBar(t *testing.T) {
	list := newTestList()
	list.SetRect(0, 0, 20, 4)
	screen := newOffscreen(20, 4)

	list.Draw(screen)
	column := func() []string {
		var cells []string
		for y := range 4 {
			text, _, _ := screen.Get(19, y)
			cells = append(cells, text)
		}
		return cells
	}
	assert.Equal(t, []string{"█", "▔", "─", " "}, column())

	list.ScrollBy(100)
	screen.Clear()
	list.Draw(screen)
	assert.Equal(t, []string{" ", "─", "▂", "█"}, column())

	list.SetShowScrollBar(false)
	screen.Clear()
	list.Draw(screen)
	assert.Equal(t, []string{" ", "─", " ", " "}, column())
}

func TestSectionList_ScrollBarHiddenWhenContentFits(t *testing.T) {
	list := newTestList()
	screen := newOffscreen(20, 12)

	list.Draw(screen)

	for y := range 12 {
		text, _, _ := screen.Get(19, y)
		assert.Contains(t, []string{" ", BoxDrawingsLightHorizontal}, text)
	}
}
