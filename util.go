package tview

import "github.com/gdamore/tcell/v3"

// Alignment is the horizontal placement of printed text.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text in color on line y, within maxWidth cells starting at x.
// The background already on screen is kept. It returns the number of bytes
// and cells printed.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	return printWithStyle(screen, text, x, y, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
}

// PrintWithStyle works like [Print] but takes a full style, background
// included.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	return printWithStyle(screen, text, x, y, maxWidth, alignment, style, false)
}

// printWithStyle prints text that does not fit by dropping clusters at the
// end for left alignment, at the start for right alignment and at both ends
// for centred text. With keepBackground the background of each cell written
// is taken from the screen instead of style.
func printWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style, keepBackground bool) (printedBytes, printedWidth int) {
	screenWidth, screenHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= screenHeight {
		return 0, 0
	}

	clusters := graphemes(text)
	var total int
	for _, g := range clusters {
		total += g.width
	}

	switch alignment {
	case AlignmentRight:
		for len(clusters) > 0 && total > maxWidth {
			total -= clusters[0].width
			clusters = clusters[1:]
		}
		x, maxWidth = x+maxWidth-total, total
	case AlignmentCenter:
		for excess := (total - maxWidth) / 2; len(clusters) > 0 && excess > 0; clusters = clusters[1:] {
			excess -= clusters[0].width
			total -= clusters[0].width
		}
		if total < maxWidth {
			x, maxWidth = x+maxWidth/2-total/2, total
		}
	}

	right := min(x+maxWidth, screenWidth)
	for _, g := range clusters {
		if x+g.width > right {
			break
		}
		if g.width > 0 {
			cellStyle := style
			if keepBackground {
				_, existing, _ := screen.Get(x, y)
				cellStyle = cellStyle.Background(existing.GetBackground())
			}
			// Clear the cells a wide cluster covers before putting it.
			for i := g.width - 1; i > 0; i-- {
				screen.Put(x+i, y, " ", cellStyle)
			}
			screen.Put(x, y, g.text, cellStyle)
		}
		x += g.width
		printedBytes += len(g.text)
		printedWidth += g.width
	}
	return printedBytes, printedWidth
}
