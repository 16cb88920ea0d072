package help

import (
	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/tview-reorder"
)

type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles draws keys in the theme's secondary text color and
// descriptions in the primary one.
func DefaultStyles() Styles {
	key := tcell.StyleDefault.Foreground(tview.Styles.SecondaryTextColor)
	desc := tcell.StyleDefault.Foreground(tview.Styles.PrimaryTextColor)
	dim := tcell.StyleDefault.Foreground(tview.Styles.GraphicsColor).Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key,
		FullDescStyle:       desc,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
