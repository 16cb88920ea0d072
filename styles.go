package tview

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	ContrastBackgroundColor  tcell.Color // Selected rows.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	GraphicsColor            tcell.Color // Rules, drag handles and scroll bars.
	PrimaryTextColor         tcell.Color // Row text.
	SecondaryTextColor       tcell.Color // Section titles.
	TertiaryTextColor        tcell.Color // Secondary row text.
}

// Styles defines the theme for applications. Change it before creating
// primitives.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	ContrastBackgroundColor:  color.Blue,
	BorderColor:              color.White,
	TitleColor:               color.White,
	GraphicsColor:            color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Yellow,
	TertiaryTextColor:        color.Green,
}
