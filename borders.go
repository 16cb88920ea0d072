package tview

// BorderSet holds the glyphs a Box draws its borders with.
type BorderSet struct {
	Top, Bottom, Left, Right                   string
	TopLeft, TopRight, BottomLeft, BottomRight string
}

func borderSet(horizontal, vertical, topLeft, topRight, bottomLeft, bottomRight string) BorderSet {
	return BorderSet{
		Top:         horizontal,
		Bottom:      horizontal,
		Left:        vertical,
		Right:       vertical,
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
	}
}

// BorderSetPlain draws thin lines with square corners.
func BorderSetPlain() BorderSet {
	return borderSet(BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightDownAndRight, BoxDrawingsLightDownAndLeft,
		BoxDrawingsLightUpAndRight, BoxDrawingsLightUpAndLeft)
}

// BorderSetRound draws thin lines with rounded corners.
func BorderSetRound() BorderSet {
	return borderSet(BoxDrawingsLightHorizontal, BoxDrawingsLightVertical,
		BoxDrawingsLightArcDownAndRight, BoxDrawingsLightArcDownAndLeft,
		BoxDrawingsLightArcUpAndRight, BoxDrawingsLightArcUpAndLeft)
}

// BorderSetThick draws heavy lines.
func BorderSetThick() BorderSet {
	return borderSet(BoxDrawingsHeavyHorizontal, BoxDrawingsHeavyVertical,
		BoxDrawingsHeavyDownAndRight, BoxDrawingsHeavyDownAndLeft,
		BoxDrawingsHeavyUpAndRight, BoxDrawingsHeavyUpAndLeft)
}

// BorderSetDouble draws double lines.
func BorderSetDouble() BorderSet {
	return borderSet(BoxDrawingsDoubleHorizontal, BoxDrawingsDoubleVertical,
		BoxDrawingsDoubleDownAndRight, BoxDrawingsDoubleDownAndLeft,
		BoxDrawingsDoubleUpAndRight, BoxDrawingsDoubleUpAndLeft)
}

// Borders is a set of box sides.
type Borders uint8

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll          = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether all sides in flag are set.
func (b Borders) Has(flag Borders) bool {
	return b&flag == flag
}
