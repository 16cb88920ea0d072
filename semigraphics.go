package tview

// Glyphs used for borders, section rules and drag handles.
const (
	SemigraphicsHorizontalEllipsis = "…"

	BoxDrawingsLightHorizontal            = "─"
	BoxDrawingsHeavyHorizontal            = "━"
	BoxDrawingsLightVertical              = "│"
	BoxDrawingsHeavyVertical              = "┃"
	BoxDrawingsHeavyQuadrupleDashVertical = "┋"
	BoxDrawingsLightDownAndRight          = "┌"
	BoxDrawingsHeavyDownAndRight          = "┏"
	BoxDrawingsLightDownAndLeft           = "┐"
	BoxDrawingsHeavyDownAndLeft           = "┓"
	BoxDrawingsLightUpAndRight            = "└"
	BoxDrawingsHeavyUpAndRight            = "┗"
	BoxDrawingsLightUpAndLeft             = "┘"
	BoxDrawingsHeavyUpAndLeft             = "┛"
	BoxDrawingsDoubleHorizontal           = "═"
	BoxDrawingsDoubleVertical             = "║"
	BoxDrawingsDoubleDownAndRight         = "╔"
	BoxDrawingsDoubleDownAndLeft          = "╗"
	BoxDrawingsDoubleUpAndRight           = "╚"
	BoxDrawingsDoubleUpAndLeft            = "╝"
	BoxDrawingsLightArcDownAndRight       = "╭"
	BoxDrawingsLightArcDownAndLeft        = "╮"
	BoxDrawingsLightArcUpAndLeft          = "╯"
	BoxDrawingsLightArcUpAndRight         = "╰"
)
