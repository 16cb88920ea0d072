package tview

import "github.com/rivo/uniseg"

// grapheme is one user-perceived character and the cells it occupies.
type grapheme struct {
	text  string
	width int
}

// graphemes splits s into grapheme clusters.
func graphemes(s string) []grapheme {
	var (
		out        []grapheme
		cluster    string
		boundaries int
		state      = -1
	)
	for s != "" {
		cluster, s, boundaries, state = uniseg.StepString(s, state)
		out = append(out, grapheme{text: cluster, width: boundaries >> uniseg.ShiftWidth})
	}
	return out
}

// StringWidth returns the number of cells s occupies when printed.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
