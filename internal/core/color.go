package core

// Color represents a foreground color for a screen cell.
// The terminal frontend maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorOrange
	ColorGray
)

// pawnColors gives each seat a distinct color, in seat order.
var pawnColors = [...]Color{ColorCyan, ColorMagenta, ColorYellow, ColorGreen}

// PawnColor returns the color for pawn i. Indices beyond the palette wrap.
func PawnColor(i int) Color {
	if i < 0 {
		return ColorDefault
	}
	return pawnColors[i%len(pawnColors)]
}
