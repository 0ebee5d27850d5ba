package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI colors.
type Color uint8

// Predefined colors. Board symbols are assigned colors in alphabet order.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// SymbolPalette is the color cycle used for board symbols.
var SymbolPalette = []Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// PaletteColor returns the palette color for the i-th alphabet symbol.
func PaletteColor(i int) Color {
	if i < 0 {
		return ColorDefault
	}
	return SymbolPalette[i%len(SymbolPalette)]
}
