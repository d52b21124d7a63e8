package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
	ColorDash // Tint of a dashing character (12, 177, 98)
)
