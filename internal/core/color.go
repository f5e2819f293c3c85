package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI 256-color codes.
type Color uint8

// Colors used by the clip preview.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorYellow
	ColorGray
)
