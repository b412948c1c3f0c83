package core

// Color is the foreground color of a screen cell. The platform maps each
// value to an ANSI 256-color code; games never deal with escape sequences.
type Color uint8

// Screen colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorOrange
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// Cell is one character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
	Bold  bool
}

// blank is what Clear writes.
var blank = Cell{Rune: ' '}
