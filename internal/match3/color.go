package match3

import "fmt"

// Color is the color of a single tile. The zero value is Empty, which only
// appears on the board between a remove step and the refill that follows it.
type Color uint8

// Tile colors.
const (
	Empty Color = iota
	Red
	Green
	Blue
	Yellow
	Purple
	Orange
	Cyan
)

// MaxColors is the number of distinct non-empty colors available to a palette.
const MaxColors = 7

var colorNames = [...]string{"empty", "red", "green", "blue", "yellow", "purple", "orange", "cyan"}

var colorLetters = [...]byte{'.', 'R', 'G', 'B', 'Y', 'P', 'O', 'C'}

// String returns the lowercase color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Letter returns the one-letter code used by ParseGrid and Grid.String.
func (c Color) Letter() byte {
	if int(c) < len(colorLetters) {
		return colorLetters[c]
	}
	return '?'
}

// Valid reports whether c is a real tile color (not Empty, not out of range).
func (c Color) Valid() bool {
	return c >= Red && c <= Cyan
}

// colorFromLetter is the inverse of Color.Letter.
func colorFromLetter(b byte) (Color, bool) {
	for i, l := range colorLetters {
		if l == b {
			return Color(i), true
		}
	}
	return Empty, false
}

// Source supplies random palette indices. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Palette is the fixed set of colors that new tiles are drawn from.
type Palette []Color

// DefaultPalette is the five-color reference palette.
var DefaultPalette = Palette{Red, Green, Blue, Yellow, Purple}

// PaletteOf returns a palette made of the first n tile colors.
func PaletteOf(n int) (Palette, error) {
	if n < 1 || n > MaxColors {
		return nil, fmt.Errorf("match3: %d colors: %w", n, ErrInvalidPalette)
	}
	p := make(Palette, n)
	for i := range n {
		p[i] = Color(i + 1)
	}
	return p, nil
}

// Random draws a uniformly distributed color from the palette.
func (p Palette) Random(src Source) Color {
	return p[src.Intn(len(p))]
}

// Contains reports whether c belongs to the palette.
func (p Palette) Contains(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// validate checks that the palette is usable for play.
func (p Palette) validate() error {
	if len(p) < 3 || len(p) > MaxColors {
		return fmt.Errorf("match3: palette of %d colors: %w", len(p), ErrInvalidPalette)
	}
	seen := make(map[Color]bool, len(p))
	for _, c := range p {
		if !c.Valid() || seen[c] {
			return fmt.Errorf("match3: palette color %v: %w", c, ErrInvalidPalette)
		}
		seen[c] = true
	}
	return nil
}
