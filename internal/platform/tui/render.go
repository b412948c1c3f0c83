package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jewels/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:         "196",
	core.ColorGreen:       "46",
	core.ColorBlue:        "33",
	core.ColorYellow:      "226",
	core.ColorMagenta:     "201",
	core.ColorOrange:      "208",
	core.ColorCyan:        "51",
	core.ColorWhite:       "252",
	core.ColorGray:        "245",
	core.ColorBrightWhite: "15",
}

type styleKey struct {
	color core.Color
	bold  bool
}

// cellStyles caches one lipgloss style per color and weight.
var cellStyles = func() map[styleKey]lipgloss.Style {
	styles := make(map[styleKey]lipgloss.Style)
	for _, bold := range []bool{false, true} {
		styles[styleKey{core.ColorDefault, bold}] = lipgloss.NewStyle().Bold(bold)
		for c, code := range colorCodes {
			styles[styleKey{c, bold}] = lipgloss.NewStyle().Foreground(lipgloss.Color(code)).Bold(bold)
		}
	}
	return styles
}()

func styleFor(c core.Cell) lipgloss.Style {
	if st, ok := cellStyles[styleKey{c.Color, c.Bold}]; ok {
		return st
	}
	return cellStyles[styleKey{core.ColorDefault, c.Bold}]
}

// RenderScreen converts a Screen to a styled string. Runs of cells with the
// same style share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := styleKey{first.Color, first.Bold}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if (styleKey{cell.Color, cell.Bold}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(first).Render(run.String()))
		}
	}
	return sb.String()
}
