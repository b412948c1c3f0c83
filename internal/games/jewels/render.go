package jewels

import (
	"fmt"

	"github.com/vovakirdan/tui-jewels/internal/core"
	"github.com/vovakirdan/tui-jewels/internal/match3"
)

const (
	tileWidth = 3 // "[●]"
	hudHeight = 3
)

// glyph and screen color for each tile color. Shapes differ so the board
// reads without color too.
var tileStyles = map[match3.Color]struct {
	glyph rune
	color core.Color
}{
	match3.Red:    {'●', core.ColorRed},
	match3.Green:  {'▲', core.ColorGreen},
	match3.Blue:   {'◆', core.ColorBlue},
	match3.Yellow: {'★', core.ColorYellow},
	match3.Purple: {'♥', core.ColorMagenta},
	match3.Orange: {'■', core.ColorOrange},
	match3.Cyan:   {'✚', core.ColorCyan},
}

// minScreen returns the smallest screen that fits an n*n board.
func minScreen(n int) (w, h int) {
	boxW, boxH := n*tileWidth+2, n+2
	return max(boxW, 30), hudHeight + boxH + 2
}

// boardRect is the outline of the board on screen.
func (g *Game) boardRect() core.Rect {
	n := g.engine.Size()
	w, h := n*tileWidth+2, n+2
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// tileAt maps a screen cell to a board index.
func (g *Game) tileAt(x, y int) (int, bool) {
	r := g.boardRect()
	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	if !inner.Contains(x, y) {
		return -1, false
	}
	n := g.engine.Size()
	col := core.Clamp((x-inner.X)/tileWidth, 0, n-1)
	row := y - inner.Y
	return row*n + col, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.boardRect()
	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderFooter(dst, board)
	g.renderOverlays(dst, board)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := minScreen(g.engine.Size())
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	dst.DrawTextColor(board.X, 0, g.Title(), core.ColorBrightWhite)

	score := fmt.Sprintf("Score: %d", g.engine.Score())
	dst.DrawTextColor(board.Right()-len(score), 0, score, core.ColorYellow)

	stats := fmt.Sprintf("Moves: %d  Best chain: %d", g.engine.Moves(), g.engine.BestChain())
	dst.DrawTextColor(board.X, 1, stats, core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	frame := core.ColorGray
	if g.engine.Busy() {
		frame = core.ColorWhite
	}
	dst.DrawBoxColor(board, frame)

	n := g.engine.Size()
	burst := make(map[int]bool, len(g.burst))
	for _, i := range g.burst {
		burst[i] = true
	}

	for i, c := range g.view.cells {
		x := board.X + 1 + (i%n)*tileWidth
		y := board.Y + 1 + i/n

		switch {
		case c == match3.Empty && burst[i]:
			dst.SetCell(x+1, y, core.Cell{Rune: '✦', Color: core.ColorBrightWhite, Bold: true})
		case c == match3.Empty:
			dst.SetColor(x+1, y, '·', core.ColorGray)
		default:
			st := tileStyles[c]
			dst.SetCell(x+1, y, core.Cell{Rune: st.glyph, Color: st.color, Bold: i == g.view.selected})
		}

		switch {
		case i == g.cursor:
			dst.SetColor(x, y, '[', core.ColorBrightWhite)
			dst.SetColor(x+2, y, ']', core.ColorBrightWhite)
		case i == g.view.selected:
			dst.SetColor(x, y, '(', core.ColorYellow)
			dst.SetColor(x+2, y, ')', core.ColorYellow)
		}
	}

	// Keep the selection visible under the cursor.
	if g.view.selected >= 0 && g.view.selected == g.cursor {
		x := board.X + 1 + (g.cursor%n)*tileWidth
		y := board.Y + 1 + g.cursor/n
		dst.SetColor(x, y, '{', core.ColorYellow)
		dst.SetColor(x+2, y, '}', core.ColorYellow)
	}
}

func (g *Game) renderFooter(dst *core.Screen, board core.Rect) {
	y := board.Bottom()
	if g.lastGain > 0 {
		msg := fmt.Sprintf("+%d", g.lastGain)
		if g.lastChain > 1 {
			msg += fmt.Sprintf("  chain x%d", g.lastChain)
		}
		dst.DrawTextColor(board.X, y, msg, core.ColorGreen)
	}
	dst.DrawTextColor(board.X, y+1, g.Controls(), core.ColorGray)
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx, cy := board.Center()

	switch {
	case g.paused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.roundOver:
		g.drawOverlay(dst, cx, cy,
			"ROUND OVER",
			fmt.Sprintf("Score: %d", g.engine.Score()),
			fmt.Sprintf("Moves: %d  Best chain: %d", g.engine.Moves(), g.engine.BestChain()),
			"Press R to play again")
	}
}

// drawOverlay draws a boxed message centered on (cx, cy).
func (g *Game) drawOverlay(dst *core.Screen, cx, cy int, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	box := core.NewRect(cx-(width+4)/2, cy-(len(lines)+2)/2, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawTextColor(cx-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
