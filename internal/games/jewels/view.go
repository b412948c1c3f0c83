package jewels

import "github.com/vovakirdan/tui-jewels/internal/match3"

// boardView is the engine's observer. It keeps the last picture of the
// board the engine announced, which is what Render draws.
type boardView struct {
	cells    []match3.Color
	score    int
	selected int
	renders  int
}

func newBoardView() *boardView {
	return &boardView{selected: -1}
}

func (v *boardView) Render(cells []match3.Color) {
	v.cells = cells
	v.renders++
}

func (v *boardView) ScoreChanged(score int) {
	v.score = score
}

func (v *boardView) SelectionChanged(index int) {
	v.selected = index
}

var _ match3.Observer = (*boardView)(nil)
