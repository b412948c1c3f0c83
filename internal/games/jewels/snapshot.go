package jewels

import "github.com/vovakirdan/tui-jewels/internal/match3"

// StateType is the coarse state of a game.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateResolving   StateType = "resolving"
	StatePaused      StateType = "paused"
	StateRoundOver   StateType = "round_over"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the game for determinism tests.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Size      int
	Board     string // rows of color letters, see match3.ParseGrid
	Score     int
	Moves     int
	BestChain int
	Cursor    int
	Selected  int // -1 when nothing is selected
	State     StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.roundOver:
		state = StateRoundOver
	case g.paused:
		state = StatePaused
	case g.engine.Busy():
		state = StateResolving
	}

	board := ""
	if grid, err := match3.GridFrom(g.engine.Size(), g.engine.Cells()); err == nil {
		board = grid.String()
	}
	selected, ok := g.engine.Selected()
	if !ok {
		selected = -1
	}

	return Snapshot{
		Tick:      g.tick,
		Variant:   g.variant.ID,
		Size:      g.engine.Size(),
		Board:     board,
		Score:     g.engine.Score(),
		Moves:     g.engine.Moves(),
		BestChain: g.engine.BestChain(),
		Cursor:    g.cursor,
		Selected:  selected,
		State:     state,
	}
}
