package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // screen width in characters
	ScreenH  int   // screen height in characters
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 screen at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what the platform needs to know after each tick.
type GameState struct {
	Score    int
	GameOver bool // round finished, score can be saved
	Paused   bool
}

// RoundStats carries per-round figures stored next to the score.
type RoundStats struct {
	Moves     int // swaps that stood
	BestChain int // longest cascade, in remove steps
}

// EventKind classifies an Event.
type EventKind string

const (
	EventSwap      EventKind = "swap"
	EventNoMatch   EventKind = "no_match"
	EventRevert    EventKind = "revert"
	EventRemove    EventKind = "remove"
	EventRefill    EventKind = "refill"
	EventRoundOver EventKind = "round_over"
	EventRestart   EventKind = "restart"
)

// Event reports something that happened during a tick. The platform only
// logs events; games never depend on them being consumed.
type Event struct {
	Kind   EventKind
	Cells  [2]int // swapped tiles (swap, no_match, revert)
	Gained int    // points earned (remove)
	Chain  int    // cascade cycle (remove, refill)
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State  GameState
	Events []Event
}
