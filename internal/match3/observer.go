package match3

// Observer is the presentation contract. The engine calls it synchronously
// after every state change; implementations must not call back into the
// engine.
type Observer interface {
	// Render receives a copy of the board after creation, each swap, each
	// revert, each remove and each refill.
	Render(cells []Color)

	// ScoreChanged receives the new total whenever the score changes.
	ScoreChanged(score int)

	// SelectionChanged receives the pending tile, or -1 when the selection
	// is cleared.
	SelectionChanged(index int)
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) Render([]Color) {}

func (NopObserver) ScoreChanged(int) {}

func (NopObserver) SelectionChanged(int) {}

// Hooks adapts plain functions to Observer. Nil fields are skipped.
type Hooks struct {
	OnRender    func(cells []Color)
	OnScore     func(score int)
	OnSelection func(index int)
}

// Render implements Observer.
func (h Hooks) Render(cells []Color) {
	if h.OnRender != nil {
		h.OnRender(cells)
	}
}

// ScoreChanged implements Observer.
func (h Hooks) ScoreChanged(score int) {
	if h.OnScore != nil {
		h.OnScore(score)
	}
}

// SelectionChanged implements Observer.
func (h Hooks) SelectionChanged(index int) {
	if h.OnSelection != nil {
		h.OnSelection(index)
	}
}
