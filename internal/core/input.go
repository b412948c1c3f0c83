package core

// Action is a semantic input, decoupled from the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionSelect         // Space, Enter: pick the tile under the cursor
	ActionBack           // B, Escape: back to the menu
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did during one tick. Repeated
// presses of one action count once and a later click replaces an earlier one.
type InputFrame struct {
	actions uint32

	// Click is the screen cell of a mouse press, valid when Clicked is set.
	Click   struct{ X, Y int }
	Clicked bool
}

// NewInputFrame creates an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.actions |= 1 << uint(a)
}

// SetClick records a mouse press at (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Click.X, f.Click.Y = x, y
	f.Clicked = true
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.actions&(1<<uint(a)) != 0
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return f.actions == 0 && !f.Clicked
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}
