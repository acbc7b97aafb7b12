package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move left (held)
	ActionRight           // D, Right arrow - move right (held)
	ActionUp              // Up arrow - raise selection on the start screen
	ActionDown            // Down arrow - lower selection, release movement
	ActionJump            // W, K, Up - jump (edge-triggered)
	ActionDropRock        // Space - drop a rock (edge-triggered)
	ActionConfirm         // Enter - start the run
	ActionRestart         // R key - restart after the run ended
	ActionQuit            // Q, Esc, Ctrl+C - exit the session
	ActionPause           // P - pause/unpause
	ActionAnyKey          // any other key, used to dismiss end screens
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionDropRock:
		return "DropRock"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionAnyKey:
		return "AnyKey"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Pressed actions fire once on the tick they arrive; held actions stay set
// for as long as the platform reports the key as down.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Holding returns true if the given action is held this frame.
func (f InputFrame) Holding(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Any returns true if any action was pressed this frame.
func (f InputFrame) Any() bool {
	for _, v := range f.Actions {
		if v {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
