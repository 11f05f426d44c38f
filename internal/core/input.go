package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - menu up
	ActionDown           // S, Down arrow - menu down
	ActionLeft           // A, Left arrow - move/hop left, previous skin
	ActionRight          // D, Right arrow - move/hop right, next skin
	ActionJump           // Space - jetpack thrust, menu select
	ActionConfirm        // Enter - restart after game over, menu select
	ActionBack           // Escape - leave the minigame, back in menus
	ActionQuit           // Q, Ctrl+C - exit the program
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
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the immutable input snapshot for one simulation tick.
// Held lists the actions whose keys are down; Pressed lists the actions
// whose keys went down since the previous tick. Triggers (hop, restart,
// menu select) read Pressed so that holding a key fires them once.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action's key as down for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press marks an action's key as freshly pressed this frame.
// A pressed key is also held.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// IsHeld returns true if the action's key is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// JustPressed returns true if the action's key went down this frame.
func (f InputFrame) JustPressed(a Action) bool {
	return f.Pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}

// InputTracker turns successive held-key snapshots into input frames,
// deriving Pressed from the up→down transitions between them.
type InputTracker struct {
	prev map[Action]bool
}

// NewInputTracker creates a tracker with every key released.
func NewInputTracker() *InputTracker {
	return &InputTracker{prev: make(map[Action]bool)}
}

// Next builds the frame for the current tick from the set of held actions.
func (t *InputTracker) Next(held map[Action]bool) InputFrame {
	frame := NewInputFrame()
	for a, down := range held {
		if !down {
			continue
		}
		frame.Held[a] = true
		if !t.prev[a] {
			frame.Pressed[a] = true
		}
	}

	clear(t.prev)
	for a := range frame.Held {
		t.prev[a] = true
	}
	return frame
}

// Reset forgets the previous snapshot, so every held key counts as new.
func (t *InputTracker) Reset() {
	clear(t.prev)
}
