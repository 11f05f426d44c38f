package tui

import (
	"time"

	"github.com/vovakirdan/pou-arcade/internal/core"
)

// holdDuration is how long a key counts as held after its last key
// message. Terminals report presses and auto-repeats but no releases.
const holdDuration = 120 * time.Millisecond

// HeldKeys approximates which keys are down from key messages alone.
// Every message for an action keeps it held for a fixed number of ticks;
// auto-repeat refreshes the window while the key stays down.
type HeldKeys struct {
	window    int
	remaining map[core.Action]int
}

// NewHeldKeys creates a tracker whose hold window is holdDuration at fps.
func NewHeldKeys(fps int) *HeldKeys {
	return NewHeldKeysWindow(int(holdDuration / tickInterval(fps)))
}

// NewHeldKeysWindow creates a tracker with an explicit window in ticks.
func NewHeldKeysWindow(ticks int) *HeldKeys {
	return &HeldKeys{
		window:    max(ticks, 1),
		remaining: make(map[core.Action]int),
	}
}

// Key records a key message for a.
func (h *HeldKeys) Key(a core.Action) {
	if a == core.ActionNone {
		return
	}
	h.remaining[a] = h.window
}

// Tick returns the actions held during this tick and ages the window.
func (h *HeldKeys) Tick() map[core.Action]bool {
	held := make(map[core.Action]bool, len(h.remaining))
	for a, n := range h.remaining {
		held[a] = true
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return held
}

// Window returns the hold window in ticks.
func (h *HeldKeys) Window() int {
	return h.window
}
