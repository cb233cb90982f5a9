package core

import "math/bits"

// Action is a semantic input, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionRestart
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed during one tick.
// The zero value is an empty frame and frames are safe to copy.
type InputFrame struct {
	set uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set adds a to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || int(a) >= len(actionNames) {
		return
	}
	f.set |= 1 << uint(a)
}

// Has reports whether a was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && f.set&(1<<uint(a)) != 0
}

// Len returns the number of distinct actions in the frame.
func (f InputFrame) Len() int {
	return bits.OnesCount32(f.set)
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.set = 0
}
