package input

import "github.com/lixenwraith/vi-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentPause      // p, Space
	IntentRestart    // r
	IntentToggleMute // m
	IntentSnapshot   // Ctrl+S, writes the board as PNG
	IntentResize     // Terminal resize event

	// Steering
	IntentDirection // arrows, hjkl, wasd

	intentTypeCount
)

var intentNames = [intentTypeCount]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentPause:      "pause",
	IntentRestart:    "restart",
	IntentToggleMute: "toggle_mute",
	IntentSnapshot:   "snapshot",
	IntentResize:     "resize",
	IntentDirection:  "direction",
}

func (t IntentType) String() string {
	if t < intentTypeCount {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type      IntentType
	Direction core.Direction // Set for IntentDirection
}
