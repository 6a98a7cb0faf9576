package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

// KeyEntry describes a key's action without function pointers
type KeyEntry struct {
	Type      IntentType
	Direction core.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

func move(d core.Direction) KeyEntry {
	return KeyEntry{Type: IntentDirection, Direction: d}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentSnapshot},
			tcell.KeyUp:     move(core.DirUp),
			tcell.KeyDown:   move(core.DirDown),
			tcell.KeyLeft:   move(core.DirLeft),
			tcell.KeyRight:  move(core.DirRight),
		},

		Runes: map[rune]KeyEntry{
			// vi motions
			'h': move(core.DirLeft),
			'j': move(core.DirDown),
			'k': move(core.DirUp),
			'l': move(core.DirRight),

			// wasd
			'w': move(core.DirUp),
			'a': move(core.DirLeft),
			's': move(core.DirDown),
			'd': move(core.DirRight),

			'q': {Type: IntentQuit},
			'p': {Type: IntentPause},
			' ': {Type: IntentPause},
			'r': {Type: IntentRestart},
			'm': {Type: IntentToggleMute},
		},
	}
}

// Clone creates a deep copy for per-session customization
func (kt *KeyTable) Clone() *KeyTable {
	clone := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		clone.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		clone.Runes[k] = v
	}
	return clone
}
