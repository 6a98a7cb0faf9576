package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic intents
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return NewMachineWithTable(DefaultKeyTable())
}

// NewMachineWithTable creates a machine bound to kt
func NewMachineWithTable(kt *KeyTable) *Machine {
	return &Machine{keyTable: kt}
}

// Process maps ev to an intent; unbound keys and unrelated events yield IntentNone
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if entry, ok := m.keyTable.Runes[r]; ok {
			return Intent{Type: entry.Type, Direction: entry.Direction}
		}
		return Intent{}
	}

	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return Intent{Type: entry.Type, Direction: entry.Direction}
	}
	return Intent{}
}
