package input

import "github.com/lixenwraith/vi-snake/core"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// System
	"quit":        {Type: IntentQuit},
	"pause":       {Type: IntentPause},
	"restart":     {Type: IntentRestart},
	"toggle_mute": {Type: IntentToggleMute},
	"snapshot":    {Type: IntentSnapshot},

	// Steering
	"move_up":    move(core.DirUp),
	"move_down":  move(core.DirDown),
	"move_left":  move(core.DirLeft),
	"move_right": move(core.DirRight),
}

// ActionEntry returns the binding for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
