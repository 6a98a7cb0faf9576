package input

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

func TestLoadKeyConfigOverrides(t *testing.T) {
	data := []byte(`
[keys]
i = "move_up"
Q = "none"
space = "restart"

[special_keys]
"Ctrl-Q" = "quit"
Up = "none"
`)

	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)

	if e := kt.Runes['i']; e.Type != IntentDirection || e.Direction != core.DirUp {
		t.Errorf("Expected i bound to move_up, got %+v", e)
	}
	if _, ok := kt.Runes['q']; ok {
		t.Error("Expected q unbound by none action")
	}
	if e := kt.Runes[' ']; e.Type != IntentRestart {
		t.Errorf("Expected space rebound to restart, got %v", e.Type)
	}
	if e := kt.SpecialKeys[tcell.KeyCtrlQ]; e.Type != IntentQuit {
		t.Errorf("Expected Ctrl-Q bound to quit, got %v", e.Type)
	}
	if _, ok := kt.SpecialKeys[tcell.KeyUp]; ok {
		t.Error("Expected Up arrow unbound")
	}
	// Untouched defaults survive
	if e := kt.Runes['h']; e.Direction != core.DirLeft {
		t.Errorf("Expected h to keep default binding, got %+v", e)
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown action", "[keys]\nx = \"fly\"\n", "unknown action"},
		{"multi char key", "[keys]\nxy = \"quit\"\n", "invalid rune key"},
		{"unknown special", "[special_keys]\nHyper = \"quit\"\n", "unknown key name"},
		{"malformed toml", "[keys\n", "keymap parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadKeyConfigEmptyIsNoop(t *testing.T) {
	override, err := LoadKeyConfig(nil)
	if err != nil {
		t.Fatalf("Empty config failed: %v", err)
	}
	merged := MergeKeyTable(DefaultKeyTable(), override)
	if len(merged.Runes) != len(DefaultKeyTable().Runes) {
		t.Error("Empty override changed rune bindings")
	}
}
