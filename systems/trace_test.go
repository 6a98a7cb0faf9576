package systems

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

func TestEventTraceLogsByName(t *testing.T) {
	events.InitRegistry()
	types, err := events.ParseEventTypes("EventFoodEaten,EventGameReset")
	if err != nil {
		t.Fatalf("ParseEventTypes: %v", err)
	}

	g := newGame(t, engine.ConfigResource{})
	var lines []string
	g.RegisterHandler(NewEventTraceSystem(types, func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}))

	placeFood(g, core.Cell{X: 1, Y: 0})
	g.Tick(testTick)
	g.Frame(0)

	if len(lines) != 1 {
		t.Fatalf("Expected only the meal traced, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "[event] EventFoodEaten tick=1 ") {
		t.Errorf("Unexpected trace line %q", lines[0])
	}

	lines = nil
	if err := g.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	g.Frame(0)
	if len(lines) != 1 || lines[0] != "[event] EventGameReset tick=0" {
		t.Errorf("Expected reset trace, got %q", lines)
	}
}
