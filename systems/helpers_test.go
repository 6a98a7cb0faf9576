package systems

import (
	"slices"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

const testTick = 250 * time.Millisecond

func newGame(t *testing.T, cfg engine.ConfigResource) *engine.GameContext {
	t.Helper()
	if cfg.Grid.Width == 0 {
		cfg.Grid = core.NewGrid(20, 20, 20)
	}
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	g, err := engine.NewGameContext(cfg)
	if err != nil {
		t.Fatalf("NewGameContext: %v", err)
	}
	Install(g, nil)
	return g
}

// placeFood puts food at c, replacing any existing food
func placeFood(g *engine.GameContext, c core.Cell) {
	g.World.RunSafe(func() {
		if g.State.HasFood() {
			g.World.DestroyEntity(g.State.Food)
		}
		e := g.World.CreateEntity()
		g.World.Positions.SetCell(e, c)
		g.World.Foods.Set(e, components.FoodComponent{})
		g.State.Food = e
	})
}

func setDirection(g *engine.GameContext, d core.Direction) bool {
	var ok bool
	g.World.RunSafe(func() {
		ok = ApplyDirection(g.Chain(), d)
	})
	return ok
}

func cells(g *engine.GameContext) []core.Cell {
	var out []core.Cell
	g.World.RunRead(func() {
		out = slices.Collect(g.Chain().Occupied())
	})
	return out
}

// captureEvents records every routed event of the given types
func captureEvents(g *engine.GameContext, types ...events.EventType) *[]events.GameEvent {
	var got []events.GameEvent
	g.RegisterHandler(events.HandlerFunc[*engine.World]{
		Types: types,
		Fn: func(_ *engine.World, ev events.GameEvent) {
			got = append(got, ev)
		},
	})
	return &got
}

func countType(evs []events.GameEvent, et events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == et {
			n++
		}
	}
	return n
}

// stageHook runs fn as a pipeline stage at the given priority
type stageHook struct {
	priority int
	fn       func()
}

func (p *stageHook) Update(*engine.World, time.Duration) { p.fn() }
func (p *stageHook) Priority() int { return p.priority }
