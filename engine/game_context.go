package engine

import (
	"cmp"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine/status"
	"github.com/lixenwraith/vi-snake/events"
)

// TickResult reports the outcome of one movement tick to the host loop
type TickResult struct {
	Moved    bool // False once the game is over
	Ate      bool
	GameOver bool
	Cause    core.CollisionCause
	Head     core.Cell
	Length   int
}

// GameContext owns the World and drives the frame and fixed-tick pipelines
type GameContext struct {
	// ===== Immutable After Init =====
	// Set once during NewGameContext. Safe for concurrent read.

	World  *World
	State  *GameState // Guarded by the world lock
	Config *ConfigResource
	Events *events.EventQueue // Lock-free MPSC; any goroutine may push
	Status *status.Registry

	// ===== World-Lock Protected =====

	router       *events.Router[*World]
	frameSystems []System
	tickSystems  []System
	chain        *Chain

	// ===== Atomic =====

	IsPaused atomic.Bool // Pause flag; timing handled by PausableClock

	// Cached metric pointers
	statTicks  *atomic.Int64
	statFrames *atomic.Int64
	statLength *atomic.Int64
	statMeals  *atomic.Int64
	statAlive  *atomic.Bool
}

// NewGameContext builds a world for cfg and spawns the initial snake
func NewGameContext(cfg ConfigResource) (*GameContext, error) {
	if cfg.FoodMaxAttempts <= 0 {
		cfg.FoodMaxAttempts = constants.FoodSpawnMaxAttempts
	}
	if cfg.InitialLength == 0 {
		cfg.InitialLength = constants.InitialSnakeLength
	}
	if !cfg.InitialDirection.Valid() {
		cfg.InitialDirection = core.DirRight
	}

	world := NewWorld(cfg.Grid)
	queue := events.NewEventQueue()
	reg := status.NewRegistry()

	ctx := &GameContext{
		World:   world,
		State:   &GameState{},
		Config:  &cfg,
		Events:  queue,
		Status:  reg,
		router:  events.NewRouter[*World](queue),
	}

	// Resources, status registry first so systems can cache metrics
	AddResource(world.Resources, reg)
	AddResource(world.Resources, ctx.Config)
	AddResource(world.Resources, &EventQueueResource{Queue: queue})
	AddResource(world.Resources, &GameStateResource{State: ctx.State})

	ctx.statTicks = reg.Ints.Get("engine.ticks")
	ctx.statFrames = reg.Ints.Get("engine.frames")
	ctx.statLength = reg.Ints.Get("snake.length")
	ctx.statMeals = reg.Ints.Get("food.eaten")
	ctx.statAlive = reg.Bools.Get("game.alive")

	if err := ctx.Reset(); err != nil {
		return nil, err
	}
	// Initial reset is not a restart
	_ = queue.Consume()

	return ctx, nil
}

// AddFrameSystem registers a system run on every frame, ordered by priority
func (g *GameContext) AddFrameSystem(s System) {
	g.World.RunSafe(func() {
		g.frameSystems = insertSorted(g.frameSystems, s)
	})
}

// AddTickSystem registers a system run on every movement tick, ordered by priority
func (g *GameContext) AddTickSystem(s System) {
	g.World.RunSafe(func() {
		g.tickSystems = insertSorted(g.tickSystems, s)
	})
}

func insertSorted(list []System, s System) []System {
	list = append(list, s)
	slices.SortStableFunc(list, func(a, b System) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	return list
}

// RegisterHandler adds an event handler; handlers run during frame dispatch
func (g *GameContext) RegisterHandler(h events.Handler[*World]) {
	g.World.RunSafe(func() {
		g.router.Register(h)
	})
}

// Chain returns the view of the current snake
// Callers must hold the world lock while using it
func (g *GameContext) Chain() *Chain {
	return g.chain
}

// PushDirection queues a directional request from any goroutine
func (g *GameContext) PushDirection(d core.Direction) {
	g.Events.Emit(events.EventDirectionRequest, &events.DirectionRequestPayload{Direction: d}, 0)
}

// Frame runs one high-frequency update: queued events first (direction changes),
// then frame systems, then events those systems emitted
func (g *GameContext) Frame(dt time.Duration) {
	g.World.RunSafe(func() {
		g.State.Frames++

		g.router.DispatchAll(g.World)
		for _, s := range g.frameSystems {
			s.Update(g.World, dt)
		}
		g.router.DispatchAll(g.World)

		g.statFrames.Store(int64(g.State.Frames))
	})
}

// Tick runs one fixed-timestep movement update
// Once the game is over no further ticks are processed
func (g *GameContext) Tick(interval time.Duration) TickResult {
	var res TickResult
	g.World.RunSafe(func() {
		if !g.State.Alive {
			res = g.resultLocked(false, false)
			return
		}

		meals := g.State.Meals
		g.State.Ticks++

		for _, s := range g.tickSystems {
			s.Update(g.World, interval)
			if !g.State.Alive {
				break
			}
		}

		res = g.resultLocked(true, g.State.Meals > meals)
		g.statTicks.Store(int64(g.State.Ticks))
		g.statLength.Store(int64(res.Length))
		g.statMeals.Store(int64(g.State.Meals))
		g.statAlive.Store(g.State.Alive)
	})
	return res
}

func (g *GameContext) resultLocked(moved, ate bool) TickResult {
	return TickResult{
		Moved:    moved,
		Ate:      ate,
		GameOver: !g.State.Alive,
		Cause:    g.State.Cause,
		Head:     g.chain.HeadPosition(),
		Length:   g.chain.Len(),
	}
}

// Reset clears the world and spawns a fresh snake at the board center
// Events still queued from the previous game are discarded
func (g *GameContext) Reset() error {
	var err error
	g.World.RunSafe(func() {
		g.World.Clear()
		_ = g.Events.Consume()

		var chain *Chain
		chain, err = SpawnChain(g.World, g.Config.Grid.Center(), g.Config.InitialDirection, g.Config.InitialLength)
		if err != nil {
			err = fmt.Errorf("reset: %w", err)
			return
		}
		g.chain = chain
		g.State.reset(chain.Root())

		g.statLength.Store(int64(chain.Len()))
		g.statMeals.Store(0)
		g.statTicks.Store(0)
		g.statAlive.Store(true)
	})
	if err != nil {
		return err
	}
	g.Events.Emit(events.EventGameReset, nil, 0)
	return nil
}

// Snapshot copies the board under the world read lock
func (g *GameContext) Snapshot() Snapshot {
	var snap Snapshot
	g.World.RunRead(func() {
		snap = Snapshot{
			Grid:      g.Config.Grid,
			Segments:  make([]SegmentView, 0, g.chain.Len()),
			Direction: g.chain.Direction(),
			Alive:     g.State.Alive,
			Cause:     g.State.Cause,
			Length:    g.chain.Len(),
			Ticks:     g.State.Ticks,
			Frames:    g.State.Frames,
			Meals:     g.State.Meals,
		}
		for _, cell := range g.chain.Segments() {
			role := RoleBody
			if len(snap.Segments) == 0 {
				role = RoleHead
			}
			snap.Segments = append(snap.Segments, SegmentView{Cell: cell, Role: role})
		}
		if g.State.HasFood() {
			if cell, ok := g.World.Positions.CellOf(g.State.Food); ok {
				snap.Food = &cell
			}
		}
	})
	return snap
}
