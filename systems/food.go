package systems

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

// FoodSystem keeps exactly one food on the board while the game is live
// Placement samples uniformly with a bounded number of attempts, then scans for free cells
type FoodSystem struct {
	res         engine.CoreResources
	rng         *rand.Rand
	maxAttempts int

	statSpawned   *atomic.Int64
	statAttempts  *atomic.Int64
	statFallbacks *atomic.Int64
	statExhausted *atomic.Int64
}

// NewFoodSystem creates the food stage seeded from the config
func NewFoodSystem(world *engine.World) *FoodSystem {
	res := engine.GetCoreResources(world)
	seed := res.Config.Seed
	maxAttempts := res.Config.FoodMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = constants.FoodSpawnMaxAttempts
	}
	return &FoodSystem{
		res:           res,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		maxAttempts:   maxAttempts,
		statSpawned:   res.Status.Ints.Get("food.spawned"),
		statAttempts:  res.Status.Ints.Get("food.attempts"),
		statFallbacks: res.Status.Ints.Get("food.fallbacks"),
		statExhausted: res.Status.Ints.Get("food.exhausted"),
	}
}

// Priority returns the system's priority
func (s *FoodSystem) Priority() int {
	return constants.PriorityFoodSpawn
}

// Update places food when none is present
func (s *FoodSystem) Update(world *engine.World, _ time.Duration) {
	st := s.res.State.State
	if !st.Alive || st.HasFood() {
		return
	}
	chain := engine.NewChain(world, st.Snake)

	cell, attempts, fallback, ok := s.Place(s.res.Config.Grid, chain)
	s.statAttempts.Add(int64(attempts))
	if !ok {
		s.statExhausted.Add(1)
		s.res.Events.Queue.Emit(events.EventFoodExhausted, nil, st.Ticks)
		return
	}

	food := world.CreateEntity()
	world.Positions.SetCell(food, cell)
	world.Foods.Set(food, components.FoodComponent{SpawnTick: st.Ticks, Fallback: fallback})
	st.Food = food

	s.statSpawned.Add(1)
	if fallback {
		s.statFallbacks.Add(1)
	}
	s.res.Events.Queue.Emit(events.EventFoodSpawned, &events.FoodSpawnedPayload{
		Cell:     cell,
		Attempts: attempts,
		Fallback: fallback,
	}, st.Ticks)
}

// Place picks a board cell the chain does not occupy
// Returns the cell, the number of samples drawn, whether the free-cell scan was used,
// and false when the snake covers the whole board
func (s *FoodSystem) Place(grid core.Grid, chain *engine.Chain) (core.Cell, int, bool, bool) {
	size := grid.Size()
	for i := 1; i <= s.maxAttempts; i++ {
		c := grid.CellAt(s.rng.IntN(size))
		if !chain.Occupies(c) {
			return c, i, false, true
		}
	}

	free := make([]core.Cell, 0, max(size-chain.Len(), 0))
	for c := range grid.Cells() {
		if !chain.Occupies(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return core.Cell{}, s.maxAttempts, true, false
	}
	return free[s.rng.IntN(len(free))], s.maxAttempts, true, true
}

// FoodRefillSystem replaces food eaten during a tick so the next tick of a
// catch-up burst already sees it
// Shares the placement stream with the frame FoodSystem
type FoodRefillSystem struct {
	food *FoodSystem
}

// NewFoodRefillSystem creates the fixed-tick refill stage backed by food
func NewFoodRefillSystem(food *FoodSystem) *FoodRefillSystem {
	return &FoodRefillSystem{food: food}
}

// Priority returns the system's priority
func (s *FoodRefillSystem) Priority() int {
	return constants.PriorityFoodRefill
}

// Update places food only when it was eaten in the current tick
func (s *FoodRefillSystem) Update(world *engine.World, dt time.Duration) {
	st := s.food.res.State.State
	if st.Meals == 0 || st.MealTick != st.Ticks {
		return
	}
	s.food.Update(world, dt)
}
