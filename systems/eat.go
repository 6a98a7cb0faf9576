package systems

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// CheckEat compares the head cell with the food cell and records the outcome in st.Eaten
// On a hit the food entity is destroyed; the caller emits EventFoodEaten once growth is final
// Must run after the head moved and before the tail-shrink decision
func CheckEat(w *engine.World, st *engine.GameState, head core.Cell) bool {
	st.Eaten = false
	if !st.HasFood() {
		return false
	}

	food, ok := w.Positions.CellOf(st.Food)
	if !ok {
		panic(fmt.Errorf("%w: food %d has no position", engine.ErrEntityNotFound, st.Food))
	}
	if food != head {
		return false
	}

	w.DestroyEntity(st.Food)
	st.Food = 0
	st.Eaten = true
	st.Meals++
	st.MealTick = st.Ticks
	return true
}
