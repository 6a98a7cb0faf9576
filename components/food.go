package components

// FoodComponent marks the single food entity
type FoodComponent struct {
	SpawnTick uint64 // Movement tick on which the food appeared
	Fallback  bool   // Placed by free-cell scan after sampling gave up
}
