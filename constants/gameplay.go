package constants

// Snake
const (
	// InitialSnakeLength is the number of segments at game start (head + tail)
	InitialSnakeLength = 2

	// DefaultInitialDirection names the facing at game start
	DefaultInitialDirection = "right"
)

// Food Placement
const (
	// FoodSpawnMaxAttempts bounds rejection sampling before falling back to a free-cell scan
	FoodSpawnMaxAttempts = 1000
)
