package engine

import "errors"

var (
	// ErrEmptyChain is returned when a tail removal would leave the snake without a distinct tail
	ErrEmptyChain = errors.New("chain too short to shrink")

	// ErrEntityNotFound marks a missing component on an entity that must have it
	ErrEntityNotFound = errors.New("entity not found")

	// ErrInvalidSpawn is returned when the initial snake does not fit the board
	ErrInvalidSpawn = errors.New("invalid snake spawn")

	// ErrBrokenChain is returned by Chain.Validate on any structural inconsistency
	ErrBrokenChain = errors.New("broken chain")
)
