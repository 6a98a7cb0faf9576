package components

import "github.com/lixenwraith/vi-snake/core"

// SnakeComponent sits on the snake root entity and anchors both ends of the chain
type SnakeComponent struct {
	Head   core.Entity
	Tail   core.Entity
	Length int
}

// SegmentComponent links one body unit to its neighbours
// Next points toward the head (0 on the head), Prev toward the tail (0 on the tail)
// The head's Prev is the segment that receives the next inserted unit behind it
type SegmentComponent struct {
	Next core.Entity
	Prev core.Entity
}

// HeadComponent marks the leading segment and carries the facing
type HeadComponent struct {
	Direction core.Direction
}

// TailComponent marks the trailing segment
type TailComponent struct{}
