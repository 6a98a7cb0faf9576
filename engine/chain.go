package engine

import (
	"fmt"
	"iter"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
)

// Chain is a view of one snake stored in a World
// The root entity holds SnakeComponent; segments are linked by id through SegmentComponent
// All methods expect the caller to hold the world lock (write lock for mutations)
type Chain struct {
	world *World
	root  core.Entity
}

// NewChain binds a chain view to an existing snake root
func NewChain(w *World, root core.Entity) *Chain {
	return &Chain{world: w, root: root}
}

// SpawnChain creates a snake of length segments with its head at head,
// the body trailing straight behind against dir
func SpawnChain(w *World, head core.Cell, dir core.Direction, length int) (*Chain, error) {
	if length < 2 {
		return nil, fmt.Errorf("%w: length %d below 2", ErrInvalidSpawn, length)
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: direction %v", ErrInvalidSpawn, dir)
	}

	g := w.Grid()
	back := dir.Opposite()
	cell := head
	for i := 0; i < length; i++ {
		if !g.Contains(cell) {
			return nil, fmt.Errorf("%w: segment %d at %v off board", ErrInvalidSpawn, i, cell)
		}
		cell = cell.Add(back)
	}

	root := w.CreateEntity()
	ids := make([]core.Entity, length)
	for i := range ids {
		ids[i] = w.CreateEntity()
	}

	cell = head
	for i, e := range ids {
		var seg components.SegmentComponent
		if i > 0 {
			seg.Next = ids[i-1]
		}
		if i < length-1 {
			seg.Prev = ids[i+1]
		}
		w.Segments.Set(e, seg)
		w.Positions.SetCell(e, cell)
		cell = cell.Add(back)
	}

	w.Heads.Set(ids[0], components.HeadComponent{Direction: dir})
	w.Tails.Set(ids[length-1], components.TailComponent{})
	w.Snakes.Set(root, components.SnakeComponent{
		Head:   ids[0],
		Tail:   ids[length-1],
		Length: length,
	})

	return &Chain{world: w, root: root}, nil
}

// Root returns the snake root entity
func (c *Chain) Root() core.Entity {
	return c.root
}

// GrowAtHead moves the head to cell and links a new segment into the cell it vacated
// The head entity stays stable; the new segment sits between the head and its old Prev
// The chain always has at least two segments, so head and tail are distinct and the tail is untouched
// Returns the id of the inserted segment. O(1)
func (c *Chain) GrowAtHead(cell core.Cell) core.Entity {
	w := c.world
	snake := c.snake()
	head := snake.Head
	headSeg := c.segment(head)
	vacated := c.position(head)

	seg := w.CreateEntity()
	w.Segments.Set(seg, components.SegmentComponent{Next: head, Prev: headSeg.Prev})
	w.Positions.SetCell(seg, vacated)

	behind := c.segment(headSeg.Prev)
	behind.Next = seg
	w.Segments.Set(headSeg.Prev, behind)

	headSeg.Prev = seg
	w.Segments.Set(head, headSeg)
	w.Positions.SetCell(head, cell)

	snake.Length++
	w.Snakes.Set(c.root, snake)

	return seg
}

// ShrinkAtTail removes the tail segment and promotes its Next to tail
// Requires at least three segments, one more than a plain non-empty check, because
// a single remaining segment would be both head and tail
// Returns ErrEmptyChain without mutating when fewer than two segments would remain
func (c *Chain) ShrinkAtTail() (core.Cell, error) {
	w := c.world
	snake := c.snake()
	if snake.Length < 3 {
		return core.Cell{}, fmt.Errorf("%w: length %d", ErrEmptyChain, snake.Length)
	}

	tail := snake.Tail
	tailSeg := c.segment(tail)
	removed := c.position(tail)

	newTail := tailSeg.Next
	seg := c.segment(newTail)
	seg.Prev = 0
	w.Segments.Set(newTail, seg)
	w.Tails.Set(newTail, components.TailComponent{})

	w.DestroyEntity(tail)

	snake.Tail = newTail
	snake.Length--
	w.Snakes.Set(c.root, snake)

	return removed, nil
}

// Head returns the head entity
func (c *Chain) Head() core.Entity {
	return c.snake().Head
}

// Tail returns the tail entity
func (c *Chain) Tail() core.Entity {
	return c.snake().Tail
}

// HeadPosition returns the cell of the head
func (c *Chain) HeadPosition() core.Cell {
	return c.position(c.snake().Head)
}

// Len returns the number of segments
func (c *Chain) Len() int {
	return c.snake().Length
}

// Direction returns the head facing
func (c *Chain) Direction() core.Direction {
	h, ok := c.world.Heads.Get(c.snake().Head)
	if !ok {
		panic(fmt.Errorf("%w: head component of snake %d", ErrEntityNotFound, c.root))
	}
	return h.Direction
}

// SetDirection overwrites the head facing without validation
func (c *Chain) SetDirection(d core.Direction) {
	c.world.Heads.Set(c.snake().Head, components.HeadComponent{Direction: d})
}

// Segments yields every segment id and cell from head to tail
// Lazy and restartable; stops early when the consumer breaks
func (c *Chain) Segments() iter.Seq2[core.Entity, core.Cell] {
	return func(yield func(core.Entity, core.Cell) bool) {
		for e := c.snake().Head; e != 0; e = c.segment(e).Prev {
			if !yield(e, c.position(e)) {
				return
			}
		}
	}
}

// Occupied yields every occupied cell, head first
func (c *Chain) Occupied() iter.Seq[core.Cell] {
	return func(yield func(core.Cell) bool) {
		for _, cell := range c.Segments() {
			if !yield(cell) {
				return
			}
		}
	}
}

// Occupies reports whether any segment sits at cell. O(1) through the spatial index
// Cells off the board are resolved by walking the chain
func (c *Chain) Occupies(cell core.Cell) bool {
	if !c.world.Grid().Contains(cell) {
		for occupied := range c.Occupied() {
			if occupied == cell {
				return true
			}
		}
		return false
	}
	return c.world.Positions.AnyAt(cell, c.world.Segments.Has)
}

// Validate walks the chain and checks its structural invariants:
// one head, one tail, symmetric links, no cycle, stored length, distinct cells
func (c *Chain) Validate() error {
	w := c.world
	snake, ok := w.Snakes.Get(c.root)
	if !ok {
		return fmt.Errorf("%w: snake %d", ErrEntityNotFound, c.root)
	}
	if !w.Heads.Has(snake.Head) {
		return fmt.Errorf("%w: head %d not marked", ErrBrokenChain, snake.Head)
	}
	if !w.Tails.Has(snake.Tail) {
		return fmt.Errorf("%w: tail %d not marked", ErrBrokenChain, snake.Tail)
	}

	seen := make(map[core.Entity]bool, snake.Length)
	cells := make(map[core.Cell]core.Entity, snake.Length)
	var next core.Entity
	last := core.Entity(0)
	for e := snake.Head; e != 0; {
		if seen[e] {
			return fmt.Errorf("%w: cycle at %d", ErrBrokenChain, e)
		}
		if len(seen) > snake.Length {
			return fmt.Errorf("%w: more segments than length %d", ErrBrokenChain, snake.Length)
		}
		seen[e] = true

		seg, ok := w.Segments.Get(e)
		if !ok {
			return fmt.Errorf("%w: segment %d", ErrEntityNotFound, e)
		}
		if seg.Next != next {
			return fmt.Errorf("%w: segment %d next %d, expected %d", ErrBrokenChain, e, seg.Next, next)
		}
		cell, ok := w.Positions.CellOf(e)
		if !ok {
			return fmt.Errorf("%w: position of %d", ErrEntityNotFound, e)
		}
		if other, dup := cells[cell]; dup {
			return fmt.Errorf("%w: segments %d and %d share %v", ErrBrokenChain, other, e, cell)
		}
		cells[cell] = e

		next = e
		last = e
		e = seg.Prev
	}

	if last != snake.Tail {
		return fmt.Errorf("%w: walk ended at %d, tail is %d", ErrBrokenChain, last, snake.Tail)
	}
	if len(seen) != snake.Length {
		return fmt.Errorf("%w: walked %d segments, length %d", ErrBrokenChain, len(seen), snake.Length)
	}
	if n := w.Heads.Count(); n != 1 {
		return fmt.Errorf("%w: %d heads", ErrBrokenChain, n)
	}
	if n := w.Tails.Count(); n != 1 {
		return fmt.Errorf("%w: %d tails", ErrBrokenChain, n)
	}
	return nil
}

func (c *Chain) snake() components.SnakeComponent {
	s, ok := c.world.Snakes.Get(c.root)
	if !ok {
		panic(fmt.Errorf("%w: snake %d", ErrEntityNotFound, c.root))
	}
	return s
}

func (c *Chain) segment(e core.Entity) components.SegmentComponent {
	s, ok := c.world.Segments.Get(e)
	if !ok {
		panic(fmt.Errorf("%w: segment %d", ErrEntityNotFound, e))
	}
	return s
}

func (c *Chain) position(e core.Entity) core.Cell {
	cell, ok := c.world.Positions.CellOf(e)
	if !ok {
		panic(fmt.Errorf("%w: position of %d", ErrEntityNotFound, e))
	}
	return cell
}
