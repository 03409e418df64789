package snake

import "fmt"

// Point is a cell position on the grid. X is the row index (bounded by the
// grid height), Y is the column index (bounded by the grid width).
type Point struct {
	X, Y int
}

// Body holds the snake's cells in a fixed-capacity ring buffer, ordered from
// tail to head. Logical index 0 is the tail, Len()-1 the head. Moving is a
// tail pop plus a head push, both O(1), instead of shifting every cell.
type Body struct {
	cells  []Point
	tail   int // ring index of logical index 0
	length int
}

// NewBody creates an empty body with the given cell capacity.
func NewBody(capacity int) *Body {
	if capacity <= 0 {
		panic(fmt.Sprintf("snake: body capacity must be positive, got %d", capacity))
	}
	return &Body{cells: make([]Point, capacity)}
}

// Len returns the number of live cells.
func (b *Body) Len() int {
	return b.length
}

// Cap returns the buffer capacity.
func (b *Body) Cap() int {
	return len(b.cells)
}

// At returns the cell at logical index i, where 0 is the tail and
// Len()-1 the head. Panics on out-of-range indices.
func (b *Body) At(i int) Point {
	if i < 0 || i >= b.length {
		panic(fmt.Sprintf("snake: body index %d out of range [0,%d)", i, b.length))
	}
	return b.cells[(b.tail+i)%len(b.cells)]
}

// Head returns the most recently added cell.
func (b *Body) Head() Point {
	return b.At(b.length - 1)
}

// Tail returns the least recently added cell.
func (b *Body) Tail() Point {
	return b.At(0)
}

// PushHead appends a new head cell. Panics if the buffer is full; growth
// past capacity is a configuration invariant violation, never a normal
// game event.
func (b *Body) PushHead(p Point) {
	if b.length == len(b.cells) {
		panic(fmt.Sprintf("snake: body overflow, capacity %d too small for game configuration", len(b.cells)))
	}
	b.cells[(b.tail+b.length)%len(b.cells)] = p
	b.length++
}

// PopTail removes and returns the tail cell. Panics on an empty body.
func (b *Body) PopTail() Point {
	if b.length == 0 {
		panic("snake: pop from empty body")
	}
	p := b.cells[b.tail]
	b.tail = (b.tail + 1) % len(b.cells)
	b.length--
	return p
}

// PushTail re-inserts a cell at the tail end. Used on growth ticks to keep
// the cell the movement step vacated. Panics if the buffer is full.
func (b *Body) PushTail(p Point) {
	if b.length == len(b.cells) {
		panic(fmt.Sprintf("snake: body overflow, capacity %d too small for game configuration", len(b.cells)))
	}
	b.tail = (b.tail - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.tail] = p
	b.length++
}

// Contains reports whether any live cell occupies p.
func (b *Body) Contains(p Point) bool {
	for i := 0; i < b.length; i++ {
		if b.At(i) == p {
			return true
		}
	}
	return false
}

// Points returns the live cells from tail to head as a fresh slice.
func (b *Body) Points() []Point {
	out := make([]Point, b.length)
	for i := 0; i < b.length; i++ {
		out[i] = b.At(i)
	}
	return out
}
