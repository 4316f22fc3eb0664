// Package life implements Conway's Game of Life on an unbounded sparse board.
//
// A Board is owned by a single caller and is not safe for concurrent use.
package life

import (
	"iter"
	"math"
)

// Cell is a board coordinate. The board extends in every direction, so both
// axes are signed.
type Cell struct {
	X, Y int64
}

// Add returns c translated by d.
func (c Cell) Add(d Cell) Cell { return Cell{X: c.X + d.X, Y: c.Y + d.Y} }

// Neighbors yields the Moore neighbourhood of c. The board ends at the int64
// limits: offsets that would overflow are left out, so edge cells have fewer
// than 8 neighbours.
func Neighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for dy := int64(-1); dy <= 1; dy++ {
			if !inRange(c.Y, dy) {
				continue
			}
			for dx := int64(-1); dx <= 1; dx++ {
				if dx == 0 && dy == 0 || !inRange(c.X, dx) {
					continue
				}
				if !yield(Cell{X: c.X + dx, Y: c.Y + dy}) {
					return
				}
			}
		}
	}
}

// inRange reports whether v+d stays within int64 for d in {-1, 0, 1}.
func inRange(v, d int64) bool {
	return !(d > 0 && v == math.MaxInt64) && !(d < 0 && v == math.MinInt64)
}

// NextState reports whether a cell is alive in the next generation given its
// current state and live neighbour count (B3/S23).
func NextState(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Board holds the set of live cells. Dead cells are never stored.
type Board struct {
	live map[Cell]struct{}
}

// New returns an empty board.
func New() *Board {
	return &Board{live: make(map[Cell]struct{})}
}

// Set marks (x, y) alive or dead.
func (b *Board) Set(x, y int64, alive bool) {
	c := Cell{X: x, Y: y}
	if alive {
		b.live[c] = struct{}{}
		return
	}
	delete(b.live, c)
}

// Get reports whether (x, y) is alive.
func (b *Board) Get(x, y int64) bool {
	_, ok := b.live[Cell{X: x, Y: y}]
	return ok
}

// Clear kills every cell.
func (b *Board) Clear() {
	clear(b.live)
}

// Len returns the live population.
func (b *Board) Len() int { return len(b.live) }

// LiveCells yields every live cell in unspecified order. The sequence reads
// the board as it is when iterated and may be ranged over repeatedly; the
// board must not be modified while a range is in progress.
func (b *Board) LiveCells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range b.live {
			if !yield(c) {
				return
			}
		}
	}
}

// Bounds returns the smallest rectangle containing every live cell. ok is
// false when the board is empty.
func (b *Board) Bounds() (minC, maxC Cell, ok bool) {
	for c := range b.live {
		if !ok {
			minC, maxC, ok = c, c, true
			continue
		}
		minC.X = min(minC.X, c.X)
		minC.Y = min(minC.Y, c.Y)
		maxC.X = max(maxC.X, c.X)
		maxC.Y = max(maxC.Y, c.Y)
	}
	return minC, maxC, ok
}

// Step advances the board by one generation. Only live cells and their
// neighbours are visited, so the cost follows the population rather than
// any grid extent.
func (b *Board) Step() {
	tally := make(map[Cell]int, len(b.live)*8)
	for c := range b.live {
		for n := range Neighbors(c) {
			tally[n]++
		}
	}

	next := make(map[Cell]struct{}, len(b.live))
	for c, n := range tally {
		_, alive := b.live[c]
		if NextState(alive, n) {
			next[c] = struct{}{}
		}
	}
	b.live = next
}
