// Package spatial provides the uniform grid used for broad-phase collision
// against level tiles.
package spatial

import (
	"math"

	"github.com/automoto/adventure/shared/gamemath"
)

// DefaultCellSize is the edge length of one grid cell in world units.
const DefaultCellSize = 64.0

type cell struct {
	cx, cy int
}

// Grid maps cells to the objects whose boxes cover them. Cells are kept in a
// map so boxes outside the level bounds (falling bodies) still index.
//
// Query results are not deduplicated: an object covering several cells is
// returned once per covered cell.
type Grid[T any] struct {
	cellSize float64
	buckets  map[cell][]T
}

// NewGrid creates an empty grid. A non-positive cell size selects
// DefaultCellSize.
func NewGrid[T any](cellSize float64) *Grid[T] {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid[T]{
		cellSize: cellSize,
		buckets:  make(map[cell][]T),
	}
}

// CellSize returns the grid's cell edge length.
func (g *Grid[T]) CellSize() float64 {
	return g.cellSize
}

func (g *Grid[T]) cellRange(box gamemath.AABB) (minX, minY, maxX, maxY int) {
	minX = int(math.Floor(box.Left() / g.cellSize))
	maxX = int(math.Floor(box.Right() / g.cellSize))
	minY = int(math.Floor(box.Top() / g.cellSize))
	maxY = int(math.Floor(box.Bottom() / g.cellSize))
	return
}

// Insert appends obj to every cell the box covers.
func (g *Grid[T]) Insert(box gamemath.AABB, obj T) {
	minX, minY, maxX, maxY := g.cellRange(box)
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			k := cell{cx, cy}
			g.buckets[k] = append(g.buckets[k], obj)
		}
	}
}

// Query returns the concatenated buckets of every cell the box covers.
// Duplicates are expected when an object spans several cells.
func (g *Grid[T]) Query(box gamemath.AABB) []T {
	minX, minY, maxX, maxY := g.cellRange(box)
	var out []T
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			out = append(out, g.buckets[cell{cx, cy}]...)
		}
	}
	return out
}

// Clear drops every bucket, keeping allocated slices for reuse.
func (g *Grid[T]) Clear() {
	for k, b := range g.buckets {
		g.buckets[k] = b[:0]
	}
}

// Len returns the number of stored references across all cells.
func (g *Grid[T]) Len() int {
	n := 0
	for _, b := range g.buckets {
		n += len(b)
	}
	return n
}
