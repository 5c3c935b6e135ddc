package core

import (
	"cmp"
	"fmt"
)

// Unsigned is the set of integer types a board position may be built from.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Vec2 represents a position on the game board
type Vec2[T Unsigned] struct {
	X, Y T
}

// Coordinate is the position type grids are indexed with
type Coordinate = Vec2[uint]

// NewCoordinate creates a new coordinate with the given x and y values
func NewCoordinate(x, y uint) Coordinate {
	return Coordinate{X: x, Y: y}
}

// NewVec2 creates a position of any unsigned width
func NewVec2[T Unsigned](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Compare orders positions by x first, then by y.
func (c Vec2[T]) Compare(other Vec2[T]) int {
	if r := cmp.Compare(c.X, other.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, other.Y)
}

// DistanceTo calculates the Manhattan distance to another coordinate
func (c Vec2[T]) DistanceTo(other Vec2[T]) T {
	return absDiff(c.X, other.X) + absDiff(c.Y, other.Y)
}

// IsAdjacentTo checks if this coordinate is orthogonally adjacent to another
func (c Vec2[T]) IsAdjacentTo(other Vec2[T]) bool {
	dx := absDiff(c.X, other.X)
	dy := absDiff(c.Y, other.Y)

	// Must be exactly one step away in either X or Y direction, but not both
	return (dx == 0 && dy == 1) || (dx == 1 && dy == 0)
}

// Neighbors returns the primary neighbors (right, left, down, up). Steps that
// would leave the range of T are dropped, as are positions outside limit when
// limit is not nil.
func (c Vec2[T]) Neighbors(limit *Rect[T]) []Vec2[T] {
	maxT := ^T(0)
	neighbors := make([]Vec2[T], 0, 4)

	if c.X < maxT {
		neighbors = append(neighbors, Vec2[T]{X: c.X + 1, Y: c.Y})
	}
	if c.X > 0 {
		neighbors = append(neighbors, Vec2[T]{X: c.X - 1, Y: c.Y})
	}
	if c.Y < maxT {
		neighbors = append(neighbors, Vec2[T]{X: c.X, Y: c.Y + 1})
	}
	if c.Y > 0 {
		neighbors = append(neighbors, Vec2[T]{X: c.X, Y: c.Y - 1})
	}

	return limit.retain(neighbors)
}

// DiagonalNeighbors returns the four diagonal neighbors (up-right, up-left,
// down-left, down-right) with the same clipping rules as Neighbors.
func (c Vec2[T]) DiagonalNeighbors(limit *Rect[T]) []Vec2[T] {
	maxT := ^T(0)
	canRight, canLeft := c.X < maxT, c.X > 0
	canDown, canUp := c.Y < maxT, c.Y > 0
	diagonals := make([]Vec2[T], 0, 4)

	if canRight && canUp {
		diagonals = append(diagonals, Vec2[T]{X: c.X + 1, Y: c.Y - 1})
	}
	if canLeft && canUp {
		diagonals = append(diagonals, Vec2[T]{X: c.X - 1, Y: c.Y - 1})
	}
	if canLeft && canDown {
		diagonals = append(diagonals, Vec2[T]{X: c.X - 1, Y: c.Y + 1})
	}
	if canRight && canDown {
		diagonals = append(diagonals, Vec2[T]{X: c.X + 1, Y: c.Y + 1})
	}

	return limit.retain(diagonals)
}

// Surrounding returns the primary and diagonal neighbors together
func (c Vec2[T]) Surrounding(limit *Rect[T]) []Vec2[T] {
	return append(c.Neighbors(limit), c.DiagonalNeighbors(limit)...)
}

// String returns a string representation of the coordinate
func (c Vec2[T]) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func absDiff[T Unsigned](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
