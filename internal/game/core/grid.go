package core

import (
	"encoding/json"
	"fmt"
	"iter"
)

// Grid is a rectangular, row-major container with one value per coordinate.
// All rows share the same length; Width and Height are derived from the rows.
type Grid[T any] struct {
	rows [][]T
}

// NewGrid creates a grid of the given size with every cell set to fill.
func NewGrid[T any](size Coordinate, fill T) *Grid[T] {
	rows := make([][]T, size.Y)
	for y := range rows {
		row := make([]T, size.X)
		for x := range row {
			row[x] = fill
		}
		rows[y] = row
	}
	return &Grid[T]{rows: rows}
}

// FromRows builds a grid from raw rows. The rows are copied; rows of differing
// length are rejected with ErrMalformedGrid rather than padded.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if err := checkRectangular(rows); err != nil {
		return nil, err
	}
	return &Grid[T]{rows: copyRows(rows)}, nil
}

// Width is the number of cells in the x-direction.
func (g *Grid[T]) Width() uint {
	if len(g.rows) == 0 {
		return 0
	}
	return uint(len(g.rows[0]))
}

// Height is the number of cells in the y-direction.
func (g *Grid[T]) Height() uint {
	return uint(len(g.rows))
}

// Size returns width and height as a coordinate.
func (g *Grid[T]) Size() Coordinate {
	return NewCoordinate(g.Width(), g.Height())
}

// InBounds checks if the coordinate addresses a cell of the grid
func (g *Grid[T]) InBounds(c Coordinate) bool {
	return c.X < g.Width() && c.Y < g.Height()
}

// Bounds returns the inclusive rectangle covering every cell. ok is false for
// an empty grid, which has no cells to cover.
func (g *Grid[T]) Bounds() (r Rect[uint], ok bool) {
	if g.Width() == 0 || g.Height() == 0 {
		return Rect[uint]{}, false
	}
	return NewRect[uint](0, 0, g.Width()-1, g.Height()-1), true
}

// Get returns the value at c. ok is false if either axis is out of bounds.
func (g *Grid[T]) Get(c Coordinate) (value T, ok bool) {
	if !g.InBounds(c) {
		return value, false
	}
	return g.rows[c.Y][c.X], true
}

// Set stores value at c and returns the value that was there before. The
// grid is never resized; coordinates outside it fail with ErrOutOfBounds.
func (g *Grid[T]) Set(c Coordinate, value T) (T, error) {
	if !g.InBounds(c) {
		var zero T
		return zero, fmt.Errorf("set %s on %dx%d grid: %w", c, g.Width(), g.Height(), ErrOutOfBounds)
	}
	old := g.rows[c.Y][c.X]
	g.rows[c.Y][c.X] = value
	return old, nil
}

// All yields every coordinate with its value in row-major order. Each call
// returns a fresh sequence.
func (g *Grid[T]) All() iter.Seq2[Coordinate, T] {
	return func(yield func(Coordinate, T) bool) {
		for y, row := range g.rows {
			for x, v := range row {
				if !yield(NewCoordinate(uint(x), uint(y)), v) {
					return
				}
			}
		}
	}
}

// Rows returns a copy of the raw rows.
func (g *Grid[T]) Rows() [][]T {
	return copyRows(g.rows)
}

// Clone returns a shallow copy of the grid: the cells are copied by value.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{rows: copyRows(g.rows)}
}

// MarshalJSON encodes the grid as an array of rows.
func (g *Grid[T]) MarshalJSON() ([]byte, error) {
	if g.rows == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(g.rows)
}

// UnmarshalJSON decodes an array of rows, enforcing the rectangular invariant.
func (g *Grid[T]) UnmarshalJSON(data []byte) error {
	var rows [][]T
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if err := checkRectangular(rows); err != nil {
		return err
	}
	g.rows = rows
	return nil
}

// Map builds a new grid of the same shape by applying fn to every cell.
func Map[T, U any](g *Grid[T], fn func(Coordinate, T) U) *Grid[U] {
	rows := make([][]U, len(g.rows))
	for y, row := range g.rows {
		out := make([]U, len(row))
		for x, v := range row {
			out[x] = fn(NewCoordinate(uint(x), uint(y)), v)
		}
		rows[y] = out
	}
	return &Grid[U]{rows: rows}
}

// Equal reports positional equality: same size and eq holds cell by cell.
func Equal[T any](a, b *Grid[T], eq func(x, y T) bool) bool {
	if a.Size() != b.Size() {
		return false
	}
	for y, row := range a.rows {
		for x, v := range row {
			if !eq(v, b.rows[y][x]) {
				return false
			}
		}
	}
	return true
}

// RowSetEqual compares grids the way saved maps have always been compared:
// every row of a must match some row of b and every row of b some row of a,
// where two rows match when each holds every element of the other. Row
// order, element order and duplicates are ignored, so this is much weaker
// than Equal and quadratic in the number of rows.
// TODO: switch map round-trip checks to Equal once old saves are migrated.
func RowSetEqual[T any](a, b *Grid[T], eq func(x, y T) bool) bool {
	return rowsCovered(a.rows, b.rows, eq) && rowsCovered(b.rows, a.rows, eq)
}

// RowSetEqualComparable is RowSetEqual using ==.
func RowSetEqualComparable[T comparable](a, b *Grid[T]) bool {
	return RowSetEqual(a, b, func(x, y T) bool { return x == y })
}

func rowsCovered[T any](from, in [][]T, eq func(x, y T) bool) bool {
	for _, row := range from {
		found := false
		for _, candidate := range in {
			if sameElements(row, candidate, eq) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameElements[T any](a, b []T, eq func(x, y T) bool) bool {
	return containsAll(a, b, eq) && containsAll(b, a, eq)
}

func containsAll[T any](of, in []T, eq func(x, y T) bool) bool {
	for _, v := range of {
		found := false
		for _, w := range in {
			if eq(v, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func checkRectangular[T any](rows [][]T) error {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return fmt.Errorf("row %d has %d cells, row 0 has %d: %w", y, len(row), width, ErrMalformedGrid)
		}
	}
	return nil
}

func copyRows[T any](rows [][]T) [][]T {
	out := make([][]T, len(rows))
	for y, row := range rows {
		out[y] = append([]T(nil), row...)
	}
	return out
}
