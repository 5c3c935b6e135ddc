package island

import (
	"encoding/json"
	"iter"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/bfs"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
)

// Shape is a black and white map: true where an island tile goes, false for
// sea. Map generation works on shapes before any tile is placed.
type Shape struct {
	grid *core.Grid[bool]
}

// NewShape creates an all-sea shape of the given size
func NewShape(size core.Coordinate) *Shape {
	return &Shape{grid: core.NewGrid(size, false)}
}

// ShapeFromRows builds a shape from raw rows.
func ShapeFromRows(rows [][]bool) (*Shape, error) {
	g, err := core.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return &Shape{grid: g}, nil
}

// Grid exposes the underlying grid for read-only queries.
func (s *Shape) Grid() *core.Grid[bool] { return s.grid }

func (s *Shape) Size() core.Coordinate { return s.grid.Size() }

// IsStandable reports whether c is land.
func (s *Shape) IsStandable(c core.Coordinate) bool {
	land, _ := s.grid.Get(c)
	return land
}

// Set marks c as land or sea.
func (s *Shape) Set(c core.Coordinate, land bool) error {
	_, err := s.grid.Set(c, land)
	return err
}

// LimitRect is the hull around all land cells.
func (s *Shape) LimitRect() (core.Rect[uint], bool) {
	return hull(s.grid, func(land bool) bool { return land })
}

// TileCount returns the number of land cells.
func (s *Shape) TileCount() int {
	n := 0
	for _, land := range s.grid.All() {
		if land {
			n++
		}
	}
	return n
}

// Land yields every land coordinate in row-major order.
func (s *Shape) Land() iter.Seq[core.Coordinate] {
	return func(yield func(core.Coordinate) bool) {
		for c, land := range s.grid.All() {
			if land && !yield(c) {
				return
			}
		}
	}
}

// IsConnected reports whether every land cell can be walked to from every
// other. A shape without land is not connected.
func (s *Shape) IsConnected() bool {
	reached, err := bfs.ReachableSet(s.grid, nil, func(land bool) bool { return land })
	if err != nil {
		return false
	}
	return reached.Size() == s.TileCount()
}

// Equal compares shapes with row-set equality.
func (s *Shape) Equal(other *Shape) bool {
	return core.RowSetEqualComparable(s.grid, other.grid)
}

func (s *Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.grid)
}

func (s *Shape) UnmarshalJSON(data []byte) error {
	g := &core.Grid[bool]{}
	if err := json.Unmarshal(data, g); err != nil {
		return err
	}
	s.grid = g
	return nil
}
