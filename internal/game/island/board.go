package island

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
)

// Board is the full island map. Cells hold a tile, or nil for open sea.
type Board struct {
	grid *core.Grid[*Tile]
}

// NewBoard creates an empty board of the given size
func NewBoard(size core.Coordinate) *Board {
	return &Board{grid: core.NewGrid[*Tile](size, nil)}
}

// BoardFromRows builds a board from raw rows. The tiles themselves are shared,
// not copied.
func BoardFromRows(rows [][]*Tile) (*Board, error) {
	g, err := core.FromRows(rows)
	if err != nil {
		return nil, err
	}
	return &Board{grid: g}, nil
}

// Grid exposes the underlying grid. Callers must treat it as read-only.
func (b *Board) Grid() *core.Grid[*Tile] { return b.grid }

func (b *Board) Width() uint           { return b.grid.Width() }
func (b *Board) Height() uint          { return b.grid.Height() }
func (b *Board) Size() core.Coordinate { return b.grid.Size() }

// Tile returns the tile at c. ok is false for sea and for coordinates outside
// the board.
func (b *Board) Tile(c core.Coordinate) (tile *Tile, ok bool) {
	tile, _ = b.grid.Get(c)
	return tile, tile != nil
}

// Place puts a tile at c, replacing whatever was there.
func (b *Board) Place(c core.Coordinate, tile *Tile) error {
	if _, err := b.grid.Set(c, tile); err != nil {
		return fmt.Errorf("place %v: %w", tile, err)
	}
	return nil
}

// Remove takes the tile at c out of play and returns it.
func (b *Board) Remove(c core.Coordinate) (*Tile, error) {
	old, err := b.grid.Set(c, nil)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, fmt.Errorf("remove %s: %w", c, ErrNoTile)
	}
	return old, nil
}

// IsStandable reports whether a tile exists at c and has not sunk.
func (b *Board) IsStandable(c core.Coordinate) bool {
	tile, _ := b.grid.Get(c)
	return tile.IsStandable()
}

// LimitRect is the smallest rectangle around every tile still on the board,
// sunk tiles included. ok is false for a board without tiles.
func (b *Board) LimitRect() (core.Rect[uint], bool) {
	return hull(b.grid, func(t *Tile) bool { return t != nil })
}

// All yields every cell in row-major order, sea included.
func (b *Board) All() iter.Seq2[core.Coordinate, *Tile] {
	return b.grid.All()
}

// Tiles yields every cell that holds a tile.
func (b *Board) Tiles() iter.Seq2[core.Coordinate, *Tile] {
	return func(yield func(core.Coordinate, *Tile) bool) {
		for c, t := range b.grid.All() {
			if t != nil && !yield(c, t) {
				return
			}
		}
	}
}

// Standable yields every coordinate an adventurer could stand on.
func (b *Board) Standable() iter.Seq[core.Coordinate] {
	return func(yield func(core.Coordinate) bool) {
		for c, t := range b.grid.All() {
			if t.IsStandable() && !yield(c) {
				return
			}
		}
	}
}

// FindKind returns where the tile of the given kind lies.
func (b *Board) FindKind(kind TileKind) (core.Coordinate, bool) {
	for c, t := range b.Tiles() {
		if t.Kind == kind {
			return c, true
		}
	}
	return core.Coordinate{}, false
}

// Shape returns the black and white map of the board.
func (b *Board) Shape() *Shape {
	return &Shape{grid: core.Map(b.grid, func(_ core.Coordinate, t *Tile) bool {
		return t != nil
	})}
}

// Clone returns a deep copy; tiles are copied too.
func (b *Board) Clone() *Board {
	return &Board{grid: core.Map(b.grid, func(_ core.Coordinate, t *Tile) *Tile {
		if t == nil {
			return nil
		}
		cp := *t
		return &cp
	})}
}

// Equal compares boards the way saved maps are compared: row-set equality
// with tiles compared by value.
func (b *Board) Equal(other *Board) bool {
	return core.RowSetEqual(b.grid, other.grid, tilesEqual)
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.grid)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	g := &core.Grid[*Tile]{}
	if err := json.Unmarshal(data, g); err != nil {
		return err
	}
	b.grid = g
	return nil
}
