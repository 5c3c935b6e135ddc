package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
)

// BoardFromStrings creates a board from ASCII rows:
//
//	D  dry tile
//	F  flooded tile
//	G  gone tile
//	.  sea
//
// Tile kinds are assigned in declaration order, so a board with at most 24
// tiles has no duplicate kinds.
func BoardFromStrings(t *testing.T, rows ...string) *island.Board {
	t.Helper()
	kinds := island.AllKinds()
	next := 0

	raw := make([][]*island.Tile, len(rows))
	for y, row := range rows {
		raw[y] = make([]*island.Tile, len(row))
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			tile := island.NewTile(kinds[next%len(kinds)])
			next++
			switch ch {
			case 'D':
			case 'F':
				tile.State = island.Flooded
			case 'G':
				tile.State = island.Gone
			default:
				t.Fatalf("unknown cell %q at (%d,%d)", ch, x, y)
			}
			raw[y][x] = tile
		}
	}

	board, err := island.BoardFromRows(raw)
	require.NoError(t, err)
	return board
}

// ShapeFromStrings creates a shape where '#' is land and anything else sea.
func ShapeFromStrings(t *testing.T, rows ...string) *island.Shape {
	t.Helper()
	raw := make([][]bool, len(rows))
	for y, row := range rows {
		raw[y] = make([]bool, len(row))
		for x, ch := range row {
			raw[y][x] = ch == '#'
		}
	}

	shape, err := island.ShapeFromRows(raw)
	require.NoError(t, err)
	return shape
}

// PlaceKind puts a dry tile of kind at c, failing the test on error.
func PlaceKind(t *testing.T, board *island.Board, c core.Coordinate, kind island.TileKind) *island.Tile {
	t.Helper()
	tile := island.NewTile(kind)
	require.NoError(t, board.Place(c, tile))
	return tile
}

// Coords is shorthand for a list of coordinates given as x, y pairs.
func Coords(xy ...uint) []core.Coordinate {
	out := make([]core.Coordinate, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.NewCoordinate(xy[i], xy[i+1]))
	}
	return out
}
