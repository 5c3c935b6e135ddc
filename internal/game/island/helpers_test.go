package island

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFromStrings builds a board from rows of 'D' (dry), 'F' (flooded),
// 'G' (gone) and '.' (sea). Tile kinds are handed out in declaration order.
func boardFromStrings(t *testing.T, rows ...string) *Board {
	t.Helper()
	next := TileKind(0)
	raw := make([][]*Tile, len(rows))
	for y, row := range rows {
		raw[y] = make([]*Tile, len(row))
		for x, ch := range row {
			var state TileState
			switch ch {
			case 'D':
				state = Dry
			case 'F':
				state = Flooded
			case 'G':
				state = Gone
			case '.':
				continue
			default:
				t.Fatalf("unknown cell %q", ch)
			}
			raw[y][x] = &Tile{Kind: next % tileKindCount, State: state}
			next++
		}
	}
	b, err := BoardFromRows(raw)
	require.NoError(t, err)
	return b
}
