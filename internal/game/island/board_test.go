package island

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard(core.NewCoordinate(4, 3))

	assert.Equal(t, uint(4), b.Width())
	assert.Equal(t, uint(3), b.Height())
	for c, tile := range b.All() {
		assert.Nil(t, tile, "cell %s", c)
	}
	_, ok := b.LimitRect()
	assert.False(t, ok)
}

func TestBoard_PlaceAndRemove(t *testing.T) {
	b := NewBoard(core.NewCoordinate(3, 3))
	at := core.NewCoordinate(1, 2)

	require.NoError(t, b.Place(at, NewTile(Observatory)))
	tile, ok := b.Tile(at)
	require.True(t, ok)
	assert.Equal(t, Observatory, tile.Kind)

	err := b.Place(core.NewCoordinate(3, 0), NewTile(Watchtower))
	assert.ErrorIs(t, err, core.ErrOutOfBounds)

	removed, err := b.Remove(at)
	require.NoError(t, err)
	assert.Equal(t, Observatory, removed.Kind)
	_, ok = b.Tile(at)
	assert.False(t, ok)

	_, err = b.Remove(at)
	assert.ErrorIs(t, err, ErrNoTile)
}

func TestBoard_IsStandable(t *testing.T) {
	b := boardFromStrings(t,
		"DF",
		"G.",
	)

	tests := []struct {
		at       core.Coordinate
		expected bool
	}{
		{core.NewCoordinate(0, 0), true},
		{core.NewCoordinate(1, 0), true},
		{core.NewCoordinate(0, 1), false},
		{core.NewCoordinate(1, 1), false},
		{core.NewCoordinate(5, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.at.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, b.IsStandable(tt.at))
		})
	}

	assert.Equal(t,
		[]core.Coordinate{core.NewCoordinate(0, 0), core.NewCoordinate(1, 0)},
		slices.Collect(b.Standable()))
}

func TestBoard_LimitRect(t *testing.T) {
	b := boardFromStrings(t,
		".....",
		"...D.",
		"..G..",
		".F...",
		".....",
	)

	r, ok := b.LimitRect()
	require.True(t, ok)
	assert.Equal(t, core.NewRect[uint](1, 1, 2, 2), r, "hull starts at the first tile, not the origin")

	single := boardFromStrings(t, "...", "..D")
	r, ok = single.LimitRect()
	require.True(t, ok)
	assert.Equal(t, core.NewRect[uint](2, 1, 0, 0), r)
}

func TestBoard_FindKind(t *testing.T) {
	b := NewBoard(core.NewCoordinate(3, 3))
	require.NoError(t, b.Place(core.NewCoordinate(2, 1), NewTile(IronGate)))

	at, ok := b.FindKind(IronGate)
	assert.True(t, ok)
	assert.Equal(t, core.NewCoordinate(2, 1), at)

	_, ok = b.FindKind(GoldGate)
	assert.False(t, ok)
}

func TestBoard_CloneIsDeep(t *testing.T) {
	b := boardFromStrings(t, "DD")
	c := b.Clone()

	tile, _ := c.Tile(core.NewCoordinate(0, 0))
	tile.Flood()

	orig, _ := b.Tile(core.NewCoordinate(0, 0))
	assert.Equal(t, Dry, orig.State)
	assert.False(t, b.Equal(c))
}

func TestBoard_EqualIsRowSet(t *testing.T) {
	a := &Tile{Kind: LostLagoon}
	b := &Tile{Kind: PhantomRock, State: Flooded}

	top, err := BoardFromRows([][]*Tile{{a, nil}, {nil, b}})
	require.NoError(t, err)
	flipped, err := BoardFromRows([][]*Tile{{nil, b}, {a, nil}})
	require.NoError(t, err)
	other, err := BoardFromRows([][]*Tile{{a, nil}, {nil, &Tile{Kind: PhantomRock}}})
	require.NoError(t, err)

	assert.True(t, top.Equal(flipped), "row order is ignored")
	assert.False(t, core.Equal(top.Grid(), flipped.Grid(), tilesEqual), "positional equality sees the swap")
	assert.False(t, top.Equal(other))
}

func TestBoard_Shape(t *testing.T) {
	b := boardFromStrings(t,
		"D.G",
		"F..",
	)

	s := b.Shape()
	assert.Equal(t, 3, s.TileCount())
	assert.True(t, s.IsStandable(core.NewCoordinate(2, 0)), "sunk tiles still belong to the shape")
	assert.False(t, s.IsConnected())
}

func TestSaveLoad(t *testing.T) {
	b := NewBoard(core.NewCoordinate(10, 10))
	for c := range b.All() {
		require.NoError(t, b.Place(c, NewTile(CaveOfShadows)))
	}
	flooded, _ := b.Tile(core.NewCoordinate(3, 4))
	flooded.Flood()
	require.NoError(t, b.Place(core.NewCoordinate(9, 9), nil))

	path := filepath.Join(t.TempDir(), "island.json")
	require.NoError(t, Save(path, b))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, b.Equal(loaded))
	assert.True(t, core.Equal(b.Grid(), loaded.Grid(), tilesEqual))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, fs.ErrNotExist), "file system errors pass through: %v", err)

	jagged := filepath.Join(dir, "jagged.json")
	require.NoError(t, os.WriteFile(jagged, []byte(`[[null,null],[null]]`), 0o644))
	_, err = Load(jagged)
	assert.ErrorIs(t, err, core.ErrMalformedGrid)

	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`[[{"kind":"atlantis","state":"dry"}]]`), 0o644))
	_, err = Load(unknown)
	assert.ErrorIs(t, err, ErrUnknownTileKind)
}
