package adventurer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
)

func TestParseKind(t *testing.T) {
	for _, kind := range AllKinds() {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	k, err := ParseKind("PILOT")
	require.NoError(t, err)
	assert.Equal(t, Pilot, k)

	_, err = ParseKind("messenger")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKind_Text(t *testing.T) {
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("navigator")))
	assert.Equal(t, Navigator, k)

	text, err := Diver.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "diver", string(text))

	_, err = Kind(42).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKind_Abilities(t *testing.T) {
	tests := []struct {
		kind     Kind
		implicit bool
		moves    bool
		spawn    island.TileKind
	}{
		{Courier, true, false, island.SilverGate},
		{Diver, true, false, island.IronGate},
		{Engineer, true, false, island.BronzeGate},
		{Explorer, true, false, island.CopperGate},
		{Navigator, false, true, island.GoldGate},
		{Pilot, false, false, island.FoolsLanding},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.implicit, tt.kind.ImplicitSpecial())
			assert.Equal(t, tt.moves, tt.kind.CanMoveOthers())
			assert.Equal(t, tt.spawn, tt.kind.SpawnTile())
		})
	}
}
