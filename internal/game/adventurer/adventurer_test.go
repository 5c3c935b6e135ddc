package adventurer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/testutil"
)

var coords = testutil.Coords

func openIsland(t *testing.T) *island.Board {
	return testutil.BoardFromStrings(t,
		"DDD",
		"DDD",
		"DDD",
	)
}

func TestStandardMoves(t *testing.T) {
	board := testutil.BoardFromStrings(t,
		".....",
		".DFG.",
		"..D..",
		".....",
	)
	a := New(Engineer, core.NewCoordinate(2, 1))

	testutil.AssertCoords(t, coords(1, 1, 2, 2), a.StandardMoves(board, 3),
		"flooded neighbors are walkable, sunk ones are not")
}

func TestStandardMoves_ClippedToIsland(t *testing.T) {
	board := testutil.BoardFromStrings(t,
		"....",
		".DD.",
		"....",
	)
	a := New(Courier, core.NewCoordinate(1, 1))

	testutil.AssertCoords(t, coords(2, 1), a.StandardMoves(board, 1))
}

func TestZeroActionPoints(t *testing.T) {
	board := openIsland(t)

	for _, kind := range AllKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			a := New(kind, core.NewCoordinate(1, 1))

			assert.Zero(t, a.StandardMoves(board, 0).Size())
			assert.Zero(t, a.SpecialMoves(board, 0).Size())
			assert.Zero(t, a.Drains(board, 0).Size())
			assert.False(t, a.CanMoveOther(0))
			assert.False(t, a.CanAct(0))
			assert.False(t, a.CanTransferCards(New(Pilot, core.NewCoordinate(1, 1)), 0))
		})
	}
}

func TestSpecialMoves_NoAbility(t *testing.T) {
	board := openIsland(t)

	for _, kind := range []Kind{Courier, Engineer, Navigator} {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Zero(t, New(kind, core.NewCoordinate(1, 1)).SpecialMoves(board, 3).Size())
		})
	}
}

func TestDiver_SpecialMoves(t *testing.T) {
	board := testutil.BoardFromStrings(t,
		"..D..",
		"..G..",
		"..FDD",
		"DFG.G",
		"D...F",
	)
	diver := New(Diver, core.NewCoordinate(0, 3))

	testutil.AssertCoords(t,
		coords(2, 0, 2, 2, 3, 2, 0, 3, 1, 3),
		diver.SpecialMoves(board, 1))
}

func TestDiver_CannotStepStraightOntoDryLand(t *testing.T) {
	board := testutil.BoardFromStrings(t, "DDD")
	diver := New(Diver, core.NewCoordinate(1, 0))

	assert.Zero(t, diver.SpecialMoves(board, 1).Size())
	testutil.AssertCoords(t, coords(0, 0, 2, 0), diver.StandardMoves(board, 1))
}

func TestDiver_NeverCrossesOpenSea(t *testing.T) {
	board := testutil.BoardFromStrings(t, "DG.FD")
	diver := New(Diver, core.NewCoordinate(0, 0))

	testutil.AssertCoords(t, coords(0, 0), diver.SpecialMoves(board, 1),
		"the sea gap stops the dive, only the way back is open")
}

func TestDiver_OffBoard(t *testing.T) {
	board := testutil.BoardFromStrings(t, "DF")
	diver := New(Diver, core.NewCoordinate(9, 9))

	assert.Zero(t, diver.SpecialMoves(board, 1).Size(), "a failed search is an empty set")
}

func TestExplorer(t *testing.T) {
	board := testutil.BoardFromStrings(t,
		"DDG",
		"DFD",
		"FDD",
	)
	explorer := New(Explorer, core.NewCoordinate(1, 1))

	testutil.AssertCoords(t, coords(0, 0, 0, 2, 2, 2), explorer.SpecialMoves(board, 1))
	testutil.AssertCoords(t,
		coords(0, 0, 1, 0, 0, 1, 1, 1, 2, 1, 0, 2, 1, 2, 2, 2),
		explorer.Drains(board, 1),
		"explorer drains diagonally too")
}

func TestPilot(t *testing.T) {
	board := testutil.BoardFromStrings(t,
		"DD.",
		"G.F",
	)
	pilot := New(Pilot, core.NewCoordinate(0, 0))
	ap := 3

	testutil.AssertCoords(t, coords(1, 0, 2, 1), pilot.SpecialMoves(board, ap))

	pilot.OnSpecialMove(&ap)
	assert.Equal(t, 2, ap)
	assert.True(t, pilot.HasFlown())
	assert.Zero(t, pilot.SpecialMoves(board, ap).Size(), "one flight per turn")

	pilot.StartTurn()
	assert.NotZero(t, pilot.SpecialMoves(board, ap).Size())
}

func TestDrains_Default(t *testing.T) {
	board := testutil.BoardFromStrings(t,
		"DGD",
		"DFD",
		"D.D",
	)
	a := New(Courier, core.NewCoordinate(1, 1))

	testutil.AssertCoords(t, coords(0, 1, 1, 1, 2, 1), a.Drains(board, 1))

	ap := 2
	a.OnDrain(&ap)
	assert.Equal(t, 1, ap)
}

func TestEngineer_DoubleDrain(t *testing.T) {
	board := openIsland(t)
	engineer := New(Engineer, core.NewCoordinate(1, 1))
	all := coords(1, 0, 0, 1, 1, 1, 2, 1, 1, 2)
	ap := 1

	testutil.AssertCoords(t, all, engineer.Drains(board, ap))

	engineer.OnDrain(&ap)
	assert.Equal(t, 0, ap)
	assert.True(t, engineer.BonusBanked())
	assert.True(t, engineer.CanAct(ap))

	testutil.AssertCoords(t, all, engineer.Drains(board, ap), "banked drain works without points")
	assert.Zero(t, engineer.StandardMoves(board, ap).Size(), "the bonus only covers drains")

	engineer.OnDrain(&ap)
	assert.Equal(t, 0, ap)
	assert.False(t, engineer.BonusBanked())

	assert.Zero(t, engineer.Drains(board, ap).Size())
}

func TestEngineer_MoveForfeitsBonus(t *testing.T) {
	board := openIsland(t)
	engineer := New(Engineer, core.NewCoordinate(1, 1))
	ap := 1

	engineer.OnDrain(&ap)
	require.True(t, engineer.BonusBanked())

	engineer.OnMove(&ap)
	assert.Equal(t, 0, ap, "points never go negative")
	assert.False(t, engineer.BonusBanked())
	assert.Zero(t, engineer.Drains(board, ap).Size())
}

func TestNavigator(t *testing.T) {
	board := openIsland(t)
	navigator := New(Navigator, core.NewCoordinate(2, 2))
	pilot := New(Pilot, core.NewCoordinate(0, 0))
	ap := 1

	assert.True(t, navigator.CanMoveOther(ap))
	testutil.AssertCoords(t, coords(1, 0, 0, 1), navigator.NavigateTargets(board, pilot, ap))

	navigator.OnMoveOther(&ap)
	assert.Equal(t, 0, ap)
	assert.True(t, navigator.CanMoveOther(ap), "second push is free")
	assert.NotZero(t, navigator.NavigateTargets(board, pilot, ap).Size())

	navigator.OnMoveOther(&ap)
	assert.Equal(t, 0, ap)
	assert.False(t, navigator.CanMoveOther(ap))
	assert.Zero(t, navigator.NavigateTargets(board, pilot, ap).Size())
}

func TestNavigator_MoveForfeitsPush(t *testing.T) {
	navigator := New(Navigator, core.NewCoordinate(0, 0))
	ap := 2

	navigator.OnMoveOther(&ap)
	navigator.OnMove(&ap)
	assert.Equal(t, 0, ap)
	assert.False(t, navigator.CanMoveOther(ap))
}

func TestMoveOther_OnlyNavigator(t *testing.T) {
	board := openIsland(t)
	for _, kind := range []Kind{Courier, Diver, Engineer, Explorer, Pilot} {
		a := New(kind, core.NewCoordinate(1, 1))
		ap := 2

		assert.False(t, a.CanMoveOther(ap), kind.String())
		assert.Zero(t, a.NavigateTargets(board, New(Diver, core.NewCoordinate(0, 0)), ap).Size())
		a.OnMoveOther(&ap)
		assert.Equal(t, 2, ap, "%s pays nothing for an impossible push", kind)
	}
}

func TestCanTransferCards(t *testing.T) {
	here := core.NewCoordinate(1, 1)
	there := New(Diver, core.NewCoordinate(2, 2))
	beside := New(Diver, here)

	assert.True(t, New(Courier, here).CanTransferCards(there, 1))
	assert.False(t, New(Engineer, here).CanTransferCards(there, 1))
	assert.True(t, New(Engineer, here).CanTransferCards(beside, 1))
	assert.False(t, New(Courier, here).CanTransferCards(there, 0))
}

func TestSpawn(t *testing.T) {
	board := island.NewBoard(core.NewCoordinate(4, 4))
	testutil.PlaceKind(t, board, core.NewCoordinate(3, 2), island.IronGate)

	diver, err := Spawn(board, Diver)
	require.NoError(t, err)
	assert.Equal(t, core.NewCoordinate(3, 2), diver.Position())
	assert.Equal(t, Diver, diver.Kind())

	_, err = Spawn(board, Pilot)
	assert.ErrorIs(t, err, ErrNoSpawnTile)
}

func TestSpawn_SunkGate(t *testing.T) {
	board := island.NewBoard(core.NewCoordinate(4, 4))
	gate := core.NewCoordinate(0, 2)
	testutil.PlaceKind(t, board, gate, island.IronGate)
	tile, ok := board.Tile(gate)
	require.True(t, ok)
	tile.State = island.Gone

	_, ok = SpawnPoint(board, Diver)
	assert.False(t, ok)

	_, err := Spawn(board, Diver)
	assert.ErrorIs(t, err, ErrNoSpawnTile)

	tile.State = island.Flooded
	diver, err := Spawn(board, Diver)
	require.NoError(t, err, "a flooded gate is still standable")
	assert.Equal(t, gate, diver.Position())
}
