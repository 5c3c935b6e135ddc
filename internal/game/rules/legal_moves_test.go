package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/adventurer"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/testutil"
)

func TestLegalActions(t *testing.T) {
	board := testutil.BoardFromStrings(t,
		"DFD",
		"DDG",
		"FDD",
	)
	team := []*adventurer.Adventurer{
		adventurer.New(adventurer.Explorer, core.NewCoordinate(1, 1)),
		adventurer.New(adventurer.Pilot, core.NewCoordinate(0, 0)),
	}
	lmc := NewLegalMoveCalculator()

	legal := lmc.LegalActions(board, team, 0, 3)

	testutil.AssertCoords(t, testutil.Coords(1, 0, 0, 1, 1, 2), legal.Moves)
	testutil.AssertCoords(t, testutil.Coords(0, 0, 2, 0, 0, 2, 2, 2), legal.SpecialMoves)
	testutil.AssertCoords(t, testutil.Coords(1, 0, 0, 2), legal.Drains,
		"only flooded tiles are worth draining")
	assert.Empty(t, legal.Navigate)
	assert.True(t, legal.Any())
}

func TestLegalActions_Navigator(t *testing.T) {
	board := testutil.BoardFromStrings(t,
		"DDD",
		"DDD",
	)
	team := []*adventurer.Adventurer{
		adventurer.New(adventurer.Diver, core.NewCoordinate(0, 0)),
		adventurer.New(adventurer.Navigator, core.NewCoordinate(2, 1)),
	}

	legal := NewLegalMoveCalculator().LegalActions(board, team, 1, 1)

	require.Contains(t, legal.Navigate, 0)
	assert.NotContains(t, legal.Navigate, 1, "the navigator does not push itself")
	testutil.AssertCoords(t, testutil.Coords(1, 0, 0, 1), legal.Navigate[0])
}

func TestLegalActions_NoPoints(t *testing.T) {
	board := testutil.BoardFromStrings(t, "DF")
	team := []*adventurer.Adventurer{adventurer.New(adventurer.Courier, core.NewCoordinate(0, 0))}

	legal := NewLegalMoveCalculator().LegalActions(board, team, 0, 0)
	assert.False(t, legal.Any())
}

func TestLegalActionMask(t *testing.T) {
	board := testutil.BoardFromStrings(t,
		"DF",
		"D.",
	)
	team := []*adventurer.Adventurer{adventurer.New(adventurer.Courier, core.NewCoordinate(0, 0))}
	lmc := NewLegalMoveCalculator()

	mask := lmc.LegalActionMask(board, lmc.LegalActions(board, team, 0, 2))
	require.Len(t, mask, 2*2*ActionKinds)

	idx := func(x, y uint, kind ActionKind) int {
		return int((y*2+x)*ActionKinds) + int(kind)
	}
	assert.True(t, mask[idx(1, 0, ActionMove)])
	assert.True(t, mask[idx(0, 1, ActionMove)])
	assert.True(t, mask[idx(1, 0, ActionDrain)])
	assert.False(t, mask[idx(0, 1, ActionDrain)], "dry tiles need no draining")
	assert.False(t, mask[idx(0, 0, ActionMove)])

	count := 0
	for _, legal := range mask {
		if legal {
			count++
		}
	}
	assert.Equal(t, 3, count)
}
