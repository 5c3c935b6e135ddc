package adventurer

import (
	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/bfs"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
)

type diveMarker int

const (
	// startPos is where the dive begins. The diver can leave it only into
	// water, never straight onto a dry tile.
	startPos diveMarker = iota
	// endPos is a flooded tile: the diver may stop here or keep swimming.
	endPos
	// endPosNoSwimThrough is a dry tile reached through water. The dive ends.
	endPosNoSwimThrough
	// swimThroughOnly is a sunk tile the diver can pass but not stop on.
	swimThroughOnly
)

func markDive(_ core.Coordinate, from *diveMarker, _ core.Coordinate, tile *island.Tile) *diveMarker {
	if from == nil || tile == nil {
		return nil
	}

	var next diveMarker
	switch {
	case tile.State == island.Dry && (*from == endPos || *from == swimThroughOnly):
		next = endPosNoSwimThrough
	case tile.State == island.Flooded && *from != endPosNoSwimThrough:
		next = endPos
	case tile.State == island.Gone && *from != endPosNoSwimThrough:
		next = swimThroughOnly
	default:
		return nil
	}
	return &next
}

// dives returns every tile the Diver can surface on. Absent tiles are never
// crossed: the Diver only swims where the island used to be.
func (a *Adventurer) dives(board *island.Board) mapset.Set[core.Coordinate] {
	start := a.pos
	landings, err := bfs.Run(board.Grid(), bfs.Options[*island.Tile, diveMarker, bool]{
		Start:       &start,
		StartMarker: startPos,
		Mark:        markDive,
		Project: func(_ core.Coordinate, m *diveMarker) bool {
			return m != nil && (*m == endPos || *m == endPosNoSwimThrough)
		},
	})
	if err != nil {
		log.Warn().Err(err).Stringer("adventurer", a).Msg("Dive search failed")
		return mapset.New[core.Coordinate]()
	}
	return bfs.Positions(landings)
}
