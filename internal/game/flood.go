package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/adventurer"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/deck"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
)

// FloodManager draws flood cards and applies them to the board
type FloodManager struct {
	deck     *deck.Stack[island.TileKind]
	eventBus events.Publisher
	gameID   string
	logger   zerolog.Logger
}

// NewFloodManager creates a new flood manager
func NewFloodManager(floodDeck *deck.Stack[island.TileKind], eventBus events.Publisher, gameID string, logger zerolog.Logger) *FloodManager {
	return &FloodManager{
		deck:     floodDeck,
		eventBus: eventBus,
		gameID:   gameID,
		logger:   logger.With().Str("component", "FloodManager").Logger(),
	}
}

// Draw draws up to n flood cards, never more than the deck holds. An empty
// draw pile is refilled from the discard pile. It returns the number of cards
// drawn.
func (fm *FloodManager) Draw(board *island.Board, team []*adventurer.Adventurer, n int) int {
	n = min(n, fm.deck.Size())
	flooded, sunk := 0, 0

	for i := 0; i < n; i++ {
		kind, ok := fm.deck.Draw()
		if !ok {
			fm.logger.Debug().Int("cards", fm.deck.DiscardSize()).Msg("Flood deck empty, shuffling discards back")
			fm.deck.ShuffleBack()
			if kind, ok = fm.deck.Draw(); !ok {
				return i
			}
		}

		switch fm.floodTile(board, team, kind) {
		case island.Flooded:
			flooded++
		case island.Gone:
			sunk++
		}
	}

	fm.logger.Debug().
		Int("drawn", n).
		Int("flooded", flooded).
		Int("sunk", sunk).
		Int("draw_pile", fm.deck.DrawSize()).
		Int("discard_pile", fm.deck.DiscardSize()).
		Msg("Flood cards drawn")
	return n
}

// floodTile floods the tile named by the card and returns its new state. A
// tile that sinks takes its card out of the game.
func (fm *FloodManager) floodTile(board *island.Board, team []*adventurer.Adventurer, kind island.TileKind) island.TileState {
	pos, found := board.FindKind(kind)
	if !found {
		fm.logger.Warn().Stringer("tile", kind).Msg("Flood card for a tile that is not on the island")
		return island.Gone
	}
	tile, _ := board.Tile(pos)
	if !tile.Flood() {
		fm.logger.Warn().Stringer("tile", kind).Msg("Flood card for a tile that already sank")
		return island.Gone
	}

	if tile.State == island.Flooded {
		fm.deck.Discard(kind)
		fm.eventBus.Publish(events.NewTileFloodedEvent(fm.gameID, pos, kind.String()))
		return island.Flooded
	}

	var stranded []string
	for _, a := range team {
		if a.Position() == pos {
			stranded = append(stranded, a.Kind().String())
		}
	}
	fm.logger.Info().
		Stringer("tile", kind).
		Stringer("position", pos).
		Strs("stranded", stranded).
		Msg("Tile sank")
	fm.eventBus.Publish(events.NewTileSunkEvent(fm.gameID, pos, kind.String(), stranded))
	return island.Gone
}

// Rise shuffles the flood discard pile back on top of the draw pile
func (fm *FloodManager) Rise() {
	fm.deck.ShuffleBack()
}

// DrawSize is the number of cards left to draw
func (fm *FloodManager) DrawSize() int { return fm.deck.DrawSize() }

// DiscardPile returns the flooded tiles waiting to come back
func (fm *FloodManager) DiscardPile() []island.TileKind { return fm.deck.DiscardPile() }
