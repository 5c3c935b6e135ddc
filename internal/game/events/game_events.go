package events

import (
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeTurnStarted     = "turn.started"
	TypeAdventurerMoved = "adventurer.moved"
	TypeTileDrained     = "tile.drained"
	TypeTileFlooded     = "tile.flooded"
	TypeTileSunk        = "tile.sunk"
	TypeWaterRose       = "water.rose"
	TypeActionRejected  = "action.rejected"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Adventurers []string `json:"adventurers"`
	MapWidth    uint     `json:"map_width"`
	MapHeight   uint     `json:"map_height"`
	WaterLevel  int      `json:"water_level"`
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, adventurers []string, width, height uint, waterLevel int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:   newBase(TypeGameStarted, gameID),
		Adventurers: adventurers,
		MapWidth:    width,
		MapHeight:   height,
		WaterLevel:  waterLevel,
	}
}

// TurnStartedEvent is published when an adventurer begins their turn
type TurnStartedEvent struct {
	BaseEvent
	Turn         int    `json:"turn"`
	Adventurer   string `json:"adventurer"`
	ActionPoints int    `json:"action_points"`
}

// NewTurnStartedEvent creates a new TurnStartedEvent
func NewTurnStartedEvent(gameID string, turn int, adventurer string, actionPoints int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent:    newBase(TypeTurnStarted, gameID),
		Turn:         turn,
		Adventurer:   adventurer,
		ActionPoints: actionPoints,
	}
}

// AdventurerMovedEvent is published after a walk, a special move or a push.
// MovedBy names the adventurer who pushed and is empty for own moves.
type AdventurerMovedEvent struct {
	BaseEvent
	Adventurer string          `json:"adventurer"`
	From       core.Coordinate `json:"from"`
	To         core.Coordinate `json:"to"`
	Special    bool            `json:"special"`
	MovedBy    string          `json:"moved_by,omitempty"`
}

// NewAdventurerMovedEvent creates a new AdventurerMovedEvent
func NewAdventurerMovedEvent(gameID, adventurer string, from, to core.Coordinate, special bool, movedBy string) *AdventurerMovedEvent {
	return &AdventurerMovedEvent{
		BaseEvent:  newBase(TypeAdventurerMoved, gameID),
		Adventurer: adventurer,
		From:       from,
		To:         to,
		Special:    special,
		MovedBy:    movedBy,
	}
}

// TileDrainedEvent is published when a flooded tile is shored up
type TileDrainedEvent struct {
	BaseEvent
	Adventurer string          `json:"adventurer"`
	Position   core.Coordinate `json:"position"`
	Tile       string          `json:"tile"`
}

// NewTileDrainedEvent creates a new TileDrainedEvent
func NewTileDrainedEvent(gameID, adventurer string, pos core.Coordinate, tile string) *TileDrainedEvent {
	return &TileDrainedEvent{
		BaseEvent:  newBase(TypeTileDrained, gameID),
		Adventurer: adventurer,
		Position:   pos,
		Tile:       tile,
	}
}

// TileFloodedEvent is published when a flood card floods a dry tile
type TileFloodedEvent struct {
	BaseEvent
	Position core.Coordinate `json:"position"`
	Tile     string          `json:"tile"`
}

// NewTileFloodedEvent creates a new TileFloodedEvent
func NewTileFloodedEvent(gameID string, pos core.Coordinate, tile string) *TileFloodedEvent {
	return &TileFloodedEvent{
		BaseEvent: newBase(TypeTileFlooded, gameID),
		Position:  pos,
		Tile:      tile,
	}
}

// TileSunkEvent is published when a flooded tile sinks. Stranded lists the
// adventurers left standing on it.
type TileSunkEvent struct {
	BaseEvent
	Position core.Coordinate `json:"position"`
	Tile     string          `json:"tile"`
	Stranded []string        `json:"stranded,omitempty"`
}

// NewTileSunkEvent creates a new TileSunkEvent
func NewTileSunkEvent(gameID string, pos core.Coordinate, tile string, stranded []string) *TileSunkEvent {
	return &TileSunkEvent{
		BaseEvent: newBase(TypeTileSunk, gameID),
		Position:  pos,
		Tile:      tile,
		Stranded:  stranded,
	}
}

// WaterRoseEvent is published when the water level goes up
type WaterRoseEvent struct {
	BaseEvent
	Level      int  `json:"level"`
	DrawAmount int  `json:"draw_amount"`
	Deadly     bool `json:"deadly"`
}

// NewWaterRoseEvent creates a new WaterRoseEvent
func NewWaterRoseEvent(gameID string, level, drawAmount int, deadly bool) *WaterRoseEvent {
	return &WaterRoseEvent{
		BaseEvent:  newBase(TypeWaterRose, gameID),
		Level:      level,
		DrawAmount: drawAmount,
		Deadly:     deadly,
	}
}

// ActionRejectedEvent is published when an action fails validation
type ActionRejectedEvent struct {
	BaseEvent
	Adventurer string `json:"adventurer"`
	Action     string `json:"action"`
	Reason     string `json:"reason"`
}

// NewActionRejectedEvent creates a new ActionRejectedEvent
func NewActionRejectedEvent(gameID, adventurer, action, reason string) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent:  newBase(TypeActionRejected, gameID),
		Adventurer: adventurer,
		Action:     action,
		Reason:     reason,
	}
}

// StateTransitionEvent is published when the turn state machine changes phase
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason"`
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
