package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext carries the turn bookkeeping the states act on
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// AdventurerCount is the number of adventurers taking turns
	AdventurerCount int

	// MaxActionPoints is the budget every turn starts with
	MaxActionPoints int

	// ActionPoints left in the current turn
	ActionPoints int

	// Turn counts the turns started so far, starting at 1
	Turn int

	// StartTime is when the first turn started
	StartTime time.Time

	// Reason the game ended, if it has
	EndReason string
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, adventurers, actionPoints int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID:          gameID,
		AdventurerCount: adventurers,
		MaxActionPoints: actionPoints,
		Logger:          logger.With().Str("game_id", gameID).Logger(),
	}
}

// ActiveIndex is the index of the adventurer whose turn it is
func (gc *GameContext) ActiveIndex() int {
	if gc.AdventurerCount == 0 || gc.Turn == 0 {
		return 0
	}
	return (gc.Turn - 1) % gc.AdventurerCount
}

// ElapsedTime returns the time since the first turn started
func (gc *GameContext) ElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	return time.Since(gc.StartTime)
}
