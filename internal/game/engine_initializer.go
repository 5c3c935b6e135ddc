package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/adventurer"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/deck"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/rules"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/states"
)

// EngineInitializer handles the setup of a game engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates the engine, places the adventurers on their gates,
// draws the initial floods and starts the first turn.
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled or timed out")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()

	team, err := ei.spawnAdventurers()
	if err != nil {
		return nil, err
	}

	engine := ei.createEngine(team)

	ei.performInitialSetup(engine)

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		kindNames(team),
		engine.board.Width(),
		engine.board.Height(),
		int(engine.water),
	))

	if err := engine.turnProcessor.startTurn("setup complete"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to start the first turn")
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Uint("width", engine.board.Width()).
		Uint("height", engine.board.Height()).
		Strs("adventurers", kindNames(team)).
		Int("water_level", int(engine.water)).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.Rng == nil {
		ei.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		ei.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if ei.config.GameID == "" {
		ei.config.GameID = uuid.NewString()
	}
	if ei.config.ActionPoints == 0 {
		ei.config.ActionPoints = DefaultActionPoints()
	}
	if ei.config.WaterLevel < 0 {
		ei.config.WaterLevel = DefaultWaterLevel()
	}
	if ei.config.InitialFloods < 0 {
		ei.config.InitialFloods = DefaultInitialFloods()
	}
	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBus()
	}
}

// spawnAdventurers places every adventurer on its gate tile
func (ei *EngineInitializer) spawnAdventurers() ([]*adventurer.Adventurer, error) {
	if ei.config.Board == nil {
		return nil, ErrNoBoard
	}
	if len(ei.config.Adventurers) == 0 {
		return nil, ErrNoAdventurers
	}

	seen := make(map[adventurer.Kind]bool, len(ei.config.Adventurers))
	team := make([]*adventurer.Adventurer, 0, len(ei.config.Adventurers))
	for _, kind := range ei.config.Adventurers {
		if seen[kind] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAdventurer, kind)
		}
		seen[kind] = true

		a, err := adventurer.Spawn(ei.config.Board, kind)
		if err != nil {
			return nil, fmt.Errorf("spawn %s: %w", kind, err)
		}
		team = append(team, a)
	}
	return team, nil
}

// createEngine creates the engine with all its components
func (ei *EngineInitializer) createEngine(team []*adventurer.Adventurer) *Engine {
	gameContext := states.NewGameContext(ei.config.GameID, len(team), ei.config.ActionPoints, ei.logger)
	stateMachine := states.NewStateMachine(gameContext, ei.config.EventBus)

	engine := &Engine{
		gameID:       ei.config.GameID,
		board:        ei.config.Board,
		adventurers:  team,
		water:        ei.config.WaterLevel,
		rng:          ei.config.Rng,
		logger:       ei.logger,
		eventBus:     ei.config.EventBus,
		stateMachine: stateMachine,
		legalMoves:   rules.NewLegalMoveCalculator(),
	}

	engine.floods = NewFloodManager(ei.newFloodDeck(), engine.eventBus, engine.gameID, ei.logger)
	engine.turnProcessor = NewTurnProcessor(engine)

	return engine
}

// newFloodDeck builds a shuffled flood deck with one card per tile still on
// the island.
func (ei *EngineInitializer) newFloodDeck() *deck.Stack[island.TileKind] {
	var kinds []island.TileKind
	for _, tile := range ei.config.Board.Tiles() {
		kinds = append(kinds, tile.Kind)
	}

	floodDeck := deck.NewStack(kinds, ei.config.Rng)
	floodDeck.Shuffle()
	if removed := floodDeck.Remove(ei.sunk); removed > 0 {
		ei.logger.Debug().Int("cards", removed).Msg("Dropped flood cards of sunk tiles")
	}
	return floodDeck
}

func (ei *EngineInitializer) sunk(kind island.TileKind) bool {
	pos, _ := ei.config.Board.FindKind(kind)
	return !ei.config.Board.IsStandable(pos)
}

// performInitialSetup draws the flood cards that soak the island before the
// first turn.
func (ei *EngineInitializer) performInitialSetup(engine *Engine) {
	drawn := engine.floods.Draw(engine.board, engine.adventurers, ei.config.InitialFloods)
	ei.logger.Debug().Int("cards", drawn).Msg("Initial floods drawn")
}

func kindNames(team []*adventurer.Adventurer) []string {
	names := make([]string, len(team))
	for i, a := range team {
		names[i] = a.Kind().String()
	}
	return names
}
