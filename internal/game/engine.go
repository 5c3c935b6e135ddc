package game

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/adventurer"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/rules"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/states"
)

// GameConfig holds everything needed to set up a game
type GameConfig struct {
	// GameID defaults to a random UUID
	GameID string
	Board  *island.Board
	// Adventurers in turn order
	Adventurers []adventurer.Kind
	// ActionPoints per turn, 0 reads the configured default
	ActionPoints int
	// WaterLevel the game starts at, negative reads the configured default
	WaterLevel WaterLevel
	// InitialFloods is the number of flood cards drawn during setup,
	// negative reads the configured default
	InitialFloods int
	Rng           *rand.Rand
	Logger        zerolog.Logger
	// EventBus to publish on, a new one is created when nil
	EventBus *events.EventBus
}

// Engine runs a game: the board, the adventurers, the water meter and the
// flood deck, driven through the turn phases.
type Engine struct {
	mu sync.Mutex

	gameID      string
	board       *island.Board
	adventurers []*adventurer.Adventurer
	water       WaterLevel
	rng         *rand.Rand
	logger      zerolog.Logger

	eventBus      *events.EventBus
	stateMachine  *states.StateMachine
	legalMoves    *rules.LegalMoveCalculator
	floods        *FloodManager
	turnProcessor *TurnProcessor
}

// NewEngine sets up a game and starts the first turn
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// GameID returns the UUID stamped on every event of this game
func (e *Engine) GameID() string { return e.gameID }

func (e *Engine) EventBus() *events.EventBus { return e.eventBus }

// Island returns the live board. Callers must not modify it while the game
// is running.
func (e *Engine) Island() *island.Board { return e.board }

func (e *Engine) Phase() states.GamePhase { return e.stateMachine.CurrentPhase() }

// History returns the phase transitions so far
func (e *Engine) History() []states.Transition { return e.stateMachine.History() }

// Adventurers returns the adventurers in turn order
func (e *Engine) Adventurers() []*adventurer.Adventurer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*adventurer.Adventurer(nil), e.adventurers...)
}

// ActiveIndex is the index of the adventurer whose turn it is
func (e *Engine) ActiveIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeIndex()
}

// Active returns the adventurer whose turn it is
func (e *Engine) Active() *adventurer.Adventurer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active()
}

func (e *Engine) activeIndex() int {
	return e.stateMachine.Context().ActiveIndex()
}

func (e *Engine) active() *adventurer.Adventurer {
	return e.adventurers[e.activeIndex()]
}

// Turn is the number of the current turn, starting at 1
func (e *Engine) Turn() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateMachine.Context().Turn
}

// ActionPoints left to the active adventurer
func (e *Engine) ActionPoints() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateMachine.Context().ActionPoints
}

// WaterLevel returns the current water level
func (e *Engine) WaterLevel() WaterLevel {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.water
}

// FloodDeck returns the sizes of the flood draw and discard piles
func (e *Engine) FloodDeck() (draw, discard int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.floods.DrawSize(), len(e.floods.DiscardPile())
}

// IsOver reports whether the game has ended
func (e *Engine) IsOver() bool {
	return e.Phase().IsTerminal()
}

// LegalActions lists what the active adventurer can do right now. Outside of
// the actions phase every set is empty.
func (e *Engine) LegalActions() rules.LegalActions {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.legalActions()
}

func (e *Engine) legalActions() rules.LegalActions {
	ap := 0
	if e.stateMachine.CurrentPhase().CanReceiveActions() {
		ap = e.stateMachine.Context().ActionPoints
	}
	return e.legalMoves.LegalActions(e.board, e.adventurers, e.activeIndex(), ap)
}

// Move walks the active adventurer to an orthogonal neighbor
func (e *Engine) Move(target core.Coordinate) error {
	return e.Apply(Action{Type: ActionTypeMove, Target: target})
}

// SpecialMove moves the active adventurer using its ability
func (e *Engine) SpecialMove(target core.Coordinate) error {
	return e.Apply(Action{Type: ActionTypeSpecialMove, Target: target})
}

// Drain shores up a flooded tile in reach of the active adventurer
func (e *Engine) Drain(target core.Coordinate) error {
	return e.Apply(Action{Type: ActionTypeDrain, Target: target})
}

// Navigate moves another adventurer, selected by index
func (e *Engine) Navigate(other int, target core.Coordinate) error {
	return e.Apply(Action{Type: ActionTypeNavigate, Target: target, Other: other})
}

// Apply validates an action against the legal actions of the active
// adventurer and performs it. Rejected actions change nothing.
func (e *Engine) Apply(action Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	active := e.active()
	if phase := e.stateMachine.CurrentPhase(); !phase.CanReceiveActions() {
		return e.reject(active, action, fmt.Errorf("%w: %s", ErrWrongPhase, phase))
	}

	legal := e.legalActions()
	ctx := e.stateMachine.Context()

	switch action.Type {
	case ActionTypeMove:
		if !legal.Moves.Has(action.Target) {
			return e.reject(active, action, ErrIllegalTarget)
		}
		from := active.Position()
		active.SetPosition(action.Target)
		active.OnMove(&ctx.ActionPoints)
		e.eventBus.Publish(events.NewAdventurerMovedEvent(e.gameID, active.Kind().String(), from, action.Target, false, ""))

	case ActionTypeSpecialMove:
		if !legal.SpecialMoves.Has(action.Target) {
			return e.reject(active, action, ErrIllegalTarget)
		}
		from := active.Position()
		active.SetPosition(action.Target)
		active.OnSpecialMove(&ctx.ActionPoints)
		e.eventBus.Publish(events.NewAdventurerMovedEvent(e.gameID, active.Kind().String(), from, action.Target, true, ""))

	case ActionTypeDrain:
		if !legal.Drains.Has(action.Target) {
			return e.reject(active, action, ErrIllegalTarget)
		}
		tile, _ := e.board.Tile(action.Target)
		tile.Drain()
		active.OnDrain(&ctx.ActionPoints)
		e.eventBus.Publish(events.NewTileDrainedEvent(e.gameID, active.Kind().String(), action.Target, tile.Kind.String()))

	case ActionTypeNavigate:
		if action.Other < 0 || action.Other >= len(e.adventurers) {
			return e.reject(active, action, fmt.Errorf("%w: %d", ErrUnknownAdventurer, action.Other))
		}
		targets, ok := legal.Navigate[action.Other]
		if !ok || !targets.Has(action.Target) {
			return e.reject(active, action, ErrIllegalTarget)
		}
		other := e.adventurers[action.Other]
		from := other.Position()
		other.SetPosition(action.Target)
		active.OnMoveOther(&ctx.ActionPoints)
		e.eventBus.Publish(events.NewAdventurerMovedEvent(e.gameID, other.Kind().String(), from, action.Target, false, active.Kind().String()))

	default:
		return e.reject(active, action, fmt.Errorf("unknown action type %d", int(action.Type)))
	}

	e.logger.Debug().
		Stringer("adventurer", active.Kind()).
		Stringer("action", action).
		Int("action_points", ctx.ActionPoints).
		Msg("Action applied")
	return nil
}

// reject logs and publishes a refused action and returns the wrapped error
func (e *Engine) reject(active *adventurer.Adventurer, action Action, err error) error {
	e.logger.Warn().
		Err(err).
		Stringer("adventurer", active.Kind()).
		Stringer("action", action).
		Msg("Action rejected")
	e.eventBus.Publish(events.NewActionRejectedEvent(e.gameID, active.Kind().String(), action.Type.String(), err.Error()))
	return WrapActionError(active.Kind().String(), action.Type, err)
}

// EndActions finishes the active adventurer's actions, draws the flood cards
// for the water level and starts the next adventurer's turn.
func (e *Engine) EndActions(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.turnProcessor.EndTurn(ctx)
}

// WatersRise raises the water level and puts the flooded tiles back on top
// of the flood deck.
func (e *Engine) WatersRise() WaterLevel {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.water = e.water.Rise()
	e.floods.Rise()
	e.eventBus.Publish(events.NewWaterRoseEvent(e.gameID, int(e.water), e.water.DrawAmount(), e.water.IsDeadly()))
	e.logger.Info().
		Int("water_level", int(e.water)).
		Int("draw_amount", e.water.DrawAmount()).
		Bool("deadly", e.water.IsDeadly()).
		Msg("Waters rise")
	return e.water
}

// End stops the game. No further actions or turns are accepted.
func (e *Engine) End(reason string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stateMachine.Context().EndReason = reason
	if err := e.stateMachine.TransitionTo(states.PhaseEnded, reason); err != nil {
		return fmt.Errorf("%w: %v", ErrWrongPhase, err)
	}
	return nil
}

// standingOn returns the adventurers on c
func (e *Engine) standingOn(c core.Coordinate) mapset.Set[adventurer.Kind] {
	kinds := mapset.New[adventurer.Kind]()
	for _, a := range e.adventurers {
		if a.Position() == c {
			kinds.Put(a.Kind())
		}
	}
	return kinds
}
