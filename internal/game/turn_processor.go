package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/states"
)

// TurnProcessor handles the orchestration of the end of a turn. Its methods
// expect the engine lock to be held.
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger,
	}
}

// EndTurn closes the actions phase, draws the flood cards and hands the
// turn to the next adventurer.
func (tp *TurnProcessor) EndTurn(ctx context.Context) error {
	if err := tp.checkContext(ctx, "before ending turn"); err != nil {
		return err
	}

	if err := tp.validateGameState(); err != nil {
		return err
	}

	gc := tp.engine.stateMachine.Context()
	turnLogger := tp.logger.With().Int("turn", gc.Turn).Logger()

	if err := tp.engine.stateMachine.TransitionTo(states.PhaseDrawFlood, "actions finished"); err != nil {
		return fmt.Errorf("end turn %d: %w", gc.Turn, err)
	}

	tp.processFloodPhase(turnLogger)

	return tp.startTurn("flood cards drawn")
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context, phase string) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.engine.stateMachine.Context().Turn).
			Str("phase", phase).
			Msg("Turn cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

// validateGameState ensures the turn can be ended
func (tp *TurnProcessor) validateGameState() error {
	currentPhase := tp.engine.stateMachine.CurrentPhase()
	if !currentPhase.CanReceiveActions() {
		tp.logger.Warn().
			Str("current_phase", currentPhase.String()).
			Msg("Attempted to end a turn outside of the actions phase")
		return fmt.Errorf("%w: %s", ErrWrongPhase, currentPhase)
	}
	return nil
}

// processFloodPhase draws as many flood cards as the water level demands
func (tp *TurnProcessor) processFloodPhase(turnLogger zerolog.Logger) {
	amount := tp.engine.water.DrawAmount()
	drawn := tp.engine.floods.Draw(tp.engine.board, tp.engine.adventurers, amount)
	turnLogger.Debug().
		Int("water_level", int(tp.engine.water)).
		Int("draw_amount", amount).
		Int("drawn", drawn).
		Msg("Flood phase finished")
}

// startTurn enters the actions phase for the next adventurer
func (tp *TurnProcessor) startTurn(reason string) error {
	if err := tp.engine.stateMachine.TransitionTo(states.PhaseActions, reason); err != nil {
		return fmt.Errorf("start turn: %w", err)
	}

	gc := tp.engine.stateMachine.Context()
	active := tp.engine.active()
	active.StartTurn()

	tp.engine.eventBus.Publish(events.NewTurnStartedEvent(
		tp.engine.gameID,
		gc.Turn,
		active.Kind().String(),
		gc.ActionPoints,
	))
	return nil
}
