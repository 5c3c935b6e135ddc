package states

import (
	"fmt"
	"time"
)

// SetupState is the phase before the first turn
type SetupState struct{}

func NewSetupState() State {
	return &SetupState{}
}

func (s *SetupState) Phase() GamePhase {
	return PhaseSetup
}

func (s *SetupState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering setup")
	return nil
}

func (s *SetupState) Exit(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("adventurers", ctx.AdventurerCount).
		Msg("Setup complete")
	return nil
}

func (s *SetupState) Validate(ctx *GameContext) error {
	return nil
}

// ActionsState starts a new turn with a full action budget
type ActionsState struct{}

func NewActionsState() State {
	return &ActionsState{}
}

func (s *ActionsState) Phase() GamePhase {
	return PhaseActions
}

func (s *ActionsState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
	}
	ctx.Turn++
	ctx.ActionPoints = ctx.MaxActionPoints
	ctx.Logger.Info().
		Int("turn", ctx.Turn).
		Int("adventurer_index", ctx.ActiveIndex()).
		Int("action_points", ctx.ActionPoints).
		Msg("Turn started")
	return nil
}

func (s *ActionsState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("turn", ctx.Turn).
		Int("unused_points", ctx.ActionPoints).
		Msg("Actions finished")
	ctx.ActionPoints = 0
	return nil
}

func (s *ActionsState) Validate(ctx *GameContext) error {
	if ctx.AdventurerCount < 1 {
		return fmt.Errorf("need at least 1 adventurer, got %d", ctx.AdventurerCount)
	}
	if ctx.MaxActionPoints < 1 {
		return fmt.Errorf("action points per turn must be at least 1, got %d", ctx.MaxActionPoints)
	}
	return nil
}

// DrawFloodState is the flood card draw that closes a turn
type DrawFloodState struct{}

func NewDrawFloodState() State {
	return &DrawFloodState{}
}

func (s *DrawFloodState) Phase() GamePhase {
	return PhaseDrawFlood
}

func (s *DrawFloodState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Int("turn", ctx.Turn).Msg("Drawing flood cards")
	return nil
}

func (s *DrawFloodState) Exit(ctx *GameContext) error {
	return nil
}

func (s *DrawFloodState) Validate(ctx *GameContext) error {
	if ctx.Turn == 0 {
		return fmt.Errorf("no turn has been played yet")
	}
	return nil
}

// EndedState is terminal
type EndedState struct{}

func NewEndedState() State {
	return &EndedState{}
}

func (s *EndedState) Phase() GamePhase {
	return PhaseEnded
}

func (s *EndedState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("turns", ctx.Turn).
		Dur("elapsed", ctx.ElapsedTime()).
		Str("reason", ctx.EndReason).
		Msg("Game ended")
	return nil
}

func (s *EndedState) Exit(ctx *GameContext) error {
	return nil
}

func (s *EndedState) Validate(ctx *GameContext) error {
	return nil
}
