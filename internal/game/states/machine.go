package states

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
)

var (
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrUnknownPhase      = errors.New("no state registered for phase")
)

// historyLimit bounds the transition log. A turn adds two entries.
const historyLimit = 1000

// State is one phase of a turn. Enter and Exit act on the shared context.
type State interface {
	Phase() GamePhase
	Enter(ctx *GameContext) error
	Exit(ctx *GameContext) error
	// Validate reports whether the phase may be entered right now
	Validate(ctx *GameContext) error
}

// Transition is one entry of the phase log
type Transition struct {
	From   GamePhase
	To     GamePhase
	Turn   int
	At     time.Time
	Reason string
}

// StateMachine walks a game through its turn phases: Setup once, then
// Actions and DrawFlood alternating until Ended.
type StateMachine struct {
	mu       sync.RWMutex
	phase    GamePhase
	states   map[GamePhase]State
	context  *GameContext
	history  []Transition
	eventBus events.Publisher
}

// NewStateMachine creates a machine in PhaseSetup. eventBus may be nil.
func NewStateMachine(ctx *GameContext, eventBus events.Publisher) *StateMachine {
	sm := &StateMachine{
		phase:    PhaseSetup,
		states:   make(map[GamePhase]State, 4),
		context:  ctx,
		eventBus: eventBus,
	}
	for _, s := range []State{NewSetupState(), NewActionsState(), NewDrawFloodState(), NewEndedState()} {
		sm.states[s.Phase()] = s
	}
	return sm
}

// RegisterState replaces the implementation of a phase
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.states[state.Phase()] = state
}

func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.phase
}

// TransitionTo moves to target. A refused or failed transition leaves the
// machine in its current phase with nothing logged.
func (sm *StateMachine) TransitionTo(target GamePhase, reason string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	from := sm.phase
	if !from.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, from, target)
	}
	next, ok := sm.states[target]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPhase, target)
	}
	if err := next.Validate(sm.context); err != nil {
		return fmt.Errorf("cannot enter %s: %w", target, err)
	}

	// Exit errors are logged only; the turn has to go on.
	if current, ok := sm.states[from]; ok {
		if err := current.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Stringer("from_phase", from).
				Stringer("to_phase", target).
				Msg("Error leaving phase")
		}
	}

	sm.phase = target
	if err := next.Enter(sm.context); err != nil {
		sm.phase = from
		return fmt.Errorf("failed to enter %s: %w", target, err)
	}

	sm.record(Transition{
		From:   from,
		To:     target,
		Turn:   sm.context.Turn,
		At:     time.Now(),
		Reason: reason,
	})
	return nil
}

// record logs and publishes a completed transition
func (sm *StateMachine) record(t Transition) {
	sm.history = append(sm.history, t)
	if over := len(sm.history) - historyLimit; over > 0 {
		sm.history = slices.Delete(sm.history, 0, over)
	}

	if sm.eventBus != nil {
		sm.eventBus.Publish(events.NewStateTransitionEvent(sm.context.GameID, t.From.String(), t.To.String(), t.Reason))
	}

	sm.context.Logger.Debug().
		Stringer("from_phase", t.From).
		Stringer("to_phase", t.To).
		Int("turn", t.Turn).
		Str("reason", t.Reason).
		Msg("Phase changed")
}

// History returns a copy of the phase log, oldest first
func (sm *StateMachine) History() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return slices.Clone(sm.history)
}

// TurnLog returns the transitions that happened during the given turn
func (sm *StateMachine) TurnLog(turn int) []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	var out []Transition
	for _, t := range sm.history {
		if t.Turn == turn {
			out = append(out, t)
		}
	}
	return out
}

func (sm *StateMachine) Context() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.context
}

func (sm *StateMachine) CanTransitionTo(target GamePhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.phase.CanTransitionTo(target)
}
