package states

import "fmt"

// GamePhase is the step of the turn the game is in
type GamePhase int

const (
	// PhaseSetup - Island built, adventurers placed, initial floods drawn
	PhaseSetup GamePhase = iota

	// PhaseActions - The active adventurer spends action points
	PhaseActions

	// PhaseDrawFlood - Flood cards are drawn for the finished turn
	PhaseDrawFlood

	// PhaseEnded - Final state
	PhaseEnded
)

var phaseNames = map[GamePhase]string{
	PhaseSetup:     "setup",
	PhaseActions:   "actions",
	PhaseDrawFlood: "draw_flood",
	PhaseEnded:     "ended",
}

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(p))
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseEnded
}

// CanReceiveActions returns true if adventurers may act in this phase
func (p GamePhase) CanReceiveActions() bool {
	return p == PhaseActions
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseSetup:
		return []GamePhase{PhaseActions, PhaseEnded}
	case PhaseActions:
		return []GamePhase{PhaseDrawFlood, PhaseEnded}
	case PhaseDrawFlood:
		return []GamePhase{PhaseActions, PhaseEnded}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, bool) {
	for phase, name := range phaseNames {
		if name == s {
			return phase, true
		}
	}
	return PhaseSetup, false
}
