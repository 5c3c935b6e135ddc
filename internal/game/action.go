package game

import (
	"fmt"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
)

// ActionType represents the type of action
type ActionType int

const (
	ActionTypeMove ActionType = iota
	ActionTypeSpecialMove
	ActionTypeDrain
	ActionTypeNavigate
)

var actionNames = [...]string{
	ActionTypeMove:        "move",
	ActionTypeSpecialMove: "special_move",
	ActionTypeDrain:       "drain",
	ActionTypeNavigate:    "navigate",
}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionNames) {
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
	return actionNames[t]
}

// ParseActionType looks up an action type by name
func ParseActionType(s string) (ActionType, error) {
	for t, name := range actionNames {
		if name == s {
			return ActionType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Action is one step taken by the active adventurer
type Action struct {
	Type   ActionType
	Target core.Coordinate
	// Other indexes the adventurer pushed by a navigate action
	Other int
}

func (a Action) String() string {
	if a.Type == ActionTypeNavigate {
		return fmt.Sprintf("%s #%d to %s", a.Type, a.Other, a.Target)
	}
	return fmt.Sprintf("%s %s", a.Type, a.Target)
}
