package game

import (
	"errors"
	"fmt"
)

var (
	ErrWrongPhase          = errors.New("game is not in a phase that allows this")
	ErrIllegalTarget       = errors.New("target is not legal for this adventurer")
	ErrUnknownAdventurer   = errors.New("no adventurer with that index")
	ErrNoBoard             = errors.New("a board is required")
	ErrNoAdventurers       = errors.New("at least one adventurer is required")
	ErrDuplicateAdventurer = errors.New("adventurer chosen twice")
)

// ActionError ties an error to the adventurer and action that caused it
type ActionError struct {
	Adventurer string
	Action     ActionType
	Err        error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Adventurer, e.Action, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// WrapActionError wraps err with the acting adventurer and action. A nil
// err stays nil.
func WrapActionError(adventurer string, action ActionType, err error) error {
	if err == nil {
		return nil
	}
	return &ActionError{Adventurer: adventurer, Action: action, Err: err}
}
