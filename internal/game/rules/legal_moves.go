package rules

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/adventurer"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
)

// ActionKind indexes the per-cell entries of an action mask
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionSpecialMove
	ActionDrain

	// ActionKinds is the number of entries per cell in an action mask
	ActionKinds = 3
)

// LegalActions holds every target the active adventurer can pick right now
type LegalActions struct {
	Moves        mapset.Set[core.Coordinate]
	SpecialMoves mapset.Set[core.Coordinate]
	Drains       mapset.Set[core.Coordinate]
	// Navigate maps the index of each other adventurer to where the active
	// adventurer may push it. Empty unless the active adventurer can move
	// others.
	Navigate map[int]mapset.Set[core.Coordinate]
}

// Any reports whether at least one action is available
func (la LegalActions) Any() bool {
	if la.Moves.Size() > 0 || la.SpecialMoves.Size() > 0 || la.Drains.Size() > 0 {
		return true
	}
	for _, targets := range la.Navigate {
		if targets.Size() > 0 {
			return true
		}
	}
	return false
}

// LegalMoveCalculator computes legal actions for adventurers
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// LegalActions collects the action targets of team[active] with ap action
// points left.
func (lmc *LegalMoveCalculator) LegalActions(board *island.Board, team []*adventurer.Adventurer, active, ap int) LegalActions {
	a := team[active]
	legal := LegalActions{
		Moves:        a.StandardMoves(board, ap),
		SpecialMoves: a.SpecialMoves(board, ap),
		Drains:       drainable(board, a.Drains(board, ap)),
		Navigate:     make(map[int]mapset.Set[core.Coordinate]),
	}

	if a.CanMoveOther(ap) {
		for i, other := range team {
			if i == active {
				continue
			}
			legal.Navigate[i] = a.NavigateTargets(board, other, ap)
		}
	}
	return legal
}

// LegalActionMask returns a flattened boolean mask of the legal move, special
// move and drain targets. For a board of width W the entry for kind k at
// (x, y) is at index (y*W+x)*ActionKinds + k.
func (lmc *LegalMoveCalculator) LegalActionMask(board *island.Board, legal LegalActions) []bool {
	width := board.Width()
	mask := make([]bool, width*board.Height()*ActionKinds)

	mark := func(set mapset.Set[core.Coordinate], kind ActionKind) {
		set.Each(func(c core.Coordinate) {
			mask[(c.Y*width+c.X)*ActionKinds+uint(kind)] = true
		})
	}
	mark(legal.Moves, ActionMove)
	mark(legal.SpecialMoves, ActionSpecialMove)
	mark(legal.Drains, ActionDrain)

	return mask
}

// drainable keeps only the targets where draining changes something.
func drainable(board *island.Board, targets mapset.Set[core.Coordinate]) mapset.Set[core.Coordinate] {
	flooded := mapset.New[core.Coordinate]()
	targets.Each(func(c core.Coordinate) {
		if tile, ok := board.Tile(c); ok && tile.State == island.Flooded {
			flooded.Put(c)
		}
	})
	return flooded
}
