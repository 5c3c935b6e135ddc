// Package adventurer implements the movement and ability rules of the six
// adventurer kinds.
//
// Every query takes the board and the remaining action points of the turn and
// returns a set of coordinates. An empty set means the action is not
// available; it is never an error. The On* hooks are called by the turn
// engine after it has validated a chosen target against those sets.
package adventurer

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
)

// Positioned is anything standing on the board.
type Positioned interface {
	Position() core.Coordinate
}

// Adventurer is a positioned actor. Kind-specific turn state lives next to
// the position: the Engineer and Navigator bank a free second use of their
// ability, the Pilot remembers whether it has flown this turn.
type Adventurer struct {
	kind   Kind
	pos    core.Coordinate
	banked bool
	flown  bool
}

// New creates an adventurer of the given kind at pos.
func New(kind Kind, pos core.Coordinate) *Adventurer {
	return &Adventurer{kind: kind, pos: pos}
}

// Spawn creates an adventurer on its spawn tile.
func Spawn(board *island.Board, kind Kind) (*Adventurer, error) {
	at, ok := SpawnPoint(board, kind)
	if !ok {
		return nil, fmt.Errorf("spawn %s on %s: %w", kind, kind.SpawnTile(), ErrNoSpawnTile)
	}
	return New(kind, at), nil
}

func (a *Adventurer) Kind() Kind { return a.kind }

func (a *Adventurer) Position() core.Coordinate { return a.pos }

// SetPosition moves the adventurer without any rule checks.
func (a *Adventurer) SetPosition(c core.Coordinate) { a.pos = c }

// BonusBanked reports whether a free second drain (Engineer) or push
// (Navigator) is waiting to be used.
func (a *Adventurer) BonusBanked() bool { return a.banked }

// HasFlown reports whether the Pilot already used its flight this turn.
func (a *Adventurer) HasFlown() bool { return a.flown }

func (a *Adventurer) String() string {
	return fmt.Sprintf("%s at %s", a.kind, a.pos)
}

// CanAct reports whether any action is possible with ap points left.
func (a *Adventurer) CanAct(ap int) bool {
	return ap > 0 || a.banked
}

// StartTurn clears the per-turn state.
func (a *Adventurer) StartTurn() {
	a.banked = false
	a.flown = false
}

// StandardMoves returns the primary neighbors the adventurer can walk to.
func (a *Adventurer) StandardMoves(board *island.Board, ap int) mapset.Set[core.Coordinate] {
	if ap <= 0 {
		return mapset.New[core.Coordinate]()
	}
	return standable(board, a.pos.Neighbors(limit(board)))
}

// SpecialMoves returns the positions reachable with the kind's movement
// ability. Kinds without one return an empty set.
func (a *Adventurer) SpecialMoves(board *island.Board, ap int) mapset.Set[core.Coordinate] {
	if ap <= 0 {
		return mapset.New[core.Coordinate]()
	}

	switch a.kind {
	case Explorer:
		return standable(board, a.pos.DiagonalNeighbors(limit(board)))
	case Pilot:
		if a.flown {
			return mapset.New[core.Coordinate]()
		}
		moves := mapset.New[core.Coordinate]()
		for c := range board.Standable() {
			if c != a.pos {
				moves.Put(c)
			}
		}
		return moves
	case Diver:
		return a.dives(board)
	default:
		return mapset.New[core.Coordinate]()
	}
}

// Drains returns the tiles the adventurer can shore up: its own and the
// primary neighbors, plus the diagonals for the Explorer. An Engineer with a
// banked drain may drain without action points.
func (a *Adventurer) Drains(board *island.Board, ap int) mapset.Set[core.Coordinate] {
	if ap <= 0 && !(a.kind == Engineer && a.banked) {
		return mapset.New[core.Coordinate]()
	}

	l := limit(board)
	candidates := append(a.pos.Neighbors(l), a.pos)
	if a.kind == Explorer {
		candidates = append(candidates, a.pos.DiagonalNeighbors(l)...)
	}
	return standable(board, candidates)
}

// OnMove spends the point for a walk. Moving forfeits a banked bonus.
func (a *Adventurer) OnMove(ap *int) {
	spend(ap)
	a.banked = false
}

// OnSpecialMove spends the point for a special move and records the Pilot's
// flight.
func (a *Adventurer) OnSpecialMove(ap *int) {
	spend(ap)
	a.banked = false
	if a.kind == Pilot {
		a.flown = true
	}
}

// OnDrain spends the point for a drain. The Engineer's first drain spends a
// point and banks a second one, which the next drain consumes for free.
func (a *Adventurer) OnDrain(ap *int) {
	if a.kind != Engineer {
		spend(ap)
		return
	}
	if a.banked {
		a.banked = false
		return
	}
	spend(ap)
	a.banked = true
}

// CanMoveOther reports whether the adventurer may push another one now.
func (a *Adventurer) CanMoveOther(ap int) bool {
	return a.kind.CanMoveOthers() && (ap > 0 || a.banked)
}

// OnMoveOther pays for a push. The first one costs a point and banks a free
// second push.
func (a *Adventurer) OnMoveOther(ap *int) {
	if !a.kind.CanMoveOthers() {
		return
	}
	if a.banked {
		a.banked = false
		return
	}
	spend(ap)
	a.banked = true
}

// NavigateTargets returns where other may be pushed to. Pushed adventurers
// walk one primary step and never use their own ability.
func (a *Adventurer) NavigateTargets(board *island.Board, other Positioned, ap int) mapset.Set[core.Coordinate] {
	if !a.CanMoveOther(ap) {
		return mapset.New[core.Coordinate]()
	}
	return standable(board, other.Position().Neighbors(limit(board)))
}

// CanTransferCards reports whether cards may be handed to other. Only the
// Courier can give cards to adventurers on another tile.
func (a *Adventurer) CanTransferCards(other Positioned, ap int) bool {
	if ap <= 0 {
		return false
	}
	return a.kind == Courier || a.pos == other.Position()
}

func spend(ap *int) {
	if *ap > 0 {
		*ap--
	}
}

// limit returns the island hull, or nil for a board without tiles.
func limit(board *island.Board) *core.Rect[uint] {
	r, ok := board.LimitRect()
	if !ok {
		return nil
	}
	return &r
}

func standable(board *island.Board, candidates []core.Coordinate) mapset.Set[core.Coordinate] {
	set := mapset.New[core.Coordinate]()
	for _, c := range candidates {
		if board.IsStandable(c) {
			set.Put(c)
		}
	}
	return set
}
