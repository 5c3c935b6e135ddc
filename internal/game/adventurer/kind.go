package adventurer

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
)

// Kind is one of the six adventurer roles.
type Kind int

const (
	// Courier may hand cards to any adventurer regardless of position.
	Courier Kind = iota
	// Diver swims through flooded and sunk tiles.
	Diver
	// Engineer shores up two tiles for one action point.
	Engineer
	// Explorer moves and shores up diagonally.
	Explorer
	// Navigator moves other adventurers.
	Navigator
	// Pilot flies to any tile once per turn.
	Pilot

	kindCount
)

var kindNames = [kindCount]string{
	Courier:   "courier",
	Diver:     "diver",
	Engineer:  "engineer",
	Explorer:  "explorer",
	Navigator: "navigator",
	Pilot:     "pilot",
}

var spawnTiles = [kindCount]island.TileKind{
	Courier:   island.SilverGate,
	Diver:     island.IronGate,
	Engineer:  island.BronzeGate,
	Explorer:  island.CopperGate,
	Navigator: island.GoldGate,
	Pilot:     island.FoolsLanding,
}

// AllKinds returns the six kinds in declaration order.
func AllKinds() []Kind {
	return []Kind{Courier, Diver, Engineer, Explorer, Navigator, Pilot}
}

func (k Kind) IsValid() bool { return k >= 0 && k < kindCount }

func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a kind from its name, ignoring case.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// SpawnTile is the gate tile the adventurer starts the game on.
func (k Kind) SpawnTile() island.TileKind {
	return spawnTiles[k]
}

// ImplicitSpecial reports whether the special ability is offered alongside
// normal actions instead of being a separate choice.
func (k Kind) ImplicitSpecial() bool {
	switch k {
	case Courier, Diver, Engineer, Explorer:
		return true
	default:
		return false
	}
}

// CanMoveOthers reports whether the kind is able to move other adventurers.
func (k Kind) CanMoveOthers() bool {
	return k == Navigator
}

// SpawnPoint finds the spawn tile of kind on the board. A sunk spawn tile
// counts as missing.
func SpawnPoint(board *island.Board, kind Kind) (core.Coordinate, bool) {
	at, ok := board.FindKind(kind.SpawnTile())
	if !ok || !board.IsStandable(at) {
		return core.Coordinate{}, false
	}
	return at, true
}
