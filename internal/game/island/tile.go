package island

import "fmt"

// TileState is the flood state of an island tile.
type TileState int

const (
	// Dry tiles can be used freely.
	Dry TileState = iota
	// Flooded tiles can still be stood on and drained back to Dry.
	Flooded
	// Gone tiles have sunk. Only a diver can pass through them.
	Gone
)

var stateNames = [...]string{
	Dry:     "dry",
	Flooded: "flooded",
	Gone:    "gone",
}

func (s TileState) String() string {
	if s < Dry || s > Gone {
		return fmt.Sprintf("TileState(%d)", int(s))
	}
	return stateNames[s]
}

func (s TileState) MarshalText() ([]byte, error) {
	if s < Dry || s > Gone {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTileState, int(s))
	}
	return []byte(stateNames[s]), nil
}

func (s *TileState) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if string(text) == name {
			*s = TileState(state)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTileState, string(text))
}

// Tile is one island location on the board.
type Tile struct {
	Kind  TileKind  `json:"kind"`
	State TileState `json:"state"`
}

// NewTile creates a dry tile of the given kind.
func NewTile(kind TileKind) *Tile {
	return &Tile{Kind: kind, State: Dry}
}

// IsStandable reports whether an adventurer may stand on the tile
func (t *Tile) IsStandable() bool {
	return t != nil && t.State != Gone
}

// Flood advances the tile one step towards Gone. It reports false if the
// tile was already gone.
func (t *Tile) Flood() bool {
	if t.State == Gone {
		return false
	}
	t.State++
	return true
}

// Drain shores a flooded tile back up. Dry and gone tiles are unchanged.
func (t *Tile) Drain() bool {
	if t.State != Flooded {
		return false
	}
	t.State = Dry
	return true
}

func (t *Tile) String() string {
	if t == nil {
		return "sea"
	}
	return fmt.Sprintf("%s (%s)", t.Kind, t.State)
}

func tilesEqual(a, b *Tile) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
