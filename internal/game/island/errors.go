package island

import "errors"

var (
	ErrUnknownTileKind  = errors.New("unknown tile kind")
	ErrUnknownTileState = errors.New("unknown tile state")
	ErrNoTile           = errors.New("no island tile at coordinate")
)
