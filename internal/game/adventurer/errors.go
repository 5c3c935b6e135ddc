package adventurer

import "errors"

var (
	ErrUnknownKind = errors.New("unknown adventurer kind")
	ErrNoSpawnTile = errors.New("spawn tile is not on the board")
)
