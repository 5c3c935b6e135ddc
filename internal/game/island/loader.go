package island

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a board saved with Save. File system errors are returned as is.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	board := &Board{}
	if err := json.Unmarshal(data, board); err != nil {
		return nil, fmt.Errorf("decode map %s: %w", path, err)
	}
	return board, nil
}

// Save writes the board as JSON rows, one entry per cell: null for sea or a
// {"kind", "state"} object.
func Save(path string, board *Board) error {
	data, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
