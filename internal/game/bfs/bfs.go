// Package bfs implements marker propagation over a grid.
//
// Despite the name the engine is not queue driven. It relaxes markers across
// every primary edge of the grid, pass after pass, until a full pass changes
// nothing, and then projects the markers into an output grid. Movement rules
// express their reachability state as a marker type plus a Mark function.
package bfs

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
)

// MarkFunc computes the marker a neighbor receives across the edge from -> to.
// fromMarker is nil when from has not been reached yet. Returning nil means
// the edge carries no transition and the neighbor keeps its marker.
//
// Mark must be monotonic: repeated application has to settle. The engine
// does not guard against a Mark that oscillates.
type MarkFunc[D any, M comparable] func(from core.Coordinate, fromMarker *M, to core.Coordinate, toData D) *M

// ProjectFunc converts the final marker of a cell (nil if never reached) into
// the output value.
type ProjectFunc[M comparable, O any] func(at core.Coordinate, marker *M) O

// Options configures one engine run.
type Options[D any, M comparable, O any] struct {
	// Start is the first marked cell. When nil, the first cell in row-major
	// order satisfying Usable is used.
	Start *core.Coordinate
	// StartMarker is placed on the start cell before relaxation.
	StartMarker M
	// Usable selects the automatic start. Ignored when Start is set.
	Usable func(D) bool
	Mark   MarkFunc[D, M]
	// Project defaults to "reached or not" when O is bool and Project is nil.
	Project ProjectFunc[M, O]
}

// Run propagates markers over data and returns the projected grid. The marker
// grid is private to the call, so concurrent runs over the same read-only data
// are safe.
func Run[D any, M comparable, O any](data *core.Grid[D], opts Options[D, M, O]) (*core.Grid[O], error) {
	return run(data, opts, rowMajor)
}

// order lists the cells of a w x h grid in the sequence one relaxation pass
// visits them.
type order func(w, h uint) []core.Coordinate

func rowMajor(w, h uint) []core.Coordinate {
	cells := make([]core.Coordinate, 0, w*h)
	for y := uint(0); y < h; y++ {
		for x := uint(0); x < w; x++ {
			cells = append(cells, core.NewCoordinate(x, y))
		}
	}
	return cells
}

func run[D any, M comparable, O any](data *core.Grid[D], opts Options[D, M, O], visit order) (*core.Grid[O], error) {
	if opts.Mark == nil {
		return nil, ErrMissingMark
	}

	start, err := startPosition(data, opts.Start, opts.Usable)
	if err != nil {
		return nil, err
	}

	markers := core.NewGrid[*M](data.Size(), nil)
	startMarker := opts.StartMarker
	if _, err := markers.Set(start, &startMarker); err != nil {
		return nil, fmt.Errorf("mark start: %w", err)
	}

	bounds, _ := data.Bounds()
	cells := visit(data.Width(), data.Height())
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++
		for _, from := range cells {
			fromMarker, _ := markers.Get(from)
			for _, to := range from.Neighbors(&bounds) {
				toData, _ := data.Get(to)
				next := opts.Mark(from, fromMarker, to, toData)
				if next == nil {
					continue
				}
				current, _ := markers.Get(to)
				if current != nil && *current == *next {
					continue
				}
				if _, err := markers.Set(to, next); err != nil {
					return nil, fmt.Errorf("mark %s: %w", to, err)
				}
				changed = true
			}
		}
	}

	log.Debug().
		Str("component", "bfs").
		Stringer("start", start).
		Int("passes", passes).
		Msg("Marker propagation settled")

	project := opts.Project
	if project == nil {
		project = reachedProjection[M, O]()
	}
	return core.Map(markers, func(at core.Coordinate, m *M) O {
		return project(at, m)
	}), nil
}

// startPosition resolves the explicit start or finds the first usable cell.
func startPosition[D any](data *core.Grid[D], start *core.Coordinate, usable func(D) bool) (core.Coordinate, error) {
	if start != nil {
		if !data.InBounds(*start) {
			return core.Coordinate{}, fmt.Errorf("start %s on %dx%d grid: %w",
				*start, data.Width(), data.Height(), ErrStartingPositionOutOfBounds)
		}
		return *start, nil
	}

	if usable != nil {
		for c, d := range data.All() {
			if usable(d) {
				return c, nil
			}
		}
	}
	return core.Coordinate{}, ErrUnavailableStartingPosition
}

// reachedProjection maps a marker to whether the cell was reached, if O is
// bool. For any other output type it yields the zero value.
func reachedProjection[M comparable, O any]() ProjectFunc[M, O] {
	return func(_ core.Coordinate, m *M) O {
		var out O
		if b, ok := any(&out).(*bool); ok {
			*b = m != nil
		}
		return out
	}
}
