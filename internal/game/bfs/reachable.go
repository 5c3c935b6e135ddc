package bfs

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
)

// Reachable reports, for every cell of data, whether it can be walked to from
// start across primary edges through usable cells. With a nil start the first
// usable cell in row-major order is used.
func Reachable[D any](data *core.Grid[D], start *core.Coordinate, usable func(D) bool) (*core.Grid[bool], error) {
	return Run(data, Options[D, struct{}, bool]{
		Start:  start,
		Usable: usable,
		Mark: func(_ core.Coordinate, from *struct{}, _ core.Coordinate, to D) *struct{} {
			if from == nil || !usable(to) {
				return nil
			}
			return &struct{}{}
		},
		Project: func(_ core.Coordinate, m *struct{}) bool {
			return m != nil
		},
	})
}

// ReachableSet is Reachable returning the reached coordinates as a set.
func ReachableSet[D any](data *core.Grid[D], start *core.Coordinate, usable func(D) bool) (mapset.Set[core.Coordinate], error) {
	reached, err := Reachable(data, start, usable)
	if err != nil {
		return mapset.New[core.Coordinate](), err
	}
	return Positions(reached), nil
}

// Positions collects the coordinates of every true cell.
func Positions(g *core.Grid[bool]) mapset.Set[core.Coordinate] {
	set := mapset.New[core.Coordinate]()
	for c, ok := range g.All() {
		if ok {
			set.Put(c)
		}
	}
	return set
}
