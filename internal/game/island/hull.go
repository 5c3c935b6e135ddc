package island

import "github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"

// hull returns the smallest rectangle around every cell for which present
// holds. ok is false when there is no such cell.
func hull[T any](g *core.Grid[T], present func(T) bool) (r core.Rect[uint], ok bool) {
	var minX, minY, maxX, maxY uint
	for c, v := range g.All() {
		if !present(v) {
			continue
		}
		if !ok {
			minX, minY, maxX, maxY = c.X, c.Y, c.X, c.Y
			ok = true
			continue
		}
		minX, minY = min(minX, c.X), min(minY, c.Y)
		maxX, maxY = max(maxX, c.X), max(maxY, c.Y)
	}
	if !ok {
		return core.Rect[uint]{}, false
	}
	return core.NewRect(minX, minY, maxX-minX, maxY-minY), true
}
