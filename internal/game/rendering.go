package game

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/adventurer"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/island"
)

// This file contains all board rendering functionality for the game engine.

const (
	SeaSymbol     = "~"
	DrySymbol     = "#"
	FloodedSymbol = "%"
	GoneSymbol    = "."
)

var (
	ColorSea        = color.Style{color.FgBlue}
	ColorDry        = color.Style{color.FgGreen}
	ColorFlooded    = color.Style{color.FgCyan, color.OpBold}
	ColorGone       = color.Style{color.FgGray}
	ColorAdventurer = color.Style{color.FgYellow, color.OpBold}
	ColorActive     = color.Style{color.FgRed, color.OpBold}
)

var adventurerSymbols = map[adventurer.Kind]string{
	adventurer.Courier:   "C",
	adventurer.Diver:     "D",
	adventurer.Engineer:  "E",
	adventurer.Explorer:  "X",
	adventurer.Navigator: "N",
	adventurer.Pilot:     "P",
}

// Board returns a two characters per cell text dump of the island: the tile
// state followed by the adventurer standing there, if any. With coordinates
// set, column and row numbers frame the grid.
func (e *Engine) Board(coordinates bool) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	width := e.board.Width()
	active := e.active()

	var sb strings.Builder
	sb.Grow(int((width*2+4)*(e.board.Height()+3)) * 8)

	if coordinates {
		sb.WriteString("   ")
		for x := uint(0); x < width; x++ {
			fmt.Fprintf(&sb, "%2d", x)
		}
		sb.WriteString("\n")
	}

	for c, tile := range e.board.All() {
		if c.X == 0 && coordinates {
			fmt.Fprintf(&sb, "%2d ", c.Y)
		}

		sb.WriteString(tileSymbol(tile))

		standing := e.standingOn(c)
		switch {
		case standing.Has(active.Kind()):
			sb.WriteString(ColorActive.Sprint(adventurerSymbols[active.Kind()]))
		case standing.Size() > 1:
			sb.WriteString(ColorAdventurer.Sprint("+"))
		case standing.Size() == 1:
			standing.Each(func(k adventurer.Kind) {
				sb.WriteString(ColorAdventurer.Sprint(adventurerSymbols[k]))
			})
		default:
			sb.WriteString(" ")
		}

		if c.X == width-1 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s=dry %s=flooded %s=sunk %s=sea  turn %d, %s has %d actions, water level %d\n",
		DrySymbol, FloodedSymbol, GoneSymbol, SeaSymbol,
		e.stateMachine.Context().Turn, active.Kind(), e.stateMachine.Context().ActionPoints, int(e.water))

	return sb.String()
}

func tileSymbol(tile *island.Tile) string {
	if tile == nil {
		return ColorSea.Sprint(SeaSymbol)
	}
	switch tile.State {
	case island.Dry:
		return ColorDry.Sprint(DrySymbol)
	case island.Flooded:
		return ColorFlooded.Sprint(FloodedSymbol)
	default:
		return ColorGone.Sprint(GoneSymbol)
	}
}
