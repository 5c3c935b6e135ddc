package game

import (
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/config"
)

// Turn defaults, read from the loaded configuration

func DefaultActionPoints() int {
	return config.Snapshot().Game.Turn.ActionPoints
}

func DefaultInitialFloods() int {
	return config.Snapshot().Game.Flood.InitialDraw
}

func DefaultWaterLevel() WaterLevel {
	return WaterLevel(config.Snapshot().Game.WaterLevel.Start)
}
