package subscribers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events/subscribers"
)

func TestStatsSubscriber(t *testing.T) {
	bus := events.NewEventBus()
	stats := subscribers.NewStatsSubscriber("stats")
	bus.Subscribe(stats)

	at := core.NewCoordinate(1, 1)
	bus.Publish(events.NewGameStartedEvent("g", []string{"diver", "navigator"}, 6, 6, 2))
	bus.Publish(events.NewTurnStartedEvent("g", 1, "diver", 3))
	bus.Publish(events.NewAdventurerMovedEvent("g", "diver", at, at, false, ""))
	bus.Publish(events.NewAdventurerMovedEvent("g", "diver", at, at, true, ""))
	bus.Publish(events.NewTileDrainedEvent("g", "diver", at, "Iron Gate"))
	bus.Publish(events.NewTurnStartedEvent("g", 2, "navigator", 3))
	bus.Publish(events.NewAdventurerMovedEvent("g", "diver", at, at, false, "navigator"))
	bus.Publish(events.NewActionRejectedEvent("g", "navigator", "drain", "illegal target"))
	bus.Publish(events.NewTileFloodedEvent("g", at, "Iron Gate"))
	bus.Publish(events.NewTileSunkEvent("g", at, "Iron Gate", []string{"diver"}))
	bus.Publish(events.NewWaterRoseEvent("g", 3, 3, false))

	got := stats.Stats()
	assert.Equal(t, 2, got.Turns)
	assert.Equal(t, map[string]int{"diver": 1}, got.Moves)
	assert.Equal(t, map[string]int{"diver": 1}, got.SpecialMoves)
	assert.Equal(t, map[string]int{"navigator": 1}, got.Pushes)
	assert.Equal(t, map[string]int{"diver": 1}, got.Drains)
	assert.Equal(t, 1, got.Rejected)
	assert.Equal(t, 1, got.TilesFlooded)
	assert.Equal(t, []string{"Iron Gate"}, got.TilesSunk)
	assert.Equal(t, []string{"diver"}, got.Stranded)
	assert.Equal(t, 3, got.PeakWater)
	assert.Equal(t, 1, got.WaterRises)
}

func TestStatsSubscriber_SnapshotIsACopy(t *testing.T) {
	stats := subscribers.NewStatsSubscriber("stats")
	stats.HandleEvent(events.NewTileDrainedEvent("g", "engineer", core.NewCoordinate(0, 0), "Fools' Landing"))

	snap := stats.Stats()
	snap.Drains["engineer"] = 99

	assert.Equal(t, 1, stats.Stats().Drains["engineer"])
	assert.False(t, stats.InterestedIn(events.TypeStateTransition))
	assert.True(t, stats.InterestedIn(events.TypeTileSunk))
}
