package subscribers_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events/subscribers"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &decoded))
		lines = append(lines, decoded)
	}
	return lines
}

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("test-logger", zerolog.New(&buf), zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent("game-1", []string{"diver", "pilot"}, 6, 6, 2),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, []interface{}{"diver", "pilot"}, logLine["adventurers"])
				assert.Equal(t, float64(6), logLine["map_width"])
				assert.Equal(t, float64(2), logLine["water_level"])
			},
		},
		{
			name:  "AdventurerMovedEvent",
			event: events.NewAdventurerMovedEvent("game-1", "diver", core.NewCoordinate(0, 3), core.NewCoordinate(2, 0), true, "navigator"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "(0,3)", logLine["from"])
				assert.Equal(t, "(2,0)", logLine["to"])
				assert.Equal(t, true, logLine["special"])
				assert.Equal(t, "navigator", logLine["moved_by"])
			},
		},
		{
			name:  "TileSunkEvent",
			event: events.NewTileSunkEvent("game-1", core.NewCoordinate(1, 1), "Iron Gate", []string{"courier"}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Iron Gate", logLine["tile"])
				assert.Equal(t, []interface{}{"courier"}, logLine["stranded"])
			},
		},
		{
			name:  "WaterRoseEvent",
			event: events.NewWaterRoseEvent("game-1", 5, 4, false),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(5), logLine["water_level"])
				assert.Equal(t, float64(4), logLine["draw_amount"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("game-1", "actions", "draw_flood", "actions spent"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "actions", logLine["from_phase"])
				assert.Equal(t, "draw_flood", logLine["to_phase"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("event-logger", zerolog.New(&buf), zerolog.InfoLevel)

			logSub.HandleEvent(tc.event)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "Game event", lines[0]["message"])
			assert.Equal(t, "info", lines[0]["level"])
			assert.Equal(t, tc.event.Type(), lines[0]["event_type"])
			assert.Equal(t, "game-1", lines[0]["game_id"])
			tc.check(t, lines[0])
		})
	}
}

func TestLoggerSubscriberFilterAndDevMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("filtered", zerolog.New(&buf), zerolog.WarnLevel)
	logSub.SetEventFilter([]string{events.TypeTileFlooded})

	assert.True(t, logSub.InterestedIn(events.TypeTileFlooded))
	assert.False(t, logSub.InterestedIn(events.TypeTileDrained))

	logSub.SetDevMode(true)
	logSub.HandleEvent(events.NewTileFloodedEvent("game-2", core.NewCoordinate(3, 4), "Misty Marsh"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	data, ok := lines[0]["event_data"].(map[string]interface{})
	require.True(t, ok, "dev mode attaches the event as JSON")
	assert.Equal(t, "Misty Marsh", data["tile"])

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeTileDrained))
}

func TestLoggerSubscriberOnBus(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.DebugLevel))

	bus.Publish(events.NewTileDrainedEvent("game-3", "engineer", core.NewCoordinate(2, 2), "Observatory"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "engineer", lines[0]["adventurer"])
	assert.Equal(t, "(2,2)", lines[0]["position"])
}
