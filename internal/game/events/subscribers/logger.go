package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
)

// LoggerSubscriber writes one structured log line per island event
type LoggerSubscriber struct {
	id       string
	logger   zerolog.Logger
	logLevel zerolog.Level
	// only is consulted when filtered is set
	only     mapset.Set[string]
	filtered bool
	// devMode attaches the whole event as raw JSON
	devMode bool
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter limits logging to the given event types. An empty list
// logs everything again.
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	ls.filtered = len(eventTypes) > 0
	ls.only = mapset.New[string]()
	for _, eventType := range eventTypes {
		ls.only.Put(eventType)
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn reports whether eventType passes the filter
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	return !ls.filtered || ls.only.Has(eventType)
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.level()).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Strs("adventurers", e.Adventurers).
			Uint("map_width", e.MapWidth).
			Uint("map_height", e.MapHeight).
			Int("water_level", e.WaterLevel)

	case *events.TurnStartedEvent:
		logEvent.
			Int("turn", e.Turn).
			Str("adventurer", e.Adventurer).
			Int("action_points", e.ActionPoints)

	case *events.AdventurerMovedEvent:
		logEvent.
			Str("adventurer", e.Adventurer).
			Stringer("from", e.From).
			Stringer("to", e.To).
			Bool("special", e.Special)
		if e.MovedBy != "" {
			logEvent.Str("moved_by", e.MovedBy)
		}

	case *events.TileDrainedEvent:
		logEvent.
			Str("adventurer", e.Adventurer).
			Stringer("position", e.Position).
			Str("tile", e.Tile)

	case *events.TileFloodedEvent:
		logEvent.
			Stringer("position", e.Position).
			Str("tile", e.Tile)

	case *events.TileSunkEvent:
		logEvent.
			Stringer("position", e.Position).
			Str("tile", e.Tile).
			Strs("stranded", e.Stranded)

	case *events.WaterRoseEvent:
		logEvent.
			Int("water_level", e.Level).
			Int("draw_amount", e.DrawAmount).
			Bool("deadly", e.Deadly)

	case *events.ActionRejectedEvent:
		logEvent.
			Str("adventurer", e.Adventurer).
			Str("action", e.Action).
			Str("reason", e.Reason)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

func (ls *LoggerSubscriber) level() zerolog.Level {
	switch ls.logLevel {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		return ls.logLevel
	default:
		return zerolog.InfoLevel
	}
}
