package subscribers

import (
	"maps"
	"sync"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/events"
)

// GameStats is a snapshot of what happened in a game so far
type GameStats struct {
	Turns        int            `json:"turns"`
	Moves        map[string]int `json:"moves"`
	SpecialMoves map[string]int `json:"special_moves"`
	Pushes       map[string]int `json:"pushes"`
	Drains       map[string]int `json:"drains"`
	Rejected     int            `json:"rejected"`
	TilesFlooded int            `json:"tiles_flooded"`
	TilesSunk    []string       `json:"tiles_sunk"`
	Stranded     []string       `json:"stranded"`
	PeakWater    int            `json:"peak_water"`
	WaterRises   int            `json:"water_rises"`
}

// StatsSubscriber tallies game events per adventurer
type StatsSubscriber struct {
	id string

	mu    sync.RWMutex
	stats GameStats
}

// NewStatsSubscriber creates a stats subscriber with empty counters
func NewStatsSubscriber(id string) *StatsSubscriber {
	return &StatsSubscriber{
		id: id,
		stats: GameStats{
			Moves:        make(map[string]int),
			SpecialMoves: make(map[string]int),
			Pushes:       make(map[string]int),
			Drains:       make(map[string]int),
		},
	}
}

func (s *StatsSubscriber) ID() string {
	return s.id
}

// InterestedIn skips the phase bookkeeping events
func (s *StatsSubscriber) InterestedIn(eventType string) bool {
	return eventType != events.TypeStateTransition
}

// HandleEvent updates the counters for one event
func (s *StatsSubscriber) HandleEvent(event events.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e := event.(type) {
	case *events.GameStartedEvent:
		s.stats.PeakWater = e.WaterLevel

	case *events.TurnStartedEvent:
		s.stats.Turns = max(s.stats.Turns, e.Turn)

	case *events.AdventurerMovedEvent:
		switch {
		case e.MovedBy != "":
			s.stats.Pushes[e.MovedBy]++
		case e.Special:
			s.stats.SpecialMoves[e.Adventurer]++
		default:
			s.stats.Moves[e.Adventurer]++
		}

	case *events.TileDrainedEvent:
		s.stats.Drains[e.Adventurer]++

	case *events.TileFloodedEvent:
		s.stats.TilesFlooded++

	case *events.TileSunkEvent:
		s.stats.TilesSunk = append(s.stats.TilesSunk, e.Tile)
		s.stats.Stranded = append(s.stats.Stranded, e.Stranded...)

	case *events.WaterRoseEvent:
		s.stats.WaterRises++
		s.stats.PeakWater = max(s.stats.PeakWater, e.Level)

	case *events.ActionRejectedEvent:
		s.stats.Rejected++
	}
}

// Stats returns a copy of the counters
func (s *StatsSubscriber) Stats() GameStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.stats
	out.Moves = maps.Clone(s.stats.Moves)
	out.SpecialMoves = maps.Clone(s.stats.SpecialMoves)
	out.Pushes = maps.Clone(s.stats.Pushes)
	out.Drains = maps.Clone(s.stats.Drains)
	out.TilesSunk = append([]string(nil), s.stats.TilesSunk...)
	out.Stranded = append([]string(nil), s.stats.Stranded...)
	return out
}
