package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/ForbiddenIsland/internal/game/core"
)

type recordingSubscriber struct {
	id       string
	types    map[string]bool
	received []Event
}

func (r *recordingSubscriber) ID() string { return r.id }

func (r *recordingSubscriber) HandleEvent(e Event) { r.received = append(r.received, e) }

func (r *recordingSubscriber) InterestedIn(eventType string) bool {
	return r.types == nil || r.types[eventType]
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()

	var receivedEvent Event
	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		receivedEvent = e
	})

	bus.Publish(NewGameStartedEvent("test-game", []string{"diver", "pilot"}, 6, 6, 2))

	if assert.NotNil(t, receivedEvent, "Event should have been received") {
		assert.Equal(t, TypeGameStarted, receivedEvent.Type())
		assert.Equal(t, "test-game", receivedEvent.GameID())
		assert.False(t, receivedEvent.Timestamp().IsZero())
	}
}

func TestEventBusMultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	id1 := bus.SubscribeFunc(TypeTurnStarted, func(e Event) { calls++ })
	id2 := bus.SubscribeFunc(TypeTurnStarted, func(e Event) { calls++ })

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, bus.FuncHandlerCount(TypeTurnStarted))

	bus.Publish(NewTurnStartedEvent("test-game", 1, "engineer", 3))
	assert.Equal(t, 2, calls)

	bus.Publish(NewTileFloodedEvent("test-game", core.NewCoordinate(1, 1), "Watchtower"))
	assert.Equal(t, 2, calls, "handlers only receive their event type")
}

func TestEventBusSubscribers(t *testing.T) {
	bus := NewEventBus()
	all := &recordingSubscriber{id: "all"}
	tiles := &recordingSubscriber{id: "tiles", types: map[string]bool{TypeTileSunk: true}}

	bus.Subscribe(all)
	bus.Subscribe(tiles)
	assert.Equal(t, 2, bus.SubscriberCount())

	bus.Publish(NewTileSunkEvent("g", core.NewCoordinate(0, 0), "Iron Gate", nil))
	bus.Publish(NewWaterRoseEvent("g", 3, 3, false))

	assert.Len(t, all.received, 2)
	assert.Len(t, tiles.received, 1)

	bus.Unsubscribe("all")
	bus.Publish(NewWaterRoseEvent("g", 4, 3, false))
	assert.Len(t, all.received, 2)
	assert.Equal(t, 1, bus.SubscriberCount())
}

func TestEventBusRecoversFromPanics(t *testing.T) {
	bus := NewEventBus()

	reached := false
	bus.SubscribeFunc(TypeTileDrained, func(e Event) { panic("boom") })
	bus.SubscribeFunc(TypeTileDrained, func(e Event) { reached = true })

	assert.NotPanics(t, func() {
		bus.Publish(NewTileDrainedEvent("g", "engineer", core.NewCoordinate(2, 2), "Observatory"))
	})
	assert.True(t, reached, "later handlers still run")
}

func TestEventBusDeliveryOrder(t *testing.T) {
	bus := NewEventBus()

	var order []string
	for _, id := range []string{"c", "a", "b"} {
		bus.Subscribe(&orderedSubscriber{id: id, order: &order})
	}
	bus.Subscribe(&orderedSubscriber{id: "a", order: &order})

	bus.Publish(NewWaterRoseEvent("g", 2, 3, false))
	assert.Equal(t, []string{"c", "a", "b"}, order, "subscription order, duplicates replaced in place")
	assert.Equal(t, 3, bus.SubscriberCount())
}

func TestEventBusUnsubscribeFunc(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	id := bus.SubscribeFunc(TypeTileSunk, func(e Event) { calls++ })
	bus.SubscribeFunc(TypeTileSunk, func(e Event) { calls += 10 })

	bus.UnsubscribeFunc(id)
	assert.Equal(t, 1, bus.FuncHandlerCount(TypeTileSunk))

	bus.Publish(NewTileSunkEvent("g", core.NewCoordinate(0, 0), "Cave of Embers", nil))
	assert.Equal(t, 10, calls)

	bus.UnsubscribeFunc("no-such-handler")
	assert.Equal(t, 1, bus.FuncHandlerCount(TypeTileSunk))
}

type orderedSubscriber struct {
	id    string
	order *[]string
}

func (o *orderedSubscriber) ID() string { return o.id }

func (o *orderedSubscriber) HandleEvent(Event) { *o.order = append(*o.order, o.id) }

func (o *orderedSubscriber) InterestedIn(string) bool { return true }
