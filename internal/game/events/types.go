package events

import "time"

// Event is anything that happened on the island worth telling subscribers
// about. Concrete events embed BaseEvent.
type Event interface {
	Type() string
	Timestamp() time.Time
	GameID() string
}

// BaseEvent carries the fields every event shares
type BaseEvent struct {
	Kind string    `json:"type"`
	At   time.Time `json:"at"`
	Game string    `json:"game_id"`
}

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{Kind: eventType, At: time.Now(), Game: gameID}
}

func (e BaseEvent) Type() string         { return e.Kind }
func (e BaseEvent) Timestamp() time.Time { return e.At }
func (e BaseEvent) GameID() string       { return e.Game }

// EventHandler handles one event type registered with SubscribeFunc
type EventHandler func(Event)

// Subscriber receives every event it declares interest in
type Subscriber interface {
	ID() string
	HandleEvent(Event)
	InterestedIn(eventType string) bool
}

// Publisher is the side of the bus the engine sees
type Publisher interface {
	Publish(Event)
}

// Bus is a Publisher that can be subscribed to
type Bus interface {
	Publisher
	Subscribe(Subscriber)
	Unsubscribe(subscriberID string)
	SubscribeFunc(eventType string, handler EventHandler) string
	UnsubscribeFunc(handlerID string)
}
