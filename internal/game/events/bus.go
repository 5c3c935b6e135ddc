package events

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type funcHandler struct {
	id string
	fn EventHandler
}

// EventBus delivers events synchronously, subscribers first in the order
// they subscribed, then the function handlers of the event type. A panicking
// receiver is logged and skipped.
type EventBus struct {
	mu           sync.RWMutex
	subscribers  []Subscriber
	funcHandlers map[string][]funcHandler
	nextHandler  int
	logger       zerolog.Logger
}

var _ Bus = (*EventBus)(nil)

// NewEventBus creates an empty bus logging through the global logger
func NewEventBus() *EventBus {
	return &EventBus{
		funcHandlers: make(map[string][]funcHandler),
		logger:       log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a subscriber. A subscriber with the same ID is replaced in
// place.
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	id := subscriber.ID()
	if i := eb.indexOf(id); i >= 0 {
		eb.subscribers[i] = subscriber
	} else {
		eb.subscribers = append(eb.subscribers, subscriber)
	}
	eb.logger.Debug().Str("subscriber_id", id).Msg("Subscriber added")
}

func (eb *EventBus) Unsubscribe(subscriberID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if i := eb.indexOf(subscriberID); i >= 0 {
		eb.subscribers = slices.Delete(eb.subscribers, i, i+1)
		eb.logger.Debug().Str("subscriber_id", subscriberID).Msg("Subscriber removed")
	}
}

func (eb *EventBus) indexOf(subscriberID string) int {
	return slices.IndexFunc(eb.subscribers, func(s Subscriber) bool {
		return s.ID() == subscriberID
	})
}

// SubscribeFunc registers a handler for one event type and returns an ID for
// UnsubscribeFunc.
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.nextHandler++
	id := fmt.Sprintf("%s#%d", eventType, eb.nextHandler)
	eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], funcHandler{id: id, fn: handler})

	eb.logger.Debug().Str("handler_id", id).Msg("Function handler added")
	return id
}

func (eb *EventBus) UnsubscribeFunc(handlerID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	for eventType, handlers := range eb.funcHandlers {
		eb.funcHandlers[eventType] = slices.DeleteFunc(handlers, func(h funcHandler) bool {
			return h.id == handlerID
		})
	}
}

// Publish delivers event to every interested receiver before returning.
// Receivers must not subscribe or unsubscribe from inside a handler.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	eventType := event.Type()
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Msg("Publishing event")

	for _, s := range eb.subscribers {
		if s.InterestedIn(eventType) {
			eb.deliver(s.ID(), event, s.HandleEvent)
		}
	}
	for _, h := range eb.funcHandlers[eventType] {
		eb.deliver(h.id, event, h.fn)
	}
}

func (eb *EventBus) deliver(receiver string, event Event, fn EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error().
				Str("receiver", receiver).
				Str("event_type", event.Type()).
				Interface("panic", r).
				Msg("Event receiver panicked")
		}
	}()
	fn(event)
}

func (eb *EventBus) SubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}

// FuncHandlerCount returns the number of function handlers for an event type
func (eb *EventBus) FuncHandlerCount(eventType string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.funcHandlers[eventType])
}
