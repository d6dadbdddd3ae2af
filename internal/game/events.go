package game

import (
	"time"

	"github.com/lox/highcard/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeGameStart  EventType = "game_start"
	EventTypeRoundStart EventType = "round_start"
	EventTypeCardDrawn  EventType = "card_drawn"
	EventTypePileEmpty  EventType = "pile_empty"
	EventTypeRoundEnd   EventType = "round_end"
	EventTypeGameEnd    EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published once the deck is ready and before round one.
type GameStartEvent struct {
	GameID  string
	Players []string
	Rounds  int
	At      time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.At }

// RoundStartEvent is published at the start of each round.
type RoundStartEvent struct {
	Round int
	At    time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.At }

// CardDrawnEvent is published when a player draws from the pile.
type CardDrawnEvent struct {
	Round  int
	Player int
	Name   string
	Card   deck.Card
	At     time.Time
}

func (e CardDrawnEvent) EventType() EventType { return EventTypeCardDrawn }
func (e CardDrawnEvent) Timestamp() time.Time { return e.At }

// PileEmptyEvent is published when a draw finds the pile empty.
type PileEmptyEvent struct {
	Round int
	At    time.Time
}

func (e PileEmptyEvent) EventType() EventType { return EventTypePileEmpty }
func (e PileEmptyEvent) Timestamp() time.Time { return e.At }

// RoundEndEvent is published after a round is resolved. Winner is empty for
// tied and empty rounds.
type RoundEndEvent struct {
	Round      int
	Resolution Resolution
	Winner     string
	Points     int
	Score      int
	At         time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.At }

// GameEndEvent carries the final summary.
type GameEndEvent struct {
	Summary *Summary
	At      time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.At }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
