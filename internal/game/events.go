package game

import "time"

// GameEvent represents anything that happens during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published when a new pool has been dealt
type RoundStartEvent struct {
	SessionID string
	Round     int
	Players   []string
	Cards     int
	Mode      GenerationMode
	Starter   string
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// RaiseEvent is published when a player raises the wager
type RaiseEvent struct {
	Round       int
	Player      string
	Seat        int
	Tier        int
	Money       int // Player's total after the raise
	PotAfter    int
	ForcedDraws int
	Next        string
	timestamp   time.Time
}

func (e RaiseEvent) EventType() EventType { return EventTypeRaise }
func (e RaiseEvent) Timestamp() time.Time { return e.timestamp }

// DrawEvent is published when a card is drawn
type DrawEvent struct {
	Round       int
	Player      string
	Seat        int
	CardNumber  int
	Outcome     CardType
	NearMiss    bool // WIN drawn with no money at stake
	ForcedDraws int  // Owed draws left after this one
	timestamp   time.Time
}

func (e DrawEvent) EventType() EventType { return EventTypeDraw }
func (e DrawEvent) Timestamp() time.Time { return e.timestamp }

// EliminationEvent is published when a player draws a DEAD card
type EliminationEvent struct {
	Round     int
	Player    string
	Seat      int
	Direction int // Turn direction after the reversal
	AliveLeft int
	timestamp time.Time
}

func (e EliminationEvent) EventType() EventType { return EventTypeElimination }
func (e EliminationEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent is published when a round has a winner
type RoundEndEvent struct {
	Round      int
	Winner     string
	WinnerSeat int
	Pot        int
	Reason     EndReason
	timestamp  time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// ActionRejectedEvent is published when an action is ignored
type ActionRejectedEvent struct {
	Round     int
	Action    string
	Reason    string
	timestamp time.Time
}

func (e ActionRejectedEvent) EventType() EventType { return EventTypeActionRejected }
func (e ActionRejectedEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously, in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Function
// subscribers cannot be compared and stay subscribed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(EventSubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(EventSubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
