package game

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStart     EventType = "round_start"
	EventTypeRoundEnd       EventType = "round_end"
	EventTypeRaise          EventType = "raise"
	EventTypeDraw           EventType = "draw"
	EventTypeElimination    EventType = "elimination"
	EventTypeActionRejected EventType = "action_rejected"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}
