package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventFormatter(t *testing.T) {
	tests := []struct {
		name     string
		opts     FormattingOptions
		event    GameEvent
		expected string
	}{
		{
			name:     "raise owing one draw",
			event:    RaiseEvent{Player: "P1", Tier: 5, PotAfter: 5, ForcedDraws: 1, Next: "P2"},
			expected: "P1: raises $5 (pot now: $5), P2 owes 1 draw",
		},
		{
			name:     "raise owing three draws",
			event:    RaiseEvent{Player: "P3", Tier: 15, PotAfter: 30, ForcedDraws: 3, Next: "P1"},
			expected: "P3: raises $15 (pot now: $30), P1 owes 3 draws",
		},
		{
			name:     "safe draw",
			event:    DrawEvent{Player: "P2", CardNumber: 7, Outcome: CardSafe},
			expected: "P2: draws #7 → SAFE",
		},
		{
			name:     "near miss with draws left",
			event:    DrawEvent{Player: "P2", CardNumber: 3, Outcome: CardWin, NearMiss: true, ForcedDraws: 1},
			expected: "P2: draws #3 → WIN (nothing at stake), 1 more to draw",
		},
		{
			name:     "elimination",
			event:    EliminationEvent{Player: "P4", AliveLeft: 2, Direction: -1},
			expected: "P4 is out (2 left)",
		},
		{
			name:     "elimination with direction",
			opts:     FormattingOptions{ShowDirection: true},
			event:    EliminationEvent{Player: "P4", AliveLeft: 2, Direction: -1},
			expected: "P4 is out (2 left), play now goes counter-clockwise",
		},
		{
			name:     "win card",
			event:    RoundEndEvent{Round: 3, Winner: "P1", Pot: 25, Reason: EndWinCard},
			expected: "=== Round 3 Complete ===\nWinner: P1 drew the WIN card (pot $25)",
		},
		{
			name:     "last alive",
			event:    RoundEndEvent{Round: 4, Winner: "P2", Pot: 0, Reason: EndLastAlive},
			expected: "=== Round 4 Complete ===\nWinner: P2 is the last one standing (pot $0)",
		},
		{
			name:     "rejection hidden by default",
			event:    ActionRejectedEvent{Action: "raise 5", Reason: "round 1 is over"},
			expected: "",
		},
		{
			name:     "rejection shown",
			opts:     FormattingOptions{ShowRejections: true},
			event:    ActionRejectedEvent{Action: "raise 5", Reason: "round 1 is over"},
			expected: "ignored raise 5: round 1 is over",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ef := NewEventFormatter(tt.opts)
			assert.Equal(t, tt.expected, ef.Format(tt.event))
		})
	}
}

func TestFormatRoundStart(t *testing.T) {
	ef := NewEventFormatter(FormattingOptions{})
	got := ef.FormatRoundStart(RoundStartEvent{
		Round:     2,
		Players:   []string{"P1", "P2", "P3"},
		Cards:     8,
		Mode:      ModeParity,
		Starter:   "P3",
		timestamp: time.Now(),
	})
	assert.Contains(t, got, "ROUND 2")
	assert.Contains(t, got, "3 players • 8 cards • parity • P3 starts")
}

func TestEventBusSubscription(t *testing.T) {
	bus := NewEventBus()
	rec := &eventRecorder{}
	var fromFunc []EventType

	bus.Subscribe(rec)
	bus.Subscribe(EventSubscriberFunc(func(e GameEvent) {
		fromFunc = append(fromFunc, e.EventType())
	}))

	bus.Publish(RaiseEvent{})
	bus.Unsubscribe(rec)
	bus.Publish(DrawEvent{})

	assert.Len(t, rec.events, 1)
	assert.Equal(t, []EventType{EventTypeRaise, EventTypeDraw}, fromFunc)
}
