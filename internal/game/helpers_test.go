package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/partycards/internal/randutil"
)

// eventRecorder collects every published event
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) ofType(t EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newTestSession creates a session with a fixed seed and a quiet logger
func newTestSession(t *testing.T, players, cards int, opts ...SessionOption) *Session {
	t.Helper()
	opts = append([]SessionOption{WithLogger(quietLogger())}, opts...)
	s, err := NewSession(randutil.New(42), Config{Players: players, Cards: cards}, opts...)
	require.NoError(t, err)
	return s
}

// setPool replaces the dealt pool with cards of the given types, numbered
// in order. Hand-placed pools are not bound by the parity rule.
func setPool(s *Session, types ...CardType) {
	s.cfg.Mode = ModeShuffle
	s.Pool = make([]*Card, len(types))
	for i, t := range types {
		s.Pool[i] = &Card{ID: i, Number: i + 1, Type: t}
	}
}

// cardOf returns the pool index of the first unused card of type t
func cardOf(t *testing.T, s *Session, ct CardType) int {
	t.Helper()
	for _, c := range s.Pool {
		if c.Type == ct && !c.Used {
			return c.ID
		}
	}
	t.Fatalf("no unused %s card left", ct)
	return -1
}
