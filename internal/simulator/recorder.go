package simulator

import (
	"github.com/lox/partycards/internal/game"
	"github.com/lox/partycards/internal/statistics"
)

// roundRecorder builds a RoundResult from the events of one round
type roundRecorder struct {
	current statistics.RoundResult
	done    bool
}

func (r *roundRecorder) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		r.current = statistics.RoundResult{Round: e.Round, Players: len(e.Players), WinnerSeat: -1}
		r.done = false
	case game.RaiseEvent:
		r.current.Raises++
	case game.DrawEvent:
		r.current.Draws++
		if e.NearMiss {
			r.current.NearMisses++
		}
	case game.EliminationEvent:
		r.current.Eliminations++
	case game.RoundEndEvent:
		r.current.WinnerSeat = e.WinnerSeat
		r.current.Reason = e.Reason
		r.current.Pot = e.Pot
		r.done = true
	}
}

// take returns the finished round, if there is one
func (r *roundRecorder) take() (statistics.RoundResult, bool) {
	if !r.done {
		return statistics.RoundResult{}, false
	}
	r.done = false
	return r.current, true
}
