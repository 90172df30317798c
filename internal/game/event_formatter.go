package game

import (
	"fmt"
	"strings"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowRejections bool // Include ignored actions (for the TUI log)
	ShowDirection  bool // Mention the turn direction after eliminations
}

// EventFormatter turns game events into log lines
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format returns the log line for any event, or "" if the event is hidden
func (ef *EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case RoundStartEvent:
		return ef.FormatRoundStart(e)
	case RaiseEvent:
		return ef.FormatRaise(e)
	case DrawEvent:
		return ef.FormatDraw(e)
	case EliminationEvent:
		return ef.FormatElimination(e)
	case RoundEndEvent:
		return ef.FormatRoundEnd(e)
	case ActionRejectedEvent:
		if !ef.opts.ShowRejections {
			return ""
		}
		return fmt.Sprintf("ignored %s: %s", e.Action, e.Reason)
	default:
		return ""
	}
}

// FormatRoundStart formats a round start event
func (ef *EventFormatter) FormatRoundStart(e RoundStartEvent) string {
	line1 := fmt.Sprintf("\033[1m*** ROUND %d ***\033[0m", e.Round)
	line2 := fmt.Sprintf("%d players • %d cards • %s • %s starts",
		len(e.Players), e.Cards, e.Mode, e.Starter)
	return line1 + "\n" + line2
}

// FormatRaise formats a raise event
func (ef *EventFormatter) FormatRaise(e RaiseEvent) string {
	draws := "draw"
	if e.ForcedDraws != 1 {
		draws = "draws"
	}
	return fmt.Sprintf("%s: raises $%d (pot now: $%d), %s owes %d %s",
		e.Player, e.Tier, e.PotAfter, e.Next, e.ForcedDraws, draws)
}

// FormatDraw formats a draw event
func (ef *EventFormatter) FormatDraw(e DrawEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: draws #%d → %s", e.Player, e.CardNumber, e.Outcome)
	if e.NearMiss {
		b.WriteString(" (nothing at stake)")
	}
	if e.ForcedDraws > 0 {
		fmt.Fprintf(&b, ", %d more to draw", e.ForcedDraws)
	}
	return b.String()
}

// FormatElimination formats an elimination event
func (ef *EventFormatter) FormatElimination(e EliminationEvent) string {
	line := fmt.Sprintf("%s is out (%d left)", e.Player, e.AliveLeft)
	if ef.opts.ShowDirection {
		dir := "clockwise"
		if e.Direction < 0 {
			dir = "counter-clockwise"
		}
		line += ", play now goes " + dir
	}
	return line
}

// FormatRoundEnd formats a round end event
func (ef *EventFormatter) FormatRoundEnd(e RoundEndEvent) string {
	how := "drew the WIN card"
	if e.Reason == EndLastAlive {
		how = "is the last one standing"
	}
	return fmt.Sprintf("=== Round %d Complete ===\nWinner: %s %s (pot $%d)",
		e.Round, e.Winner, how, e.Pot)
}
