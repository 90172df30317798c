package game

// CardType is the hidden outcome of a card in the pool.
type CardType int

const (
	// CardUnknown is only used in views of cards that are still face down.
	CardUnknown CardType = iota
	CardSafe
	CardDead
	CardWin
)

// String returns the string representation of a card type
func (c CardType) String() string {
	switch c {
	case CardSafe:
		return "SAFE"
	case CardDead:
		return "DEAD"
	case CardWin:
		return "WIN"
	default:
		return "?"
	}
}

// Status is the display status of a player within a round.
type Status int

const (
	StatusActive Status = iota
	StatusEliminated
	StatusWinner
)

// String returns the string representation of a player status
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusEliminated:
		return "eliminated"
	case StatusWinner:
		return "winner"
	default:
		return "unknown"
	}
}

// Phase is the state of the turn engine within a round.
type Phase int

const (
	AwaitingAction Phase = iota
	RoundOver
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case AwaitingAction:
		return "Awaiting action"
	case RoundOver:
		return "Round over"
	default:
		return "Unknown"
	}
}

// EndReason explains how a round finished.
type EndReason string

const (
	EndWinCard   EndReason = "win_card"
	EndLastAlive EndReason = "last_alive"
)

// Table limits.
const (
	MinPlayers = 2
	MaxPlayers = 8
	MaxCards   = 30
)

// WagerUnit converts a wager tier into the number of forced draws it imposes.
const WagerUnit = 5

// MaxForcedDraws is the counter after the highest tier. No raise is allowed
// at this level.
const MaxForcedDraws = 15 / WagerUnit

var allowedWagers = map[int][]int{
	0: {5, 10},
	1: {10, 15},
	2: {15},
}

// AllowedWagers returns the raise tiers permitted while forcedDraws draws are
// still owed. Legality depends only on the counter, never on earlier tiers.
func AllowedWagers(forcedDraws int) []int {
	tiers := allowedWagers[forcedDraws]
	out := make([]int, len(tiers))
	copy(out, tiers)
	return out
}
