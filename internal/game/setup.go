package game

import (
	"fmt"
	"math"
	rand "math/rand/v2"
	"strings"
)

// GenerationMode selects how the WIN card is placed in a new pool.
type GenerationMode int

const (
	// ModeParity ties the parity of the WIN card's number to the digit sum
	// of the round number.
	ModeParity GenerationMode = iota
	// ModeShuffle shuffles the whole pool uniformly.
	ModeShuffle
)

// String returns the string representation of a generation mode
func (m GenerationMode) String() string {
	switch m {
	case ModeParity:
		return "parity"
	case ModeShuffle:
		return "shuffle"
	default:
		return "unknown"
	}
}

// ParseGenerationMode parses "parity" or "shuffle".
func ParseGenerationMode(s string) (GenerationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "parity":
		return ModeParity, nil
	case "shuffle":
		return ModeShuffle, nil
	default:
		return 0, fmt.Errorf("%w: unknown generation mode %q", ErrInvalidConfiguration, s)
	}
}

// Config describes the table chosen on the settings screen.
type Config struct {
	Players int
	Cards   int
	Mode    GenerationMode
}

// Validate checks the player and card bounds
func (c Config) Validate() error {
	if c.Players < MinPlayers || c.Players > MaxPlayers {
		return fmt.Errorf("%w: players must be between %d and %d, got %d",
			ErrInvalidConfiguration, MinPlayers, MaxPlayers, c.Players)
	}
	if c.Cards < c.Players || c.Cards > MaxCards {
		return fmt.Errorf("%w: cards must be between %d and %d, got %d",
			ErrInvalidConfiguration, c.Players, MaxCards, c.Cards)
	}
	if c.Mode != ModeParity && c.Mode != ModeShuffle {
		return fmt.Errorf("%w: unknown generation mode %d", ErrInvalidConfiguration, c.Mode)
	}
	return nil
}

// RoundState holds the per-round counters of the turn engine.
type RoundState struct {
	Number       int // Never reset between rounds
	Pot          int
	ForcedDraws  int
	CurrentWager int
	Current      int // Index of the player to act
	Direction    int // +1 clockwise, -1 counter-clockwise
	Phase        Phase
}

// Over returns true once the round has a winner
func (r RoundState) Over() bool {
	return r.Phase == RoundOver
}

// Round is a freshly dealt table: players, pool and reset counters.
type Round struct {
	Players []*Player
	Pool    []*Card
	State   RoundState
}

// SeatAngle returns the angle in radians at which seat i of n sits around
// the table, starting at the top and going clockwise.
func SeatAngle(seat, players int) float64 {
	return 2*math.Pi*float64(seat)/float64(players) - math.Pi/2
}

// DigitSum is round%10 + round/10 with integer division. Only the two lowest
// digits contribute for rounds of 100 and above.
func DigitSum(round int) int {
	return round%10 + round/10
}

// WinParity returns 0 when the WIN card must sit on an even number in the
// given round and 1 when it must sit on an odd one.
func WinParity(round int) int {
	return DigitSum(round) % 2
}

// BuildRound seats the players, deals a new pool and resets the round
// counters. The starting player is chosen with rng.
func BuildRound(rng *rand.Rand, cfg Config, number int) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := BuildPool(rng, cfg, number)
	if err != nil {
		return nil, err
	}

	return &Round{
		Players: NewPlayers(cfg.Players),
		Pool:    pool,
		State: RoundState{
			Number:    number,
			Current:   rng.IntN(cfg.Players),
			Direction: 1,
			Phase:     AwaitingAction,
		},
	}, nil
}

// BuildPool deals cfg.Cards cards: one WIN, Players-1 DEAD and the rest SAFE.
func BuildPool(rng *rand.Rand, cfg Config, number int) ([]*Card, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if number < 1 {
		return nil, fmt.Errorf("%w: round must be at least 1, got %d", ErrInvalidConfiguration, number)
	}

	pool := make([]*Card, cfg.Cards)
	for i := range pool {
		pool[i] = &Card{ID: i, Number: i + 1}
	}

	// Outcomes other than WIN
	rest := make([]CardType, 0, cfg.Cards-1)
	for range cfg.Players - 1 {
		rest = append(rest, CardDead)
	}
	for range cfg.Cards - cfg.Players {
		rest = append(rest, CardSafe)
	}

	switch cfg.Mode {
	case ModeShuffle:
		all := append(rest, CardWin)
		rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		for i, t := range all {
			pool[i].Type = t
		}

	case ModeParity:
		parity := WinParity(number)
		var candidates []int
		for n := 1; n <= cfg.Cards; n++ {
			if n%2 == parity {
				candidates = append(candidates, n)
			}
		}
		win := candidates[rng.IntN(len(candidates))]

		rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		next := 0
		for _, c := range pool {
			if c.Number == win {
				c.Type = CardWin
				continue
			}
			c.Type = rest[next]
			next++
		}
	}

	return pool, nil
}
