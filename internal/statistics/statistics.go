package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/partycards/internal/game"
)

// RoundResult is the outcome of one simulated round
type RoundResult struct {
	Round        int
	Players      int
	WinnerSeat   int
	Reason       game.EndReason
	Pot          int // Total money staked by the end of the round
	Raises       int
	Draws        int
	NearMisses   int // WIN drawn with nothing at stake
	Eliminations int
}

// Statistics aggregates round results
type Statistics struct {
	Rounds  int
	SumPot  float64
	SumPot2 float64   // Sum of squares for variance calculation
	Pots    []float64 // Every pot, for median and percentiles

	WinCardWins   int // Rounds ended by a WIN card with money at stake
	LastAliveWins int // Rounds ended by eliminating everyone else

	Raises       int
	Draws        int
	NearMisses   int
	Eliminations int

	SeatWins [game.MaxPlayers]int
	MaxPot   int
}

// Mean returns the average pot per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumPot / float64(s.Rounds)
}

// Variance returns the sample variance of the pot
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumPot2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the pot
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(0, s.Variance()))
}

// StdError returns the standard error of the mean pot
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean pot
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a round result
func (s *Statistics) Add(result RoundResult) {
	pot := float64(result.Pot)
	s.Rounds++
	s.SumPot += pot
	s.SumPot2 += pot * pot
	s.Pots = append(s.Pots, pot)

	switch result.Reason {
	case game.EndWinCard:
		s.WinCardWins++
	case game.EndLastAlive:
		s.LastAliveWins++
	}

	s.Raises += result.Raises
	s.Draws += result.Draws
	s.NearMisses += result.NearMisses
	s.Eliminations += result.Eliminations

	if result.WinnerSeat >= 0 && result.WinnerSeat < len(s.SeatWins) {
		s.SeatWins[result.WinnerSeat]++
	}
	s.MaxPot = max(s.MaxPot, result.Pot)
}

// Merge folds other into s. Worker results are merged in worker order so a
// seeded run always produces the same pot list.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumPot += other.SumPot
	s.SumPot2 += other.SumPot2
	s.Pots = append(s.Pots, other.Pots...)
	s.WinCardWins += other.WinCardWins
	s.LastAliveWins += other.LastAliveWins
	s.Raises += other.Raises
	s.Draws += other.Draws
	s.NearMisses += other.NearMisses
	s.Eliminations += other.Eliminations
	for i := range s.SeatWins {
		s.SeatWins[i] += other.SeatWins[i]
	}
	s.MaxPot = max(s.MaxPot, other.MaxPot)
}

// Median returns the median pot
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the pot at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Pots) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Pots))
	copy(sorted, s.Pots)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// SeatWinRate returns the share of rounds won from seat
func (s *Statistics) SeatWinRate(seat int) float64 {
	if s.Rounds == 0 || seat < 0 || seat >= len(s.SeatWins) {
		return 0
	}
	return float64(s.SeatWins[seat]) / float64(s.Rounds)
}

// WinCardRate returns the share of rounds ended by the WIN card
func (s *Statistics) WinCardRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.WinCardWins) / float64(s.Rounds)
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if len(s.Pots) != s.Rounds {
		return fmt.Errorf("pot list length (%d) does not match rounds count (%d)", len(s.Pots), s.Rounds)
	}
	if s.WinCardWins+s.LastAliveWins != s.Rounds {
		return fmt.Errorf("win reasons (%d + %d) do not add up to %d rounds",
			s.WinCardWins, s.LastAliveWins, s.Rounds)
	}

	seatTotal := 0
	for _, n := range s.SeatWins {
		seatTotal += n
	}
	if seatTotal != s.Rounds {
		return fmt.Errorf("seat wins total (%d) does not match rounds count (%d)", seatTotal, s.Rounds)
	}

	if s.NearMisses > s.Draws {
		return fmt.Errorf("near misses (%d) exceed draws (%d)", s.NearMisses, s.Draws)
	}
	if s.Eliminations > s.Draws {
		return fmt.Errorf("eliminations (%d) exceed draws (%d)", s.Eliminations, s.Draws)
	}
	return nil
}
