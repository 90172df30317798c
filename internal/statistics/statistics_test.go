package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/partycards/internal/game"
)

func TestStatisticsEmpty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.SeatWinRate(0))
	assert.Zero(t, stats.WinCardRate())
	assert.Error(t, stats.Validate())
}

func TestStatisticsAdd(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{Round: 1, Players: 3, WinnerSeat: 2, Reason: game.EndWinCard, Pot: 15, Raises: 2, Draws: 3, NearMisses: 1})
	stats.Add(RoundResult{Round: 2, Players: 3, WinnerSeat: 0, Reason: game.EndLastAlive, Pot: 5, Raises: 1, Draws: 4, Eliminations: 2})
	stats.Add(RoundResult{Round: 3, Players: 3, WinnerSeat: 2, Reason: game.EndWinCard, Pot: 10, Raises: 1, Draws: 1})

	require.NoError(t, stats.Validate())
	assert.Equal(t, 3, stats.Rounds)
	assert.InDelta(t, 10.0, stats.Mean(), 1e-9)
	assert.InDelta(t, 25.0, stats.Variance(), 1e-9)
	assert.InDelta(t, 5.0, stats.StdDev(), 1e-9)
	assert.InDelta(t, 10.0, stats.Median(), 1e-9)
	assert.InDelta(t, 15.0, stats.Percentile(1), 1e-9)
	assert.InDelta(t, 5.0, stats.Percentile(0), 1e-9)
	assert.Equal(t, 15, stats.MaxPot)

	assert.Equal(t, 2, stats.WinCardWins)
	assert.Equal(t, 1, stats.LastAliveWins)
	assert.InDelta(t, 2.0/3.0, stats.WinCardRate(), 1e-9)
	assert.InDelta(t, 2.0/3.0, stats.SeatWinRate(2), 1e-9)
	assert.Equal(t, 4, stats.Raises)
	assert.Equal(t, 8, stats.Draws)
	assert.Equal(t, 1, stats.NearMisses)
	assert.Equal(t, 2, stats.Eliminations)

	lo, hi := stats.ConfidenceInterval95()
	assert.Less(t, lo, stats.Mean())
	assert.Greater(t, hi, stats.Mean())
}

func TestStatisticsMerge(t *testing.T) {
	a := &Statistics{}
	a.Add(RoundResult{WinnerSeat: 0, Reason: game.EndWinCard, Pot: 20, Draws: 2})
	b := &Statistics{}
	b.Add(RoundResult{WinnerSeat: 1, Reason: game.EndLastAlive, Pot: 0, Draws: 1, Eliminations: 1})
	b.Add(RoundResult{WinnerSeat: 1, Reason: game.EndLastAlive, Pot: 10, Draws: 2, Eliminations: 1})

	a.Merge(b)
	require.NoError(t, a.Validate())
	assert.Equal(t, 3, a.Rounds)
	assert.Equal(t, []float64{20, 0, 10}, a.Pots)
	assert.Equal(t, 1, a.SeatWins[0])
	assert.Equal(t, 2, a.SeatWins[1])
	assert.Equal(t, 20, a.MaxPot)
	assert.InDelta(t, 10.0, a.Mean(), 1e-9)
}

func TestStatisticsValidateCatchesMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{WinnerSeat: 0, Reason: game.EndWinCard, Pot: 5, Draws: 1})
	stats.LastAliveWins++
	assert.ErrorContains(t, stats.Validate(), "win reasons")

	stats = &Statistics{}
	stats.Add(RoundResult{WinnerSeat: 0, Reason: game.EndWinCard, Pot: 5, Draws: 1, NearMisses: 2})
	assert.ErrorContains(t, stats.Validate(), "near misses")
}
