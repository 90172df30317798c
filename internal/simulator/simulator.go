package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/partycards/internal/game"
	"github.com/lox/partycards/internal/randutil"
	"github.com/lox/partycards/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds    int
	Workers   int // Defaults to the number of CPUs
	Players   int
	Cards     int
	Mode      game.GenerationMode
	Seed      int64   // Base seed; each worker derives its own stream
	RaiseProb float64 // Chance of raising when a raise is legal
	Logger    *log.Logger
	Clock     quartz.Clock
}

// Report is the outcome of a simulation run
type Report struct {
	Stats   *statistics.Statistics
	Elapsed time.Duration
	Workers int
	Seed    int64
}

// Simulator plays random rounds and checks the rules after every action
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", config.Rounds)
	}
	if config.RaiseProb < 0 || config.RaiseProb > 1 {
		return nil, fmt.Errorf("raise probability must be between 0 and 1, got %v", config.RaiseProb)
	}
	table := game.Config{Players: config.Players, Cards: config.Cards, Mode: config.Mode}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	config.Workers = min(config.Workers, config.Rounds)

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
		clock:  clock,
	}, nil
}

// Run plays all rounds across the workers and merges their statistics.
// The same seed and worker count always produce the same statistics.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	start := s.clock.Now()
	workers := s.config.Workers
	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers

	s.logger.Info("Starting simulation", "rounds", s.config.Rounds, "workers", workers,
		"players", s.config.Players, "cards", s.config.Cards, "mode", s.config.Mode, "seed", s.config.Seed)

	results := make([]*statistics.Statistics, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		g.Go(func() error {
			stats, err := s.runWorker(ctx, w, rounds)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, stats := range results {
		total.Merge(stats)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.clock.Since(start)
	s.logger.Info("Simulation complete", "rounds", total.Rounds, "elapsed", elapsed,
		"win_card", total.WinCardWins, "last_alive", total.LastAliveWins)

	return &Report{
		Stats:   total,
		Elapsed: elapsed,
		Workers: workers,
		Seed:    s.config.Seed,
	}, nil
}

// runWorker plays rounds on a session of its own
func (s *Simulator) runWorker(ctx context.Context, worker, rounds int) (*statistics.Statistics, error) {
	stats := &statistics.Statistics{}
	if rounds == 0 {
		return stats, nil
	}

	rng := randutil.New(randutil.Derive(s.config.Seed, worker))
	recorder := &roundRecorder{}
	bus := game.NewEventBus()
	bus.Subscribe(recorder)

	session, err := game.NewSession(rng,
		game.Config{Players: s.config.Players, Cards: s.config.Cards, Mode: s.config.Mode},
		game.WithLogger(s.logger.With("worker", worker)),
		game.WithClock(s.clock),
		game.WithEventBus(bus),
		game.WithSessionID(fmt.Sprintf("sim-%d-%d", s.config.Seed, worker)),
	)
	if err != nil {
		return nil, err
	}

	for r := range rounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if r > 0 {
			if err := session.NextRound(); err != nil {
				return nil, err
			}
		}
		if err := s.playRound(rng, session); err != nil {
			return nil, fmt.Errorf("round %d: %w", session.State.Number, err)
		}
		result, ok := recorder.take()
		if !ok {
			return nil, fmt.Errorf("round %d ended without a result", session.State.Number)
		}
		stats.Add(result)
	}
	return stats, nil
}

// playRound picks random legal actions until the round is over
func (s *Simulator) playRound(rng *rand.Rand, session *game.Session) error {
	if err := session.CheckInvariants(); err != nil {
		return err
	}

	// Every raise needs at least one draw within three raises, and every
	// card is drawn at most once, so this bound is never reached by a
	// working engine.
	limit := 4 * (len(session.Pool) + 1)
	for step := 0; !session.State.Over(); step++ {
		if step >= limit {
			return fmt.Errorf("round did not finish after %d actions", limit)
		}

		action, err := s.chooseAction(rng, session)
		if err != nil {
			return err
		}
		if err := session.Apply(action); err != nil {
			return fmt.Errorf("legal action %s rejected: %w", action, err)
		}
		if err := session.CheckInvariants(); err != nil {
			return fmt.Errorf("after %s: %w", action, err)
		}
	}
	return nil
}

var errNoCardsLeft = errors.New("no unused cards left in a running round")

// chooseAction raises with probability RaiseProb when a raise is legal,
// otherwise draws a random unused card.
func (s *Simulator) chooseAction(rng *rand.Rand, session *game.Session) (game.Action, error) {
	if tiers := session.AllowedWagers(); len(tiers) > 0 && rng.Float64() < s.config.RaiseProb {
		return game.RaiseAction{Tier: tiers[rng.IntN(len(tiers))]}, nil
	}

	unused := make([]int, 0, len(session.Pool))
	for _, c := range session.Pool {
		if !c.Used {
			unused = append(unused, c.ID)
		}
	}
	if len(unused) == 0 {
		return nil, errNoCardsLeft
	}
	return game.DrawAction{Card: unused[rng.IntN(len(unused))]}, nil
}
