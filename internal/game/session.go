package game

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Session is the turn engine. It owns the players, the pool and the round
// counters, and mutates them only in response to validated actions.
type Session struct {
	Round

	ID     string
	cfg    Config
	rng    *rand.Rand
	clock  quartz.Clock
	logger *log.Logger
	bus    EventBus
}

// NewSession validates the configuration and deals the first round.
// The RNG is required so that pools and starting seats are reproducible.
func NewSession(rng *rand.Rand, cfg Config, opts ...SessionOption) (*Session, error) {
	if rng == nil {
		panic("rng is required for session creation")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sc := newSessionConfig(opts)
	s := &Session{
		ID:     sc.id,
		cfg:    cfg,
		rng:    rng,
		clock:  sc.clock,
		logger: sc.logger.WithPrefix("engine"),
		bus:    sc.bus,
	}

	if err := s.startRound(sc.firstRound); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the table configuration
func (s *Session) Config() Config {
	return s.cfg
}

// Events returns the bus the session publishes on
func (s *Session) Events() EventBus {
	return s.bus
}

// CurrentPlayer returns the player to act, or nil once the round is over
func (s *Session) CurrentPlayer() *Player {
	if s.State.Over() {
		return nil
	}
	return s.Players[s.State.Current]
}

// AllowedWagers returns the raise tiers legal right now
func (s *Session) AllowedWagers() []int {
	if s.State.Over() {
		return []int{}
	}
	return AllowedWagers(s.State.ForcedDraws)
}

// AliveCount returns how many players are still in the round
func (s *Session) AliveCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Alive {
			n++
		}
	}
	return n
}

// Apply dispatches an action from an input source
func (s *Session) Apply(action Action) error {
	switch a := action.(type) {
	case RaiseAction:
		return s.Raise(a.Tier)
	case DrawAction:
		return s.DrawCard(a.Card)
	case NextRoundAction:
		return s.NextRound()
	default:
		return fmt.Errorf("%w: unsupported action %v", ErrInvalidAction, action)
	}
}

// Raise adds tier to the current player's money and the pot, sets the
// forced-draw counter to tier/5 and passes the turn on.
func (s *Session) Raise(tier int) error {
	action := RaiseAction{Tier: tier}
	if s.State.Over() {
		return s.reject(action, "round %d is over", s.State.Number)
	}
	if !slices.Contains(AllowedWagers(s.State.ForcedDraws), tier) {
		return s.reject(action, "tier %d not allowed with %d forced draws (allowed %v)",
			tier, s.State.ForcedDraws, AllowedWagers(s.State.ForcedDraws))
	}

	p := s.Players[s.State.Current]
	p.Money += tier
	s.State.Pot += tier
	s.State.CurrentWager = tier
	s.State.ForcedDraws = tier / WagerUnit
	s.State.Current = s.nextAlive(s.State.Current, s.State.Direction)

	next := s.Players[s.State.Current]
	s.logger.Debug("Raise", "player", p.Name, "tier", tier, "pot", s.State.Pot, "next", next.Name)
	s.bus.Publish(RaiseEvent{
		Round:       s.State.Number,
		Player:      p.Name,
		Seat:        p.Seat,
		Tier:        tier,
		Money:       p.Money,
		PotAfter:    s.State.Pot,
		ForcedDraws: s.State.ForcedDraws,
		Next:        next.Name,
		timestamp:   s.clock.Now(),
	})
	return nil
}

// DrawCard draws the card at pool index id for the current player.
// A player who draws DEAD always yields the turn, and any forced draws they
// still owed pass to the next alive player.
func (s *Session) DrawCard(id int) error {
	action := DrawAction{Card: id}
	if s.State.Over() {
		return s.reject(action, "round %d is over", s.State.Number)
	}
	if id < 0 || id >= len(s.Pool) {
		return s.reject(action, "no card #%d in a pool of %d", id+1, len(s.Pool))
	}
	card := s.Pool[id]
	if card.Used {
		return s.reject(action, "card #%d was already drawn", card.Number)
	}

	p := s.Players[s.State.Current]
	card.Used = true
	card.Revealed = true
	if s.State.ForcedDraws > 0 {
		s.State.ForcedDraws--
	}

	won := false
	nearMiss := false
	switch card.Type {
	case CardWin:
		if p.Money > 0 {
			p.Status = StatusWinner
			won = true
		} else {
			nearMiss = true
		}
	case CardDead:
		p.eliminate()
		s.State.Direction = -s.State.Direction
	}

	s.logger.Debug("Draw", "player", p.Name, "card", card.Number, "type", card.Type, "forced", s.State.ForcedDraws)
	s.bus.Publish(DrawEvent{
		Round:       s.State.Number,
		Player:      p.Name,
		Seat:        p.Seat,
		CardNumber:  card.Number,
		Outcome:     card.Type,
		NearMiss:    nearMiss,
		ForcedDraws: s.State.ForcedDraws,
		timestamp:   s.clock.Now(),
	})

	alive := s.AliveCount()
	if card.Type == CardDead {
		s.bus.Publish(EliminationEvent{
			Round:     s.State.Number,
			Player:    p.Name,
			Seat:      p.Seat,
			Direction: s.State.Direction,
			AliveLeft: alive,
			timestamp: s.clock.Now(),
		})
	}

	if won {
		s.endRound(p, EndWinCard)
		return nil
	}
	if alive == 1 {
		survivor := s.Players[s.nextAlive(s.State.Current, s.State.Direction)]
		survivor.Status = StatusWinner
		s.endRound(survivor, EndLastAlive)
		return nil
	}

	// An eliminated player always yields the turn; any remaining forced
	// draws pass on with it.
	if s.State.ForcedDraws == 0 || !p.Alive {
		s.State.Current = s.nextAlive(s.State.Current, s.State.Direction)
	}
	return nil
}

// NextRound deals a new round with the next round number.
func (s *Session) NextRound() error {
	if !s.State.Over() {
		return s.reject(NextRoundAction{}, "round %d is still being played", s.State.Number)
	}
	return s.startRound(s.State.Number + 1)
}

func (s *Session) startRound(number int) error {
	round, err := BuildRound(s.rng, s.cfg, number)
	if err != nil {
		return fmt.Errorf("failed to build round %d: %w", number, err)
	}
	s.Round = *round

	names := make([]string, len(s.Players))
	for i, p := range s.Players {
		names[i] = p.Name
	}
	starter := s.Players[s.State.Current]

	s.logger.Info("Starting round", "session", s.ID, "round", number, "players", len(s.Players),
		"cards", len(s.Pool), "mode", s.cfg.Mode, "starter", starter.Name)
	s.bus.Publish(RoundStartEvent{
		SessionID: s.ID,
		Round:     number,
		Players:   names,
		Cards:     len(s.Pool),
		Mode:      s.cfg.Mode,
		Starter:   starter.Name,
		timestamp: s.clock.Now(),
	})
	return nil
}

func (s *Session) endRound(winner *Player, reason EndReason) {
	for _, c := range s.Pool {
		c.Revealed = true
	}
	s.State.Phase = RoundOver

	s.logger.Info("Round complete", "round", s.State.Number, "winner", winner.Name,
		"reason", reason, "pot", s.State.Pot)
	s.bus.Publish(RoundEndEvent{
		Round:      s.State.Number,
		Winner:     winner.Name,
		WinnerSeat: winner.Seat,
		Pot:        s.State.Pot,
		Reason:     reason,
		timestamp:  s.clock.Now(),
	})
}

// reject logs and publishes an ignored action and returns ErrInvalidAction.
func (s *Session) reject(action Action, format string, args ...any) error {
	reason := fmt.Sprintf(format, args...)
	s.logger.Debug("Rejected action", "action", action, "reason", reason)
	s.bus.Publish(ActionRejectedEvent{
		Round:     s.State.Number,
		Action:    action.String(),
		Reason:    reason,
		timestamp: s.clock.Now(),
	})
	return fmt.Errorf("%w: %s: %s", ErrInvalidAction, action, reason)
}

// nextAlive steps from seat in direction dir until it finds an alive
// player. It visits each seat at most once and returns from itself when no
// one else is alive, or -1 if nobody is.
func (s *Session) nextAlive(from, dir int) int {
	n := len(s.Players)
	for step := 1; step <= n; step++ {
		idx := ((from+dir*step)%n + n) % n
		if s.Players[idx].Alive {
			return idx
		}
	}
	return -1
}
