package game

import "fmt"

// CheckInvariants verifies the rules that must hold after every action.
// The simulator calls it after each step.
func (s *Session) CheckInvariants() error {
	n := len(s.Players)

	if wins := countCards(s.Pool, CardWin); wins != 1 {
		return fmt.Errorf("round %d: expected 1 WIN card, found %d", s.State.Number, wins)
	}
	if dead := countCards(s.Pool, CardDead); dead != n-1 {
		return fmt.Errorf("round %d: expected %d DEAD cards, found %d", s.State.Number, n-1, dead)
	}
	if s.cfg.Mode == ModeParity {
		for _, c := range s.Pool {
			if c.Type == CardWin && c.Number%2 != WinParity(s.State.Number) {
				return fmt.Errorf("round %d: WIN card #%d has the wrong parity", s.State.Number, c.Number)
			}
		}
	}

	winners := 0
	money := 0
	for _, p := range s.Players {
		if p.Status == StatusWinner {
			winners++
		}
		if p.Money < 0 {
			return fmt.Errorf("round %d: %s has negative money %d", s.State.Number, p.Name, p.Money)
		}
		money += p.Money
	}
	if winners > 1 {
		return fmt.Errorf("round %d: %d winners", s.State.Number, winners)
	}
	if money != s.State.Pot {
		return fmt.Errorf("round %d: pot %d does not match wagers %d", s.State.Number, s.State.Pot, money)
	}

	if s.State.ForcedDraws < 0 || s.State.ForcedDraws > MaxForcedDraws {
		return fmt.Errorf("round %d: forced draws %d out of range", s.State.Number, s.State.ForcedDraws)
	}
	if s.State.Direction != 1 && s.State.Direction != -1 {
		return fmt.Errorf("round %d: bad direction %d", s.State.Number, s.State.Direction)
	}

	if s.State.Over() {
		if winners != 1 {
			return fmt.Errorf("round %d: over without a winner", s.State.Number)
		}
		for _, c := range s.Pool {
			if !c.Revealed {
				return fmt.Errorf("round %d: card #%d hidden after the round ended", s.State.Number, c.Number)
			}
		}
		return nil
	}

	if s.State.Current < 0 || s.State.Current >= n || !s.Players[s.State.Current].Alive {
		return fmt.Errorf("round %d: turn is on seat %d which is not alive", s.State.Number, s.State.Current)
	}
	return nil
}
