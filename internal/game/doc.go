// Package game implements the round state machine of the party card game.
//
// Players sit around a circular table and take turns either raising the
// wager or drawing a card from a shared face-down pool. Each pool holds one
// WIN card, one DEAD card per player minus one, and SAFE cards for the rest.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	s, err := game.NewSession(rng, game.Config{Players: 4, Cards: 10})
//	if err != nil {
//	    return err // wraps game.ErrInvalidConfiguration
//	}
//	_ = s.Raise(5)       // current player stakes $5, the next player owes 1 draw
//	_ = s.DrawCard(3)    // draw card #4
//	if s.State.Over() {
//	    _ = s.NextRound()
//	}
//
// Illegal actions return an error wrapping game.ErrInvalidAction and leave
// the session untouched, so input loops can simply log and continue.
//
// # Architecture
//
//   - BuildRound / BuildPool: deal a new pool and reset the round counters
//   - Session: the turn engine (Raise, DrawCard, NextRound, Apply)
//   - Snapshot: per-frame read-only view for renderers
//   - EventBus: synchronous events for logs and statistics
//
// Sessions are not safe for concurrent use; a single input loop owns each one.
package game
