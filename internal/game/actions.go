package game

import "fmt"

// Action is a semantic input for the turn engine. Renderers translate raw
// input into actions before calling Session.Apply.
type Action interface {
	fmt.Stringer
	isAction()
}

// RaiseAction raises the wager by Tier.
type RaiseAction struct {
	Tier int
}

// DrawAction draws the card with pool index Card.
type DrawAction struct {
	Card int
}

// NextRoundAction deals the next round once the current one is over.
type NextRoundAction struct{}

func (RaiseAction) isAction()     {}
func (DrawAction) isAction()      {}
func (NextRoundAction) isAction() {}

func (a RaiseAction) String() string   { return fmt.Sprintf("raise %d", a.Tier) }
func (a DrawAction) String() string    { return fmt.Sprintf("draw #%d", a.Card+1) }
func (NextRoundAction) String() string { return "next round" }
