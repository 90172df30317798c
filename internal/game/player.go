package game

import "fmt"

// Player represents a seat at the table
type Player struct {
	Seat   int // Clockwise seating order, turn order follows it
	Name   string
	Money  int // Sum of this player's wagers in the current round
	Alive  bool
	Status Status
}

// NewPlayers seats n players named P1..Pn in clockwise order.
func NewPlayers(n int) []*Player {
	players := make([]*Player, n)
	for i := range players {
		players[i] = &Player{
			Seat:   i,
			Name:   fmt.Sprintf("P%d", i+1),
			Alive:  true,
			Status: StatusActive,
		}
	}
	return players
}

// IsWinner returns true if the player won the current round
func (p *Player) IsWinner() bool {
	return p.Status == StatusWinner
}

func (p *Player) eliminate() {
	p.Alive = false
	p.Status = StatusEliminated
}
