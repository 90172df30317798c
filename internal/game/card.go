package game

import "fmt"

// Card is a face-down card in the shared pool.
type Card struct {
	ID       int // Index in the pool
	Number   int // Display number, 1..len(pool)
	Type     CardType
	Used     bool
	Revealed bool
}

// String returns the card number, with its type once revealed
func (c *Card) String() string {
	if !c.Revealed {
		return fmt.Sprintf("#%d", c.Number)
	}
	return fmt.Sprintf("#%d %s", c.Number, c.Type)
}

// countCards returns how many cards of type t are in the pool
func countCards(pool []*Card, t CardType) int {
	n := 0
	for _, c := range pool {
		if c.Type == t {
			n++
		}
	}
	return n
}
