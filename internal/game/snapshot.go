package game

// PlayerView is what a renderer needs to draw a seat.
type PlayerView struct {
	Seat    int
	Name    string
	Money   int
	Alive   bool
	Status  Status
	Current bool
}

// CardView is what a renderer needs to draw a card. Type is CardUnknown
// until the card is revealed.
type CardView struct {
	ID       int
	Number   int
	Used     bool
	Revealed bool
	Type     CardType
}

// Snapshot is a read-only copy of the session for one frame.
type Snapshot struct {
	SessionID     string
	Round         int
	Pot           int
	ForcedDraws   int
	CurrentWager  int
	Direction     int
	Phase         Phase
	GameOver      bool
	AllowedWagers []int
	Players       []PlayerView
	Cards         []CardView
}

// Snapshot copies the state a renderer needs. Hidden card types are not
// included.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:     s.ID,
		Round:         s.State.Number,
		Pot:           s.State.Pot,
		ForcedDraws:   s.State.ForcedDraws,
		CurrentWager:  s.State.CurrentWager,
		Direction:     s.State.Direction,
		Phase:         s.State.Phase,
		GameOver:      s.State.Over(),
		AllowedWagers: s.AllowedWagers(),
		Players:       make([]PlayerView, len(s.Players)),
		Cards:         make([]CardView, len(s.Pool)),
	}

	for i, p := range s.Players {
		snap.Players[i] = PlayerView{
			Seat:    p.Seat,
			Name:    p.Name,
			Money:   p.Money,
			Alive:   p.Alive,
			Status:  p.Status,
			Current: !snap.GameOver && i == s.State.Current,
		}
	}

	for i, c := range s.Pool {
		view := CardView{
			ID:       c.ID,
			Number:   c.Number,
			Used:     c.Used,
			Revealed: c.Revealed,
		}
		if c.Revealed {
			view.Type = c.Type
		}
		snap.Cards[i] = view
	}

	return snap
}

// CurrentPlayer returns the view of the player to act, if any
func (snap Snapshot) CurrentPlayer() (PlayerView, bool) {
	for _, p := range snap.Players {
		if p.Current {
			return p, true
		}
	}
	return PlayerView{}, false
}

// Winner returns the view of the round winner, if any
func (snap Snapshot) Winner() (PlayerView, bool) {
	for _, p := range snap.Players {
		if p.Status == StatusWinner {
			return p, true
		}
	}
	return PlayerView{}, false
}
