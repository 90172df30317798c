package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/partycards/internal/game"
	"github.com/lox/partycards/internal/randutil"
	"github.com/lox/partycards/internal/simulator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

// SimulateCmd plays random rounds in parallel
type SimulateCmd struct {
	Rounds    int     `kong:"default='10000',help='Number of rounds to play'"`
	Workers   int     `kong:"default='0',help='Worker goroutines (0 for one per CPU)'"`
	Players   int     `kong:"default='4',help='Number of players'"`
	Cards     int     `kong:"default='10',help='Number of cards in the pool'"`
	Mode      string  `kong:"default='parity',enum='parity,shuffle',help='Pool generation mode'"`
	Seed      int64   `kong:"default='0',help='RNG seed (0 for random)'"`
	RaiseProb float64 `kong:"default='0.3',help='Chance of raising whenever a raise is legal'"`
	Verbose   bool    `kong:"help='Verbose logging'"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	logger := consoleLogger(c.Verbose)

	mode, err := game.ParseGenerationMode(c.Mode)
	if err != nil {
		return err
	}
	seed := randutil.Seed(c.Seed)

	sim, err := simulator.New(simulator.Config{
		Rounds:    c.Rounds,
		Workers:   c.Workers,
		Players:   c.Players,
		Cards:     c.Cards,
		Mode:      mode,
		Seed:      seed,
		RaiseProb: c.RaiseProb,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	report, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed (seed %d): %w", seed, err)
	}

	fmt.Println(formatReport(report, c.Players))
	return nil
}

func formatReport(report *simulator.Report, players int) string {
	s := report.Stats
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render(" Simulation Results "))
	b.WriteString("\n\n")
	row("Rounds", fmt.Sprintf("%d", s.Rounds))
	row("Workers", fmt.Sprintf("%d", report.Workers))
	row("Seed", fmt.Sprintf("%d", report.Seed))
	row("Elapsed", report.Elapsed.String())
	b.WriteString("\n")

	row("WIN card wins", fmt.Sprintf("%d (%.1f%%)", s.WinCardWins, 100*s.WinCardRate()))
	row("Last alive wins", fmt.Sprintf("%d", s.LastAliveWins))
	row("Near misses", fmt.Sprintf("%d", s.NearMisses))
	row("Eliminations", fmt.Sprintf("%d", s.Eliminations))
	row("Raises", fmt.Sprintf("%d", s.Raises))
	row("Draws", fmt.Sprintf("%d", s.Draws))
	b.WriteString("\n")

	lo, hi := s.ConfidenceInterval95()
	row("Average pot", fmt.Sprintf("$%.2f ± %.2f", s.Mean(), s.StdDev()))
	row("95% CI", fmt.Sprintf("[$%.2f, $%.2f]", lo, hi))
	row("Median pot", fmt.Sprintf("$%.0f", s.Median()))
	row("Largest pot", fmt.Sprintf("$%d", s.MaxPot))
	b.WriteString("\n")

	for seat := range players {
		row(fmt.Sprintf("P%d wins", seat+1), fmt.Sprintf("%d (%.1f%%)", s.SeatWins[seat], 100*s.SeatWinRate(seat)))
	}

	return strings.TrimRight(b.String(), "\n")
}
