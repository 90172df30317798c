package main

import (
	"fmt"
	"strings"

	"github.com/lox/partycards/internal/game"
	"github.com/lox/partycards/internal/randutil"
)

// DealCmd prints one generated pool face up
type DealCmd struct {
	Players int    `kong:"default='4',help='Number of players'"`
	Cards   int    `kong:"default='10',help='Number of cards in the pool'"`
	Round   int    `kong:"default='1',help='Round number (drives the parity rule)'"`
	Mode    string `kong:"default='parity',enum='parity,shuffle',help='Pool generation mode'"`
	Seed    int64  `kong:"default='0',help='RNG seed (0 for random)'"`
}

func (c *DealCmd) Run(g *Globals) error {
	if c.Round < 1 {
		return fmt.Errorf("round must be at least 1, got %d", c.Round)
	}
	mode, err := game.ParseGenerationMode(c.Mode)
	if err != nil {
		return err
	}

	cfg := game.Config{Players: c.Players, Cards: c.Cards, Mode: mode}
	pool, err := game.BuildPool(randutil.New(randutil.Seed(c.Seed)), cfg, c.Round)
	if err != nil {
		return err
	}

	fmt.Println(formatPool(pool, c.Round, mode))
	return nil
}

func formatPool(pool []*game.Card, round int, mode game.GenerationMode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Round %d, %s mode", round, mode)
	if mode == game.ModeParity {
		parity := "even"
		if game.WinParity(round) == 1 {
			parity = "odd"
		}
		fmt.Fprintf(&b, ", digit sum %d: WIN on an %s number", game.DigitSum(round), parity)
	}
	b.WriteString("\n")

	for _, c := range pool {
		fmt.Fprintf(&b, "  #%-2d %s\n", c.Number, c.Type)
	}
	return strings.TrimRight(b.String(), "\n")
}
