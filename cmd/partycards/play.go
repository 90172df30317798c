package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/partycards/internal/config"
	"github.com/lox/partycards/internal/randutil"
	"github.com/lox/partycards/internal/tui"
)

// PlayCmd runs the interactive table
type PlayCmd struct {
	Players int    `kong:"help='Number of players (skips the settings screen)'"`
	Cards   int    `kong:"help='Number of cards in the pool'"`
	Mode    string `kong:"help='Pool generation mode: parity or shuffle'"`
	Seed    int64  `kong:"help='RNG seed (0 for random)'"`
	LogFile string `kong:"help='Debug log file'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
	NoColor bool   `kong:"help='Disable colours'"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	gameCfg, err := cfg.GameConfig()
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	logger, closer, err := openLogFile(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close debug file", "error", err)
		}
	}()

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := randutil.Seed(cfg.Game.Seed)
	logger.Info("Starting partycards", "version", version, "seed", seed,
		"players", gameCfg.Players, "cards", gameCfg.Cards, "mode", gameCfg.Mode)

	model, err := tui.NewModel(logger, tui.Options{
		Players:   gameCfg.Players,
		Cards:     gameCfg.Cards,
		Mode:      gameCfg.Mode,
		RNG:       randutil.New(seed),
		SkipSetup: c.Players > 0,
	})
	if err != nil {
		return err
	}

	if err := tui.Run(model); err != nil {
		logger.Error("TUI exited with error", "error", err)
		return fmt.Errorf("game ended with an error: %w", err)
	}
	logger.Info("Goodbye")
	return nil
}

// applyOverrides lays command line flags over the file configuration
func (c *PlayCmd) applyOverrides(cfg *config.Config) {
	if c.Players > 0 {
		cfg.Game.Players = c.Players
		if c.Cards == 0 {
			cfg.Game.Cards = max(cfg.Game.Cards, c.Players)
		}
	}
	if c.Cards > 0 {
		cfg.Game.Cards = c.Cards
	}
	if c.Mode != "" {
		cfg.Game.Mode = c.Mode
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}
}
