package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/partycards/internal/game"
)

// Config represents the complete configuration file
type Config struct {
	Game GameSettings `hcl:"game,block"`
	Log  LogSettings  `hcl:"log,block"`
}

// GameSettings are the values the settings screen starts from
type GameSettings struct {
	Players int    `hcl:"players,optional"`
	Cards   int    `hcl:"cards,optional"`
	Mode    string `hcl:"mode,optional"`
	Seed    int64  `hcl:"seed,optional"`
}

// LogSettings controls the debug log file
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration. The table starts at two
// players and two cards, like the settings screen.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Players: game.MinPlayers,
			Cards:   game.MinPlayers,
			Mode:    game.ModeParity.String(),
		},
		Log: LogSettings{
			Level: "info",
			File:  "partycards.log",
		},
	}
}

// Load reads an HCL configuration file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Both blocks are optional in the file
	var raw struct {
		Game *GameSettings `hcl:"game,block"`
		Log  *LogSettings  `hcl:"log,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Game != nil {
		cfg.Game = *raw.Game
	}
	if raw.Log != nil {
		cfg.Log = *raw.Log
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Game.Players == 0 {
		c.Game.Players = def.Game.Players
	}
	if c.Game.Cards == 0 {
		// Never fewer cards than players
		c.Game.Cards = max(def.Game.Cards, c.Game.Players)
	}
	if c.Game.Mode == "" {
		c.Game.Mode = def.Game.Mode
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
}

// GameConfig converts the settings into a game.Config
func (c *Config) GameConfig() (game.Config, error) {
	mode, err := game.ParseGenerationMode(c.Game.Mode)
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		Players: c.Game.Players,
		Cards:   c.Game.Cards,
		Mode:    mode,
	}, nil
}

// Validate validates the configuration. Table errors wrap
// game.ErrInvalidConfiguration.
func (c *Config) Validate() error {
	gc, err := c.GameConfig()
	if err != nil {
		return err
	}
	if err := gc.Validate(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
