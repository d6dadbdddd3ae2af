// Package config loads optional HCL configuration for a game.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/highcard/internal/deck"
)

// Config represents the complete game configuration
type Config struct {
	Game    GameSettings
	Log     LogSettings
	History HistorySettings
}

// GameSettings controls the rules of a game
type GameSettings struct {
	MaxRounds      int `hcl:"max_rounds,optional"`
	PointsPerRound int `hcl:"points_per_round,optional"`
	MinPlayers     int `hcl:"min_players,optional"`
	MaxPlayers     int `hcl:"max_players,optional"`
}

// LogSettings controls diagnostic logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// HistorySettings controls saving finished games
type HistorySettings struct {
	Dir string `hcl:"dir,optional"`
}

// fileConfig mirrors the HCL layout; every block is optional.
type fileConfig struct {
	Game    *GameSettings    `hcl:"game,block"`
	Log     *LogSettings     `hcl:"log,block"`
	History *HistorySettings `hcl:"history,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			MaxRounds:      5,
			PointsPerRound: 100,
			MinPlayers:     2,
			MaxPlayers:     4,
		},
		Log: LogSettings{
			Level: "warn",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and applies defaults for missing values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := &Config{}
	if fc.Game != nil {
		cfg.Game = *fc.Game
	}
	if fc.Log != nil {
		cfg.Log = *fc.Log
	}
	if fc.History != nil {
		cfg.History = *fc.History
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Game.MaxRounds == 0 {
		c.Game.MaxRounds = def.Game.MaxRounds
	}
	if c.Game.PointsPerRound == 0 {
		c.Game.PointsPerRound = def.Game.PointsPerRound
	}
	if c.Game.MinPlayers == 0 {
		c.Game.MinPlayers = def.Game.MinPlayers
	}
	if c.Game.MaxPlayers == 0 {
		c.Game.MaxPlayers = def.Game.MaxPlayers
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.MinPlayers < 2 {
		return fmt.Errorf("min_players must be at least 2, got %d", c.Game.MinPlayers)
	}
	if c.Game.MaxPlayers < c.Game.MinPlayers {
		return fmt.Errorf("max_players (%d) must not be less than min_players (%d)", c.Game.MaxPlayers, c.Game.MinPlayers)
	}
	if c.Game.MaxPlayers > deck.Size {
		return fmt.Errorf("max_players must be at most %d, got %d", deck.Size, c.Game.MaxPlayers)
	}
	if c.Game.MaxRounds <= 0 {
		return fmt.Errorf("max_rounds must be positive, got %d", c.Game.MaxRounds)
	}
	if c.Game.PointsPerRound <= 0 {
		return fmt.Errorf("points_per_round must be positive, got %d", c.Game.PointsPerRound)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to warn.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
