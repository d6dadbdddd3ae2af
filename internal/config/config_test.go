package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highcard.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
game {
  max_rounds       = 8
  points_per_round = 50
}

log {
  level = "debug"
  file  = "highcard.log"
}

history {
  dir = "games"
}
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8, cfg.Game.MaxRounds)
	assert.Equal(t, 50, cfg.Game.PointsPerRound)
	assert.Equal(t, 2, cfg.Game.MinPlayers)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
	assert.Equal(t, "highcard.log", cfg.Log.File)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.Equal(t, "games", cfg.History.Dir)
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`game {`), "broken.hcl")
	assert.Error(t, err)

	_, err = Parse([]byte(`game { colour = "red" }`), "unknown.hcl")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"one player", func(c *Config) { c.Game.MinPlayers = 1 }},
		{"max below min", func(c *Config) { c.Game.MaxPlayers = 1 }},
		{"more players than cards", func(c *Config) { c.Game.MaxPlayers = 60 }},
		{"no rounds", func(c *Config) { c.Game.MaxRounds = -1 }},
		{"no points", func(c *Config) { c.Game.PointsPerRound = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
