package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/highcard/internal/config"
	"github.com/lox/highcard/internal/display"
	"github.com/lox/highcard/internal/game"
	"github.com/lox/highcard/internal/history"
	"github.com/lox/highcard/internal/prompt"
	"github.com/lox/highcard/internal/randutil"
)

// PlayCmd plays a single game on the console
type PlayCmd struct {
	Config     string   `kong:"short='c',type='path',help='Path to HCL config file (optional)'"`
	Seed       *int64   `kong:"help='Deterministic shuffle seed (optional)'"`
	Players    int      `kong:"short='p',help='Number of players (prompted when omitted)'"`
	Name       []string `kong:"short='n',sep='none',help='Player name, repeat once per player (prompted when omitted)'"`
	HistoryDir string   `kong:"help='Directory to save the finished game in'"`
	NoColor    bool     `kong:"help='Disable colored output'"`
	Debug      bool     `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.LogLevel()
	if c.Debug {
		level = log.DebugLevel
	}
	logger, closeLog, err := setupLogger(level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	err = c.play(ctx, os.Stdin, os.Stdout, cfg, logger, quartz.NewReal())
	if errors.Is(err, prompt.ErrInvalidPlayerCount) {
		closeLog()
		log.Fatal("Invalid number of players.", "error", err)
	}
	return err
}

func (c *PlayCmd) play(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, logger *log.Logger, clock quartz.Clock) error {
	console := display.NewConsole(out, !c.NoColor)
	console.Banner()

	players, err := c.players(prompt.New(in, out), cfg, logger)
	if err != nil {
		return err
	}

	seed := randutil.TimeSeed(clock)
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Debug("Using seed", "seed", seed, "deterministic", c.Seed != nil)

	opts := []game.Option{
		game.WithSeed(seed),
		game.WithMaxRounds(cfg.Game.MaxRounds),
		game.WithPointsPerRound(cfg.Game.PointsPerRound),
		game.WithLogger(logger),
		game.WithClock(clock),
		game.WithSubscriber(console),
	}

	dir := c.HistoryDir
	if dir == "" {
		dir = cfg.History.Dir
	}
	var recorder *history.Recorder
	if dir != "" {
		recorder = history.NewRecorder(dir, logger)
		opts = append(opts, game.WithSubscriber(recorder))
	}

	e, err := game.NewEngine(players, opts...)
	if err != nil {
		return err
	}
	if _, err := e.Run(ctx); err != nil {
		return err
	}

	if recorder != nil && recorder.Err() != nil {
		return recorder.Err()
	}
	return nil
}

// players collects player names from flags, prompting for whatever is missing.
func (c *PlayCmd) players(p *prompt.Prompter, cfg *config.Config, logger *log.Logger) ([]string, error) {
	lo, hi := cfg.Game.MinPlayers, cfg.Game.MaxPlayers

	n := c.Players
	if n == 0 {
		n = len(c.Name)
	}
	if n == 0 {
		var err error
		if n, err = p.PlayerCount(lo, hi); err != nil {
			return nil, err
		}
	} else if n < lo || n > hi {
		return nil, fmt.Errorf("%w: %d is outside %d–%d", prompt.ErrInvalidPlayerCount, n, lo, hi)
	}
	if len(c.Name) > n {
		return nil, fmt.Errorf("got %d names for %d players", len(c.Name), n)
	}

	names := make([]string, n)
	for i := range names {
		if i < len(c.Name) {
			name := strings.TrimSpace(c.Name[i])
			if name == "" {
				name = prompt.GenerateName()
				logger.Warn("Empty player name, using a generated one", "player", i+1, "name", name)
			}
			names[i] = prompt.Truncate(name)
			continue
		}
		name, err := p.PlayerName(i)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}
