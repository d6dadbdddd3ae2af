package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/lox/highcard/internal/display"
	"github.com/lox/highcard/internal/game"
	"github.com/lox/highcard/internal/history"
)

// ShowCmd prints a saved game.
type ShowCmd struct {
	File    string `arg:"" name:"file" type:"existingfile" help:"Path to a saved game_<id>.toml file"`
	NoColor bool   `help:"Disable colored output"`
}

func (cmd ShowCmd) Run() error {
	r, err := history.Load(cmd.File)
	if err != nil {
		return err
	}
	cmd.render(os.Stdout, r)
	return nil
}

func (cmd ShowCmd) render(w io.Writer, r *history.Record) {
	fmt.Fprintf(w, "Game %s\n", r.GameID)
	fmt.Fprintf(w, "Played: %s\n", r.StartedAt.Format("2006-01-02 15:04:05 MST"))
	if r.Seeded {
		fmt.Fprintf(w, "Seed: %d\n", r.Seed)
	}
	fmt.Fprintf(w, "Players: %s\n", strings.Join(r.Players, ", "))
	fmt.Fprintf(w, "Rounds: %d of %d\n", r.RoundsPlayed, r.Rounds)

	display.NewConsole(w, !cmd.NoColor).Summary(game.NewResultsLog(r.Results...), slices.Values(r.Ranking))
}
