package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play a game of high card (default)"`
	Show    ShowCmd          `cmd:"" help:"Show a saved game"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("highcard"),
		kong.Description("A card game for 2-4 players: highest card each round scores."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
