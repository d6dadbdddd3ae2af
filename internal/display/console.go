// Package display renders the game transcript to a terminal.
package display

import (
	"fmt"
	"io"
	"iter"

	"github.com/lox/highcard/internal/deck"
	"github.com/lox/highcard/internal/game"
)

// Console writes the game transcript as events arrive. It implements
// game.EventSubscriber.
type Console struct {
	w      io.Writer
	styles *Styles
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, styles: NewStyles(w, color)}
}

// Banner prints the program title.
func (c *Console) Banner() {
	fmt.Fprintln(c.w, c.styles.Title.Render("=== Card Game with Data Structures ==="))
	fmt.Fprintln(c.w)
}

// OnEvent renders a single game event.
func (c *Console) OnEvent(event game.GameEvent) {
	switch ev := event.(type) {
	case game.GameStartEvent:
		fmt.Fprintf(c.w, "\nStarting game with %d players and %d rounds.\n", len(ev.Players), ev.Rounds)
	case game.RoundStartEvent:
		fmt.Fprintf(c.w, "\n%s\n", c.styles.Round.Render(fmt.Sprintf("--- Round %d ---", ev.Round)))
	case game.CardDrawnEvent:
		fmt.Fprintf(c.w, "%s draws: %s\n", c.styles.Player.Render(ev.Name), c.card(ev.Card))
	case game.PileEmptyEvent:
		fmt.Fprintln(c.w, c.styles.Warning.Render("Deck is empty. Stopping game."))
	case game.RoundEndEvent:
		c.roundEnd(ev)
	case game.GameEndEvent:
		c.Summary(ev.Summary.Results, ev.Summary.Ranking.All())
	}
}

func (c *Console) roundEnd(ev game.RoundEndEvent) {
	if ev.Resolution.Empty() {
		fmt.Fprintln(c.w, c.styles.Warning.Render("No cards played this round."))
		return
	}
	if _, ok := ev.Resolution.Winner(); !ok {
		fmt.Fprintln(c.w, c.styles.Tie.Render(fmt.Sprintf("Round %d result: Tie. No points awarded.", ev.Round)))
		return
	}
	fmt.Fprintf(c.w, "Round %d winner: %s (+%d points)\n",
		ev.Round, c.styles.Winner.Render(ev.Winner), ev.Points)
}

// Summary prints the round results followed by the final ranking.
func (c *Console) Summary(results *game.ResultsLog, ranking iter.Seq[game.PlayerScore]) {
	if results.Len() > 0 {
		fmt.Fprintf(c.w, "\n%s\n", c.styles.Header.Render("=== Round Results ==="))
	}
	_ = results.Render(c.w)

	fmt.Fprintf(c.w, "\n%s\n", c.styles.Header.Render("=== Final ranking (by score, BST in-order) ==="))
	for entry := range ranking {
		fmt.Fprintf(c.w, "Player: %s | Score: %d\n", entry.Name, entry.Score)
	}

	fmt.Fprintf(c.w, "\n%s\n", c.styles.Info.Render("Game over."))
}

func (c *Console) card(card deck.Card) string {
	if card.IsRed() {
		return c.styles.CardRed.Render(card.String())
	}
	return c.styles.CardBlack.Render(card.String())
}
