// Package game implements a round-based game of high card.
//
// Each round every player draws one card from a shared draw pile in a fixed
// seat order. The highest rank wins the round and scores points; a tie for
// the highest rank voids the round. Aces are low.
//
// # Basic Usage
//
//	e, err := game.NewEngine([]string{"Alice", "Bob", "Charlie"})
//	if err != nil {
//	    return err
//	}
//	summary, err := e.Run(ctx)
//
// # Deterministic Testing
//
// Use WithSeed for a reproducible shuffle, or WithDeck to script the exact
// draw order:
//
//	e, _ := game.NewEngine(players, game.WithSeed(42))
//	e, _ := game.NewEngine(players, game.WithDeck(cards))
//
// # Architecture
//
// Engine delegates to small single-purpose structures:
//   - deck.DrawPile: LIFO of undealt cards
//   - TurnRotator: round-robin seat order
//   - RoundLedger: FIFO of one round's plays, drained by Resolve
//   - ResultsLog: chronological record of round winners
//   - RankingTree: final scores ordered by an unbalanced BST
//
// Progress is reported through an EventBus so the console transcript and
// any other subscriber stay out of the game loop.
package game
