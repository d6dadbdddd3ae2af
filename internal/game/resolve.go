package game

import "fmt"

// Resolution is the outcome of a round.
//
// BestPlayer holds the first player to reach BestValue even when the round
// is tied; use Winner to decide whether points are awarded.
type Resolution struct {
	BestValue  int
	BestPlayer int
	Tie        bool
	Plays      []Play
}

// Winner returns the round winner. It returns false for a tie or when no
// cards were played.
func (r Resolution) Winner() (int, bool) {
	if r.BestPlayer < 0 || r.Tie {
		return -1, false
	}
	return r.BestPlayer, true
}

// Empty reports whether no cards were played in the round.
func (r Resolution) Empty() bool {
	return r.BestPlayer < 0
}

// Resolve drains the ledger in draw order and determines the best card.
// A strictly higher rank takes the lead and clears any tie; an equal rank
// marks a tie without changing the leader.
func Resolve(ledger *RoundLedger) (Resolution, error) {
	res := Resolution{BestValue: -1, BestPlayer: -1}
	for !ledger.IsEmpty() {
		play, err := ledger.Dequeue()
		if err != nil {
			return res, fmt.Errorf("resolving round: %w", err)
		}
		res.Plays = append(res.Plays, play)

		value := play.Card.Value()
		switch {
		case value > res.BestValue:
			res.BestValue = value
			res.BestPlayer = play.Player
			res.Tie = false
		case value == res.BestValue:
			res.Tie = true
		}
	}
	return res, nil
}
