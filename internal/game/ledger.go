package game

import (
	"errors"

	"github.com/lox/highcard/internal/deck"
)

// ErrEmptyLedger is returned when dequeuing from a drained round ledger.
var ErrEmptyLedger = errors.New("round ledger is empty")

// Play is a card drawn by a player during a round.
type Play struct {
	Card   deck.Card
	Player int
}

// RoundLedger collects one round's plays in draw order.
type RoundLedger struct {
	plays []Play
	head  int
}

// Enqueue appends a play to the back of the ledger.
func (l *RoundLedger) Enqueue(card deck.Card, player int) {
	l.plays = append(l.plays, Play{Card: card, Player: player})
}

// Dequeue removes and returns the oldest play.
func (l *RoundLedger) Dequeue() (Play, error) {
	if l.IsEmpty() {
		return Play{}, ErrEmptyLedger
	}
	p := l.plays[l.head]
	l.head++
	if l.head == len(l.plays) {
		l.plays = l.plays[:0]
		l.head = 0
	}
	return p, nil
}

// IsEmpty reports whether every play has been dequeued.
func (l *RoundLedger) IsEmpty() bool {
	return l.head >= len(l.plays)
}

// Len returns the number of plays still queued.
func (l *RoundLedger) Len() int {
	return len(l.plays) - l.head
}
