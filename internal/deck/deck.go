package deck

import (
	"errors"
	"math/rand/v2"
)

// Size is the number of cards in a standard deck.
const Size = 52

// ErrEmptyPile is returned when drawing from a pile with no cards left.
var ErrEmptyPile = errors.New("draw pile is empty")

// Build returns all 52 cards in generation order: suit-major, rank-minor.
func Build() []Card {
	cards := make([]Card, 0, Size)
	for suit := Hearts; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle randomizes cards in place using Fisher-Yates
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// DrawPile is a LIFO stack of undealt cards.
type DrawPile struct {
	cards []Card
}

// NewDrawPile pushes cards in slice order, so the last card ends up on top.
func NewDrawPile(cards []Card) *DrawPile {
	p := &DrawPile{cards: make([]Card, 0, len(cards))}
	for _, c := range cards {
		p.Push(c)
	}
	return p
}

// Push places a card on top of the pile
func (p *DrawPile) Push(c Card) {
	p.cards = append(p.cards, c)
}

// Pop removes and returns the top card from the pile
func (p *DrawPile) Pop() (Card, error) {
	if len(p.cards) == 0 {
		return Card{}, ErrEmptyPile
	}
	top := len(p.cards) - 1
	c := p.cards[top]
	p.cards = p.cards[:top]
	return c, nil
}

// Peek returns the top card without removing it from the pile
func (p *DrawPile) Peek() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// IsEmpty returns true if the pile has no cards left
func (p *DrawPile) IsEmpty() bool {
	return len(p.cards) == 0
}

// Len returns the number of cards left in the pile
func (p *DrawPile) Len() int {
	return len(p.cards)
}
