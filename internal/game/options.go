package game

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/highcard/internal/deck"
	"github.com/lox/highcard/internal/randutil"
)

const (
	// DefaultMaxRounds is the round limit before the deck size is considered.
	DefaultMaxRounds = 5
	// DefaultPointsPerRound is awarded to the winner of an untied round.
	DefaultPointsPerRound = 100
)

// Option configures an Engine during creation.
type Option func(*engineConfig)

type engineConfig struct {
	rng       *rand.Rand
	seed      int64
	seeded    bool
	cards     []deck.Card // pre-ordered deck, not shuffled
	maxRounds int
	points    int
	gameID    string
	logger    *log.Logger
	clock     quartz.Clock
	bus       *SimpleEventBus
}

// WithSeed shuffles with a deterministic source derived from seed. The seed
// is recorded in the summary.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) {
		c.seed = seed
		c.seeded = true
		c.rng = randutil.New(seed)
	}
}

// WithDeck plays the given cards instead of a shuffled deck. The last card
// is drawn first. Rounds are still planned for a full deck, so a short deck
// runs out mid-game.
func WithDeck(cards []deck.Card) Option {
	return func(c *engineConfig) {
		c.cards = make([]deck.Card, len(cards))
		copy(c.cards, cards)
	}
}

// WithMaxRounds sets the round limit before the deck size is considered.
func WithMaxRounds(n int) Option {
	return func(c *engineConfig) {
		c.maxRounds = n
	}
}

// WithPointsPerRound sets the points awarded for winning a round.
func WithPointsPerRound(points int) Option {
	return func(c *engineConfig) {
		c.points = points
	}
}

// WithGameID overrides the generated game ID.
func WithGameID(id string) Option {
	return func(c *engineConfig) {
		c.gameID = id
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithClock sets the clock used for event and summary timestamps.
func WithClock(clock quartz.Clock) Option {
	return func(c *engineConfig) {
		c.clock = clock
	}
}

// WithSubscriber registers a subscriber for game events.
func WithSubscriber(s EventSubscriber) Option {
	return func(c *engineConfig) {
		c.bus.Subscribe(s)
	}
}

func defaultConfig() *engineConfig {
	return &engineConfig{
		maxRounds: DefaultMaxRounds,
		points:    DefaultPointsPerRound,
		logger:    log.New(io.Discard),
		clock:     quartz.NewReal(),
		bus:       NewEventBus(),
	}
}
