package game

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lox/highcard/internal/deck"
	"github.com/lox/highcard/internal/randutil"
)

// ErrNoPlayers is returned when an engine is created without players.
var ErrNoPlayers = errors.New("at least one player is required")

// Summary is the outcome of a finished game.
type Summary struct {
	GameID       string
	Seed         int64
	Seeded       bool // Seed reproduces the shuffle; false for scripted decks
	Players      []string
	Scores       []int
	Rounds       int // rounds planned
	RoundsPlayed int
	Results      *ResultsLog
	Ranking      *RankingTree
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Score returns the final score of the named player.
func (s *Summary) Score(name string) (int, bool) {
	i := slices.Index(s.Players, name)
	if i < 0 {
		return 0, false
	}
	return s.Scores[i], true
}

// MaxRounds returns the number of rounds a game can run: the limit, or fewer
// when the deck cannot give every player a card for that many rounds.
func MaxRounds(players, deckSize, limit int) int {
	if players <= 0 {
		return 0
	}
	return min(limit, deckSize/players)
}

// Engine runs a single game from a fresh deck to final ranking.
type Engine struct {
	players []string
	cfg     *engineConfig
}

// NewEngine creates an engine for the given players, seated in order.
func NewEngine(players []string, opts ...Option) (*Engine, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.maxRounds <= 0 {
		return nil, fmt.Errorf("max rounds must be positive, got %d", cfg.maxRounds)
	}
	if cfg.points <= 0 {
		return nil, fmt.Errorf("points per round must be positive, got %d", cfg.points)
	}
	if cfg.rng == nil && cfg.cards == nil {
		WithSeed(randutil.TimeSeed(cfg.clock))(cfg)
	}
	if cfg.gameID == "" {
		cfg.gameID = uuid.NewString()
	}

	return &Engine{
		players: slices.Clone(players),
		cfg:     cfg,
	}, nil
}

// GameID returns the identifier of the game.
func (e *Engine) GameID() string {
	return e.cfg.gameID
}

// Run plays every round and builds the final ranking. The context is checked
// between rounds.
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	logger := e.cfg.logger.With("game", e.cfg.gameID)
	n := len(e.players)

	summary := &Summary{
		GameID:    e.cfg.gameID,
		Seed:      e.cfg.seed,
		Seeded:    e.cfg.seeded && e.cfg.cards == nil,
		Players:   slices.Clone(e.players),
		Scores:    make([]int, n),
		Results:   &ResultsLog{},
		Ranking:   &RankingTree{},
		StartedAt: e.cfg.clock.Now(),
	}

	cards := e.cfg.cards
	if cards == nil {
		cards = deck.Build()
		deck.Shuffle(cards, e.cfg.rng)
	}
	pile := deck.NewDrawPile(cards)
	rotator := NewTurnRotator(n)
	summary.Rounds = MaxRounds(n, deck.Size, e.cfg.maxRounds)

	logger.Debug("Starting game", "players", n, "rounds", summary.Rounds, "seed", e.cfg.seed)
	e.publish(GameStartEvent{GameID: e.cfg.gameID, Players: slices.Clone(e.players), Rounds: summary.Rounds, At: summary.StartedAt})

	for round := 1; round <= summary.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("game interrupted before round %d: %w", round, err)
		}

		res, err := e.playRound(round, pile, rotator)
		if err != nil {
			return nil, err
		}
		if res.Empty() {
			logger.Debug("No cards played, stopping", "round", round)
			e.publish(RoundEndEvent{Round: round, Resolution: res, At: e.cfg.clock.Now()})
			break
		}
		summary.RoundsPlayed++

		ev := RoundEndEvent{Round: round, Resolution: res, At: e.cfg.clock.Now()}
		if winner, ok := res.Winner(); ok {
			summary.Scores[winner] += e.cfg.points
			summary.Results.Append(round, e.players[winner], summary.Scores[winner])
			ev.Winner = e.players[winner]
			ev.Points = e.cfg.points
			ev.Score = summary.Scores[winner]
			logger.Debug("Round won", "round", round, "winner", ev.Winner, "score", ev.Score)
		} else {
			logger.Debug("Round tied", "round", round, "value", res.BestValue)
		}
		e.publish(ev)
	}

	for i, name := range e.players {
		summary.Ranking.Insert(name, summary.Scores[i])
	}
	summary.FinishedAt = e.cfg.clock.Now()

	logger.Debug("Game finished", "rounds_played", summary.RoundsPlayed, "discarded", pile.Len())
	e.publish(GameEndEvent{Summary: summary, At: summary.FinishedAt})
	return summary, nil
}

// playRound runs the draw phase and resolves the round. The rotator advances
// before the pile is checked, so a short final round still keeps seat order.
func (e *Engine) playRound(round int, pile *deck.DrawPile, rotator *TurnRotator) (Resolution, error) {
	e.publish(RoundStartEvent{Round: round, At: e.cfg.clock.Now()})

	ledger := &RoundLedger{}
	for range len(e.players) {
		player := rotator.Next()
		if pile.IsEmpty() {
			e.publish(PileEmptyEvent{Round: round, At: e.cfg.clock.Now()})
			break
		}

		card, err := pile.Pop()
		if err != nil {
			return Resolution{}, fmt.Errorf("round %d: %w", round, err)
		}
		ledger.Enqueue(card, player)
		e.publish(CardDrawnEvent{Round: round, Player: player, Name: e.players[player], Card: card, At: e.cfg.clock.Now()})
	}

	return Resolve(ledger)
}

func (e *Engine) publish(event GameEvent) {
	e.cfg.bus.Publish(event)
}
