package history

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/highcard/internal/deck"
	"github.com/lox/highcard/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playGame(t *testing.T, opts ...game.Option) *game.Summary {
	t.Helper()

	clock := quartz.NewMock(t)
	clock.Set(time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC))

	cards := deck.MustParseCards("2H JS 10D 10C KD 3C")
	slices.Reverse(cards)

	opts = append([]game.Option{
		game.WithDeck(cards),
		game.WithMaxRounds(3),
		game.WithGameID("test-game"),
		game.WithClock(clock),
	}, opts...)
	e, err := game.NewEngine([]string{"alice", "bob"}, opts...)
	require.NoError(t, err)

	s, err := e.Run(context.Background())
	require.NoError(t, err)
	return s
}

func TestSaveAndLoad(t *testing.T) {
	summary := playGame(t)
	dir := filepath.Join(t.TempDir(), "games")

	path, err := Save(dir, FromSummary(summary))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "game_test-game.toml"), path)

	r, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-game", r.GameID)
	assert.False(t, r.Seeded)
	assert.Equal(t, 3, r.Rounds)
	assert.Equal(t, 3, r.RoundsPlayed)
	assert.Equal(t, []string{"alice", "bob"}, r.Players)
	assert.Equal(t, []int{100, 100}, r.Scores)
	assert.Equal(t, []game.ResultRecord{
		{Round: 1, Winner: "bob", Score: 100},
		{Round: 3, Winner: "alice", Score: 100},
	}, r.Results)
	assert.Equal(t, 2, len(r.Ranking))
	assert.True(t, summary.StartedAt.Equal(r.StartedAt))
	assert.True(t, summary.FinishedAt.Equal(r.FinishedAt))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSaveRequiresGameID(t *testing.T) {
	_, err := Save(t.TempDir(), Record{})
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	dir := t.TempDir()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	rec := NewRecorder(dir, logger)

	summary := playGame(t, game.WithSubscriber(rec))
	require.NoError(t, rec.Err())
	assert.Equal(t, filepath.Join(dir, Filename(summary.GameID)), rec.Path())

	r, err := Load(rec.Path())
	require.NoError(t, err)
	assert.Equal(t, summary.Scores, r.Scores)
}

func TestRecordWithoutResults(t *testing.T) {
	cards := deck.MustParseCards("9H 9S")
	slices.Reverse(cards)
	e, err := game.NewEngine([]string{"a", "b"}, game.WithDeck(cards), game.WithMaxRounds(1))
	require.NoError(t, err)
	s, err := e.Run(context.Background())
	require.NoError(t, err)

	path, err := Save(t.TempDir(), FromSummary(s))
	require.NoError(t, err)

	r, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, r.Results)
	assert.Equal(t, []int{0, 0}, r.Scores)
}
