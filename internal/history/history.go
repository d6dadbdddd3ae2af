// Package history saves finished games as TOML records.
package history

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/lox/highcard/internal/game"
)

// Record is the saved form of a finished game.
type Record struct {
	GameID       string              `toml:"game_id"`
	Seed         int64               `toml:"seed"`
	Seeded       bool                `toml:"seeded"`
	StartedAt    time.Time           `toml:"started_at"`
	FinishedAt   time.Time           `toml:"finished_at"`
	Rounds       int                 `toml:"rounds"`
	RoundsPlayed int                 `toml:"rounds_played"`
	Players      []string            `toml:"players"`
	Scores       []int               `toml:"scores"`
	Results      []game.ResultRecord `toml:"results,omitempty"`
	Ranking      []game.PlayerScore  `toml:"ranking,omitempty"`
}

// FromSummary converts a game summary into a record.
func FromSummary(s *game.Summary) Record {
	return Record{
		GameID:       s.GameID,
		Seed:         s.Seed,
		Seeded:       s.Seeded,
		StartedAt:    s.StartedAt,
		FinishedAt:   s.FinishedAt,
		Rounds:       s.Rounds,
		RoundsPlayed: s.RoundsPlayed,
		Players:      slices.Clone(s.Players),
		Scores:       slices.Clone(s.Scores),
		Results:      s.Results.Records(),
		Ranking:      slices.Collect(s.Ranking.All()),
	}
}

// Filename returns the file name used for a game.
func Filename(gameID string) string {
	return fmt.Sprintf("game_%s.toml", gameID)
}

// Save writes the record into dir and returns the file path.
func Save(dir string, r Record) (string, error) {
	if r.GameID == "" {
		return "", fmt.Errorf("history: record has no game ID")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = "\t"
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("failed to encode game %s: %w", r.GameID, err)
	}

	path := filepath.Join(dir, Filename(r.GameID))
	if err := writeFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads a record from path.
func Load(path string) (*Record, error) {
	var r Record
	if _, err := toml.DecodeFile(path, &r); err != nil {
		return nil, fmt.Errorf("failed to read game history %s: %w", path, err)
	}
	return &r, nil
}

// Recorder saves the game when it ends. It implements game.EventSubscriber.
type Recorder struct {
	dir    string
	logger *log.Logger
	path   string
	err    error
}

// NewRecorder creates a recorder saving into dir.
func NewRecorder(dir string, logger *log.Logger) *Recorder {
	return &Recorder{dir: dir, logger: logger}
}

// OnEvent saves the summary carried by a GameEndEvent.
func (r *Recorder) OnEvent(event game.GameEvent) {
	ev, ok := event.(game.GameEndEvent)
	if !ok {
		return
	}

	r.path, r.err = Save(r.dir, FromSummary(ev.Summary))
	if r.err != nil {
		r.logger.Error("Failed to save game history", "error", r.err)
		return
	}
	r.logger.Info("Saved game history", "path", r.path)
}

// Path returns the path of the saved game, if any.
func (r *Recorder) Path() string { return r.path }

// Err returns the error from saving, if any.
func (r *Recorder) Err() error { return r.err }
