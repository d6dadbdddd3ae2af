package game

import (
	"fmt"
	"io"
	"slices"
)

// ResultRecord records the winner of a single round.
type ResultRecord struct {
	Round  int    `toml:"round"`
	Winner string `toml:"winner"`
	Score  int    `toml:"score"` // winner's cumulative score after the round
}

// String formats the record as a results line.
func (r ResultRecord) String() string {
	return fmt.Sprintf("Round %d: Winner = %s (score after round: %d)", r.Round, r.Winner, r.Score)
}

// ResultsLog is an append-only, chronological log of round winners.
// Tied rounds are never logged.
type ResultsLog struct {
	records []ResultRecord
}

// NewResultsLog returns a log holding records, for example ones read back
// from a saved game.
func NewResultsLog(records ...ResultRecord) *ResultsLog {
	return &ResultsLog{records: slices.Clone(records)}
}

// Append adds a record at the tail of the log.
func (l *ResultsLog) Append(round int, winner string, score int) {
	l.records = append(l.records, ResultRecord{Round: round, Winner: winner, Score: score})
}

// Records returns a copy of the log in chronological order.
func (l *ResultsLog) Records() []ResultRecord {
	out := make([]ResultRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *ResultsLog) Len() int {
	return len(l.records)
}

// Render writes every record, or a "no rounds played" line when empty.
func (l *ResultsLog) Render(w io.Writer) error {
	if len(l.records) == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}
	for _, r := range l.records {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return err
		}
	}
	return nil
}
