package game

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/lox/highcard/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnRotator(t *testing.T) {
	for n := 2; n <= 4; n++ {
		r := NewTurnRotator(n)
		require.Equal(t, n, r.Len())

		first := make([]int, n)
		for i := range first {
			first[i] = r.Next()
		}
		sorted := slices.Sorted(slices.Values(first))
		for i := range n {
			assert.Equal(t, i, sorted[i], "n=%d", n)
		}

		// period is exactly n
		for cycle := 0; cycle < 5; cycle++ {
			for i := range n {
				assert.Equal(t, first[i], r.Next(), "n=%d cycle=%d", n, cycle)
			}
		}
	}
}

func TestTurnRotatorAppendAndEmpty(t *testing.T) {
	r := NewTurnRotator(0)
	assert.Equal(t, -1, r.Next())

	r.Append(2)
	r.Append(0)
	assert.Equal(t, []int{2, 0, 2, 0}, []int{r.Next(), r.Next(), r.Next(), r.Next()})
}

func TestRoundLedgerFIFO(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		var l RoundLedger
		cards := deck.Build()[:n]
		for i, c := range cards {
			l.Enqueue(c, i%4)
		}
		require.Equal(t, n, l.Len())

		for i, c := range cards {
			p, err := l.Dequeue()
			require.NoError(t, err)
			assert.Equal(t, Play{Card: c, Player: i % 4}, p)
		}
		assert.True(t, l.IsEmpty())

		_, err := l.Dequeue()
		assert.True(t, errors.Is(err, ErrEmptyLedger))
	}
}

func TestRoundLedgerReuseAfterDrain(t *testing.T) {
	var l RoundLedger
	l.Enqueue(deck.NewCard(deck.Two, deck.Hearts), 0)
	_, err := l.Dequeue()
	require.NoError(t, err)

	l.Enqueue(deck.NewCard(deck.Three, deck.Hearts), 1)
	p, err := l.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, p.Player)
	assert.Equal(t, 0, l.Len())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		plays      []Play
		bestValue  int
		bestPlayer int
		tie        bool
		winner     int
		won        bool
	}{
		{
			name:       "tie at the top is not overridden by a lower card",
			plays:      plays("10H:0 10D:1 3C:2"),
			bestValue:  10,
			bestPlayer: 0,
			tie:        true,
			winner:     -1,
		},
		{
			name:       "equal card does not take the lead",
			plays:      plays("5H:0 9D:1 9C:2"),
			bestValue:  9,
			bestPlayer: 1,
			tie:        true,
			winner:     -1,
		},
		{
			name:       "single highest card wins",
			plays:      plays("2H:0 JD:1 4C:2"),
			bestValue:  11,
			bestPlayer: 1,
			winner:     1,
			won:        true,
		},
		{
			name:       "early tie cleared by a higher card",
			plays:      plays("7H:0 7D:1 KC:2"),
			bestValue:  13,
			bestPlayer: 2,
			winner:     2,
			won:        true,
		},
		{
			name:       "aces are low",
			plays:      plays("AH:0 2D:1"),
			bestValue:  2,
			bestPlayer: 1,
			winner:     1,
			won:        true,
		},
		{
			name:       "single card",
			plays:      plays("3S:1"),
			bestValue:  3,
			bestPlayer: 1,
			winner:     1,
			won:        true,
		},
		{
			name:       "no cards",
			bestValue:  -1,
			bestPlayer: -1,
			winner:     -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l RoundLedger
			for _, p := range tt.plays {
				l.Enqueue(p.Card, p.Player)
			}

			res, err := Resolve(&l)
			require.NoError(t, err)
			assert.True(t, l.IsEmpty())
			assert.Equal(t, tt.bestValue, res.BestValue)
			assert.Equal(t, tt.bestPlayer, res.BestPlayer)
			assert.Equal(t, tt.tie, res.Tie)
			assert.Equal(t, len(tt.plays), len(res.Plays))

			winner, ok := res.Winner()
			assert.Equal(t, tt.won, ok)
			assert.Equal(t, tt.winner, winner)
		})
	}
}

func TestResultsLog(t *testing.T) {
	var l ResultsLog
	var buf strings.Builder
	require.NoError(t, l.Render(&buf))
	assert.Equal(t, "No rounds played.\n", buf.String())

	l.Append(1, "alice", 100)
	l.Append(3, "bob", 100)
	l.Append(4, "alice", 200)
	require.Equal(t, 3, l.Len())

	buf.Reset()
	require.NoError(t, l.Render(&buf))
	assert.Equal(t, strings.Join([]string{
		"Round 1: Winner = alice (score after round: 100)",
		"Round 3: Winner = bob (score after round: 100)",
		"Round 4: Winner = alice (score after round: 200)",
		"",
	}, "\n"), buf.String())

	// Records is a copy
	records := l.Records()
	records[0].Winner = "mallory"
	assert.Equal(t, "alice", l.Records()[0].Winner)
}

func TestNewResultsLog(t *testing.T) {
	records := []ResultRecord{{Round: 2, Winner: "bob", Score: 100}}
	l := NewResultsLog(records...)
	records[0].Winner = "mallory"

	var buf strings.Builder
	require.NoError(t, l.Render(&buf))
	assert.Equal(t, "Round 2: Winner = bob (score after round: 100)\n", buf.String())
	assert.Equal(t, 0, NewResultsLog().Len())
}

func TestRankingTree(t *testing.T) {
	orders := [][]int{
		{300, 100, 200},
		{100, 200, 300},
		{300, 200, 100},
		{200, 300, 100},
	}
	for _, scores := range orders {
		var tree RankingTree
		for i, s := range scores {
			tree.Insert(string(rune('a'+i)), s)
		}
		assert.Equal(t, []int{100, 200, 300}, treeScores(&tree), "inserted %v", scores)
		assert.Equal(t, 3, tree.Len())
	}
}

func TestRankingTreeDuplicates(t *testing.T) {
	var tree RankingTree
	tree.Insert("a", 100)
	tree.Insert("b", 0)
	tree.Insert("c", 100)
	tree.Insert("d", 100)

	// Order among equal scores is unspecified; only check ascending scores
	// and that every entry is present.
	assert.Equal(t, []int{0, 100, 100, 100}, treeScores(&tree))

	var names []string
	for e := range tree.All() {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, names)
}

func TestRankingTreeRestartableWalk(t *testing.T) {
	var tree RankingTree
	for i, s := range []int{50, 20, 80, 10} {
		tree.Insert(string(rune('a'+i)), s)
	}

	var partial []int
	for e := range tree.All() {
		partial = append(partial, e.Score)
		if len(partial) == 2 {
			break
		}
	}
	assert.Equal(t, []int{10, 20}, partial)
	assert.Equal(t, []int{10, 20, 50, 80}, treeScores(&tree))

	var empty RankingTree
	assert.Empty(t, treeScores(&empty))
}

func treeScores(tree *RankingTree) []int {
	var out []int
	for e := range tree.All() {
		out = append(out, e.Score)
	}
	return out
}

// plays parses "10H:0 JD:1" into plays.
func plays(s string) []Play {
	var out []Play
	for _, field := range strings.Fields(s) {
		card, player, _ := strings.Cut(field, ":")
		c, err := deck.ParseCard(card)
		if err != nil {
			panic(err)
		}
		out = append(out, Play{Card: c, Player: int(player[0] - '0')})
	}
	return out
}
