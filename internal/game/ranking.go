package game

import "iter"

// PlayerScore is a player's final score.
type PlayerScore struct {
	Name  string `toml:"name"`
	Score int    `toml:"score"`
}

type rankNode struct {
	entry       PlayerScore
	left, right *rankNode
}

// RankingTree orders players by score in an unbalanced binary search tree.
// Lower scores go left; equal scores go right, so duplicates are kept. The
// relative order of equal scores depends on insertion order.
type RankingTree struct {
	root *rankNode
	size int
}

// Insert places a new leaf for the player.
func (t *RankingTree) Insert(name string, score int) {
	n := &rankNode{entry: PlayerScore{Name: name, Score: score}}
	t.size++
	if t.root == nil {
		t.root = n
		return
	}

	cur := t.root
	for {
		if score < cur.entry.Score {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// All yields entries in ascending score order. Each call starts a new walk.
func (t *RankingTree) All() iter.Seq[PlayerScore] {
	return func(yield func(PlayerScore) bool) {
		walk(t.root, yield)
	}
}

// Len returns the number of entries in the tree.
func (t *RankingTree) Len() int {
	return t.size
}

func walk(n *rankNode, yield func(PlayerScore) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.entry) && walk(n.right, yield)
}
