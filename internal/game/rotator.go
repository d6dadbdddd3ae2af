package game

// TurnRotator hands out player indices in a fixed round-robin order.
// Draw outcomes never change the order.
type TurnRotator struct {
	order  []int
	cursor int
}

// NewTurnRotator creates a rotator over player indices 0..n-1.
func NewTurnRotator(n int) *TurnRotator {
	r := &TurnRotator{order: make([]int, 0, n)}
	for i := range n {
		r.Append(i)
	}
	return r
}

// Append adds a player index to the end of the rotation.
func (r *TurnRotator) Append(player int) {
	r.order = append(r.order, player)
}

// Next returns the current player and advances, wrapping after the last.
// It returns -1 when the rotation is empty.
func (r *TurnRotator) Next() int {
	if len(r.order) == 0 {
		return -1
	}
	player := r.order[r.cursor]
	r.cursor = (r.cursor + 1) % len(r.order)
	return player
}

// Len returns the number of players in the rotation.
func (r *TurnRotator) Len() int {
	return len(r.order)
}
