package game

// Score counts p's tokens that have left the board.
func (b *Board) Score(p Player) int {
	checkPlayer(p)
	score := 0
	for _, pos := range b.positions[p] {
		if pos.Kind == End {
			score++
		}
	}
	return score
}

// TokensAtStart returns, in ascending order, p's tokens still waiting to enter.
func (b *Board) TokensAtStart(p Player) []int {
	checkPlayer(p)
	tokens := []int{}
	for i, pos := range b.positions[p] {
		if pos.Kind == Start {
			tokens = append(tokens, i)
		}
	}
	return tokens
}

// Winner returns the player who has borne off every token.
func (b *Board) Winner() (Player, bool) {
	for _, p := range []Player{Player0, Player1} {
		if b.Score(p) == NumTokens {
			return p, true
		}
	}
	return 0, false
}

func (b *Board) Finished() bool {
	_, ok := b.Winner()
	return ok
}
