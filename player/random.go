package player

import (
	"royalur/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal tokens. It is not safe for
// concurrent use; give every game its own.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseToken(_ *game.Board, _ game.Player, _ int, valid []int) (int, error) {
	return valid[r.rng.Intn(len(valid))], nil
}
