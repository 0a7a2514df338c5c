package game

import "fmt"

const (
	NumPlayers = 2
	NumTokens  = 7 // Tokens per player
	Rows       = 3
	Cols       = 8
	MaxRoll    = 4 // Four binary dice
)

// Player identifies one of the two sides, 0 or 1.
type Player int

const (
	Player0 Player = iota
	Player1
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) Valid() bool {
	return p == Player0 || p == Player1
}

func (p Player) String() string {
	return fmt.Sprintf("Player%d", int(p))
}

type StateHash uint64
