package player

import (
	"errors"
	"royalur/game"
)

// ErrRetire is returned by an agent that forfeits the game.
var ErrRetire = errors.New("player retired")

// Agent picks which token to move. valid is never empty and b is a copy the
// agent may freely inspect.
type Agent interface {
	ChooseToken(b *game.Board, p game.Player, roll int, valid []int) (int, error)
}

// AgentFunc adapts an ordinary function to Agent.
type AgentFunc func(b *game.Board, p game.Player, roll int, valid []int) (int, error)

func (f AgentFunc) ChooseToken(b *game.Board, p game.Player, roll int, valid []int) (int, error) {
	return f(b, p, roll, valid)
}
