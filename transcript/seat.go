package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"royalur/game"
	"royalur/player"
)

// Announce writes every choice of agent to w as a token line, or RETIRE.
func Announce(agent player.Agent, w io.Writer) player.Agent {
	out := bufio.NewWriter(w)
	return player.AgentFunc(func(b *game.Board, p game.Player, roll int, valid []int) (int, error) {
		token, err := agent.ChooseToken(b, p, roll, valid)
		switch {
		case errors.Is(err, player.ErrRetire):
			fmt.Fprintln(out, Retire)
		case err != nil:
			return token, err
		default:
			fmt.Fprintln(out, token)
		}
		if flushErr := out.Flush(); flushErr != nil {
			return token, flushErr
		}
		return token, err
	})
}

// Seat lines up the agents of a stream addressed to one player: agent plays
// the seat and announces its tokens on w, the opponent's tokens are read
// from the stream.
func (r *Reader) Seat(seat game.Player, agent player.Agent, w io.Writer) [game.NumPlayers]player.Agent {
	var agents [game.NumPlayers]player.Agent
	agents[seat] = Announce(agent, w)
	agents[seat.Opponent()] = r
	return agents
}
