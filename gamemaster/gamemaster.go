package gamemaster

import (
	"errors"
	"fmt"
	"royalur/game"
	"royalur/meta"
	"royalur/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoRolls     = errors.New("no rolls left")
)

// Result summarizes a finished (or abandoned) game.
type Result struct {
	Starting game.Player
	Winner   game.Player
	Decided  bool // False when the turn limit ran out first
	Retired  bool // The loser forfeited
	Turns    int
	Scores   [game.NumPlayers]int
}

type Option func(gm *GameMaster)

func WithMaxTurns(turns int) Option {
	return func(gm *GameMaster) {
		if turns > 0 {
			gm.maxTurns = turns
		}
	}
}

func WithStartingPlayer(p game.Player) Option {
	return func(gm *GameMaster) {
		if p.Valid() {
			gm.starting = p
		}
	}
}

func WithObserver(o Observer) Option {
	return func(gm *GameMaster) {
		if o != nil {
			gm.observers = append(gm.observers, o)
		}
	}
}

// GameMaster runs the turn order of one game: it asks the dice for a roll,
// skips a player without legal moves, asks the player's agent for a token and
// grants another turn after a rosette.
type GameMaster struct {
	board     *game.Board
	dice      Dice
	agents    [game.NumPlayers]player.Agent
	maxTurns  int
	starting  game.Player
	observers []Observer
}

func New(board *game.Board, dice Dice, agents [game.NumPlayers]player.Agent, options ...Option) *GameMaster {
	if board == nil || dice == nil {
		panic("game master needs a board and dice")
	}
	for i, agent := range agents {
		if agent == nil {
			panic(fmt.Sprintf("no agent for player %d", i))
		}
	}

	gm := &GameMaster{
		board:    board,
		dice:     dice,
		agents:   agents,
		maxTurns: meta.MAX_TURNS,
		starting: game.Player0,
	}
	for _, option := range options {
		option(gm)
	}
	return gm
}

// Board returns the live board. Callers must not move tokens on it.
func (gm *GameMaster) Board() *game.Board {
	return gm.board
}

// Run plays until a player wins, a player retires or the turn limit is hit.
// The returned result reflects the board even when an error stops the game.
func (gm *GameMaster) Run() (Result, error) {
	names := gm.board.Names()
	log.Info().Msgf("%s vs %s, %s starts", names[0], names[1], names[gm.starting])

	result := Result{Starting: gm.starting}
	turn := gm.starting
	for !gm.board.Finished() && result.Turns < gm.maxTurns {
		result.Turns++

		event, err := gm.playTurn(result.Turns, turn)
		if err != nil {
			return gm.finish(result), err
		}
		for _, o := range gm.observers {
			if err := o.Observe(event); err != nil {
				return gm.finish(result), fmt.Errorf("turn %d: observer: %w", result.Turns, err)
			}
		}

		if event.Kind == Retired {
			log.Info().Msgf("%s retired on turn %d", names[turn], result.Turns)
			result.Retired = true
			result.Decided = true
			result.Winner = turn.Opponent()
			return gm.finish(result), nil
		}
		if !event.Bonus {
			turn = turn.Opponent()
		}
	}

	result = gm.finish(result)
	if result.Decided {
		log.Info().Msgf("%s wins after %d turns (%d-%d)", names[result.Winner], result.Turns, result.Scores[0], result.Scores[1])
	} else {
		log.Warn().Msgf("stopped after %d turns without a winner", result.Turns)
	}
	return result, nil
}

func (gm *GameMaster) finish(result Result) Result {
	for _, p := range []game.Player{game.Player0, game.Player1} {
		result.Scores[p] = gm.board.Score(p)
	}
	if winner, ok := gm.board.Winner(); ok {
		result.Winner = winner
		result.Decided = true
	}
	return result
}

func (gm *GameMaster) playTurn(n int, p game.Player) (Event, error) {
	roll, err := gm.dice.Roll()
	if err != nil {
		return Event{}, fmt.Errorf("turn %d: rolling: %w", n, err)
	}
	if roll < 0 || roll > game.MaxRoll {
		return Event{}, fmt.Errorf("turn %d: %w: roll %d", n, game.ErrOutOfRange, roll)
	}

	event := Event{Turn: n, Player: p, Roll: roll, Token: -1}
	valid := gm.board.ValidMoves(p, roll)
	if len(valid) == 0 {
		log.Debug().Msgf("turn %d: %s rolled %d and has no valid moves", n, p, roll)
		event.Kind = Skipped
		event.Hash = gm.board.Hash()
		return event, nil
	}

	token, err := gm.agents[p].ChooseToken(gm.board.Copy(), p, roll, valid)
	if errors.Is(err, player.ErrRetire) {
		event.Kind = Retired
		event.Hash = gm.board.Hash()
		return event, nil
	}
	if err != nil {
		return Event{}, fmt.Errorf("turn %d: %s choosing a token: %w", n, p, err)
	}
	if !slices.Contains(valid, token) {
		return Event{}, fmt.Errorf("%w: turn %d: %s chose token %d, valid are %v", ErrIllegalMove, n, p, token, valid)
	}

	out, err := gm.board.Apply(p, token, roll)
	if err != nil { // Cannot happen for a token from ValidMoves
		return Event{}, fmt.Errorf("turn %d: %w", n, err)
	}
	event.Kind = Moved
	event.Token = token
	event.Bonus = out.Bonus
	event.Captured = out.Captured
	event.Exited = out.Exited()
	event.Hash = gm.board.Hash()

	log.Debug().
		Int("turn", n).
		Stringer("player", p).
		Int("roll", roll).
		Int("token", token).
		Stringer("from", out.From).
		Stringer("to", out.To).
		Bool("bonus", out.Bonus).
		Bool("capture", out.Captured != nil).
		Msg("moved")
	return event, nil
}
