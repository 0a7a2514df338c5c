package transcript

import (
	"bufio"
	"fmt"
	"io"
	"royalur/game"
	"royalur/player"
	"strconv"
	"strings"
)

// Reader replays a transcript. It serves both as the dice and as the agents
// of a game master, since rolls and token choices arrive in turn order.
type Reader struct {
	scanner   *bufio.Scanner
	line      int
	parseRoll func(string) (int, error)
}

type Option func(r *Reader)

// WithBinaryDice only accepts roll lines of four binary dice, so a stray
// token line cannot pass for a roll.
func WithBinaryDice() Option {
	return func(r *Reader) {
		r.parseRoll = ParseDice
	}
}

func NewReader(r io.Reader, options ...Option) *Reader {
	reader := &Reader{scanner: bufio.NewScanner(r), parseRoll: ParseRoll}
	for _, option := range options {
		option(reader)
	}
	return reader
}

func (r *Reader) next() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("line %d: %w", r.line+1, err)
		}
		return "", io.EOF
	}
	r.line++
	return strings.TrimSpace(r.scanner.Text()), nil
}

// ReadHeader reads the two player names.
func (r *Reader) ReadHeader() ([game.NumPlayers]string, error) {
	var names [game.NumPlayers]string
	for i := range names {
		name, err := r.next()
		if err == io.EOF {
			return names, fmt.Errorf("%w: missing name of player %d", ErrMalformed, i)
		}
		if err != nil {
			return names, err
		}
		names[i] = name
	}
	return names, nil
}

// ReadSeat reads the seat line that precedes the turns in a stream addressed
// to one of the players.
func (r *Reader) ReadSeat() (game.Player, error) {
	line, err := r.next()
	if err == io.EOF {
		return 0, fmt.Errorf("%w: missing seat", ErrMalformed)
	}
	if err != nil {
		return 0, err
	}
	seat, err := strconv.Atoi(line)
	if err != nil || !game.Player(seat).Valid() {
		return 0, fmt.Errorf("%w: line %d: bad seat %q", ErrMalformed, r.line, line)
	}
	return game.Player(seat), nil
}

// Roll reads the next roll line.
func (r *Reader) Roll() (int, error) {
	line, err := r.next()
	if err == io.EOF {
		return 0, fmt.Errorf("line %d: %w", r.line+1, io.ErrUnexpectedEOF)
	}
	if err != nil {
		return 0, err
	}
	roll, err := r.parseRoll(line)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", r.line, err)
	}
	return roll, nil
}

// ChooseToken reads the next token line. Legality is left to the caller.
func (r *Reader) ChooseToken(_ *game.Board, _ game.Player, _ int, _ []int) (int, error) {
	line, err := r.next()
	if err == io.EOF {
		return 0, fmt.Errorf("line %d: %w", r.line+1, io.ErrUnexpectedEOF)
	}
	if err != nil {
		return 0, err
	}
	if line == Retire {
		return 0, player.ErrRetire
	}
	token, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: bad token %q", ErrMalformed, r.line, line)
	}
	return token, nil
}
