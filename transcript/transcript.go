// Package transcript reads and writes the line-based game stream: two lines
// with the player names, then per turn a line of die values followed, when
// the mover has a legal move, by the chosen token index or RETIRE.
package transcript

import (
	"errors"
	"fmt"
	"royalur/game"
	"strconv"
	"strings"
)

// Retire is the token line of a player who forfeits.
const Retire = "RETIRE"

var ErrMalformed = errors.New("malformed transcript")

// ParseRoll sums a line of whitespace-separated die values.
func ParseRoll(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: empty roll", ErrMalformed)
	}
	sum := 0
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("%w: bad die value %q", ErrMalformed, f)
		}
		sum += v
	}
	if sum > game.MaxRoll {
		return 0, fmt.Errorf("%w: roll %d exceeds %d", ErrMalformed, sum, game.MaxRoll)
	}
	return sum, nil
}

// ParseDice reads a line of exactly four binary dice, the way a roll is
// actually thrown, and returns their sum.
func ParseDice(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != game.MaxRoll {
		return 0, fmt.Errorf("%w: want %d dice, got %q", ErrMalformed, game.MaxRoll, line)
	}
	sum := 0
	for _, f := range fields {
		switch f {
		case "0":
		case "1":
			sum++
		default:
			return 0, fmt.Errorf("%w: bad die value %q", ErrMalformed, f)
		}
	}
	return sum, nil
}

// FormatRoll spells a roll as four binary dice.
func FormatRoll(roll int) string {
	dice := make([]string, game.MaxRoll)
	for i := range dice {
		if i < roll {
			dice[i] = "1"
		} else {
			dice[i] = "0"
		}
	}
	return strings.Join(dice, " ")
}
