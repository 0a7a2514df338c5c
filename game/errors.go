package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrOutOfRange  = errors.New("index out of range")
)

func checkPlayer(p Player) {
	if !p.Valid() {
		panic(fmt.Errorf("%w: player %d", ErrOutOfRange, p))
	}
}

func checkToken(token int) {
	if token < 0 || token >= NumTokens {
		panic(fmt.Errorf("%w: token %d", ErrOutOfRange, token))
	}
}

func checkRoll(roll int) {
	if roll < 0 || roll > MaxRoll {
		panic(fmt.Errorf("%w: roll %d", ErrOutOfRange, roll))
	}
}
