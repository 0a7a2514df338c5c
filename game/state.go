package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type square struct {
	token    Token
	occupied bool
}

// Board holds the full state of one game. The grid is an index over the
// position table and both are only ever written by Apply.
type Board struct {
	names     [NumPlayers]string
	grid      [Rows][Cols]square
	positions [NumPlayers][NumTokens]Position
	rules     Rules
}

type Option func(b *Board)

// WithRules replaces the default StandardRules.
func WithRules(rules Rules) Option {
	return func(b *Board) {
		if rules != nil {
			b.rules = rules
		}
	}
}

// NewBoard returns a board with every token waiting at Start.
func NewBoard(name0, name1 string, options ...Option) *Board {
	b := &Board{
		names: [NumPlayers]string{name0, name1},
		rules: StandardRules{},
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b // Arrays copy by value
	return &c
}

func (b *Board) Rules() Rules {
	return b.rules
}

func (b *Board) Name(p Player) string {
	checkPlayer(p)
	return b.names[p]
}

func (b *Board) Names() [NumPlayers]string {
	return b.names
}

// Position returns where the given token is.
func (b *Board) Position(p Player, token int) Position {
	checkPlayer(p)
	checkToken(token)
	return b.positions[p][token]
}

// Positions returns a copy of p's position table.
func (b *Board) Positions(p Player) [NumTokens]Position {
	checkPlayer(p)
	return b.positions[p]
}

// At returns the token occupying (row, col), if any.
func (b *Board) At(row, col int) (Token, bool) {
	if !inGrid(row, col) {
		panic(fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, row, col))
	}
	sq := b.grid[row][col]
	return sq.token, sq.occupied
}

func (b *Board) occupant(pos Position) (Token, bool) {
	if pos.Kind != OnTrack {
		return Token{}, false
	}
	return b.At(pos.Row, pos.Col)
}

func (b *Board) clear(pos Position) {
	if pos.Kind == OnTrack {
		b.grid[pos.Row][pos.Col] = square{}
	}
}

func (b *Board) set(t Token, pos Position) {
	b.positions[t.Player][t.Index] = pos
	if pos.Kind == OnTrack {
		b.grid[pos.Row][pos.Col] = square{token: t, occupied: true}
	}
}

// Hash identifies the arrangement of tokens. Player names and rules are not
// part of it.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	for p := range b.positions {
		for _, pos := range b.positions[p] {
			binary.Write(hasher, binary.LittleEndian, [3]int8{int8(pos.Kind), int8(pos.Row), int8(pos.Col)})
		}
	}
	return StateHash(hasher.Sum64())
}
