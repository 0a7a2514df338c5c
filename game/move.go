package game

import "fmt"

// Outcome describes what a committed move did.
type Outcome struct {
	Token    Token
	From     Position
	To       Position
	Bonus    bool // The mover plays again
	Captured *Token
}

// Exited reports whether the move took the token off the board.
func (o Outcome) Exited() bool {
	return o.To.Kind == End
}

// Simulate returns the destination of moving token by roll, or false if the
// move is illegal.
func (b *Board) Simulate(p Player, token, roll int) (Position, bool) {
	checkPlayer(p)
	checkToken(token)
	checkRoll(roll)

	current := b.positions[p][token]
	if current.Kind == End {
		return Position{}, false
	}

	dest, leftover := advance(current, roll, p)
	switch dest.Kind {
	case Start:
		return Position{}, false
	case End:
		if roll == 0 || (leftover > 0 && b.rules.ExactExit()) {
			return Position{}, false
		}
		return dest, true
	}

	occupant, occupied := b.occupant(dest)
	if !occupied {
		return dest, true
	}
	if occupant.Player == p {
		return Position{}, false
	}
	if IsSafe(dest) {
		return Position{}, false
	}
	return dest, true
}

// ValidMoves returns, in ascending order, the tokens p may move with roll.
func (b *Board) ValidMoves(p Player, roll int) []int {
	checkPlayer(p)
	checkRoll(roll)

	moves := []int{}
	for token := 0; token < NumTokens; token++ {
		if _, ok := b.Simulate(p, token, roll); ok {
			moves = append(moves, token)
		}
	}
	return moves
}

// Apply commits a move and reports what happened. It returns an error wrapping
// ErrInvalidMove or ErrOutOfRange, leaving the board untouched, if the move is
// not legal.
func (b *Board) Apply(p Player, token, roll int) (Outcome, error) {
	if !p.Valid() {
		return Outcome{}, fmt.Errorf("%w: player %d", ErrOutOfRange, p)
	}
	if token < 0 || token >= NumTokens {
		return Outcome{}, fmt.Errorf("%w: token %d", ErrOutOfRange, token)
	}
	if roll < 0 || roll > MaxRoll {
		return Outcome{}, fmt.Errorf("%w: roll %d", ErrOutOfRange, roll)
	}
	dest, ok := b.Simulate(p, token, roll)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s token %d with roll %d", ErrInvalidMove, p, token, roll)
	}

	mover := Token{Player: p, Index: token}
	from := b.positions[p][token]
	out := Outcome{Token: mover, From: from, To: dest}

	switch {
	case dest.Kind == End:
		b.clear(from)
		b.set(mover, dest)
	case from.Kind == Start:
		b.set(mover, dest)
		out.Bonus = dest.Col == 0
	default:
		if victim, occupied := b.occupant(dest); occupied {
			b.clear(dest)
			b.set(victim, StartPosition())
			out.Captured = &victim
		}
		b.clear(from)
		b.set(mover, dest)
		out.Bonus = IsRosette(dest)
	}
	return out, nil
}

// MakeMove commits a move and reports whether the mover earns another turn.
// It panics if the move is not in ValidMoves(p, roll).
func (b *Board) MakeMove(p Player, token, roll int) bool {
	out, err := b.Apply(p, token, roll)
	if err != nil {
		panic(err)
	}
	return out.Bonus
}
