package game

// AdvanceOne moves pos a single step along player's path.
//
// Each player enters at column 3 of their private row, runs down to column 0,
// crosses onto the shared row at (1,0), runs up to (1,7), returns to column 7
// of their private row and leaves the board from column 6.
func AdvanceOne(pos Position, player Player) Position {
	switch pos.Kind {
	case Start:
		return Track(int(player)*2, 3)
	case End:
		return pos
	}

	switch {
	case pos.Col == 0 && pos.Row != 1:
		return Track(1, 0)
	case pos.Col == 6 && pos.Row != 1:
		return EndPosition()
	case pos == Track(1, Cols-1):
		return Track(int(player)*2, Cols-1)
	case pos.Row == 1:
		return Track(1, pos.Col+1)
	default:
		return Track(pos.Row, pos.Col-1)
	}
}

// Advance applies AdvanceOne steps times.
func Advance(pos Position, steps int, player Player) Position {
	for i := 0; i < steps; i++ {
		pos = AdvanceOne(pos, player)
	}
	return pos
}

// advance walks like Advance but also reports how many steps were left over
// once the walk reached End.
func advance(pos Position, steps int, player Player) (Position, int) {
	for i := 0; i < steps; i++ {
		if pos.Kind == End {
			return pos, steps - i
		}
		pos = AdvanceOne(pos, player)
	}
	return pos, 0
}
