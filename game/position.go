package game

import "fmt"

// Kind tags which variant of Position is in use.
type Kind uint8

const (
	Start Kind = iota
	OnTrack
	End
)

// Position is where a token currently is. Row and Col are only meaningful
// when Kind is OnTrack.
type Position struct {
	Kind Kind
	Row  int
	Col  int
}

func StartPosition() Position { return Position{Kind: Start} }
func EndPosition() Position   { return Position{Kind: End} }

// Track returns the on-board position at (row, col).
func Track(row, col int) Position {
	return Position{Kind: OnTrack, Row: row, Col: col}
}

func (pos Position) IsStart() bool   { return pos.Kind == Start }
func (pos Position) IsEnd() bool     { return pos.Kind == End }
func (pos Position) IsOnTrack() bool { return pos.Kind == OnTrack }

func (pos Position) String() string {
	switch pos.Kind {
	case Start:
		return "start"
	case End:
		return "end"
	case OnTrack:
		return fmt.Sprintf("(%d,%d)", pos.Row, pos.Col)
	default:
		return fmt.Sprintf("position(%d)", pos.Kind)
	}
}

// Token identifies a single piece on the board.
type Token struct {
	Player Player
	Index  int
}

// SafeRow and SafeCol locate the shared rosette where captures are forbidden.
const (
	SafeRow = 1
	SafeCol = 3
)

var rosettes = [...]Position{
	Track(0, 0),
	Track(2, 0),
	Track(SafeRow, SafeCol),
	Track(0, 6),
	Track(2, 6),
}

// IsRosette reports whether landing on pos earns another turn.
func IsRosette(pos Position) bool {
	if pos.Kind != OnTrack {
		return false
	}
	for _, r := range rosettes {
		if r == pos {
			return true
		}
	}
	return false
}

// IsSafe reports whether pos is the shared cell that blocks captures.
func IsSafe(pos Position) bool {
	return pos == Track(SafeRow, SafeCol)
}

// IsReserved reports whether (row, col) is one of the four cells off the
// track, used by displays for the start and score counters.
func IsReserved(row, col int) bool {
	return (row == 0 || row == 2) && (col == 4 || col == 5)
}

func inGrid(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}
