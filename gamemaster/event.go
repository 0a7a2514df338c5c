package gamemaster

import "royalur/game"

type EventKind int

const (
	Moved EventKind = iota
	Skipped
	Retired
)

func (k EventKind) String() string {
	switch k {
	case Moved:
		return "moved"
	case Skipped:
		return "skipped"
	case Retired:
		return "retired"
	default:
		return "unknown"
	}
}

// Event describes one turn: a roll and what the mover did with it.
type Event struct {
	Turn     int
	Player   game.Player
	Roll     int
	Kind     EventKind
	Token    int // -1 unless Kind is Moved
	Bonus    bool
	Captured *game.Token
	Exited   bool
	Hash     game.StateHash // State after the turn
}

// Observer is notified after every turn, e.g. to record the game.
type Observer interface {
	Observe(Event) error
}

type ObserverFunc func(Event) error

func (f ObserverFunc) Observe(e Event) error {
	return f(e)
}
