package metrics

import (
	"royalur/game"
	"royalur/gamemaster"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   int // Player ID
	Roll     int
	Kind     string
	Token    int // -1 when no token moved
	Bonus    bool
	Captured bool
	Exited   bool
}

type GameMetric struct {
	Players        [game.NumPlayers]string
	StartingPlayer int    // Player ID
	Winner         string // Player name, "" if undecided
	Retired        bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
	TotalMoves     int
	Skips          int
	BonusTurns     int
	Captures       [game.NumPlayers]int // Captures made by each player
	Scores         [game.NumPlayers]int
}

// Collector gathers per-turn metrics. It is a gamemaster.Observer.
type Collector struct {
	names     [game.NumPlayers]string
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector(names [game.NumPlayers]string) *Collector {
	return &Collector{names: names}
}

func (c *Collector) Start() {
	c.startTime = time.Now()
	c.moves = nil
}

func (c *Collector) Observe(e gamemaster.Event) error {
	c.moves = append(c.moves, MoveMetric{
		Step:     e.Turn,
		Player:   int(e.Player),
		Roll:     e.Roll,
		Kind:     e.Kind.String(),
		Token:    e.Token,
		Bonus:    e.Bonus,
		Captured: e.Captured != nil,
		Exited:   e.Exited,
	})
	return nil
}

func (c *Collector) Complete(result gamemaster.Result) (GameMetric, []MoveMetric) {
	end := time.Now()
	gm := GameMetric{
		Players:        c.names,
		StartingPlayer: int(result.Starting),
		Retired:        result.Retired,
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalTurns:     result.Turns,
		Scores:         result.Scores,
	}
	if result.Decided {
		gm.Winner = c.names[result.Winner]
	}
	for _, m := range c.moves {
		switch m.Kind {
		case gamemaster.Moved.String():
			gm.TotalMoves++
		case gamemaster.Skipped.String():
			gm.Skips++
		}
		if m.Bonus {
			gm.BonusTurns++
		}
		if m.Captured {
			gm.Captures[m.Player]++
		}
	}
	moves := make([]MoveMetric, len(c.moves))
	copy(moves, c.moves)
	return gm, moves
}
