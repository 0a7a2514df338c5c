package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func panicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

func TestValidMoves(t *testing.T) {
	t.Run("fresh board lets every token enter", func(t *testing.T) {
		b := NewBoard("alice", "bob")

		for roll := 1; roll <= MaxRoll; roll++ {
			require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.ValidMoves(Player0, roll), "All tokens can enter with roll %d", roll)
			require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, b.ValidMoves(Player1, roll), "All tokens can enter with roll %d", roll)
		}
	})

	t.Run("zero roll never moves", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player0, 0, Track(1, 4))
		place(t, b, Player0, 1, Track(0, 6))

		require.Empty(t, b.ValidMoves(Player0, 0), "A zero roll should have no legal moves")
	})

	t.Run("own token blocks the entry cell", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		require.False(t, b.MakeMove(Player0, 0, 1), "Entering on column 3 earns no bonus")

		require.Equal(t, []int{0}, b.ValidMoves(Player0, 1), "Only the token on the board can move one step")
	})

	t.Run("own token blocks the exit of the shared lane", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player0, 0, Track(1, 7))
		place(t, b, Player0, 1, Track(0, 7))

		require.Equal(t, []int{1, 2, 3, 4, 5, 6}, b.ValidMoves(Player0, 1), "Token 0 should be blocked by token 1 on (0,7)")
	})

	t.Run("opponent on the safe cell blocks every roll", func(t *testing.T) {
		before := map[int]Position{1: Track(1, 2), 2: Track(1, 1), 3: Track(1, 0), 4: Track(0, 0)}
		for roll, from := range before {
			b := NewBoard("alice", "bob")
			place(t, b, Player1, 0, Track(SafeRow, SafeCol))
			place(t, b, Player0, 0, from)

			dest, ok := b.Simulate(Player0, 0, roll)
			require.False(t, ok, "Landing on the guarded safe cell from %s should be illegal, got %s", from, dest)
			require.NotContains(t, b.ValidMoves(Player0, roll), 0, "Roll %d should exclude token 0", roll)
		}
	})

	t.Run("safe cell guards player0 too", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player0, 3, Track(SafeRow, SafeCol))
		place(t, b, Player1, 0, Track(2, 0))

		require.NotContains(t, b.ValidMoves(Player1, 4), 0, "Player1 cannot land on a guarded safe cell")
	})

	t.Run("capture is legal off the safe cell", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player1, 0, Track(1, 4))
		place(t, b, Player0, 0, Track(SafeRow, SafeCol))

		dest, ok := b.Simulate(Player0, 0, 1)
		require.True(t, ok, "Capturing on (1,4) should be legal")
		require.Equal(t, Track(1, 4), dest, "Should land on the opponent")
	})

	t.Run("finished tokens do not move", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player0, 0, EndPosition())

		for roll := 0; roll <= MaxRoll; roll++ {
			require.NotContains(t, b.ValidMoves(Player0, roll), 0, "A token at End should never be movable")
		}
	})

	t.Run("querying is idempotent", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player0, 0, Track(1, 2))
		place(t, b, Player1, 4, Track(1, 5))
		place(t, b, Player0, 2, Track(0, 7))

		for roll := 0; roll <= MaxRoll; roll++ {
			first := b.ValidMoves(Player0, roll)
			require.Equal(t, first, b.ValidMoves(Player0, roll), "Repeated queries should agree for roll %d", roll)
		}
	})
}

func TestOvershoot(t *testing.T) {
	t.Run("standard rules let a token bear off past End", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player0, 0, Track(0, 6))

		dest, ok := b.Simulate(Player0, 0, 4)
		require.True(t, ok, "Overshooting should be legal under standard rules")
		require.Equal(t, EndPosition(), dest, "Overshooting should stop at End")
	})

	t.Run("strict rules require an exact roll", func(t *testing.T) {
		b := NewBoard("alice", "bob", WithRules(StrictRules{}))
		place(t, b, Player0, 0, Track(0, 6))
		place(t, b, Player0, 1, Track(0, 7))

		_, ok := b.Simulate(Player0, 0, 4)
		require.False(t, ok, "Overshooting should be illegal under strict rules")
		_, ok = b.Simulate(Player0, 0, 1)
		require.True(t, ok, "An exact roll should bear off")
		_, ok = b.Simulate(Player0, 1, 2)
		require.True(t, ok, "An exact roll should bear off")
		require.Equal(t, StrictRules{}, b.Rules(), "Board should keep the chosen rules")
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("entering", func(t *testing.T) {
		b := NewBoard("alice", "bob")

		require.False(t, b.MakeMove(Player0, 0, 1), "Entering on (0,3) earns no bonus")
		require.Equal(t, Track(0, 3), b.Position(Player0, 0), "Token 0 should enter at (0,3)")
		require.True(t, b.MakeMove(Player0, 1, 4), "Entering on the column 0 rosette earns a bonus")
		require.Equal(t, Track(0, 0), b.Position(Player0, 1), "Token 1 should reach (0,0)")
		require.False(t, b.MakeMove(Player1, 0, 3), "Entering on (2,1) earns no bonus")
		require.Equal(t, Track(2, 1), b.Position(Player1, 0), "Player1 enters on row 2")
		requireConsistent(t, b)
	})

	t.Run("leaving the shared lane without a capture", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player0, 0, Track(1, 7))
		place(t, b, Player1, 0, Track(2, 7))

		out, err := b.Apply(Player0, 0, 1)
		require.NoError(t, err)
		require.Equal(t, Track(0, 7), out.To, "Player0 returns to row 0")
		require.Nil(t, out.Captured, "Nothing is captured on a private lane")
		require.False(t, out.Bonus, "(0,7) is not a rosette")
		require.Equal(t, Track(2, 7), b.Position(Player1, 0), "Player1's token is untouched")
		requireConsistent(t, b)
	})

	t.Run("capturing", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player1, 2, Track(1, 5))
		place(t, b, Player0, 0, Track(1, 2))

		out, err := b.Apply(Player0, 0, 3)
		require.NoError(t, err)
		require.Equal(t, &Token{Player: Player1, Index: 2}, out.Captured, "Player1 token 2 should be captured")
		require.False(t, out.Bonus, "(1,5) is not a rosette")
		require.Equal(t, StartPosition(), b.Position(Player1, 2), "Captured token returns to start")
		require.Contains(t, b.TokensAtStart(Player1), 2, "Captured token waits at start")
		got, ok := b.At(1, 5)
		require.True(t, ok, "(1,5) should be occupied")
		require.Equal(t, Token{Player: Player0, Index: 0}, got, "Mover should occupy (1,5)")
		_, ok = b.At(1, 2)
		require.False(t, ok, "Mover's old cell should be cleared")
		requireConsistent(t, b)
	})

	t.Run("bearing off", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player0, 0, Track(0, 6))

		require.Equal(t, 0, b.Score(Player0))
		out, err := b.Apply(Player0, 0, 1)
		require.NoError(t, err)
		require.True(t, out.Exited(), "Token should leave the board")
		require.False(t, out.Bonus, "Bearing off never earns a bonus")
		require.Equal(t, 1, b.Score(Player0), "Score should increase by one")
		_, ok := b.At(0, 6)
		require.False(t, ok, "(0,6) should be cleared")
		requireConsistent(t, b)
	})

	t.Run("bonus turns", func(t *testing.T) {
		tests := []struct {
			name   string
			player Player
			from   Position
			roll   int
			bonus  bool
		}{
			{"private exit rosette", Player0, Track(0, 7), 1, true},
			{"safe rosette", Player0, Track(1, 2), 1, true},
			{"player1 entry rosette", Player1, Track(2, 1), 1, true},
			{"player1 exit rosette", Player1, Track(2, 7), 1, true},
			{"plain shared cell", Player0, Track(1, 0), 1, false},
			{"plain private cell", Player1, Track(2, 3), 2, false},
			{"exact exit", Player0, Track(0, 7), 2, false},
			{"overshoot exit", Player1, Track(2, 6), 4, false},
		}

		for _, tt := range tests {
			b := NewBoard("alice", "bob")
			place(t, b, tt.player, 0, tt.from)

			require.Equal(t, tt.bonus, b.MakeMove(tt.player, 0, tt.roll), tt.name)
			requireConsistent(t, b)
		}
	})

	t.Run("illegal moves fail fast", func(t *testing.T) {
		b := NewBoard("alice", "bob")
		place(t, b, Player0, 0, Track(0, 3))
		before := b.Hash()

		require.ErrorIs(t, panicErr(func() { b.MakeMove(Player0, 1, 1) }), ErrInvalidMove, "Landing on an own token should panic")
		require.ErrorIs(t, panicErr(func() { b.MakeMove(Player0, 1, 0) }), ErrInvalidMove, "A zero roll should panic")
		_, err := b.Apply(Player0, 1, 1)
		require.ErrorIs(t, err, ErrInvalidMove)
		require.Equal(t, before, b.Hash(), "Rejected moves should leave the board untouched")
	})

	t.Run("out of range indices fail fast", func(t *testing.T) {
		b := NewBoard("alice", "bob")

		require.ErrorIs(t, panicErr(func() { b.ValidMoves(Player(2), 1) }), ErrOutOfRange)
		require.ErrorIs(t, panicErr(func() { b.ValidMoves(Player0, MaxRoll+1) }), ErrOutOfRange)
		require.ErrorIs(t, panicErr(func() { b.ValidMoves(Player0, -1) }), ErrOutOfRange)
		require.ErrorIs(t, panicErr(func() { b.MakeMove(Player0, NumTokens, 1) }), ErrOutOfRange)
		require.ErrorIs(t, panicErr(func() { b.Score(Player(-1)) }), ErrOutOfRange)
		require.ErrorIs(t, panicErr(func() { b.At(Rows, 0) }), ErrOutOfRange)
		_, err := b.Apply(Player0, -1, 1)
		require.ErrorIs(t, err, ErrOutOfRange)
	})
}
