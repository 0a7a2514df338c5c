package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// place puts a token at pos, bypassing the rules.
func place(t *testing.T, b *Board, p Player, token int, pos Position) {
	t.Helper()
	b.clear(b.positions[p][token])
	b.set(Token{Player: p, Index: token}, pos)
}

// requireConsistent checks that the grid and the position tables agree.
func requireConsistent(t *testing.T, b *Board) {
	t.Helper()
	seen := 0
	for p := range b.positions {
		for i, pos := range b.positions[p] {
			if pos.Kind != OnTrack {
				continue
			}
			seen++
			require.False(t, IsReserved(pos.Row, pos.Col), "Token should never sit on a reserved cell")
			got, ok := b.At(pos.Row, pos.Col)
			require.True(t, ok, "Cell %s should be occupied", pos)
			require.Equal(t, Token{Player: Player(p), Index: i}, got, "Cell %s should hold the token that claims it", pos)
		}
	}
	occupied := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if _, ok := b.At(r, c); ok {
				occupied++
			}
		}
	}
	require.Equal(t, seen, occupied, "Every occupied cell should be claimed by exactly one token")
}
