package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mcts/game"
)

func play(t *testing.T, b *Board, cells ...Cell) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, b.Apply(c))
	}
}

func TestNewBoard(t *testing.T) {
	t.Run("offers nine moves with X to start", func(t *testing.T) {
		b := New()

		require.Len(t, b.LegalMoves(), 9, "Empty board should offer 9 moves")
		require.Equal(t, X, b.CurrentPlayer(), "X should move first")
		_, over := b.Winner()
		require.False(t, over, "Fresh game should have no winner")
	})
}

func TestApply(t *testing.T) {
	t.Run("alternates players", func(t *testing.T) {
		b := New()

		play(t, b, Cell{0, 0})
		require.Equal(t, O, b.CurrentPlayer(), "O should move after X")
		play(t, b, Cell{1, 1})
		require.Equal(t, X, b.CurrentPlayer(), "X should move after O")
	})

	t.Run("rejects an occupied cell", func(t *testing.T) {
		b := New()
		play(t, b, Cell{0, 0})

		err := b.Apply(Cell{0, 0})

		var illegal *game.IllegalMoveError
		require.ErrorAs(t, err, &illegal, "Occupied cell should be an IllegalMoveError")
		require.Equal(t, O, b.CurrentPlayer(), "Failed move should not change the turn")
	})

	t.Run("rejects a cell off the board", func(t *testing.T) {
		b := New()

		var illegal *game.IllegalMoveError
		require.ErrorAs(t, b.Apply(Cell{3, 0}), &illegal,
			"Out-of-range cell should be an IllegalMoveError")
	})

	t.Run("rejects a foreign move type", func(t *testing.T) {
		b := New()

		var illegal *game.IllegalMoveError
		require.ErrorAs(t, b.Apply(mockMove{}), &illegal,
			"A move of the wrong type should be an IllegalMoveError")
	})

	t.Run("rejects any move once the game is over", func(t *testing.T) {
		b := New()
		play(t, b, Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1}, Cell{0, 2})

		var illegal *game.IllegalMoveError
		require.ErrorAs(t, b.Apply(Cell{2, 2}), &illegal,
			"Finished game should reject every move")
	})
}

func TestWinner(t *testing.T) {
	t.Run("detects a row", func(t *testing.T) {
		b := New()
		play(t, b, Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1}, Cell{0, 2})

		winner, over := b.Winner()
		require.True(t, over, "Completed row should end the game")
		require.Equal(t, X, winner, "X completed the top row")
		require.Empty(t, b.LegalMoves(), "Finished game should offer no moves")
	})

	t.Run("detects a column", func(t *testing.T) {
		b := New()
		play(t, b, Cell{0, 0}, Cell{0, 1}, Cell{1, 0}, Cell{1, 1}, Cell{2, 2}, Cell{2, 1})

		winner, over := b.Winner()
		require.True(t, over, "Completed column should end the game")
		require.Equal(t, O, winner, "O completed the middle column")
	})

	t.Run("detects both diagonals", func(t *testing.T) {
		b := New()
		play(t, b, Cell{0, 0}, Cell{0, 1}, Cell{1, 1}, Cell{0, 2}, Cell{2, 2})
		winner, over := b.Winner()
		require.True(t, over)
		require.Equal(t, X, winner, "X completed the main diagonal")

		b = New()
		play(t, b, Cell{0, 2}, Cell{0, 0}, Cell{1, 1}, Cell{1, 0}, Cell{2, 0})
		winner, over = b.Winner()
		require.True(t, over)
		require.Equal(t, X, winner, "X completed the anti diagonal")
	})

	t.Run("reports no winner for a drawn full board", func(t *testing.T) {
		b := New()
		play(t, b,
			Cell{0, 0}, Cell{0, 1}, Cell{0, 2},
			Cell{1, 1}, Cell{1, 0}, Cell{1, 2},
			Cell{2, 1}, Cell{2, 0}, Cell{2, 2})

		_, over := b.Winner()
		require.False(t, over, "Drawn game has no winner")
		require.Empty(t, b.LegalMoves(), "Full board should offer no moves")
	})
}

func TestClone(t *testing.T) {
	t.Run("is independent of the original", func(t *testing.T) {
		b := New()
		play(t, b, Cell{0, 0})

		clone := b.Clone()
		require.NoError(t, clone.Apply(Cell{1, 1}))

		require.Len(t, b.LegalMoves(), 8, "Playing on the clone must not touch the original")
		require.Len(t, clone.LegalMoves(), 7, "Clone should carry its own move")
		require.Equal(t, O, b.CurrentPlayer(), "Original turn should be unchanged")
	})
}

func TestString(t *testing.T) {
	t.Run("renders the grid", func(t *testing.T) {
		b := New()
		play(t, b, Cell{0, 0}, Cell{1, 1})

		require.Equal(t, "X|.|.\n.|O|.\n.|.|.", b.String())
	})
}

type mockMove struct{}

func (mockMove) String() string { return "not a cell" }
