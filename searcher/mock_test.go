package searcher

import (
	"fmt"

	"mcts/game"
)

type mockMove int

func (m mockMove) String() string {
	return fmt.Sprintf("move %d", int(m))
}

// mockGame is a two-player game that offers branching moves per state,
// ends after remaining moves, then declares a scripted winner (None
// for a draw).
type mockGame struct {
	players   [2]game.PlayerID
	turn      int
	remaining int
	branching int
	winner    game.PlayerID
}

func (g *mockGame) LegalMoves() []game.Move {
	if g.remaining <= 0 {
		return nil
	}
	moves := make([]game.Move, g.branching)
	for i := range moves {
		moves[i] = mockMove(i)
	}
	return moves
}

func (g *mockGame) Winner() (game.PlayerID, bool) {
	if g.remaining <= 0 && g.winner != game.None {
		return g.winner, true
	}
	return game.None, false
}

func (g *mockGame) Apply(move game.Move) error {
	m, ok := move.(mockMove)
	if !ok || g.remaining <= 0 || int(m) < 0 || int(m) >= g.branching {
		return &game.IllegalMoveError{Move: move}
	}
	g.remaining--
	g.turn = 1 - g.turn
	return nil
}

func (g *mockGame) CurrentPlayer() game.PlayerID {
	return g.players[g.turn]
}

func (g *mockGame) Clone() game.Game {
	clone := *g
	return &clone
}
