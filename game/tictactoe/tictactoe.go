package tictactoe

import (
	"fmt"
	"strings"

	"mcts/game"
)

// Players. X always moves first.
const (
	X = game.PlayerID("X")
	O = game.PlayerID("O")
)

const size = 3

// Cell is a board coordinate move.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is a 3x3 tic-tac-toe game.
type Board struct {
	cells  [size][size]game.PlayerID
	player game.PlayerID
}

// New returns an empty board with X to move.
func New() *Board {
	return &Board{player: X}
}

func (b *Board) CurrentPlayer() game.PlayerID {
	return b.player
}

func (b *Board) LegalMoves() []game.Move {
	if _, over := b.Winner(); over {
		return nil
	}
	var moves []game.Move
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.cells[r][c] == game.None {
				moves = append(moves, Cell{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (b *Board) Winner() (game.PlayerID, bool) {
	for i := 0; i < size; i++ {
		if p := b.cells[i][0]; p != game.None && p == b.cells[i][1] && p == b.cells[i][2] {
			return p, true
		}
		if p := b.cells[0][i]; p != game.None && p == b.cells[1][i] && p == b.cells[2][i] {
			return p, true
		}
	}
	if p := b.cells[0][0]; p != game.None && p == b.cells[1][1] && p == b.cells[2][2] {
		return p, true
	}
	if p := b.cells[0][2]; p != game.None && p == b.cells[1][1] && p == b.cells[2][0] {
		return p, true
	}
	return game.None, false
}

func (b *Board) Apply(move game.Move) error {
	cell, ok := move.(Cell)
	if !ok || !b.legal(cell) {
		return &game.IllegalMoveError{Move: move}
	}
	b.cells[cell.Row][cell.Col] = b.player
	b.player = opponent(b.player)
	return nil
}

func (b *Board) legal(c Cell) bool {
	if _, over := b.Winner(); over {
		return false
	}
	return c.Row >= 0 && c.Row < size &&
		c.Col >= 0 && c.Col < size &&
		b.cells[c.Row][c.Col] == game.None
}

func (b *Board) Clone() game.Game {
	clone := *b // cell array copies by value
	return &clone
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < size; c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			if b.cells[r][c] == game.None {
				sb.WriteByte('.')
			} else {
				sb.WriteString(string(b.cells[r][c]))
			}
		}
	}
	return sb.String()
}

func opponent(p game.PlayerID) game.PlayerID {
	if p == X {
		return O
	}
	return X
}
