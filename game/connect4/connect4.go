package connect4

import (
	"fmt"
	"strings"

	"mcts/game"
)

// Players. Red always moves first.
const (
	Red    = game.PlayerID("R")
	Yellow = game.PlayerID("Y")
)

const (
	rows    = 6
	cols    = 7
	connect = 4
)

// Column is a drop move: the disc falls to the lowest free row of the
// column.
type Column int

func (c Column) String() string {
	return fmt.Sprintf("column %d", int(c))
}

// Board is a 6x7 connect-four game. Row 0 is the top row.
type Board struct {
	cells  [rows][cols]game.PlayerID
	player game.PlayerID
	winner game.PlayerID
}

// New returns an empty board with Red to move.
func New() *Board {
	return &Board{player: Red}
}

func (b *Board) CurrentPlayer() game.PlayerID {
	return b.player
}

func (b *Board) LegalMoves() []game.Move {
	if b.winner != game.None {
		return nil
	}
	var moves []game.Move
	for c := 0; c < cols; c++ {
		if b.cells[0][c] == game.None {
			moves = append(moves, Column(c))
		}
	}
	return moves
}

func (b *Board) Winner() (game.PlayerID, bool) {
	return b.winner, b.winner != game.None
}

func (b *Board) Apply(move game.Move) error {
	col, ok := move.(Column)
	if !ok || b.winner != game.None || col < 0 || int(col) >= cols || b.cells[0][col] != game.None {
		return &game.IllegalMoveError{Move: move}
	}

	row := rows - 1
	for b.cells[row][col] != game.None {
		row--
	}
	b.cells[row][col] = b.player

	if b.connects(row, int(col)) {
		b.winner = b.player
	}
	b.player = opponent(b.player)
	return nil
}

// connects reports whether the disc just placed at (row, col) completes
// a line of four in any direction.
func (b *Board) connects(row, col int) bool {
	player := b.cells[row][col]
	directions := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for _, d := range directions {
		count := 1
		count += b.run(row, col, d[0], d[1], player)
		count += b.run(row, col, -d[0], -d[1], player)
		if count >= connect {
			return true
		}
	}
	return false
}

// run counts consecutive discs of player from (row, col) exclusive,
// stepping by (dr, dc).
func (b *Board) run(row, col, dr, dc int, player game.PlayerID) int {
	count := 0
	for {
		row += dr
		col += dc
		if row < 0 || row >= rows || col < 0 || col >= cols || b.cells[row][col] != player {
			return count
		}
		count++
	}
}

func (b *Board) Clone() game.Game {
	clone := *b // cell array copies by value
	return &clone
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
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
	if p == Red {
		return Yellow
	}
	return Red
}
