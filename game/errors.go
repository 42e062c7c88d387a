package game

import "fmt"

// IllegalMoveError reports an attempt to play a move that is not legal
// in the current state.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: %v", e.Move)
}
