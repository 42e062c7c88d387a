package searcher

import (
	"strconv"

	"mcts/game"
)

// node is one explored game configuration. It owns its game snapshot
// and its children outright; parent is a non-owning back reference
// used only to walk statistics up to the root.
type node struct {
	name     string
	game     game.Game
	move     game.Move // move applied to parent's state to reach this node, nil for root
	parent   *node
	children []*node

	plays int
	wins  int
	ties  int
	score float64 // last selection score, kept for reporting
}

func newRoot(g game.Game) *node {
	return &node{name: "0", game: g}
}

// newChild appends a child wrapping an already-cloned-and-played game
// state. Names are path derived: child i of "0" is "0_i".
func (n *node) newChild(g game.Game, move game.Move) *node {
	child := &node{
		name:   n.name + "_" + strconv.Itoa(len(n.children)),
		game:   g,
		move:   move,
		parent: n,
	}
	n.children = append(n.children, child)
	return child
}

// unexploredMoves returns the legal moves of n not yet represented by
// a child, preserving LegalMoves order.
func (n *node) unexploredMoves() []game.Move {
	moves := n.game.LegalMoves()
	unexplored := make([]game.Move, 0, len(moves))
	for _, move := range moves {
		explored := false
		for _, child := range n.children {
			if child.move == move {
				explored = true
				break
			}
		}
		if !explored {
			unexplored = append(unexplored, move)
		}
	}
	return unexplored
}
