package searcher

import "mcts/game"

// MoveStat is the readout for one move explored from the root, in
// expansion order. Score is the own-perspective win rate of the
// position the move leads to.
type MoveStat struct {
	Move  game.Move
	Plays int
	Wins  int
	Ties  int
	Score float64
}

// RecommendedMove returns the best next move for the player to move at
// the root, or ok=false if the root has no children (search never ran,
// or the root is terminal).
//
// Depth-1 statistics are recorded from the perspective of the player
// to move at each child, which is the opponent of the root's mover.
// The best move for the root's mover is therefore the child with the
// lowest own-perspective win rate, not the highest.
func (m *MCTS) RecommendedMove() (game.Move, bool) {
	var best *node
	var bestScore float64
	for _, child := range m.root.children {
		score := m.readout.Score(child.plays, child.wins, child.ties, m.root.plays)
		if best == nil || score < bestScore {
			best = child
			bestScore = score
		}
	}
	if best == nil {
		return nil, false
	}
	return best.move, true
}

// MoveStats reports the statistics of every move explored from the
// root.
func (m *MCTS) MoveStats() []MoveStat {
	stats := make([]MoveStat, len(m.root.children))
	for i, child := range m.root.children {
		stats[i] = MoveStat{
			Move:  child.move,
			Plays: child.plays,
			Wins:  child.wins,
			Ties:  child.ties,
			Score: m.readout.Score(child.plays, child.wins, child.ties, m.root.plays),
		}
	}
	return stats
}
