package engine

import (
	"errors"

	"golang.org/x/exp/rand"

	"mcts/game"
	"mcts/searcher"
)

// Agent produces a move for a given game state.
type Agent interface {
	FindMove(game.Game) (game.Move, error)
}

// Searcher is an Agent that runs a fresh Monte Carlo tree search for
// every move it is asked for.
type Searcher struct {
	options []searcher.Option
}

func NewSearcher(options ...searcher.Option) *Searcher {
	return &Searcher{options: options}
}

func (s *Searcher) FindMove(g game.Game) (game.Move, error) {
	m, err := searcher.New(g, s.options...)
	if err != nil {
		return nil, err
	}
	if err := m.Search(); err != nil {
		return nil, err
	}
	move, ok := m.RecommendedMove()
	if !ok {
		return nil, errors.New("search produced no move to recommend")
	}
	return move, nil
}

// Random is an Agent that plays uniformly random legal moves. Useful
// as a baseline opponent.
type Random struct {
	Rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{Rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(g game.Game) (game.Move, error) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return nil, errors.New("no legal moves")
	}
	return moves[r.Rng.Intn(len(moves))], nil
}
