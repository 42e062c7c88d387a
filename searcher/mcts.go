package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"mcts/game"
)

type Option func(m *MCTS)

// MCTS runs a Monte Carlo tree search over one persistent tree. It is
// single threaded: an instance exclusively owns its tree, and every
// rollout works on an independently cloned game state.
type MCTS struct {
	root        *node
	scorer      Scorer
	readout     Scorer
	rng         *rand.Rand
	strategy    string
	exploration float64
	iterations  int
	duration    time.Duration
	simulations int
	metrics     MetricsCollector
	lastMetrics SearchMetrics
}

// WithIterations bounds the search by a number of
// select/expand/simulate/backpropagate cycles.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration bounds the search by wall-clock time. The budget is
// checked once per cycle, so an in-flight cycle always completes.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithSimulations sets the number of rollouts per expanded node.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		m.simulations = simulations
	}
}

// WithScoring selects the scoring strategy by name: "ucb1",
// "thompson" or "average".
func WithScoring(strategy string) Option {
	return func(m *MCTS) {
		m.strategy = strategy
	}
}

// WithExplorationConstant sets the ucb1 exploration constant.
func WithExplorationConstant(c float64) Option {
	return func(m *MCTS) {
		m.exploration = c
	}
}

// WithSeed seeds the engine's random source so move sampling, jitter
// and Beta draws are reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetrics enables search metrics collection.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

// New builds an engine rooted at a clone of g with zero statistics.
// At least one of the iteration and duration budgets must be set.
func New(g game.Game, options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		strategy:    ScoringUCB1,
		exploration: DefaultExplorationConstant,
		simulations: 1,
		readout:     averageScorer{},
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 && m.duration <= 0 {
		return nil, &ConfigurationError{Reason: "must specify search iterations or duration"}
	}
	if m.simulations < 1 {
		return nil, &ConfigurationError{Reason: "need at least one simulation per expansion"}
	}
	scorer, err := NewScorer(m.strategy, m.exploration, m.rng)
	if err != nil {
		return nil, err
	}
	m.scorer = scorer
	m.root = newRoot(g.Clone())
	return m, nil
}

// Search runs search cycles until the iteration budget is spent or the
// time budget elapses, whichever trips first. Running out of time is
// normal termination: the tree is left in a consistent partial state
// and RecommendedMove reflects whatever statistics accumulated.
func (m *MCTS) Search() error {
	start := time.Now()
	m.metrics.Start()

	iteration := 0
	for m.withinBudget(iteration, start) {
		target := m.selectNode()
		expanded, err := m.expand(target)
		if err != nil {
			return err
		}
		wins, ties := m.simulate(expanded, m.simulations)
		m.backpropagate(expanded, m.simulations, wins, ties)
		m.metrics.AddIteration()
		iteration++
		log.Debug().Msgf("iteration %d: expanded node %s, got %d wins and %d ties", iteration, expanded.name, wins, ties)
	}

	m.lastMetrics = m.metrics.Complete()
	log.Debug().Msgf("search performed %d iterations in %s", iteration, time.Since(start))
	return nil
}

// SearchMetrics returns the metrics of the last Search call. Zero
// valued unless WithMetrics was set.
func (m *MCTS) SearchMetrics() SearchMetrics {
	return m.lastMetrics
}

func (m *MCTS) withinBudget(iteration int, start time.Time) bool {
	if m.iterations > 0 && iteration >= m.iterations {
		return false
	}
	if m.duration > 0 && time.Since(start) >= m.duration {
		return false
	}
	return true
}

// selectNode descends from the root, at each level picking the child
// the scoring strategy ranks highest, until it reaches a node that
// still has unexplored moves or has none at all (terminal).
func (m *MCTS) selectNode() *node {
	n := m.root
	for len(n.children) > 0 {
		if len(n.game.LegalMoves()) > len(n.children) {
			return n
		}

		var best *node
		for _, child := range n.children {
			child.score = m.scorer.Score(child.plays, child.wins, child.ties, n.plays)
			if best == nil || child.score > best.score {
				best = child
			}
		}
		n = best
	}
	return n
}

// expand adds one child for a uniformly chosen unexplored move of
// parent. A fully expanded or terminal parent is returned unchanged;
// that is a defined no-op, not an error.
func (m *MCTS) expand(parent *node) (*node, error) {
	unexplored := parent.unexploredMoves()
	if len(unexplored) == 0 {
		return parent, nil
	}

	move := unexplored[m.rng.Intn(len(unexplored))]
	g := parent.game.Clone()
	if err := g.Apply(move); err != nil {
		return nil, fmt.Errorf("expanding node %s: %w", parent.name, err)
	}
	child := parent.newChild(g, move)
	m.metrics.AddNode()
	return child, nil
}

// simulate runs count random rollouts from clones of n's state and
// scores the outcomes from the perspective of the player to move at n.
// It never mutates n's own snapshot.
func (m *MCTS) simulate(n *node, count int) (wins, ties int) {
	for i := 0; i < count; i++ {
		g := n.game.Clone()
		perspective := g.CurrentPlayer()

		// Random rollout policy until no moves remain.
		for moves := g.LegalMoves(); len(moves) > 0; moves = g.LegalMoves() {
			if err := g.Apply(moves[m.rng.Intn(len(moves))]); err != nil {
				panic("game rejected its own legal move: " + err.Error())
			}
		}

		if winner, ok := g.Winner(); !ok {
			ties++
		} else if winner == perspective {
			wins++
		}
		m.metrics.AddRollout()
	}
	return wins, ties
}

// backpropagate folds a batch of rollout results into n and every
// ancestor up to the root. An ancestor sharing the perspective player
// of the originating simulation is credited the wins directly; any
// other ancestor records its own perspective's complement
// plays - ties - wins. Turn parity alternates level by level, so the
// comparison runs for each ancestor independently.
func (m *MCTS) backpropagate(n *node, plays, wins, ties int) {
	n.plays += plays
	n.wins += wins
	n.ties += ties

	perspective := n.game.CurrentPlayer()
	for ancestor := n.parent; ancestor != nil; ancestor = ancestor.parent {
		ancestor.plays += plays
		ancestor.ties += ties
		if ancestor.game.CurrentPlayer() == perspective {
			ancestor.wins += wins
		} else {
			ancestor.wins += plays - ties - wins
		}
	}
}
