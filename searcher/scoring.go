package searcher

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Scoring strategy identifiers accepted by NewScorer.
const (
	ScoringAverage  = "average"
	ScoringUCB1     = "ucb1"
	ScoringThompson = "thompson"
)

// DefaultExplorationConstant is the ucb1 exploration constant used
// when none is configured.
const DefaultExplorationConstant = 0.5

// unexploredScore is returned for arms with zero plays. It exceeds any
// attainable score of an explored arm, so unexplored children are
// always tried before explored ones.
const unexploredScore = 99.0

// tieBreakEpsilon bounds the jitter added to ucb1 scores to break
// exact ties between equally scored arms.
const tieBreakEpsilon = 1e-6

// Scorer maps one arm's statistics to a selection priority. totalPlays
// is the visit count of the arm's parent. Implementations must not
// fail for any input with 0 <= wins <= plays and ties >= 0.
type Scorer interface {
	Score(plays, wins, ties, totalPlays int) float64
}

// ConfigurationError reports an invalid search configuration.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid search configuration: " + e.Reason
}

// NewScorer returns the scoring strategy named by strategy. c is the
// exploration constant, meaningful for ucb1 only. rng drives the ucb1
// tie-break jitter and the Thompson Beta draws.
func NewScorer(strategy string, c float64, rng *rand.Rand) (Scorer, error) {
	switch strategy {
	case ScoringAverage:
		return averageScorer{}, nil
	case ScoringUCB1:
		return &ucb1Scorer{c: c, rng: rng}, nil
	case ScoringThompson:
		return &thompsonScorer{rng: rng}, nil
	default:
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown scoring strategy %q", strategy)}
	}
}

// averageScorer scores an arm by its plain win rate. Ties carry no
// weight in this formula.
type averageScorer struct{}

func (averageScorer) Score(plays, wins, ties, totalPlays int) float64 {
	if plays == 0 {
		return unexploredScore
	}
	return float64(wins) / float64(plays)
}

// ucb1Scorer scores an arm by win rate plus a visit-count exploration
// bonus, clamped to 1.0 and jittered for tie breaking.
type ucb1Scorer struct {
	c   float64
	rng *rand.Rand
}

func (s *ucb1Scorer) Score(plays, wins, ties, totalPlays int) float64 {
	if plays == 0 {
		return unexploredScore
	}
	// UCB1 = wins/plays + c*sqrt(ln(N)/plays)
	n := math.Max(float64(totalPlays), 1)
	score := float64(wins)/float64(plays) + s.c*math.Sqrt(math.Log(n)/float64(plays))
	score = math.Min(score, 1.0)
	return score + s.rng.Float64()*tieBreakEpsilon
}

// thompsonScorer scores an arm with one draw from the Beta posterior
// over its win probability.
type thompsonScorer struct {
	rng *rand.Rand
}

func (s *thompsonScorer) Score(plays, wins, ties, totalPlays int) float64 {
	// Beta(wins+1, plays-wins+1). At plays == 0 this is Beta(1,1), a
	// uniform draw, so unexplored arms need no special case.
	dist := distuv.Beta{
		Alpha: float64(wins) + 1,
		Beta:  float64(plays-wins) + 1,
		Src:   s.rng,
	}
	return dist.Rand()
}
