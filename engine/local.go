package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"mcts/game"
)

// Local drives a match between agents on a single game state until it
// is terminal.
type Local struct {
	id     uuid.UUID
	state  game.Game
	agents map[game.PlayerID]Agent

	// Observe, when set, is called after every applied move with the
	// updated state.
	Observe func(state game.Game, player game.PlayerID, move game.Move)
}

// Result summarizes a finished match.
type Result struct {
	MatchID uuid.UUID
	Winner  game.PlayerID
	Draw    bool
	Moves   int
}

// NewLocal builds a match on a clone of state, with one agent per
// player.
func NewLocal(state game.Game, agents map[game.PlayerID]Agent) *Local {
	if len(agents) < 2 {
		panic("need at least two players")
	}
	return &Local{
		id:     uuid.New(),
		state:  state.Clone(),
		agents: agents,
	}
}

// Run executes the game loop until no legal moves remain.
func (l *Local) Run() (Result, error) {
	log.Info().Str("match", l.id.String()).Msgf("player %s is starting", l.state.CurrentPlayer())

	moves := 0
	for len(l.state.LegalMoves()) > 0 {
		player := l.state.CurrentPlayer()
		agent, ok := l.agents[player]
		if !ok {
			return Result{}, fmt.Errorf("no agent for player %s", player)
		}

		move, err := agent.FindMove(l.state.Clone())
		if err != nil {
			return Result{}, fmt.Errorf("agent for player %s: %w", player, err)
		}
		if err := l.state.Apply(move); err != nil {
			return Result{}, fmt.Errorf("agent for player %s chose a bad move: %w", player, err)
		}
		moves++

		log.Info().Str("match", l.id.String()).Int("move", moves).Msgf("player %s played %s", player, move)
		if l.Observe != nil {
			l.Observe(l.state.Clone(), player, move)
		}
	}

	winner, ok := l.state.Winner()
	result := Result{MatchID: l.id, Winner: winner, Draw: !ok, Moves: moves}
	if result.Draw {
		log.Info().Str("match", l.id.String()).Msgf("game over after %d moves: draw", moves)
	} else {
		log.Info().Str("match", l.id.String()).Msgf("game over after %d moves: player %s won", moves, winner)
	}
	return result, nil
}
