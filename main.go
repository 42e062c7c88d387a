package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mcts/engine"
	"mcts/game"
	"mcts/game/connect4"
	"mcts/game/tictactoe"
	"mcts/searcher"
)

func main() {
	gameName := flag.String("game", "tictactoe", "game to play: tictactoe or connect4")
	strategy := flag.String("strategy", searcher.ScoringUCB1, "scoring strategy: ucb1, thompson or average")
	exploration := flag.Float64("c", searcher.DefaultExplorationConstant, "ucb1 exploration constant")
	iterations := flag.Int("iterations", 300, "search iterations per move")
	duration := flag.Duration("duration", 5*time.Second, "search time budget per move")
	simulations := flag.Int("simulations", 1, "rollouts per expanded node")
	seed := flag.Uint64("seed", 0, "random seed for the engine, 0 seeds from the clock")
	human := flag.Bool("human", false, "play interactively against the engine")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	state, players, err := newGame(*gameName)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up game")
	}

	options := []searcher.Option{
		searcher.WithIterations(*iterations),
		searcher.WithDuration(*duration),
		searcher.WithSimulations(*simulations),
		searcher.WithScoring(*strategy),
		searcher.WithExplorationConstant(*exploration),
	}
	if *seed != 0 {
		options = append(options, searcher.WithSeed(*seed))
	}

	agents := map[game.PlayerID]engine.Agent{
		players[0]: engine.NewSearcher(options...),
		players[1]: engine.NewSearcher(options...),
	}
	if *human {
		agents[players[0]] = &humanAgent{reader: bufio.NewReader(os.Stdin)}
	}

	match := engine.NewLocal(state, agents)
	match.Observe = func(state game.Game, player game.PlayerID, move game.Move) {
		fmt.Printf("%s played %s\n%s\n\n", player, move, render(state))
	}

	result, err := match.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("match failed")
	}
	announce(result)
}

func newGame(name string) (game.Game, [2]game.PlayerID, error) {
	switch name {
	case "tictactoe":
		return tictactoe.New(), [2]game.PlayerID{tictactoe.X, tictactoe.O}, nil
	case "connect4":
		return connect4.New(), [2]game.PlayerID{connect4.Red, connect4.Yellow}, nil
	default:
		return nil, [2]game.PlayerID{}, fmt.Errorf("unknown game %q", name)
	}
}

// render colorizes the board's player marks for the terminal.
func render(g game.Game) string {
	var sb strings.Builder
	for _, r := range fmt.Sprint(g) {
		switch r {
		case 'X', 'R':
			sb.WriteString(termenv.String(string(r)).Foreground(termenv.ANSIRed).String())
		case 'O', 'Y':
			sb.WriteString(termenv.String(string(r)).Foreground(termenv.ANSIBlue).String())
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func announce(result engine.Result) {
	if result.Draw {
		fmt.Println(termenv.String(fmt.Sprintf("Draw after %d moves.", result.Moves)).Bold())
		return
	}
	fmt.Println(termenv.String(fmt.Sprintf("Player %s wins after %d moves!", result.Winner, result.Moves)).Bold())
}

// humanAgent reads moves from stdin, offering the legal moves as a
// numbered list.
type humanAgent struct {
	reader *bufio.Reader
}

func (h *humanAgent) FindMove(g game.Game) (game.Move, error) {
	moves := g.LegalMoves()
	fmt.Printf("%s\n\n", render(g))
	for i, move := range moves {
		fmt.Printf("  %d: %s\n", i, move)
	}

	for {
		fmt.Print("your move> ")
		line, err := h.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		i, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || i < 0 || i >= len(moves) {
			fmt.Println("pick a number from the list")
			continue
		}
		return moves[i], nil
	}
}
